package search

import "github.com/beka-birhanu/maze-solver-api/maze"

// Node is one entry in the search tree. Parent links always point at
// earlier-expanded nodes, so the tree rooted at the start node is
// acyclic by construction.
type Node struct {
	State  maze.Cell
	Parent *Node
	Action maze.Action // move that produced this node; zero at the root
	Cost   int         // path length from start, the g-value
}
