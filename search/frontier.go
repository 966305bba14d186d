package search

import (
	"container/heap"

	"github.com/beka-birhanu/maze-solver-api/maze"
)

// NoPriority is passed to Add when the caller supplies no priority.
// The priority frontier then falls back to the node's own cost, which
// degrades A* ordering to uniform-cost search.
const NoPriority = -1

// Frontier is the open set of a graph search: nodes discovered but not
// yet expanded. A state is resident at most once; Add drops later
// arrivals of a state that is still resident instead of replacing the
// earlier entry. Keep that first-arrival-wins rule exactly: on a
// unit-cost grid the first arrival already carries the minimal cost,
// and the engine relies on it instead of a decrease-key update.
//
// Remove on an empty frontier is a caller bug and panics; check Empty
// first.
type Frontier interface {
	Add(n *Node, priority int)
	Remove() *Node
	Empty() bool
	ContainsState(s maze.Cell) bool
}

// QueueFrontier removes nodes in insertion order (FIFO). It drives
// breadth-first search: with unit edge costs, first removal by
// insertion order means the first time a state is dequeued it has
// minimum path length.
type QueueFrontier struct {
	nodes  []*Node
	states map[maze.Cell]struct{}
}

// NewQueueFrontier returns an empty FIFO frontier.
func NewQueueFrontier() *QueueFrontier {
	return &QueueFrontier{states: make(map[maze.Cell]struct{})}
}

// Add appends the node unless its state is already resident. The
// priority argument is ignored.
func (f *QueueFrontier) Add(n *Node, _ int) {
	if _, ok := f.states[n.State]; ok {
		return
	}
	f.nodes = append(f.nodes, n)
	f.states[n.State] = struct{}{}
}

// Remove returns the oldest-inserted node. It panics if the frontier
// is empty.
func (f *QueueFrontier) Remove() *Node {
	if f.Empty() {
		panic("search: remove from empty frontier")
	}
	n := f.nodes[0]
	f.nodes = f.nodes[1:]
	delete(f.states, n.State)
	return n
}

// Empty reports whether the frontier holds no nodes.
func (f *QueueFrontier) Empty() bool {
	return len(f.nodes) == 0
}

// ContainsState reports whether a node with this state is resident.
func (f *QueueFrontier) ContainsState(s maze.Cell) bool {
	_, ok := f.states[s]
	return ok
}

// PriorityQueueFrontier removes the node with the lowest priority
// value; ties go to the earlier-inserted node so removal order stays
// deterministic. It drives A* with priority f = g + h.
type PriorityQueueFrontier struct {
	heap   pqHeap
	states map[maze.Cell]struct{}
	seq    int
}

// NewPriorityQueueFrontier returns an empty priority frontier.
func NewPriorityQueueFrontier() *PriorityQueueFrontier {
	f := &PriorityQueueFrontier{states: make(map[maze.Cell]struct{})}
	heap.Init(&f.heap)
	return f
}

// Add inserts the node with the given priority unless its state is
// already resident. NoPriority falls back to the node's cost.
func (f *PriorityQueueFrontier) Add(n *Node, priority int) {
	if _, ok := f.states[n.State]; ok {
		return
	}
	if priority == NoPriority {
		priority = n.Cost
	}
	heap.Push(&f.heap, &pqItem{node: n, priority: priority, seq: f.seq})
	f.seq++
	f.states[n.State] = struct{}{}
}

// Remove returns the node with minimum priority, earliest-inserted on
// ties. It panics if the frontier is empty.
func (f *PriorityQueueFrontier) Remove() *Node {
	if f.Empty() {
		panic("search: remove from empty frontier")
	}
	item := heap.Pop(&f.heap).(*pqItem)
	delete(f.states, item.node.State)
	return item.node
}

// Empty reports whether the frontier holds no nodes.
func (f *PriorityQueueFrontier) Empty() bool {
	return f.heap.Len() == 0
}

// ContainsState reports whether a node with this state is resident.
func (f *PriorityQueueFrontier) ContainsState(s maze.Cell) bool {
	_, ok := f.states[s]
	return ok
}

type pqItem struct {
	node     *Node
	priority int
	seq      int
}

type pqHeap []*pqItem

func (h pqHeap) Len() int { return len(h) }

func (h pqHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h pqHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *pqHeap) Push(x any) {
	*h = append(*h, x.(*pqItem))
}

func (h *pqHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
