// Package solveapi provides structures and utilities for maze solve requests and responses.
package solveapi

import (
	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/google/uuid"
)

// SolveRequest represents a request to solve a maze.
type SolveRequest struct {
	Maze     string `json:"maze" binding:"required"`
	Strategy string `json:"strategy" binding:"required"`
}

// ImageRequest represents a request to solve a maze and render it as a PNG.
type ImageRequest struct {
	Maze         string `json:"maze" binding:"required"`
	Strategy     string `json:"strategy" binding:"required"`
	ShowExplored bool   `json:"show_explored"`
}

// SolveResponse represents the outcome of a solve. Actions and Cells
// are present only for solvable mazes.
type SolveResponse struct {
	ID            uuid.UUID     `json:"id"`
	Solvable      bool          `json:"solvable"`
	Actions       []maze.Action `json:"actions,omitempty"`
	Cells         []maze.Cell   `json:"cells,omitempty"`
	NumExplored   int           `json:"num_explored"`
	ExploredOrder []maze.Cell   `json:"explored_order,omitempty"`
}

// RandomMazeResponse carries a generated maze in text form.
type RandomMazeResponse struct {
	Maze string `json:"maze"`
}
