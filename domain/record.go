// Package domain holds the entities persisted by the service.
package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// SolveRecord is one entry in the solve history: which maze was
// solved, with which strategy, and how the search went. Unsolvable
// mazes are recorded too, with Solvable false and zero counts.
type SolveRecord struct {
	ID          uuid.UUID `bson:"_id" json:"id"`
	Maze        string    `bson:"maze" json:"maze"`
	Strategy    string    `bson:"strategy" json:"strategy"`
	Solvable    bool      `bson:"solvable" json:"solvable"`
	PathLength  int       `bson:"pathLength" json:"path_length"`
	NumExplored int       `bson:"numExplored" json:"num_explored"`
	CreatedAt   time.Time `bson:"createdAt" json:"created_at"`
}

// RecordConfig carries the fields needed to create a SolveRecord.
type RecordConfig struct {
	Maze        string
	Strategy    string
	Solvable    bool
	PathLength  int
	NumExplored int
}

// NewSolveRecord creates a SolveRecord with a fresh ID and timestamp.
func NewSolveRecord(cfg RecordConfig) (*SolveRecord, error) {
	if cfg.Maze == "" {
		return nil, errors.New("solve record must carry the maze text")
	}
	if cfg.Strategy == "" {
		return nil, errors.New("solve record must carry the strategy")
	}
	return &SolveRecord{
		ID:          uuid.New(),
		Maze:        cfg.Maze,
		Strategy:    cfg.Strategy,
		Solvable:    cfg.Solvable,
		PathLength:  cfg.PathLength,
		NumExplored: cfg.NumExplored,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
