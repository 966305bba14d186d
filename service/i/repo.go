package i

import (
	dmn "github.com/beka-birhanu/maze-solver-api/domain"
	"github.com/google/uuid"
)

// RecordRepo defines the interface for solve-history persistence.
type RecordRepo interface {
	// Save inserts or updates a solve record in the repository.
	Save(record *dmn.SolveRecord) error

	// ByID retrieves a solve record by its unique ID.
	// Returns an error if the record is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*dmn.SolveRecord, error)

	// Recent retrieves up to limit records, newest first.
	Recent(limit int64) ([]*dmn.SolveRecord, error)
}
