package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/maze-solver-api/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrRecordNotFound reports a lookup for a solve record that does not exist.
var ErrRecordNotFound = errors.New("solve record not found")

// SolveRecordRepo handles the persistence of solve-history records.
type SolveRecordRepo struct {
	collection *mongo.Collection
}

// NewSolveRecordRepo creates a new SolveRecordRepo with the given MongoDB client, database name, and collection name.
func NewSolveRecordRepo(client *mongo.Client, dbName, collectionName string) *SolveRecordRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &SolveRecordRepo{
		collection: collection,
	}
}

// Save inserts or updates a solve record in the repository.
func (r *SolveRecordRepo) Save(record *dmn.SolveRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	filter := bson.M{"_id": record.ID}
	update := bson.M{
		"$set": bson.M{
			"maze":        record.Maze,
			"strategy":    record.Strategy,
			"solvable":    record.Solvable,
			"pathLength":  record.PathLength,
			"numExplored": record.NumExplored,
			"createdAt":   record.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves a solve record by its ID.
// Returns ErrRecordNotFound if no record with that ID exists.
func (r *SolveRecordRepo) ByID(id uuid.UUID) (*dmn.SolveRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var record dmn.SolveRecord
	if err := r.collection.FindOne(ctx, filter).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRecordNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &record, nil
}

// Recent retrieves up to limit solve records, newest first.
func (r *SolveRecordRepo) Recent(limit int64) ([]*dmn.SolveRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var records []*dmn.SolveRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return records, nil
}
