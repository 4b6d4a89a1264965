// internal/app/store/docs/store.go
package docs

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names read by the dashboard aggregator. They are defined here,
// next to the reader, so the aggregator and EnsureSchema agree on spelling.
const (
	Sessions     = "sessions"
	Users        = "users"
	Payments     = "payments"
	Resumes      = "resumes"
	TestResults  = "test_results"
	SystemStatus = "system_status"
)

// Store reads whole collections as raw documents. The dashboard works on
// small, fully-materialized collections, so ListAll deliberately has no
// filter or pagination parameters; shaping happens in memory downstream.
type Store struct {
	db *mongo.Database
}

// New creates a raw document Store over db.
func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// ListAll returns every document in the named collection, decoded as
// bson.M. Field typing and timestamp normalization are the caller's
// concern; documents are returned as stored.
func (s *Store) ListAll(ctx context.Context, name string) ([]bson.M, error) {
	cur, err := s.db.Collection(name).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []bson.M
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of documents in the named collection.
func (s *Store) Count(ctx context.Context, name string) (int64, error) {
	return s.db.Collection(name).CountDocuments(ctx, bson.M{})
}
