// internal/app/store/views/store.go
package views

import (
	"context"
	"time"

	"github.com/dalemusser/tourdash/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store tracks page view counters in the page_views collection.
type Store struct {
	c *mongo.Collection
}

// New returns a Store bound to db.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("page_views")}
}

// EnsureIndexes creates the unique slug index.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Bump increments the counter for slug, creating the document on first
// view.
func (s *Store) Bump(ctx context.Context, slug string) error {
	_, err := s.c.UpdateOne(ctx,
		bson.M{"slug": slug},
		bson.M{
			"$inc":         bson.M{"count": 1},
			"$set":         bson.M{"updated_at": time.Now().UTC()},
			"$setOnInsert": bson.M{"slug": slug},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// Get returns the counter for slug, or a zero-count PageView when the
// slug has never been viewed.
func (s *Store) Get(ctx context.Context, slug string) (models.PageView, error) {
	var pv models.PageView
	err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&pv)
	if err == mongo.ErrNoDocuments {
		return models.PageView{Slug: slug}, nil
	}
	if err != nil {
		return models.PageView{}, err
	}
	return pv, nil
}
