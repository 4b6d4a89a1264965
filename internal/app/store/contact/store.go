// internal/app/store/contact/store.go
package contact

import (
	"context"
	"time"

	"github.com/dalemusser/tourdash/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store manages contact form submissions.
type Store struct {
	c *mongo.Collection
}

// New creates a new contact message Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("contact_messages")}
}

// EnsureIndexes creates necessary indexes for efficient querying.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		// Support looks messages up by the receipt returned to the submitter.
		{
			Keys:    bson.D{{Key: "receipt_id", Value: 1}},
			Options: options.Index().SetName("idx_contact_receipt").SetUnique(true),
		},
		// Inbox listing, newest first.
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_contact_created"),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}

// Create stores a new contact message, filling ID and CreatedAt.
func (s *Store) Create(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error) {
	msg.ID = primitive.NewObjectID()
	msg.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, msg); err != nil {
		return models.ContactMessage{}, err
	}
	return msg, nil
}

// GetByReceipt retrieves a message by its receipt identifier.
func (s *Store) GetByReceipt(ctx context.Context, receiptID string) (models.ContactMessage, error) {
	var msg models.ContactMessage
	err := s.c.FindOne(ctx, bson.M{"receipt_id": receiptID}).Decode(&msg)
	return msg, err
}

// ListRecent returns up to limit messages, newest first.
func (s *Store) ListRecent(ctx context.Context, limit int64) ([]models.ContactMessage, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ContactMessage
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
