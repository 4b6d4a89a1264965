// internal/domain/models/pageview.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PageView is a per-slug view counter for marketing pages. Updates are
// best-effort $inc upserts; a lost increment is acceptable.
type PageView struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug      string             `bson:"slug" json:"slug"`
	Count     int64              `bson:"count" json:"count"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
