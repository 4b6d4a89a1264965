// internal/domain/models/systemstatus.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SystemStatus is a last-known-value record written by the ops tooling,
// not a live health probe. The dashboard shows the most recent document
// and falls back to "operational" when the collection is empty.
type SystemStatus struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Status    string             `bson:"status" json:"status"`
	Message   string             `bson:"message,omitempty" json:"message,omitempty"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
