// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trial allotment in minutes. Every new account starts with this balance;
// segmentation thresholds below are derived from it.
const TrialMinutes = 5

// User represents a customer account.
//
// MinutesBalance drives the engagement segments shown on the dashboard:
// premium (> TrialMinutes), unused trial (== TrialMinutes), and active
// trial (0 < balance < 3). A document without the field behaves as 0.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email          string             `bson:"email" json:"email"`
	FullName       string             `bson:"full_name,omitempty" json:"full_name,omitempty"`
	MinutesBalance float64            `bson:"minutes_balance,omitempty" json:"minutes_balance"`
	DeviceType     string             `bson:"device_type,omitempty" json:"device_type,omitempty"`

	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	LastLoginAt *time.Time `bson:"last_login_at,omitempty" json:"last_login_at,omitempty"`
}
