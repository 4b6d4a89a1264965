// internal/domain/models/payment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment statuses. Older documents written by the previous payment
// provider use "success" where the current one writes "completed"; both
// count as paid.
const (
	PaymentNew       = "new"
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentSuccess   = "success"
	PaymentExpired   = "expired"
)

// Payment is one order in the payments collection.
//
// Amount and TotalPayment are the same value under two field names: the
// current provider writes "amount", the previous one wrote
// "total_payment". Revenue() hides the difference.
type Payment struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID      string             `bson:"order_id" json:"order_id"`
	Status       string             `bson:"status" json:"status"`
	Amount       float64            `bson:"amount,omitempty" json:"amount,omitempty"`
	TotalPayment float64            `bson:"total_payment,omitempty" json:"total_payment,omitempty"`

	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	CompletedAt *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}

// Paid reports whether the payment contributes to revenue. Only completed
// and success statuses count; pending/new/expired never do.
func (p Payment) Paid() bool {
	return p.Status == PaymentCompleted || p.Status == PaymentSuccess
}

// Revenue returns the order value, preferring "amount" and falling back to
// the legacy "total_payment" field. A zero amount is treated the same as
// an absent one: the current provider never writes zero-value orders, so a
// zero here means the document predates the "amount" field and carries its
// value in "total_payment".
func (p Payment) Revenue() float64 {
	if p.Amount != 0 {
		return p.Amount
	}
	return p.TotalPayment
}

// RevenueDate returns the instant the payment is attributed to for monthly
// revenue bucketing: completion time when known, creation time otherwise.
func (p Payment) RevenueDate() time.Time {
	if p.CompletedAt != nil && !p.CompletedAt.IsZero() {
		return *p.CompletedAt
	}
	return p.CreatedAt
}
