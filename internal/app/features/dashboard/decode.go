// internal/app/features/dashboard/decode.go
package dashboard

import (
	"time"

	"github.com/dalemusser/tourdash/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
)

// The source collections carry mixed field encodings, so the documents are
// read as raw bson and decoded here instead of through driver struct
// unmarshalling. These constructors are the only place a raw document
// becomes a typed model; the business rules (Paid, Revenue, RevenueDate,
// the balance segments) live on the models themselves.

// userFromDoc decodes a user document. A missing minutes_balance behaves
// as 0, and a missing or unparseable last login is treated as never logged
// in.
func userFromDoc(doc bson.M) models.User {
	u := models.User{
		Email:      asString(doc["email"]),
		FullName:   asString(doc["full_name"]),
		DeviceType: asString(doc["device_type"]),
		CreatedAt:  parseInstant(doc["created_at"], time.Time{}),
	}
	u.MinutesBalance, _ = asFloat(doc["minutes_balance"])
	if raw := doc["last_login_at"]; raw != nil {
		if at := parseInstant(raw, time.Time{}); !at.IsZero() {
			u.LastLoginAt = &at
		}
	}
	return u
}

// paymentFromDoc decodes a payment document. A completed_at that is
// missing or unparseable leaves CompletedAt nil, so RevenueDate falls back
// to the creation time; a missing creation time is attributed to ref.
func paymentFromDoc(doc bson.M, ref time.Time) models.Payment {
	p := models.Payment{
		Status:    asString(doc["status"]),
		CreatedAt: parseInstant(doc["created_at"], ref),
	}
	p.Amount, _ = asFloat(doc["amount"])
	p.TotalPayment, _ = asFloat(doc["total_payment"])
	if raw := doc["completed_at"]; raw != nil {
		if at := parseInstant(raw, time.Time{}); !at.IsZero() {
			p.CompletedAt = &at
		}
	}
	return p
}

// statusFromDoc decodes a system_status document. A missing updated_at
// sorts as the zero time, so any dated document wins over it.
func statusFromDoc(doc bson.M) models.SystemStatus {
	return models.SystemStatus{
		Status:    asString(doc["status"]),
		Message:   asString(doc["message"]),
		UpdatedAt: parseInstant(doc["updated_at"], time.Time{}),
	}
}
