// internal/app/features/contact/handler.go
package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/mail"
	"unicode/utf8"

	"github.com/dalemusser/tourdash/internal/app/system/limits"
	"github.com/dalemusser/tourdash/internal/app/system/ratelimit"
	"github.com/dalemusser/tourdash/internal/app/system/sanitize"
	"github.com/dalemusser/tourdash/internal/app/system/timeouts"
	"github.com/dalemusser/tourdash/internal/domain/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Field length limits for submissions.
const (
	maxNameLen    = 200
	maxEmailLen   = 254
	maxMessageLen = 5000
)

// MessageStore persists accepted submissions.
type MessageStore interface {
	Create(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error)
}

// Limiter is the per-key rate limit check the handler depends on. The
// in-memory sliding window satisfies it today; a shared store could
// replace it without touching this package.
type Limiter interface {
	Allow(key string) bool
}

// Handler accepts contact form submissions.
type Handler struct {
	Store MessageStore
	Limit Limiter
	Log   *zap.Logger
}

// NewHandler constructs a contact Handler.
func NewHandler(store MessageStore, limiter Limiter, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Limit: limiter, Log: logger}
}

// submission is the expected request body.
type submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// receipt is the success response body.
type receipt struct {
	ReceiptID string `json:"receiptId"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ServeSubmit handles POST /api/contact.
//
// Submissions are rate limited per client IP, validated, sanitized, and
// stored. The caller gets 202 with a receipt id, 400 on invalid input, or
// 429 when over the limit.
func (h *Handler) ServeSubmit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	ip := ratelimit.ClientIP(r)
	if !h.Limit.Allow(ip) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: "too many requests, please try again later"})
		return
	}

	var sub submission
	body := http.MaxBytesReader(w, r.Body, limits.MaxContactBodySize)
	if err := json.NewDecoder(body).Decode(&sub); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: "invalid request body"})
		return
	}

	sub.Name = sanitize.Text(sub.Name)
	sub.Email = sanitize.Text(sub.Email)
	sub.Message = sanitize.Message(sub.Message)

	if msg := validate(sub); msg != "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
		return
	}

	stored, err := h.Store.Create(ctx, models.ContactMessage{
		ReceiptID: uuid.NewString(),
		Name:      sub.Name,
		Email:     sub.Email,
		Message:   sub.Message,
		IP:        ip,
	})
	if err != nil {
		h.Log.Error("contact: store message failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: "could not store message"})
		return
	}

	h.Log.Info("contact message accepted",
		zap.String("receipt_id", stored.ReceiptID),
		zap.String("ip", ip))

	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(receipt{ReceiptID: stored.ReceiptID})
}

// validate returns an error message for the submitter, or "" when the
// submission is acceptable. It runs after sanitization, so a field that
// was only markup comes through empty and is rejected here.
func validate(sub submission) string {
	switch {
	case sub.Name == "":
		return "name is required"
	case utf8.RuneCountInString(sub.Name) > maxNameLen:
		return "name is too long"
	case sub.Email == "":
		return "email is required"
	case len(sub.Email) > maxEmailLen:
		return "email is too long"
	case sub.Message == "":
		return "message is required"
	case utf8.RuneCountInString(sub.Message) > maxMessageLen:
		return "message is too long"
	}
	if _, err := mail.ParseAddress(sub.Email); err != nil {
		return "email is not valid"
	}
	return ""
}
