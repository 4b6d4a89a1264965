// internal/app/features/contact/handler_test.go
package contact_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/tourdash/internal/app/features/contact"
	"github.com/dalemusser/tourdash/internal/domain/models"
	"go.uber.org/zap"
)

type memStore struct {
	saved []models.ContactMessage
	err   error
}

func (m *memStore) Create(_ context.Context, msg models.ContactMessage) (models.ContactMessage, error) {
	if m.err != nil {
		return models.ContactMessage{}, m.err
	}
	m.saved = append(m.saved, msg)
	return msg, nil
}

type allowAll struct{}

func (allowAll) Allow(string) bool { return true }

type denyAll struct{}

func (denyAll) Allow(string) bool { return false }

func postJSON(t *testing.T, h *contact.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(http.MethodPost, "/api/contact", &buf)
	req.RemoteAddr = "203.0.113.9:4242"
	rec := httptest.NewRecorder()
	h.ServeSubmit(rec, req)
	return rec
}

func TestSubmitAccepted(t *testing.T) {
	store := &memStore{}
	h := contact.NewHandler(store, allowAll{}, zap.NewNop())

	rec := postJSON(t, h, map[string]string{
		"name":    "Ada Lovelace",
		"email":   "ada@example.com",
		"message": "When does the coastal tour run?",
	})

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusAccepted, rec.Body.String())
	}
	var resp struct {
		ReceiptID string `json:"receiptId"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ReceiptID == "" {
		t.Fatal("expected a receipt id")
	}
	if len(store.saved) != 1 {
		t.Fatalf("stored %d messages, want 1", len(store.saved))
	}
	if store.saved[0].ReceiptID != resp.ReceiptID {
		t.Errorf("stored receipt %q does not match response %q", store.saved[0].ReceiptID, resp.ReceiptID)
	}
	if store.saved[0].IP != "203.0.113.9" {
		t.Errorf("stored IP = %q, want 203.0.113.9", store.saved[0].IP)
	}
}

func TestSubmitRateLimited(t *testing.T) {
	store := &memStore{}
	h := contact.NewHandler(store, denyAll{}, zap.NewNop())

	rec := postJSON(t, h, map[string]string{
		"name":    "Ada",
		"email":   "ada@example.com",
		"message": "hello",
	})

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusTooManyRequests)
	}
	if len(store.saved) != 0 {
		t.Fatal("rate-limited submission must not reach the store")
	}
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{"malformed json", "{not json"},
		{"missing name", map[string]string{"email": "a@b.com", "message": "hi"}},
		{"missing email", map[string]string{"name": "Ada", "message": "hi"}},
		{"bad email", map[string]string{"name": "Ada", "email": "not-an-email", "message": "hi"}},
		{"missing message", map[string]string{"name": "Ada", "email": "a@b.com"}},
		{"markup-only name", map[string]string{"name": "<script>x()</script>", "email": "a@b.com", "message": "hi"}},
		{"oversize message", map[string]string{"name": "Ada", "email": "a@b.com", "message": strings.Repeat("x", 5001)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := &memStore{}
			h := contact.NewHandler(store, allowAll{}, zap.NewNop())
			rec := postJSON(t, h, tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
			if len(store.saved) != 0 {
				t.Fatal("invalid submission must not reach the store")
			}
		})
	}
}

func TestSubmitSanitizesFields(t *testing.T) {
	store := &memStore{}
	h := contact.NewHandler(store, allowAll{}, zap.NewNop())

	rec := postJSON(t, h, map[string]string{
		"name":    "Ada <b>Lovelace</b>",
		"email":   "ada@example.com",
		"message": `Great trip! <script>steal()</script><b>Thanks</b>`,
	})

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusAccepted)
	}
	got := store.saved[0]
	if got.Name != "Ada Lovelace" {
		t.Errorf("name = %q, want markup stripped", got.Name)
	}
	if strings.Contains(got.Message, "<script>") {
		t.Errorf("message kept script tag: %q", got.Message)
	}
	if !strings.Contains(got.Message, "<b>Thanks</b>") {
		t.Errorf("message lost inline formatting: %q", got.Message)
	}
}

func TestSubmitStoreFailure(t *testing.T) {
	store := &memStore{err: errors.New("mongo down")}
	h := contact.NewHandler(store, allowAll{}, zap.NewNop())

	rec := postJSON(t, h, map[string]string{
		"name":    "Ada",
		"email":   "ada@example.com",
		"message": "hello",
	})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}
