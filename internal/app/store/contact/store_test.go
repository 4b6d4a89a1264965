// internal/app/store/contact/store_test.go
package contact_test

import (
	"testing"

	"github.com/dalemusser/tourdash/internal/app/store/contact"
	"github.com/dalemusser/tourdash/internal/domain/models"
	"github.com/dalemusser/tourdash/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestCreateAndGetByReceipt(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := contact.New(db)
	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes failed: %v", err)
	}

	created, err := store.Create(ctx, models.ContactMessage{
		ReceiptID: "receipt-1",
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Message:   "When does the coastal tour run?",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID.IsZero() {
		t.Error("Create should fill the document ID")
	}
	if created.CreatedAt.IsZero() {
		t.Error("Create should fill CreatedAt")
	}

	got, err := store.GetByReceipt(ctx, "receipt-1")
	if err != nil {
		t.Fatalf("GetByReceipt failed: %v", err)
	}
	if got.Email != "ada@example.com" {
		t.Errorf("email: got %q, want %q", got.Email, "ada@example.com")
	}
}

func TestGetByReceipt_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := contact.New(db)

	_, err := store.GetByReceipt(ctx, "no-such-receipt")
	if err != mongo.ErrNoDocuments {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}

func TestDuplicateReceiptRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := contact.New(db)
	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes failed: %v", err)
	}

	msg := models.ContactMessage{
		ReceiptID: "receipt-dup",
		Name:      "Ada",
		Email:     "ada@example.com",
		Message:   "first",
	}
	if _, err := store.Create(ctx, msg); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	if _, err := store.Create(ctx, msg); err == nil {
		t.Error("expected duplicate receipt_id to be rejected by the unique index")
	}
}

func TestListRecent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := contact.New(db)

	for _, r := range []string{"r1", "r2", "r3"} {
		_, err := store.Create(ctx, models.ContactMessage{
			ReceiptID: r,
			Name:      "Ada",
			Email:     "ada@example.com",
			Message:   "msg " + r,
		})
		if err != nil {
			t.Fatalf("Create %s failed: %v", r, err)
		}
	}

	got, err := store.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListRecent returned %d messages, want 2", len(got))
	}
	// Newest first
	if got[0].ReceiptID != "r3" {
		t.Errorf("first message receipt: got %q, want %q", got[0].ReceiptID, "r3")
	}
}
