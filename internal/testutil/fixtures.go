package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for seeding test data.
//
// The analytics source collections are written by other clients, so the
// fixtures insert raw bson documents rather than typed models. Timestamp
// fields accept any value so tests can reproduce the encodings seen in
// production (time values, ISO strings, seconds wrappers).
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

func (f *Fixtures) insert(ctx context.Context, coll string, doc bson.M) {
	f.t.Helper()
	if _, err := f.db.Collection(coll).InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("failed to insert test %s document: %v", coll, err)
	}
}

// InsertSession seeds a session document. timestamp may be any of the
// encodings the aggregator accepts.
func (f *Fixtures) InsertSession(ctx context.Context, timestamp any) {
	f.t.Helper()
	f.insert(ctx, "sessions", bson.M{"timestamp": timestamp})
}

// InsertUser seeds a user document.
func (f *Fixtures) InsertUser(ctx context.Context, email string, minutesBalance int, deviceType string, createdAt any) {
	f.t.Helper()
	f.insert(ctx, "users", bson.M{
		"email":           email,
		"full_name":       "Test User",
		"minutes_balance": minutesBalance,
		"device_type":     deviceType,
		"created_at":      createdAt,
	})
}

// InsertUserWithLogin seeds a user document that also carries a last login
// timestamp.
func (f *Fixtures) InsertUserWithLogin(ctx context.Context, email string, createdAt, lastLoginAt any) {
	f.t.Helper()
	f.insert(ctx, "users", bson.M{
		"email":           email,
		"full_name":       "Test User",
		"minutes_balance": 5,
		"created_at":      createdAt,
		"last_login_at":   lastLoginAt,
	})
}

// InsertPayment seeds a payment document.
func (f *Fixtures) InsertPayment(ctx context.Context, status string, amount float64, completedAt any) {
	f.t.Helper()
	f.insert(ctx, "payments", bson.M{
		"status":       status,
		"amount":       amount,
		"completed_at": completedAt,
	})
}

// InsertResume seeds a resume document owned by email.
func (f *Fixtures) InsertResume(ctx context.Context, email string) {
	f.t.Helper()
	f.insert(ctx, "resumes", bson.M{
		"email":      email,
		"created_at": time.Now().UTC(),
	})
}

// InsertTestResult seeds a test result document.
func (f *Fixtures) InsertTestResult(ctx context.Context, email string, score int) {
	f.t.Helper()
	f.insert(ctx, "test_results", bson.M{
		"email":      email,
		"score":      score,
		"created_at": time.Now().UTC(),
	})
}

// InsertSystemStatus seeds a system status document.
func (f *Fixtures) InsertSystemStatus(ctx context.Context, status, message string, updatedAt any) {
	f.t.Helper()
	f.insert(ctx, "system_status", bson.M{
		"status":     status,
		"message":    message,
		"updated_at": updatedAt,
	})
}
