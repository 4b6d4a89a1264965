// internal/app/features/dashboard/timestamp.go
package dashboard

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The collections the dashboard reads were written by three generations of
// clients, so a "timestamp" field can be any of:
//
//   - an ISO-8601 / RFC 3339 string,
//   - an epoch-seconds wrapper document ({"_seconds": N} or {"seconds": N}),
//   - a store-native timestamp (BSON datetime, BSON timestamp, time.Time,
//     or a bare epoch number).
//
// parseInstant is the single normalization point for all of them. Anything
// it cannot interpret becomes the caller's fallback instant; aggregation
// never drops or aborts on a bad timestamp.

// stringLayouts are tried in order for string-encoded timestamps.
var stringLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseInstant normalizes v to a UTC instant, returning fallback when v is
// missing or unparseable.
func parseInstant(v any, fallback time.Time) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case primitive.DateTime:
		return t.Time().UTC()
	case primitive.Timestamp:
		return time.Unix(int64(t.T), 0).UTC()
	case string:
		for _, layout := range stringLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed.UTC()
			}
		}
	case bson.M:
		if sec, ok := wrapperSeconds(t); ok {
			return time.Unix(sec, 0).UTC()
		}
	case map[string]any:
		if sec, ok := wrapperSeconds(t); ok {
			return time.Unix(sec, 0).UTC()
		}
	case bson.D:
		if sec, ok := wrapperSeconds(t.Map()); ok {
			return time.Unix(sec, 0).UTC()
		}
	case int64:
		return time.Unix(t, 0).UTC()
	case int32:
		return time.Unix(int64(t), 0).UTC()
	case float64:
		return time.Unix(int64(t), 0).UTC()
	}
	return fallback.UTC()
}

// wrapperSeconds extracts epoch seconds from a {"_seconds": N} style
// wrapper document.
func wrapperSeconds(m map[string]any) (int64, bool) {
	for _, key := range []string{"_seconds", "seconds"} {
		if raw, ok := m[key]; ok {
			if sec, ok := asFloat(raw); ok {
				return int64(sec), true
			}
		}
	}
	return 0, false
}

// asFloat coerces the numeric encodings the driver can hand back for a
// number field. Absent or non-numeric values report ok=false so callers
// can apply their documented defaults.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case primitive.Decimal128:
		f, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// asString returns v as a string, or "" when it is absent or not a string.
func asString(v any) string {
	s, _ := v.(string)
	return s
}
