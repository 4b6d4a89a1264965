// internal/app/system/limits/limits.go
package limits

// Request body size limits for the public endpoints.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxContactBodySize is the maximum size for contact form submissions.
	// The message field alone is capped well below this; the headroom covers
	// JSON framing and multi-byte text.
	MaxContactBodySize = 64 << 10 // 64 KB
)
