// Package sanitize cleans untrusted form input before it is stored.
//
// Two policies cover the two kinds of fields the contact form accepts:
// Text strips every tag for single-line fields (names, subjects), and
// Message keeps the minimal inline formatting that pasted rich text tends
// to carry while removing everything executable.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strict = bluemonday.StrictPolicy()
	ugc    = bluemonday.UGCPolicy()
)

// Text strips all markup from s and unescapes entities, returning plain
// text suitable for storage and later re-escaping at render time.
func Text(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// Message sanitizes a free-form message body, allowing benign inline
// markup but removing scripts, event handlers, and javascript: URLs.
func Message(s string) string {
	return strings.TrimSpace(ugc.Sanitize(s))
}
