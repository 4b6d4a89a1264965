package sanitize_test

import (
	"strings"
	"testing"

	"github.com/dalemusser/tourdash/internal/app/system/sanitize"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "plain text unchanged", in: "Jane Doe", want: "Jane Doe"},
		{name: "tags stripped", in: "<b>Jane</b> Doe", want: "Jane Doe"},
		{name: "script stripped", in: "Jane<script>alert('x')</script>", want: "Jane"},
		{name: "entities unescaped", in: "Tours &amp; Travel", want: "Tours & Travel"},
		{name: "whitespace trimmed", in: "  Jane  ", want: "Jane"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := sanitize.Text(tc.in); got != tc.want {
				t.Errorf("Text(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestMessageRemovesScript(t *testing.T) {
	got := sanitize.Message("<p>Hello</p><script>alert('xss')</script>")
	if strings.Contains(got, "script") {
		t.Errorf("script survived sanitization: %q", got)
	}
	if !strings.Contains(got, "Hello") {
		t.Errorf("benign content lost: %q", got)
	}
}

func TestMessageRemovesEventHandlers(t *testing.T) {
	got := sanitize.Message(`<img src="x" onerror="alert('xss')">`)
	if strings.Contains(got, "onerror") {
		t.Errorf("onerror survived sanitization: %q", got)
	}
}

func TestMessageKeepsInlineFormatting(t *testing.T) {
	in := "<p><strong>Please</strong> call me back</p>"
	if got := sanitize.Message(in); got != in {
		t.Errorf("Message(%q) = %q, want unchanged", in, got)
	}
}

func TestMessageRemovesJavascriptHref(t *testing.T) {
	got := sanitize.Message(`<a href="javascript:alert('xss')">Click</a>`)
	if strings.Contains(got, "javascript:") {
		t.Errorf("javascript href survived: %q", got)
	}
}
