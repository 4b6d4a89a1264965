package timebucket

import (
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "midday utc",
			in:   time.Date(2026, 8, 28, 12, 30, 0, 0, time.UTC),
			want: "2026-08-28",
		},
		{
			name: "start of day",
			in:   time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
			want: "2026-08-28",
		},
		{
			name: "end of day",
			in:   time.Date(2026, 8, 28, 23, 59, 59, 0, time.UTC),
			want: "2026-08-28",
		},
		{
			name: "non-utc instant normalized to utc day",
			in:   time.Date(2026, 8, 28, 22, 0, 0, 0, time.FixedZone("UTC-5", -5*3600)),
			want: "2026-08-29",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DayKey(tc.in); got != tc.want {
				t.Errorf("DayKey(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestDayKeySameDayInstantsMatch(t *testing.T) {
	a := time.Date(2026, 2, 1, 0, 0, 1, 0, time.UTC)
	b := time.Date(2026, 2, 1, 23, 59, 0, 0, time.UTC)
	if DayKey(a) != DayKey(b) {
		t.Errorf("keys differ for same UTC day: %q vs %q", DayKey(a), DayKey(b))
	}
}

func TestLast7DayKeys(t *testing.T) {
	ref := time.Date(2026, 8, 28, 15, 4, 5, 0, time.UTC)
	keys := Last7DayKeys(ref)

	if len(keys) != 7 {
		t.Fatalf("got %d keys, want 7", len(keys))
	}
	if keys[6] != "2026-08-28" {
		t.Errorf("last key = %q, want reference day", keys[6])
	}
	if keys[0] != "2026-08-22" {
		t.Errorf("first key = %q, want %q", keys[0], "2026-08-22")
	}

	// Keys must be distinct and chronologically ordered.
	seen := make(map[string]bool, 7)
	for i, k := range keys {
		if seen[k] {
			t.Errorf("duplicate key %q", k)
		}
		seen[k] = true
		if i > 0 && keys[i-1] >= k {
			t.Errorf("keys out of order: %q >= %q", keys[i-1], k)
		}
	}
}

func TestLast7DayKeysCrossesMonthBoundary(t *testing.T) {
	ref := time.Date(2026, 3, 2, 1, 0, 0, 0, time.UTC)
	keys := Last7DayKeys(ref)
	want := []string{"2026-02-24", "2026-02-25", "2026-02-26", "2026-02-27", "2026-02-28", "2026-03-01", "2026-03-02"}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestDayLabel(t *testing.T) {
	// 2026-08-28 is a Friday.
	if got := DayLabel("2026-08-28"); got != "Fri" {
		t.Errorf("DayLabel = %q, want %q", got, "Fri")
	}
	// Unparseable keys pass through rather than rendering blank.
	if got := DayLabel("garbage"); got != "garbage" {
		t.Errorf("DayLabel(garbage) = %q, want passthrough", got)
	}
}

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		name     string
		ref      time.Time
		wantCur  time.Time
		wantPrev time.Time
	}{
		{
			name:     "mid month",
			ref:      time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC),
			wantCur:  time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			wantPrev: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "january rolls back a year",
			ref:      time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
			wantCur:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			wantPrev: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "first instant of month",
			ref:      time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
			wantCur:  time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
			wantPrev: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cur, prev := MonthBounds(tc.ref)
			if !cur.Equal(tc.wantCur) {
				t.Errorf("curStart = %v, want %v", cur, tc.wantCur)
			}
			if !prev.Equal(tc.wantPrev) {
				t.Errorf("prevStart = %v, want %v", prev, tc.wantPrev)
			}
		})
	}
}
