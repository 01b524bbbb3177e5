package format

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/tuoppis/sizeof/internal/parse"
)

// =============================================================================
// Section 4.1: Size Rendering Tests
// =============================================================================

// TestSizeDecimal tests SI-prefix rendering at scale 1000.
func TestSizeDecimal(t *testing.T) {
	tests := []struct {
		size float64
		want string
	}{
		{0, "    0 "},
		{999, "  999 "},
		{1000, "    1K"},
		{1500, "  1.5K"},
		{1234567, " 1.23M"},
		{2.5e9, "  2.5G"},
		{1e12, "    1T"},
		{1e15, "    1P"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Size(tt.size, 1000); got != tt.want {
				t.Errorf("Size(%v, 1000) = %q, want %q", tt.size, got, tt.want)
			}
		})
	}
}

// TestSizeBinary tests IEC-prefix rendering at scale 1024.
func TestSizeBinary(t *testing.T) {
	tests := []struct {
		size float64
		want string
	}{
		{0, "    0  "},
		// 1023 rounds to three significant digits before rendering
		{1023, " 1020  "},
		{1024, "    1Ki"},
		{2048, "    2Ki"},
		{1536, "  1.5Ki"},
		{1048576, "    1Mi"},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.want), func(t *testing.T) {
			if got := Size(tt.size, 1024); got != tt.want {
				t.Errorf("Size(%v, 1024) = %q, want %q", tt.size, got, tt.want)
			}
		})
	}
}

// TestSizeRoundTrip tests that a rendered size parses back to the
// original value within display rounding (three significant digits).
func TestSizeRoundTrip(t *testing.T) {
	values := []float64{1, 999, 1500, 2048, 123456, 2.5e9, 7.25e12}

	for _, scale := range []int{1000, 1024} {
		for _, v := range values {
			rendered := strings.TrimSpace(Size(v, scale))
			got, err := parse.Size(rendered)
			if err != nil {
				t.Fatalf("parse.Size(%q) error: %v", rendered, err)
			}
			// Three significant digits keep relative error under 0.5%.
			if math.Abs(got-v) > v*0.005 {
				t.Errorf("round trip %v -> %q -> %v (scale %d)", v, rendered, got, scale)
			}
		}
	}
}

// =============================================================================
// Section 4.2: Date Rendering Tests
// =============================================================================

// TestDateElision tests that components equal to the reference time are
// elided from the front.
func TestDateElision(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 30, 45, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"same instant", now, ""},
		{"same day", time.Date(2026, time.March, 15, 10, 20, 30, 0, time.UTC), "10:20:30"},
		{"same month", time.Date(2026, time.March, 14, 12, 30, 45, 0, time.UTC), "--14T12:30:45"},
		{"same year", time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC), "-01-02T00:00:00"},
		{"other year", time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC), "2025-12-31T23:59:59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Date(tt.t, now); got != tt.want {
				t.Errorf("Date(%v) = %q, want %q", tt.t, got, tt.want)
			}
		})
	}
}

// TestDateSameClock tests a different day with an identical clock: the
// date part forces the full clock to render anyway.
func TestDateSameClock(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 30, 45, 0, time.UTC)
	then := time.Date(2026, time.February, 15, 12, 30, 45, 0, time.UTC)
	if got, want := Date(then, now), "-02-15T12:30:45"; got != want {
		t.Errorf("Date = %q, want %q", got, want)
	}
}
