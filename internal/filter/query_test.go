package filter

import (
	"testing"
	"time"
)

// =============================================================================
// Section 3.2: Query Evaluation Tests
// =============================================================================

func mustQuery(t *testing.T, orAny, andAll, notAny, notAll []string, fold bool) Query {
	t.Helper()
	q, err := NewQuery(orAny, andAll, notAny, notAll, fold)
	if err != nil {
		t.Fatalf("NewQuery error: %v", err)
	}
	return q
}

// TestQueryTruthTable tests the documented four-group combination.
func TestQueryTruthTable(t *testing.T) {
	q := mustQuery(t,
		[]string{"*.txt", "*.md"}, // orAny
		[]string{"data*"},         // andAll
		[]string{"*tmp*"},         // notAny
		nil,                       // notAll
		false)

	tests := []struct {
		name string
		want bool
	}{
		{"data_report.txt", true},
		{"data_tmp.txt", false}, // excluded by notAny
		{"report.txt", false},   // fails andAll
		{"data_notes.md", true},
		{"data.bin", false}, // fails orAny
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := q.Match(tt.name); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

// TestQueryVacuousGroups tests the empty-group conventions: positive
// groups are vacuously true, negated groups exclude nothing.
func TestQueryVacuousGroups(t *testing.T) {
	q := mustQuery(t, nil, nil, nil, nil, false)
	for _, name := range []string{"anything", "at.all", ""} {
		if !q.Match(name) {
			t.Errorf("empty query should match %q", name)
		}
	}
}

// TestQueryNotAll tests that the not-all group rejects only names
// matching every one of its patterns.
func TestQueryNotAll(t *testing.T) {
	q := mustQuery(t, nil, nil, nil, []string{"*.go", "*_test*"}, false)

	tests := []struct {
		name string
		want bool
	}{
		{"walker_test.go", false}, // matches both, rejected
		{"walker.go", true},       // matches only one
		{"notes_test.txt", true},  // matches only one
		{"readme.md", true},       // matches neither
	}

	for _, tt := range tests {
		if got := q.Match(tt.name); got != tt.want {
			t.Errorf("Match(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// TestQueryCaseFold tests case-insensitive matching of both sides.
func TestQueryCaseFold(t *testing.T) {
	q := mustQuery(t, []string{"*.TXT"}, nil, nil, nil, true)
	if !q.Match("REPORT.txt") {
		t.Error("folded query should match REPORT.txt")
	}
	if !q.Match("report.TXT") {
		t.Error("folded query should match report.TXT")
	}

	strict := mustQuery(t, []string{"*.TXT"}, nil, nil, nil, false)
	if strict.Match("report.txt") {
		t.Error("unfolded query should not match report.txt")
	}
}

// TestNewQueryRejectsBadPattern tests up-front glob validation.
func TestNewQueryRejectsBadPattern(t *testing.T) {
	if _, err := NewQuery([]string{"*.txt", "[oops"}, nil, nil, nil, false); err == nil {
		t.Error("NewQuery should reject malformed pattern [oops")
	}
	if _, err := NewQuery(nil, nil, []string{"[oops"}, nil, false); err == nil {
		t.Error("NewQuery should reject malformed pattern in a negated group")
	}
}

// =============================================================================
// Section 3.3: Criteria Conjunction Tests
// =============================================================================

// TestCriteriaMatch tests that name, size, and date filters all have to
// pass.
func TestCriteriaMatch(t *testing.T) {
	mtime := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC).Unix()
	old := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()

	crit := Criteria{
		Names: mustQuery(t, []string{"*.log"}, nil, nil, nil, false),
		Sizes: Range[float64]{Min: ptr(100.0), Max: ptr(10000.0)},
		Dates: Range[int64]{Min: ptr(old)},
	}

	tests := []struct {
		name  string
		size  int64
		mtime int64
		want  bool
	}{
		{"app.log", 500, mtime, true},
		{"app.txt", 500, mtime, false},   // name
		{"app.log", 50, mtime, false},    // size below min
		{"app.log", 20000, mtime, false}, // size above max
		{"app.log", 500, old - 1, false}, // older than min date
		{"app.log", 100, mtime, true},    // size boundary inclusive
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := crit.Match(tt.name, tt.size, tt.mtime); got != tt.want {
				t.Errorf("Match(%q, %d, %d) = %v, want %v", tt.name, tt.size, tt.mtime, got, tt.want)
			}
		})
	}
}
