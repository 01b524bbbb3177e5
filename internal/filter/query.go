package filter

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// Query is a boolean combination of four glob pattern groups applied to
// a bare file name. The groups compose by conjunction:
//
//	(or₁ | or₂ | ...) & (and₁ & and₂ & ...) & !(not₁ | not₂ | ...) & !(na₁ & na₂ & ...)
//
// An empty group imposes no constraint: a positive group is vacuously
// true, a negated group has nothing to exclude. Nested groupings are not
// expressible; the four fixed groups cover the common cases.
//
// A Query is immutable once built.
type Query struct {
	orAny  []string
	andAll []string
	notAny []string
	notAll []string
	fold   bool
}

// NewQuery validates the pattern groups and builds a Query. When fold is
// set, matching is case-insensitive: patterns are stored lower-cased and
// names are lower-cased before matching. Malformed glob patterns are
// rejected here so the walk never sees one.
func NewQuery(orAny, andAll, notAny, notAll []string, fold bool) (Query, error) {
	q := Query{
		orAny:  normalize(orAny, fold),
		andAll: normalize(andAll, fold),
		notAny: normalize(notAny, fold),
		notAll: normalize(notAll, fold),
		fold:   fold,
	}
	for _, group := range [][]string{q.orAny, q.andAll, q.notAny, q.notAll} {
		for _, pattern := range group {
			if _, err := filepath.Match(pattern, ""); err != nil {
				return Query{}, fmt.Errorf("pattern %q: %w", pattern, err)
			}
		}
	}
	return q, nil
}

// normalize copies the patterns, lower-casing when folding, so the Query
// never aliases caller-owned slices.
func normalize(patterns []string, fold bool) []string {
	if !fold {
		return slices.Clone(patterns)
	}
	out := make([]string, len(patterns))
	for i, p := range patterns {
		out[i] = strings.ToLower(p)
	}
	return out
}

// Match reports whether name satisfies all four groups.
func (q Query) Match(name string) bool {
	if q.fold {
		name = strings.ToLower(name)
	}
	return matchAny(name, q.orAny, true) &&
		matchAll(name, q.andAll, true) &&
		!matchAny(name, q.notAny, false) &&
		!matchAll(name, q.notAll, false)
}

// matchAny reports whether any pattern matches name. Empty groups yield
// onEmpty: true for a positive group, false for a negated one.
func matchAny(name string, patterns []string, onEmpty bool) bool {
	if len(patterns) == 0 {
		return onEmpty
	}
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
	}
	return false
}

// matchAll reports whether every pattern matches name.
func matchAll(name string, patterns []string, onEmpty bool) bool {
	if len(patterns) == 0 {
		return onEmpty
	}
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, name); !ok {
			return false
		}
	}
	return true
}
