// Package filter decides whether a file counts as matched: a boolean
// combination of glob pattern groups over the bare name, plus inclusive
// size and modification-time bounds.
package filter

import "cmp"

// Range is an optional inclusive bound pair over an ordered type. A nil
// side is unbounded. When both sides are set and Min > Max the range is
// inverted: it matches everything at or outside the open (Max, Min)
// band, which lets a caller say "not between" without a separate
// negation flag. The boundary values themselves always match.
type Range[T cmp.Ordered] struct {
	Min *T
	Max *T
}

// Contains reports whether v satisfies the bound.
func (r Range[T]) Contains(v T) bool {
	switch {
	case r.Min == nil && r.Max == nil:
		return true
	case r.Min == nil:
		return v <= *r.Max
	case r.Max == nil:
		return v >= *r.Min
	case *r.Min <= *r.Max:
		return *r.Min <= v && v <= *r.Max
	default:
		// Inverted bounds exclude only the strict inside of the band.
		return !(*r.Max < v && v < *r.Min)
	}
}

// Bounded reports whether either side of the range is set.
func (r Range[T]) Bounded() bool { return r.Min != nil || r.Max != nil }
