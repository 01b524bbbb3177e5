// Package parse converts human-entered size and date literals into the
// numeric forms the query engine works with.
//
// Two grammars live here. Size literals are a number with an optional
// decimal prefix letter (K, M, G, T, P) and an optional trailing 'i'
// switching the multiplier from 1000 to 1024 per step: "1.5K", "2Ki",
// "1_000_000". Date literals are either a calendar date ("2024-03-01",
// "2024-03-01T12:30") or a duration before a reference instant:
// "1week_5min", "2d12h", "90".
//
// Both parsers report failures as *Error carrying the offending token,
// so callers can tell a bad literal apart from other failures and attach
// their own usage help.
package parse

import "fmt"

// Kind classifies what part of a literal failed to parse.
type Kind int

const (
	// KindSize is an unknown prefix letter in a size literal.
	KindSize Kind = iota
	// KindNumber is a malformed numeric part.
	KindNumber
	// KindUnit is an unrecognized duration unit.
	KindUnit
)

// Error describes a literal that failed to parse.
type Error struct {
	Kind  Kind
	Token string // offending token
	Input string // full literal
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindSize:
		return fmt.Sprintf("unknown size prefix %q in %q", e.Token, e.Input)
	case KindUnit:
		return fmt.Sprintf("unknown time unit %q in %q", e.Token, e.Input)
	default:
		return fmt.Sprintf("bad number %q in %q", e.Token, e.Input)
	}
}
