package parse

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// prefixes are the decimal scale letters; index+1 is the power applied
// to the base (1000, or 1024 when the literal carries a trailing 'i').
var prefixes = [...]rune{'K', 'M', 'G', 'T', 'P'}

// Size parses a human size literal into a byte count.
//
// Digits and at most one decimal point form the number; spaces and
// underscores inside it are ignored so "1_500_000" reads naturally. The
// first other rune is matched case-insensitively against the prefix
// table, and exactly one rune after it is checked for the binary marker
// 'i'. Whether the multiplier is 1000 or 1024 per step is a property of
// the literal alone, independent of any display scale setting.
func Size(s string) (float64, error) {
	var number strings.Builder
	scale := 0
	binary := false

scan:
	for _, ch := range s {
		if scale > 0 {
			// Scale is fixed; only a binary marker may follow.
			binary = ch == 'i'
			break
		}
		switch {
		case ch == ' ' || ch == '_':
		case ch >= '0' && ch <= '9' || ch == '.':
			number.WriteRune(ch)
		default:
			up := unicode.ToUpper(ch)
			for i, p := range prefixes {
				if up == p {
					scale = i + 1
					continue scan
				}
			}
			return 0, &Error{Kind: KindSize, Token: string(up), Input: s}
		}
	}

	value, err := strconv.ParseFloat(number.String(), 64)
	if err != nil {
		return 0, &Error{Kind: KindNumber, Token: number.String(), Input: s}
	}

	base := 1000.0
	if binary {
		base = 1024.0
	}
	return value * math.Pow(base, float64(scale)), nil
}
