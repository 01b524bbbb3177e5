package parse

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts are the calendar forms tried before falling back to the
// duration grammar.
var dateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Date resolves a date literal to an absolute instant.
//
// Calendar forms are tried first ("2024-03-01", "2024-03-01T12:30:00",
// interpreted in now's location). Anything else is read as a duration
// before now: a sequence of [number]unit tokens ("1week_5min", "2d12h"),
// where an omitted number means 1, a bare trailing number means seconds,
// and repeated units accumulate. Units are y/year, M/month, w/week,
// d/day, h/hour, m/min/minute, s/sec/second, each accepting a plural
// 's'. Note that case decides between 'M' (month) and 'm' (minute).
//
// Day-and-smaller units subtract as a fixed delta. Months and years use
// calendar arithmetic instead: total months reduce modulo 12 with carry
// into years, then the reference month steps back with a year borrow, so
// a month step never skips or double-counts days across months of
// different lengths.
func Date(s string, now time.Time) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
			return t, nil
		}
	}

	var units durationUnits
	for _, tok := range tokenizeDuration(s) {
		n := 1
		if tok.num != "" {
			v, err := strconv.Atoi(tok.num)
			if err != nil {
				return time.Time{}, &Error{Kind: KindNumber, Token: tok.num, Input: s}
			}
			n = v
		}
		if !units.add(strings.TrimSuffix(tok.unit, "s"), n) {
			return time.Time{}, &Error{Kind: KindUnit, Token: tok.unit, Input: s}
		}
	}
	return units.before(now), nil
}

// durToken is one [number]unit element of a duration expression.
type durToken struct {
	num  string
	unit string
}

// tokenizeDuration splits a duration expression into tokens. Separators
// (space, underscore) end a token only once unit text has started, so
// digit runs like "1 000" join into a single number. A digit after unit
// text also ends the token, letting "1week5min" read without separators.
// A trailing bare number becomes a token with an empty unit (seconds).
func tokenizeDuration(s string) []durToken {
	var toks []durToken
	var num, unit strings.Builder

	cut := func() {
		toks = append(toks, durToken{num: num.String(), unit: unit.String()})
		num.Reset()
		unit.Reset()
	}

	for _, ch := range s {
		switch {
		case ch == ' ' || ch == '_':
			if unit.Len() > 0 {
				cut()
			}
		case ch >= '0' && ch <= '9':
			if unit.Len() > 0 {
				cut()
			}
			num.WriteRune(ch)
		default:
			unit.WriteRune(ch)
		}
	}
	if unit.Len() > 0 || num.Len() > 0 {
		cut()
	}
	return toks
}

// durationUnits accumulates parsed duration tokens by unit.
type durationUnits struct {
	years, months, weeks, days int
	hours, minutes, seconds    int
}

// add folds one token into the accumulator. The unit arrives with any
// plural 's' already stripped, which turns a lone "s" into the empty
// string (seconds). Reports false for an unknown unit.
func (u *durationUnits) add(unit string, n int) bool {
	switch unit {
	case "y", "year":
		u.years += n
	case "M", "month":
		u.months += n
	case "w", "week":
		u.weeks += n
	case "d", "day":
		u.days += n
	case "h", "hour":
		u.hours += n
	case "m", "min", "minute":
		u.minutes += n
	case "", "sec", "second":
		u.seconds += n
	default:
		return false
	}
	return true
}

// before resolves the accumulated units to the instant that far before
// ref. Months reduce modulo 12 with carry into years, then the reference
// month decrements with a year borrow. time.Date normalizes a day the
// shorter target month does not have (Mar 31 one month back is Feb 31,
// which becomes Mar 3).
func (u *durationUnits) before(ref time.Time) time.Time {
	years := u.years + u.months/12
	month := int(ref.Month()) - u.months%12
	if month <= 0 {
		years++
		month += 12
	}
	base := time.Date(ref.Year()-years, time.Month(month), ref.Day(),
		ref.Hour(), ref.Minute(), ref.Second(), ref.Nanosecond(), ref.Location())

	delta := time.Duration(u.days+7*u.weeks)*24*time.Hour +
		time.Duration(u.hours)*time.Hour +
		time.Duration(u.minutes)*time.Minute +
		time.Duration(u.seconds)*time.Second
	return base.Add(-delta)
}
