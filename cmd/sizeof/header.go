package main

import (
	"cmp"
	"fmt"
	"strings"
	"time"

	"github.com/tuoppis/sizeof/internal/filter"
	"github.com/tuoppis/sizeof/internal/format"
)

// describeSearch renders the query and limits for the header line, e.g.
// "((*.txt or *.md) and data*), SIZE ≥ 1K". An unconstrained query
// renders as "*".
func describeSearch(orAny, andAll, notAny, notAll []string,
	sizes filter.Range[float64], dates filter.Range[int64], scale int, now time.Time) string {
	expr := parenGroup([]string{
		parenGroup(orAny, " or ", ""),
		parenGroup(andAll, " and ", ""),
		parenGroup(notAny, " or ", "not "),
		parenGroup(notAll, " and ", "not "),
	}, " and ", "")
	if expr == "" {
		expr = "*"
	}

	if clause := limitClause(sizes, "SIZE", func(v float64) string {
		return strings.TrimSpace(format.Size(v, scale))
	}); clause != "" {
		expr += ", " + clause
	}
	if clause := limitClause(dates, "DATE", func(v int64) string {
		return format.Date(time.Unix(v, 0).In(now.Location()), now)
	}); clause != "" {
		expr += ", " + clause
	}
	return expr
}

// parenGroup joins the non-empty terms, parenthesizing when more than
// one remains; a single term renders bare, after the prefix.
func parenGroup(terms []string, joiner, prefix string) string {
	kept := make([]string, 0, len(terms))
	for _, term := range terms {
		if term != "" {
			kept = append(kept, term)
		}
	}
	switch len(kept) {
	case 0:
		return ""
	case 1:
		return prefix + kept[0]
	default:
		return prefix + "(" + strings.Join(kept, joiner) + ")"
	}
}

// limitClause renders a range bound, flipping to the excluded-band form
// when the bounds are inverted.
func limitClause[T cmp.Ordered](r filter.Range[T], name string, render func(T) string) string {
	switch {
	case r.Min == nil && r.Max == nil:
		return ""
	case r.Min == nil:
		return fmt.Sprintf("%s ≤ %s", name, render(*r.Max))
	case r.Max == nil:
		return fmt.Sprintf("%s ≥ %s", name, render(*r.Min))
	case *r.Min <= *r.Max:
		return fmt.Sprintf("%s ≤ %s ≤ %s", render(*r.Min), name, render(*r.Max))
	default:
		return fmt.Sprintf("not %s < %s < %s", render(*r.Max), name, render(*r.Min))
	}
}
