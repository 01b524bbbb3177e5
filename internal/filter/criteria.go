package filter

// Criteria is everything a file must satisfy to count as matched: the
// name query plus the size and modification-time bounds. Built once per
// run from parsed literals, then read-only during the walk.
type Criteria struct {
	Names Query
	Sizes Range[float64] // bytes
	Dates Range[int64]   // epoch seconds
}

// Match evaluates one file against all three filters.
func (c Criteria) Match(name string, size, mtime int64) bool {
	return c.Names.Match(name) &&
		c.Sizes.Contains(float64(size)) &&
		c.Dates.Contains(mtime)
}
