package motion

// rowCache memoizes row lookups for one motion call.
type rowCache struct {
	rows RowMeasurer
	n    int
	memo map[int]int
}

func newRowCache(rows RowMeasurer, n int) *rowCache {
	return &rowCache{rows: rows, n: n}
}

// row returns the row of the character at index, clamped into the line.
// Unwrapped and empty lines are a single row 0.
func (c *rowCache) row(index int) int {
	if c.rows == nil || c.n == 0 {
		return 0
	}
	index = clampInt(index, 0, c.n-1)
	if v, ok := c.memo[index]; ok {
		return v
	}
	if c.memo == nil {
		c.memo = make(map[int]int)
	}
	v := c.rows.Row(index)
	c.memo[index] = v
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
