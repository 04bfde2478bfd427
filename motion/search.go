package motion

import "github.com/iw2rmb/bidicaret/bidi"

// findFirst returns the first index walking from `from` toward `to` for
// which pred holds, assuming pred flips from false to true at most once
// along the way. It returns to when pred never holds before it.
func findFirst(pred func(int) bool, from, to int) int {
	dir := 1
	if from > to {
		dir = -1
	}
	for {
		if from == to {
			return from
		}
		mid := (from + to) / 2
		if dir < 0 {
			mid = (from + to + 1) / 2
		}
		if mid == from {
			if pred(mid) {
				return from
			}
			return to
		}
		if pred(mid) {
			to = mid
		} else {
			from = mid + dir
		}
	}
}

// partAt returns the position in order of the run a caret belongs to. A
// caret on a boundary goes to the non-empty run on its sticky side; empty
// runs are only returned when nothing else matches. -1 means no run touches
// index.
func partAt(order bidi.Order, index int, sticky Sticky) int {
	found, other := -1, -1
	for i, r := range order {
		if r.From < index && r.To > index {
			return i
		}
		if r.To == index {
			if !r.Empty() && sticky == StickyBefore {
				found = i
			} else {
				other = i
			}
		}
		if r.From == index {
			if !r.Empty() && sticky != StickyBefore {
				found = i
			} else {
				other = i
			}
		}
	}
	if found >= 0 {
		return found
	}
	return other
}
