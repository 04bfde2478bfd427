package layout

import (
	"github.com/iw2rmb/bidicaret/bidi"
	"github.com/iw2rmb/bidicaret/motion"
)

var _ motion.RowMeasurer = (*Layout)(nil)

// VisualRow returns the rune indices of row in visual left-to-right order:
// each run is clipped to the row and right-to-left runs are reversed.
func (l *Layout) VisualRow(order bidi.Order, row int) []int {
	if row < 0 || row >= len(l.rows) {
		return nil
	}
	seg := l.rows[row]
	out := make([]int, 0, seg.End-seg.Start)
	if len(order) == 0 {
		for i := seg.Start; i < seg.End; i++ {
			out = append(out, i)
		}
		return out
	}

	for _, r := range order {
		from, to := maxInt(r.From, seg.Start), minInt(r.To, seg.End)
		if from >= to {
			continue
		}
		if r.RTL() {
			for i := to - 1; i >= from; i-- {
				out = append(out, i)
			}
			continue
		}
		for i := from; i < to; i++ {
			out = append(out, i)
		}
	}
	return out
}
