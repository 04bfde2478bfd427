package layout

import (
	graphemeutil "github.com/iw2rmb/bidicaret/internal/grapheme"
)

// Options configures Wrap. The zero value keeps the line on one row.
type Options struct {
	Mode WrapMode
	// Width is the row width in terminal cells; <= 0 disables wrapping.
	Width int
	// TabWidth defaults to 4.
	TabWidth int
}

// Segment is one visual row: the rune range [Start, End) and its width.
type Segment struct {
	Start int
	End   int
	Cells int
}

// Layout is a wrapped line.
type Layout struct {
	n     int
	rows  []Segment
	rowOf []int
}

type wrapUnit struct {
	start int // rune offsets
	end   int
	width int

	isWhitespace bool
	isPunct      bool
}

// Wrap splits text into rows. Grapheme clusters are never split across
// rows and every row holds at least one cluster.
func Wrap(text []rune, opts Options) *Layout {
	units := wrapUnits(text, opts.TabWidth)
	rows := wrapSegments(units, opts)

	l := &Layout{n: len(text), rows: rows, rowOf: make([]int, len(text))}
	for r, seg := range rows {
		for i := seg.Start; i < seg.End; i++ {
			l.rowOf[i] = r
		}
	}
	return l
}

// Len returns the number of runes in the wrapped line.
func (l *Layout) Len() int { return l.n }

// Rows returns the visual rows top to bottom.
func (l *Layout) Rows() []Segment { return l.rows }

// Row returns the row rune index renders on. Indices outside the line are
// clamped, so the line end shares the last character's row.
func (l *Layout) Row(index int) int {
	if l.n == 0 {
		return 0
	}
	return l.rowOf[clampInt(index, 0, l.n-1)]
}

func wrapUnits(text []rune, tabWidth int) []wrapUnit {
	if len(text) == 0 {
		return nil
	}

	clusters := graphemeutil.Split(string(text))
	units := make([]wrapUnit, 0, len(clusters))
	at, col := 0, 0
	for _, c := range clusters {
		n := len([]rune(c))
		w := cellWidth(c, col, tabWidth)
		col += w
		units = append(units, wrapUnit{
			start:        at,
			end:          at + n,
			width:        w,
			isWhitespace: graphemeutil.IsSpace(c),
			isPunct:      graphemeutil.IsPunct(c),
		})
		at += n
	}
	return units
}

func wrapSegments(units []wrapUnit, opts Options) []Segment {
	if len(units) == 0 {
		return []Segment{{}}
	}
	if opts.Width <= 0 || opts.Mode == WrapNone {
		return []Segment{segmentFromUnits(units, 0, len(units))}
	}

	segments := make([]Segment, 0, 1+len(units)/opts.Width)
	for start := 0; start < len(units); {
		used := 0
		overflow := start
		for overflow < len(units) {
			w := maxInt(units[overflow].width, 1)
			if used > 0 && used+w > opts.Width {
				break
			}
			used += w
			overflow++
		}

		end := overflow
		if opts.Mode == WrapWord && overflow < len(units) {
			if br, ok := findWordWrapBreak(units, start, overflow); ok {
				end = br
			} else {
				end = avoidLeadingPunct(units, start, overflow)
			}
		}
		if end <= start {
			end = minInt(start+1, len(units))
		}

		segments = append(segments, segmentFromUnits(units, start, end))
		start = end
	}
	return segments
}

func segmentFromUnits(units []wrapUnit, start, end int) Segment {
	cells := 0
	for _, u := range units[start:end] {
		cells += u.width
	}
	return Segment{Start: units[start].start, End: units[end-1].end, Cells: cells}
}

func findWordWrapBreak(units []wrapUnit, start, overflow int) (int, bool) {
	lastBreak := -1
	for i := start; i < overflow; {
		if !units[i].isWhitespace {
			i++
			continue
		}
		j := i + 1
		for j < overflow && units[j].isWhitespace {
			j++
		}
		lastBreak = j
		i = j
	}
	if lastBreak <= start {
		return 0, false
	}
	return lastBreak, true
}

// avoidLeadingPunct pulls a break back by one cluster when the next row
// would otherwise open with punctuation.
func avoidLeadingPunct(units []wrapUnit, start, overflow int) int {
	if overflow < len(units) && units[overflow].isPunct && overflow-1 > start {
		return overflow - 1
	}
	return overflow
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

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
