package motion

// EndOfLine returns the caret at the start (Left) or end (Right) of a line.
//
// With visually unset the edges are storage offsets 0 and len(Text). With
// visually set they are the visual left edge of the first run and the
// visual right edge of the last row of the last run.
func EndOfLine(l Line, visually bool, dir Dir) Caret {
	n := len(l.Text)
	if !visually {
		if dir < 0 {
			return Caret{Index: 0, Sticky: StickyBefore}
		}
		return Caret{Index: n, Sticky: StickyBefore}
	}

	order := l.Order
	i := 0
	if dir > 0 {
		i = len(order) - 1
	}
	for i >= 0 && i < len(order) && order[i].Empty() {
		i -= int(dir)
	}
	if i < 0 || i >= len(order) {
		if dir < 0 {
			return Caret{Index: order.Left(), Sticky: StickyBefore}
		}
		return Caret{Index: order.Right(n), Sticky: StickyBefore}
	}
	part := order[i]

	if dir < 0 {
		return Caret{Index: part.Left(), Sticky: StickyBefore}
	}
	if !part.RTL() {
		return Caret{Index: part.Right(), Sticky: StickyBefore}
	}

	// A wrapped right-to-left run stacks its storage chunks top to bottom, so
	// the right edge of the last row is the first character of the run that
	// shares a row with the line's last character.
	rows := newRowCache(l.Rows, n)
	last := n - 1
	lastRow := rows.row(last)
	ch := findFirst(func(i int) bool { return rows.row(i) == lastRow }, part.From, last)
	if part.Level == 1 {
		return Caret{Index: ch, Sticky: StickyAfter}
	}
	if next, ok := l.stepper().Step(ch, Right, true); ok {
		ch = next
	}
	return Caret{Index: ch, Sticky: StickyBefore}
}
