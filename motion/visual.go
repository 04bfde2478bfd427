package motion

import "github.com/iw2rmb/bidicaret/bidi"

// MoveVisually returns the caret one visual step from start in direction
// dir. byUnit is passed to the Stepper for every logical step. NoCaret means
// the line has no further position that way.
func MoveVisually(l Line, start Caret, dir Dir, byUnit bool) Caret {
	m := &mover{
		line:   l,
		n:      len(l.Text),
		order:  l.Order,
		step:   l.stepper(),
		dir:    dir,
		byUnit: byUnit,
	}

	if len(m.order) == 0 {
		ch, ok := m.mv(start.Index, dir)
		if !ok {
			return NoCaret
		}
		return Caret{Index: ch, Sticky: logicalSticky(dir)}
	}

	switch {
	case start.Index >= m.n:
		start = Caret{Index: m.n, Sticky: StickyBefore}
	case start.Index <= 0:
		start = Caret{Index: 0, Sticky: StickyAfter}
	}
	m.start = start
	m.partPos = partAt(m.order, start.Index, start.Sticky)
	if m.partPos < 0 {
		return NoCaret
	}
	m.part = m.order[m.partPos]
	m.rows = newRowCache(l.Rows, m.n)

	for _, c := range moveCases {
		if res, ok := c(m); ok {
			return res
		}
	}
	return NoCaret
}

// moveCase resolves one shape of visual move, or reports false to hand over
// to the next case. Cases are tried in order.
type moveCase func(m *mover) (Caret, bool)

var moveCases = [...]moveCase{
	(*mover).withinLTRRun,
	(*mover).withinRTLRow,
	(*mover).intoNextRTLRow,
	(*mover).intoSiblingRun,
	(*mover).intoNextRow,
}

type mover struct {
	line   Line
	n      int
	order  bidi.Order
	step   Stepper
	dir    Dir
	byUnit bool

	start   Caret
	partPos int
	part    bidi.Run

	rows        *rowCache
	startRow    int
	hasStartRow bool
}

func (m *mover) mv(index int, dir Dir) (int, bool) {
	return m.step.Step(index, dir, m.byUnit)
}

// mvOr steps like mv but keeps the unclamped target when the stepper
// refuses; callers only use it on run edges that are always steppable.
func (m *mover) mvOr(index int, dir Dir) int {
	if ch, ok := m.mv(index, dir); ok {
		return ch
	}
	return index + int(dir)
}

// caretRow is the row of the character a caret is bound to.
func (m *mover) caretRow(index int, sticky Sticky) int {
	if sticky == StickyBefore {
		index = m.mvOr(index, Left)
	}
	return m.rows.row(index)
}

func (m *mover) originRow() int {
	if !m.hasStartRow {
		m.startRow = m.caretRow(m.start.Index, m.start.Sticky)
		m.hasStartRow = true
	}
	return m.startRow
}

// withinLTRRun steps inside an even-level run that still has characters in
// the direction of travel. Wrapping cannot change the outcome here.
func (m *mover) withinLTRRun() (Caret, bool) {
	if m.part.RTL() {
		return Caret{}, false
	}
	if m.dir > 0 && m.part.To <= m.start.Index || m.dir < 0 && m.part.From >= m.start.Index {
		return Caret{}, false
	}
	ch, ok := m.mv(m.start.Index, m.dir)
	if !ok {
		return Caret{}, false
	}
	return Caret{Index: ch, Sticky: logicalSticky(m.dir)}, true
}

// withinRTLRow steps against storage order inside an odd-level run while
// staying on the origin row.
func (m *mover) withinRTLRow() (Caret, bool) {
	if !m.part.RTL() {
		return Caret{}, false
	}
	sticky := reversedSticky(m.dir)
	ch, ok := m.mv(m.start.Index, -m.dir)
	if !ok {
		return Caret{}, false
	}
	if m.dir > 0 && ch < m.part.From || m.dir < 0 && ch > m.part.To {
		return Caret{}, false
	}
	if m.caretRow(ch, sticky) != m.originRow() {
		return Caret{}, false
	}
	return Caret{Index: ch, Sticky: sticky}, true
}

// intoNextRTLRow leaves the origin row of a wrapped odd-level run: it walks
// storage order in the direction of travel to the first index on another
// row and lands on that row's entry edge.
func (m *mover) intoNextRTLRow() (Caret, bool) {
	if !m.part.RTL() {
		return Caret{}, false
	}
	sticky := reversedSticky(m.dir)
	origin := m.originRow()
	ch := m.start.Index
	for {
		next, ok := m.mv(ch, m.dir)
		if !ok {
			return Caret{}, false
		}
		ch = next
		if m.dir > 0 && ch > m.part.To || m.dir < 0 && ch < m.part.From {
			return Caret{}, false
		}
		if row := m.caretRow(ch, sticky); row != origin {
			return m.enterRTLRow(ch, sticky, row, m.part), true
		}
	}
}

// enterRTLRow finds, among the characters of part on row, the one farthest
// from `from` in storage order, then backs off extending characters so the
// caret rests on a base character.
func (m *mover) enterRTLRow(from int, sticky Sticky, row int, part bidi.Run) Caret {
	edge := m.mvOr(part.From, Right)
	if m.dir > 0 {
		edge = m.mvOr(part.To, Left)
	}
	ch := findFirst(func(i int) bool { return m.caretRow(i, sticky) == row }, edge, from)
	for ch != from && m.line.extending(ch) {
		ch -= int(m.dir)
	}
	return Caret{Index: ch, Sticky: sticky}
}

// enterRun reports how a run is entered in the direction of travel: in
// storage order for runs that read the same way as the move, reversed
// otherwise. Only level 1 counts as reversed.
func (m *mover) enterRun(part bidi.Run) (inStorageOrder bool) {
	return (m.dir > 0) == (part.Level != 1)
}

// intoSiblingRun looks for a neighbouring run, in visual order, with a
// position on the origin row.
func (m *mover) intoSiblingRun() (Caret, bool) {
	origin := m.originRow()
	bound := 0
	if m.dir > 0 {
		bound = m.n
	}
	for pos := m.partPos + int(m.dir); pos >= 0 && pos < len(m.order); pos += int(m.dir) {
		part := m.order[pos]
		if part.Empty() {
			continue
		}
		ch := part.From
		if m.dir < 0 {
			ch = m.mvOr(part.To, Left)
		}
		if m.dir > 0 && ch > bound || m.dir < 0 && ch < bound {
			continue
		}

		inOrder := m.enterRun(part)
		sticky := StickyAfter
		if inOrder {
			ch = m.mvOr(ch, Right)
			sticky = StickyBefore
		}
		row := m.caretRow(ch, sticky)
		if row == origin {
			if part.Level == 1 {
				return m.enterRTLRow(ch, sticky, origin, part), true
			}
			return Caret{Index: ch, Sticky: sticky}, true
		}
		// Everything past ch in storage order renders on ch's row or
		// further along.
		if (m.dir > 0) == (row > origin) {
			bound = ch
		}
	}
	return Caret{}, false
}

// intoNextRow moves onto the next visual row: it finds the storage span of
// that row and returns the first position, walking runs from the side the
// caret enters, that falls inside it.
func (m *mover) intoNextRow() (Caret, bool) {
	origin := m.originRow()
	ch := m.start.Index
	if m.start.Sticky == StickyBefore {
		prev, ok := m.mv(ch, Left)
		if !ok {
			return NoCaret, true
		}
		ch = prev
	}

	var row int
	for {
		next, ok := m.mv(ch, m.dir)
		if !ok {
			return NoCaret, true
		}
		ch = next
		row = m.rows.row(ch)
		if row != origin {
			break
		}
	}

	far := 0
	if m.dir > 0 {
		far = m.n - 1
	}
	other := findFirst(func(i int) bool { return m.rows.row(i) == row }, far, ch)
	lo, hi := ch, other
	if m.dir < 0 {
		lo, hi = other, ch
	}

	land := func(ch int, inOrder bool) Caret {
		if inOrder {
			return Caret{Index: m.mvOr(ch, Right), Sticky: StickyBefore}
		}
		return Caret{Index: ch, Sticky: StickyAfter}
	}

	pos := 0
	if m.dir < 0 {
		pos = len(m.order) - 1
	}
	for ; pos >= 0 && pos < len(m.order); pos += int(m.dir) {
		part := m.order[pos]
		if part.Empty() {
			continue
		}
		inOrder := m.enterRun(part)
		ch := hi
		if inOrder {
			ch = lo
		}
		if part.Contains(ch) {
			return land(ch, inOrder), true
		}
		ch = m.mvOr(part.To, Left)
		if inOrder {
			ch = part.From
		}
		if lo <= ch && ch <= hi {
			return land(ch, inOrder), true
		}
	}
	return Caret{}, false
}
