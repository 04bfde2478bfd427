package bidicaret

import (
	"github.com/iw2rmb/bidicaret/bidi"
	"github.com/iw2rmb/bidicaret/layout"
	"github.com/iw2rmb/bidicaret/motion"
)

type Options struct {
	// Base is the paragraph direction for the default resolver.
	Base bidi.Level

	// Provider overrides the default bidi.Resolver.
	Provider bidi.Provider

	Wrap layout.Options

	// Graphemes makes cluster moves step whole grapheme clusters instead of
	// skipping combining marks only.
	Graphemes bool
}

type MoveUnit int

const (
	MoveRune MoveUnit = iota
	// MoveCluster skips combining marks, or whole clusters with Options.Graphemes.
	MoveCluster
	// MoveLine goes to the visual line edge.
	MoveLine
)

type Move struct {
	Unit MoveUnit
	Dir  motion.Dir
}

// Line is one line of text with a caret on it.
type Line struct {
	text   []rune
	order  bidi.Order
	layout *layout.Layout
	step   motion.Stepper
	opt    Options

	caret   motion.Caret
	version uint64
}

// NewLine resolves and wraps text. The caret starts at the visual left edge.
func NewLine(text string, opt Options) *Line {
	l := &Line{text: []rune(text), opt: opt}
	p := opt.Provider
	if p == nil {
		p = bidi.Resolver{Base: opt.Base}
	}
	l.order = p.Order(l.text)
	l.layout = layout.Wrap(l.text, opt.Wrap)
	if opt.Graphemes {
		l.step = motion.NewGraphemeStepper(l.text)
	}
	l.caret = l.edge(motion.Left)
	return l
}

func (l *Line) Text() string { return string(l.text) }

func (l *Line) Order() bidi.Order { return l.order }

func (l *Line) Layout() *layout.Layout { return l.layout }

func (l *Line) Caret() motion.Caret { return l.caret }

func (l *Line) Version() uint64 { return l.version }

// SetCaret places the caret; invalid carets are ignored and indices are
// clamped to the line.
func (l *Line) SetCaret(c motion.Caret) {
	if !c.Valid() {
		return
	}
	c.Index = clampInt(c.Index, 0, len(l.text))
	l.setCaret(c)
}

// SetWidth rewraps the line. The caret keeps its logical position.
func (l *Line) SetWidth(width int) {
	if l.opt.Wrap.Width == width {
		return
	}
	l.opt.Wrap.Width = width
	l.layout = layout.Wrap(l.text, l.opt.Wrap)
	l.version++
}

// Move applies m and reports whether the caret moved. At the visual edge
// of the line a character move leaves the caret where it is.
func (l *Line) Move(m Move) bool {
	var next motion.Caret
	switch m.Unit {
	case MoveLine:
		next = l.edge(m.Dir)
	default:
		next = motion.MoveVisually(l.motionLine(), l.caret, m.Dir, m.Unit == MoveCluster)
	}
	if !next.Valid() {
		return false
	}
	return l.setCaret(next)
}

// Walk returns every caret reached by repeated moves in dir, starting from
// the visual edge opposite to dir. The start caret comes first.
func (l *Line) Walk(dir motion.Dir, byUnit bool) []motion.Caret {
	ml := l.motionLine()
	cur := l.edge(-dir)
	out := []motion.Caret{cur}
	// Every position is visited at most twice, once per stickiness.
	for limit := 2*len(l.text) + 2; limit > 0; limit-- {
		cur = motion.MoveVisually(ml, cur, dir, byUnit)
		if !cur.Valid() {
			break
		}
		out = append(out, cur)
	}
	return out
}

// CaretRow returns the row c is drawn on: the row of the character the
// caret is bound to.
func (l *Line) CaretRow(c motion.Caret) int {
	i := boundChar(c)
	if i < 0 {
		i = 0
	}
	return l.layout.Row(i)
}

// edge returns the caret at the visual edge of the line on side dir, bound
// to a character of the run that forms the edge. EndOfLine always reports
// StickyBefore for non-wrapped runs, which at the From of an even run that
// does not start the line binds the caret to the neighbouring storage run.
func (l *Line) edge(dir motion.Dir) motion.Caret {
	c := motion.EndOfLine(l.motionLine(), true, dir)
	run, ok := edgeRun(l.order, dir)
	if !ok {
		return c
	}
	if b := boundChar(c); b < 0 || b >= len(l.text) || run.Contains(b) {
		return c
	}
	flipped := c
	flipped.Sticky = motion.StickyAfter
	if c.Sticky == motion.StickyAfter {
		flipped.Sticky = motion.StickyBefore
	}
	if run.Contains(boundChar(flipped)) {
		return flipped
	}
	return c
}

// edgeRun is the first (Left) or last (Right) non-empty run in visual order.
func edgeRun(order bidi.Order, dir motion.Dir) (bidi.Run, bool) {
	for i := range order {
		j := i
		if dir > 0 {
			j = len(order) - 1 - i
		}
		if !order[j].Empty() {
			return order[j], true
		}
	}
	return bidi.Run{}, false
}

// boundChar is the character a caret attaches to: the one before Index for
// StickyBefore, the one at Index otherwise.
func boundChar(c motion.Caret) int {
	if c.Sticky == motion.StickyBefore {
		return c.Index - 1
	}
	return c.Index
}

func (l *Line) Render(st layout.Style) string {
	return layout.Render(l.text, l.layout, l.order, l.caret, st)
}

func (l *Line) motionLine() motion.Line {
	return motion.Line{Text: l.text, Order: l.order, Rows: l.layout, Stepper: l.step}
}

func (l *Line) setCaret(c motion.Caret) bool {
	if c == l.caret {
		return false
	}
	l.caret = c
	l.version++
	return true
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
