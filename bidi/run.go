package bidi

// Level is a bidi embedding level. Even levels run left to right, odd levels
// right to left.
type Level uint8

// RTL reports whether text at this level runs right to left.
func (l Level) RTL() bool { return l%2 == 1 }

// Run is a directional run over the half-open rune range [From, To).
type Run struct {
	From  int
	To    int
	Level Level
}

// Empty reports whether the run holds no characters. Empty runs mark
// boundaries and never yield caret positions.
func (r Run) Empty() bool { return r.From == r.To }

// RTL reports whether the run is laid out right to left.
func (r Run) RTL() bool { return r.Level.RTL() }

// Contains reports whether index is a character of the run.
func (r Run) Contains(index int) bool { return r.From <= index && index < r.To }

// Left returns the caret index at the visual left edge of the run.
func (r Run) Left() int {
	if r.RTL() {
		return r.To
	}
	return r.From
}

// Right returns the caret index at the visual right edge of the run.
func (r Run) Right() int {
	if r.RTL() {
		return r.From
	}
	return r.To
}

// Order is the run decomposition of one line, in visual left-to-right
// order. A well-formed order covers [0, len(line)] without overlaps.
//
// A nil Order describes a line with a single left-to-right direction.
type Order []Run

// Left returns the caret index at the visual left edge of the line.
func (o Order) Left() int {
	if len(o) == 0 {
		return 0
	}
	return o[0].Left()
}

// Right returns the caret index at the visual right edge of the line.
// lineLen is used when the order is nil.
func (o Order) Right(lineLen int) int {
	if len(o) == 0 {
		return lineLen
	}
	return o[len(o)-1].Right()
}

// Provider yields the run decomposition for a line of text. It returns nil
// when the whole line runs left to right.
type Provider interface {
	Order(text []rune) Order
}

// ProviderFunc adapts a plain function to Provider.
type ProviderFunc func(text []rune) Order

func (f ProviderFunc) Order(text []rune) Order { return f(text) }
