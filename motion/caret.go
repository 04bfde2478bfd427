package motion

import "fmt"

// Dir is a visual direction: Left (-1) or Right (+1).
type Dir int

const (
	Left  Dir = -1
	Right Dir = 1
)

func (d Dir) String() string {
	if d < 0 {
		return "left"
	}
	return "right"
}

// Sticky tells which side of a caret's index it belongs to when the index
// sits on a run boundary.
type Sticky int

const (
	StickyNone Sticky = iota
	// StickyBefore binds the caret to the character preceding Index.
	StickyBefore
	// StickyAfter binds the caret to the character at Index.
	StickyAfter
)

func (s Sticky) String() string {
	switch s {
	case StickyBefore:
		return "before"
	case StickyAfter:
		return "after"
	default:
		return "none"
	}
}

// NoIndex marks a caret that could not be placed on the line.
const NoIndex = -1

// Caret is a logical rune offset in a line plus its stickiness.
type Caret struct {
	Index  int
	Sticky Sticky
}

// NoCaret is returned when no position exists in the requested direction.
var NoCaret = Caret{Index: NoIndex, Sticky: StickyNone}

// Valid reports whether c names a position on the line.
func (c Caret) Valid() bool { return c.Index != NoIndex }

func (c Caret) String() string {
	if !c.Valid() {
		return "none"
	}
	return fmt.Sprintf("%d/%s", c.Index, c.Sticky)
}

// logicalSticky is the stickiness of a caret reached by a plain logical step.
func logicalSticky(dir Dir) Sticky {
	if dir < 0 {
		return StickyAfter
	}
	return StickyBefore
}

// reversedSticky is the stickiness of a caret reached by stepping against
// storage order, as inside a right-to-left run.
func reversedSticky(dir Dir) Sticky {
	if dir < 0 {
		return StickyBefore
	}
	return StickyAfter
}
