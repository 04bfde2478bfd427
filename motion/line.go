package motion

import (
	"github.com/iw2rmb/bidicaret/bidi"
	"github.com/iw2rmb/bidicaret/internal/grapheme"
)

// RowMeasurer reports the visual row a character renders on. Keys are
// compared for equality; larger keys must render lower.
type RowMeasurer interface {
	Row(index int) int
}

// RowFunc adapts a plain function to RowMeasurer.
type RowFunc func(index int) int

func (f RowFunc) Row(index int) int { return f(index) }

// Stepper advances an index by one unit in storage order. It reports false
// when the step would leave [0, len(line)].
type Stepper interface {
	Step(index int, dir Dir, byUnit bool) (int, bool)
}

// Line is one logical line as seen by the motion functions.
type Line struct {
	Text []rune

	// Order is the visual-order run decomposition; nil for uniform lines.
	Order bidi.Order

	// Rows measures wrapped rows; nil when the line renders on one row.
	Rows RowMeasurer

	// Stepper defaults to a CharStepper over Text.
	Stepper Stepper

	// IsExtending classifies combining characters; defaults to
	// grapheme.IsExtending.
	IsExtending func(rune) bool
}

func (l Line) stepper() Stepper {
	if l.Stepper != nil {
		return l.Stepper
	}
	return CharStepper{Text: l.Text, IsExtending: l.IsExtending}
}

func (l Line) extending(index int) bool {
	if index < 0 || index >= len(l.Text) {
		return false
	}
	if l.IsExtending != nil {
		return l.IsExtending(l.Text[index])
	}
	return grapheme.IsExtending(l.Text[index])
}
