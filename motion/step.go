package motion

import "github.com/iw2rmb/bidicaret/internal/grapheme"

// CharStepper steps one rune at a time. With byUnit it also steps over
// extending characters, so it never lands inside a combining sequence.
type CharStepper struct {
	Text        []rune
	IsExtending func(rune) bool
}

func (s CharStepper) Step(index int, dir Dir, byUnit bool) (int, bool) {
	isExt := s.IsExtending
	if isExt == nil {
		isExt = grapheme.IsExtending
	}
	target := index + int(dir)
	if byUnit {
		for target > 0 && target < len(s.Text) && isExt(s.Text[target]) {
			target += int(dir)
		}
	}
	if target < 0 || target > len(s.Text) {
		return index, false
	}
	return target, true
}

// GraphemeStepper steps whole grapheme clusters when byUnit is set and
// single runes otherwise.
type GraphemeStepper struct {
	n      int
	bounds []int
}

func NewGraphemeStepper(text []rune) *GraphemeStepper {
	return &GraphemeStepper{n: len(text), bounds: grapheme.Bounds(text)}
}

func (s *GraphemeStepper) Step(index int, dir Dir, byUnit bool) (int, bool) {
	if !byUnit {
		target := index + int(dir)
		if target < 0 || target > s.n {
			return index, false
		}
		return target, true
	}

	if dir > 0 {
		for _, b := range s.bounds {
			if b > index {
				return b, true
			}
		}
		return index, false
	}
	for i := len(s.bounds) - 1; i >= 0; i-- {
		if s.bounds[i] < index {
			return s.bounds[i], true
		}
	}
	return index, false
}
