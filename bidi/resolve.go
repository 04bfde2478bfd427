package bidi

import (
	xbidi "golang.org/x/text/unicode/bidi"
)

type class int

const (
	classNeutral class = iota
	classL
	classR
	classNum
	classSep // ES / CS: joins two numbers
)

// Resolver is a simplified run provider: strong letters, numbers and
// neutrals are resolved against one paragraph direction. Explicit embeddings,
// isolates and mirroring are ignored.
//
// The zero value resolves left-to-right paragraphs.
type Resolver struct {
	// Base is the paragraph level, 0 (LTR) or 1 (RTL).
	Base Level
}

var _ Provider = Resolver{}

// Order resolves text into visual-order runs. It returns nil when every
// character ends up at level 0.
func (rs Resolver) Order(text []rune) Order {
	base := rs.Base % 2
	if len(text) == 0 {
		if base == 0 {
			return nil
		}
		return Order{{From: 0, To: 0, Level: base}}
	}

	levels := resolveLevels(classify(text), base)
	runs := logicalRuns(levels)
	if len(runs) == 1 && runs[0].Level == 0 {
		return nil
	}
	reorder(runs)
	return runs
}

func classify(text []rune) []class {
	out := make([]class, len(text))
	prev := classNeutral
	for i, r := range text {
		p, _ := xbidi.LookupRune(r)
		c := classNeutral
		switch p.Class() {
		case xbidi.L:
			c = classL
		case xbidi.R, xbidi.AL:
			c = classR
		case xbidi.EN, xbidi.AN:
			c = classNum
		case xbidi.ES, xbidi.CS:
			c = classSep
		case xbidi.NSM:
			// Marks take the class of what they combine with.
			c = prev
		}
		out[i] = c
		prev = c
	}
	return out
}

func resolveLevels(classes []class, base Level) []Level {
	n := len(classes)

	// A single separator between two numbers is part of the number.
	for i := 1; i+1 < n; i++ {
		if classes[i] == classSep && classes[i-1] == classNum && classes[i+1] == classNum {
			classes[i] = classNum
		}
	}
	for i := range classes {
		if classes[i] == classSep {
			classes[i] = classNeutral
		}
	}

	// Numbers following left-to-right text (or starting an LTR paragraph)
	// behave like letters.
	strong := classL
	if base == 1 {
		strong = classR
	}
	for i, c := range classes {
		switch c {
		case classL, classR:
			strong = c
		case classNum:
			if strong == classL {
				classes[i] = classL
			}
		}
	}

	// Neutrals between two equal directions take that direction, otherwise
	// the paragraph direction. Numbers count as right to left here.
	dirOf := func(c class) class {
		if c == classNum {
			return classR
		}
		return c
	}
	sos := classL
	if base == 1 {
		sos = classR
	}
	for i := 0; i < n; {
		if classes[i] != classNeutral {
			i++
			continue
		}
		j := i
		for j < n && classes[j] == classNeutral {
			j++
		}
		before := sos
		if i > 0 {
			before = dirOf(classes[i-1])
		}
		after := sos
		if j < n {
			after = dirOf(classes[j])
		}
		fill := sos
		if before == after {
			fill = before
		}
		for k := i; k < j; k++ {
			classes[k] = fill
		}
		i = j
	}

	levels := make([]Level, n)
	for i, c := range classes {
		switch {
		case base == 0 && c == classR:
			levels[i] = 1
		case base == 0 && c == classNum:
			levels[i] = 2
		case base == 1 && c == classL, base == 1 && c == classNum:
			levels[i] = 2
		default:
			levels[i] = base
		}
	}
	return levels
}

func logicalRuns(levels []Level) Order {
	var runs Order
	start := 0
	for i := 1; i <= len(levels); i++ {
		if i == len(levels) || levels[i] != levels[start] {
			runs = append(runs, Run{From: start, To: i, Level: levels[start]})
			start = i
		}
	}
	return runs
}

// reorder turns logical-order runs into visual order by reversing every
// maximal sequence at or above each level, highest level first.
func reorder(runs Order) {
	if len(runs) == 0 {
		return
	}
	lo, hi := runs[0].Level, runs[0].Level
	for _, r := range runs[1:] {
		lo = min(lo, r.Level)
		hi = max(hi, r.Level)
	}
	if lo%2 == 0 {
		lo++
	}
	for lvl := hi; lvl >= lo && lvl > 0; lvl-- {
		for i := 0; i < len(runs); {
			if runs[i].Level < lvl {
				i++
				continue
			}
			j := i
			for j < len(runs) && runs[j].Level >= lvl {
				j++
			}
			for a, b := i, j-1; a < b; a, b = a+1, b-1 {
				runs[a], runs[b] = runs[b], runs[a]
			}
			i = j
		}
	}
}
