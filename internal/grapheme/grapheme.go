package grapheme

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in storage order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len([]rune(text)))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// Bounds returns the rune offsets at which clusters of text start, followed
// by len(text). An empty line yields [0].
func Bounds(text []rune) []int {
	out := []int{0}
	if len(text) == 0 {
		return out
	}
	g := uniseg.NewGraphemes(string(text))
	at := 0
	for g.Next() {
		at += len(g.Runes())
		out = append(out, at)
	}
	return out
}

// IsExtending reports whether r only ever extends the preceding character:
// non-spacing and enclosing marks, ZWJ/ZWNJ and variation selectors.
func IsExtending(r rune) bool {
	if r < 0x300 {
		return false
	}
	if r == 0x200c || r == 0x200d {
		return true
	}
	return unicode.In(r, unicode.Mn, unicode.Me, unicode.Variation_Selector)
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsPunct reports whether all runes in cluster are Unicode punctuation.
func IsPunct(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}
