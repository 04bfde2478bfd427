package layout

// WrapMode controls how a long line is split into rows.
//
// WrapNone keeps the line on a single row. WrapWord prefers breaking after
// whitespace and falls back to grapheme breaks for long words. WrapGrapheme
// breaks at any grapheme boundary.
type WrapMode int

const (
	WrapNone WrapMode = iota
	WrapWord
	WrapGrapheme
)

func (m WrapMode) String() string {
	switch m {
	case WrapWord:
		return "word"
	case WrapGrapheme:
		return "grapheme"
	default:
		return "none"
	}
}

// ParseWrapMode maps "none", "word" and "grapheme" to a WrapMode.
func ParseWrapMode(s string) (WrapMode, bool) {
	switch s {
	case "none", "":
		return WrapNone, true
	case "word":
		return WrapWord, true
	case "grapheme":
		return WrapGrapheme, true
	default:
		return WrapNone, false
	}
}
