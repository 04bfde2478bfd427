package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/bidicaret/bidi"
	graphemeutil "github.com/iw2rmb/bidicaret/internal/grapheme"
	"github.com/iw2rmb/bidicaret/motion"
)

// Style controls Render.
type Style struct {
	Text   lipgloss.Style
	RTL    lipgloss.Style
	Cursor lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:   lipgloss.NewStyle(),
		RTL:    lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
		Cursor: lipgloss.NewStyle().Reverse(true),
	}
}

// Render draws every row of the wrapped line in visual order, one row per
// output line. The character the caret is bound to is drawn with
// st.Cursor; a caret at the very end of the line gets a trailing cell.
// Extending characters are drawn together with their base.
func Render(text []rune, l *Layout, order bidi.Order, caret motion.Caret, st Style) string {
	bound := caretChar(caret, len(text))

	rtl := make([]bool, len(text))
	for _, r := range order {
		if !r.RTL() {
			continue
		}
		for i := maxInt(r.From, 0); i < minInt(r.To, len(text)); i++ {
			rtl[i] = true
		}
	}

	lines := make([]string, 0, len(l.rows))
	for row := range l.rows {
		var sb strings.Builder
		for _, i := range l.VisualRow(order, row) {
			if graphemeutil.IsExtending(text[i]) && i > 0 {
				continue
			}
			cluster := string(text[i])
			for j := i + 1; j < len(text) && graphemeutil.IsExtending(text[j]); j++ {
				cluster += string(text[j])
			}

			style := st.Text
			if rtl[i] {
				style = st.RTL
			}
			if i == bound {
				style = st.Cursor
			}
			sb.WriteString(style.Render(cluster))
		}
		if bound == len(text) && row == len(l.rows)-1 {
			sb.WriteString(st.Cursor.Render(" "))
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

// caretChar returns the rune a caret is drawn on: the one before Index for
// StickyBefore, the one at Index otherwise. len(text) means past the end;
// -1 means nothing is drawn.
func caretChar(c motion.Caret, n int) int {
	if !c.Valid() {
		return -1
	}
	i := c.Index
	if c.Sticky == motion.StickyBefore && i > 0 {
		i--
	}
	if n == 0 {
		return 0
	}
	return clampInt(i, 0, n)
}
