package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/AvengeMedia/dankwizard/internal/layout"
)

// textColumn is where pane text starts, one cell in from the left border.
const textColumn = 2

// textWidth is the widest text that fits between textColumn and the right border.
func textWidth(r layout.Rect) int {
	return r.Width - textColumn - 1
}

type line struct {
	text  string
	style Style
}

// box draws a pane of exactly rect.Height rows and rect.Width cells.
// rows maps a row inside the pane (1..Height-2) to its text. When divider is
// set, row 2 is a horizontal rule joined to both side borders.
func box(rect layout.Rect, styles Styles, divider bool, rows map[int]line) []string {
	b := lipgloss.NormalBorder()
	inner := rect.Width - 2
	border := styles.Border.Render

	out := make([]string, 0, rect.Height)
	out = append(out, border(b.TopLeft+strings.Repeat(b.Top, inner)+b.TopRight))

	for row := 1; row < rect.Height-1; row++ {
		if divider && row == 2 {
			out = append(out, border(b.MiddleLeft+strings.Repeat(b.Top, inner)+b.MiddleRight))
			continue
		}

		body := strings.Repeat(" ", inner)
		if l, ok := rows[row]; ok {
			text := ansi.Truncate(l.text, textWidth(rect), "")
			pad := inner - (textColumn - 1) - lipgloss.Width(text)
			body = strings.Repeat(" ", textColumn-1) + styles.Render(l.style, text) + strings.Repeat(" ", pad)
		}
		out = append(out, border(b.Left)+body+border(b.Right))
	}

	out = append(out, border(b.BottomLeft+strings.Repeat(b.Bottom, inner)+b.BottomRight))
	return out
}

type segment struct {
	x    int
	text string
}

// screen is a sparse grid of placed blocks, flattened by String.
type screen struct {
	rows [][]segment
}

func newScreen(height int) *screen {
	return &screen{rows: make([][]segment, height)}
}

// place writes block starting at (y, x). Blocks on the same row must not overlap.
func (s *screen) place(y, x int, block []string) {
	for i, text := range block {
		row := y + i
		for len(s.rows) <= row {
			s.rows = append(s.rows, nil)
		}
		s.rows[row] = append(s.rows[row], segment{x: x, text: text})
	}
}

func (s *screen) String() string {
	lines := make([]string, len(s.rows))
	for i, segs := range s.rows {
		sort.Slice(segs, func(a, b int) bool { return segs[a].x < segs[b].x })
		var b strings.Builder
		col := 0
		for _, seg := range segs {
			if seg.x > col {
				b.WriteString(strings.Repeat(" ", seg.x-col))
				col = seg.x
			}
			b.WriteString(seg.text)
			col += lipgloss.Width(seg.text)
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}
