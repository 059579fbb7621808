package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/AvengeMedia/dankwizard/internal/content"
	"github.com/AvengeMedia/dankwizard/internal/errdefs"
	"github.com/AvengeMedia/dankwizard/internal/layout"
)

// StaticContentPane shows a menu's title block in the accent style with the
// secondary block directly beneath it. It is drawn once per session.
type StaticContentPane struct {
	rect      layout.Rect
	styles    Styles
	primary   []string
	secondary []string
	rendered  []string
}

func NewStaticContentPane(rect layout.Rect, styles Styles, text content.Screen) (*StaticContentPane, error) {
	total := len(text.Primary) + len(text.Secondary)
	if total > rect.InnerRows() {
		return nil, errdefs.NewCustomErrorf(errdefs.ErrTypeContentOverflow,
			"static content has %d lines but the pane holds %d", total, rect.InnerRows())
	}
	for _, block := range [][]string{text.Primary, text.Secondary} {
		for _, l := range block {
			if w := lipgloss.Width(l); w > textWidth(rect) {
				return nil, errdefs.NewCustomErrorf(errdefs.ErrTypeContentOverflow,
					"static line %q is %d cells wide, the pane fits %d", l, w, textWidth(rect))
			}
		}
	}
	return &StaticContentPane{
		rect:      rect,
		styles:    styles,
		primary:   text.Primary,
		secondary: text.Secondary,
	}, nil
}

// Display renders the pane on first use and returns the cached rows after that.
func (p *StaticContentPane) Display() []string {
	if p.rendered != nil {
		return p.rendered
	}

	rows := make(map[int]line, len(p.primary)+len(p.secondary))
	for i, l := range p.primary {
		rows[1+i] = line{text: l, style: StyleAccent}
	}
	offset := len(p.primary) + 1
	for i, l := range p.secondary {
		rows[offset+i] = line{text: l, style: StyleDefault}
	}

	p.rendered = box(p.rect, p.styles, false, rows)
	return p.rendered
}

func (p *StaticContentPane) Rect() layout.Rect { return p.rect }
