package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/AvengeMedia/dankwizard/internal/errdefs"
	"github.com/AvengeMedia/dankwizard/internal/layout"
)

const (
	detailsHeader = "Details:"
	// detailsMargin is how much narrower than the pane the wrapped text is.
	detailsMargin = 3
	// Rows 1 and 2 hold the header and the divider.
	detailsFirstRow = 3
)

// DetailsPane shows the description of the highlighted option.
type DetailsPane struct {
	rect   layout.Rect
	styles Styles
}

func NewDetailsPane(rect layout.Rect, styles Styles) *DetailsPane {
	return &DetailsPane{rect: rect, styles: styles}
}

func (p *DetailsPane) wrapWidth() int {
	return p.rect.Width - detailsMargin
}

func (p *DetailsPane) capacity() int {
	return p.rect.Height - 1 - detailsFirstRow
}

// Wrap breaks description into lines no wider than the pane's wrap width.
// Words longer than the width are split.
func (p *DetailsPane) Wrap(description string) []string {
	description = strings.Join(strings.Fields(description), " ")
	if description == "" {
		return nil
	}
	wrapped := strings.Split(ansi.Wrap(description, p.wrapWidth(), ""), "\n")
	lines := wrapped[:0]
	for _, l := range wrapped {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// Check reports a configuration error when description needs more rows than the pane has.
func (p *DetailsPane) Check(description string) error {
	if n := len(p.Wrap(description)); n > p.capacity() {
		return errdefs.NewCustomErrorf(errdefs.ErrTypeContentOverflow,
			"description %q wraps to %d lines, the details pane holds %d", description, n, p.capacity())
	}
	return nil
}

// Render redraws the whole pane for description.
func (p *DetailsPane) Render(description string) []string {
	rows := map[int]line{1: {text: detailsHeader}}
	for i, l := range p.Wrap(description) {
		rows[detailsFirstRow+i] = line{text: l}
	}
	return box(p.rect, p.styles, true, rows)
}

func (p *DetailsPane) Rect() layout.Rect { return p.rect }
