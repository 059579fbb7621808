package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/AvengeMedia/dankwizard/internal/errdefs"
	"github.com/AvengeMedia/dankwizard/internal/layout"
	"github.com/AvengeMedia/dankwizard/internal/menu"
)

// optionsFirstRow is the first pane row below the title and divider.
const optionsFirstRow = 3

// OptionMenu draws the option list with the highlighted row reversed.
type OptionMenu struct {
	rect    layout.Rect
	styles  Styles
	title   string
	options *menu.Options
	nav     *menu.Navigator
}

// NewOptionMenu rejects menus that do not fit the pane instead of cutting
// options off.
func NewOptionMenu(rect layout.Rect, styles Styles, title string, options *menu.Options) (*OptionMenu, error) {
	rows := rect.Height - 1 - optionsFirstRow
	if options.Len() > rows {
		return nil, errdefs.NewCustomErrorf(errdefs.ErrTypeMenuOverflow,
			"menu %q has %d options but the pane holds %d", title, options.Len(), rows)
	}
	for _, label := range append([]string{title}, options.Labels()...) {
		if w := lipgloss.Width(label); w > textWidth(rect) {
			return nil, errdefs.NewCustomErrorf(errdefs.ErrTypeMenuOverflow,
				"%q is %d cells wide, the menu pane fits %d", label, w, textWidth(rect))
		}
	}
	nav, err := menu.NewNavigator(options.Len())
	if err != nil {
		return nil, err
	}
	return &OptionMenu{
		rect:    rect,
		styles:  styles,
		title:   title,
		options: options,
		nav:     nav,
	}, nil
}

func (m *OptionMenu) Options() []string { return m.options.Labels() }
func (m *OptionMenu) Len() int          { return m.options.Len() }
func (m *OptionMenu) Highlight() int    { return m.nav.Highlight() }
func (m *OptionMenu) Label(index int) string {
	return m.options.Label(index)
}

// Navigate applies one key and returns the confirmed index, or menu.NoSelection.
func (m *OptionMenu) Navigate(k menu.Key) int {
	return m.nav.Navigate(k)
}

func (m *OptionMenu) Render() []string {
	rows := make(map[int]line, m.options.Len()+1)
	if m.title != "" {
		rows[1] = line{text: m.title}
	}
	for i, label := range m.options.Labels() {
		style := StyleDefault
		if i+1 == m.nav.Highlight() {
			style = StyleReversed
		}
		rows[optionsFirstRow+i] = line{text: label, style: style}
	}
	return box(m.rect, m.styles, true, rows)
}

func (m *OptionMenu) Rect() layout.Rect { return m.rect }
