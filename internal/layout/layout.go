package layout

import (
	"github.com/AvengeMedia/dankwizard/internal/errdefs"
)

// Rect is a fixed pane rectangle in terminal cells.
type Rect struct {
	Height int
	Width  int
	Y      int
	X      int
}

func (r Rect) Bottom() int { return r.Y + r.Height }
func (r Rect) Right() int  { return r.X + r.Width }

// InnerRows is the number of rows between the top and bottom border.
func (r Rect) InnerRows() int { return r.Height - 2 }

func (r Rect) overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Layout is the geometry table shared by every pane of a session.
type Layout struct {
	Main    Rect
	Menu    Rect
	Details Rect
}

const (
	mainHeight = 13
	mainWidth  = 78
	menuHeight = 9
	menuWidth  = 30
	detailsW   = 47
)

// Default returns the installer's fixed geometry. The details pane sits one
// column right of the menu and shares its row and height.
func Default() Layout {
	main := Rect{Height: mainHeight, Width: mainWidth, Y: 0, X: 1}
	menu := Rect{Height: menuHeight, Width: menuWidth, Y: main.Bottom(), X: 1}
	return Layout{
		Main: main,
		Menu: menu,
		Details: Rect{
			Height: menu.Height,
			Width:  detailsW,
			Y:      menu.Y,
			X:      menu.Right() + 1,
		},
	}
}

// Rows is the number of terminal rows the panes occupy.
func (l Layout) Rows() int {
	return max(l.Main.Bottom(), l.Menu.Bottom(), l.Details.Bottom())
}

// Validate rejects geometry no pane can be drawn into.
func (l Layout) Validate() error {
	panes := []struct {
		name string
		rect Rect
		// border, header, divider and at least one content row
		minHeight int
	}{
		{"main", l.Main, 3},
		{"menu", l.Menu, 5},
		{"details", l.Details, 5},
	}
	for _, p := range panes {
		if p.rect.Y < 0 || p.rect.X < 0 {
			return errdefs.NewCustomErrorf(errdefs.ErrTypeInvalidGeometry, "%s pane has a negative position (%d,%d)", p.name, p.rect.Y, p.rect.X)
		}
		if p.rect.Height < p.minHeight {
			return errdefs.NewCustomErrorf(errdefs.ErrTypeInvalidGeometry, "%s pane height %d is below the minimum %d", p.name, p.rect.Height, p.minHeight)
		}
		if p.rect.Width < 4 {
			return errdefs.NewCustomErrorf(errdefs.ErrTypeInvalidGeometry, "%s pane width %d is below the minimum 4", p.name, p.rect.Width)
		}
	}
	for i := range panes {
		for j := i + 1; j < len(panes); j++ {
			if panes[i].rect.overlaps(panes[j].rect) {
				return errdefs.NewCustomErrorf(errdefs.ErrTypeInvalidGeometry, "%s and %s panes overlap", panes[i].name, panes[j].name)
			}
		}
	}
	return nil
}
