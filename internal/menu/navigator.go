package menu

import (
	"github.com/AvengeMedia/dankwizard/internal/errdefs"
)

// Key is a decoded key event as far as menu navigation cares.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	// KeyEnter is the carriage-return / keypad Enter key.
	KeyEnter
	// KeyReturn is a bare line feed, which some terminals send for Enter.
	KeyReturn
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEnter:
		return "enter"
	case KeyReturn:
		return "return"
	default:
		return "other"
	}
}

// NoSelection is returned by Navigate when the key did not confirm anything.
const NoSelection = 0

// Navigator holds the highlight of a menu with a fixed number of options.
// The highlight is always within [1, count].
type Navigator struct {
	highlight int
	count     int
}

// NewNavigator starts on the first option. A menu with no options is a
// configuration error.
func NewNavigator(count int) (*Navigator, error) {
	if count < 1 {
		return nil, errdefs.NewCustomErrorf(errdefs.ErrTypeEmptyMenu, "cannot navigate %d options", count)
	}
	return &Navigator{highlight: 1, count: count}, nil
}

func (n *Navigator) Highlight() int {
	return n.highlight
}

func (n *Navigator) Count() int {
	return n.count
}

// Navigate applies one key event. Up and Down wrap around the ends, both
// confirm keys return the current highlight without moving it, and any other
// key is ignored.
func (n *Navigator) Navigate(k Key) int {
	switch k {
	case KeyUp:
		if n.highlight == 1 {
			n.highlight = n.count
		} else {
			n.highlight--
		}
	case KeyDown:
		if n.highlight == n.count {
			n.highlight = 1
		} else {
			n.highlight++
		}
	case KeyEnter, KeyReturn:
		return n.highlight
	}
	return NoSelection
}
