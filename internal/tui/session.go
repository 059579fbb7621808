package tui

import (
	"fmt"

	"github.com/AvengeMedia/dankwizard/internal/content"
	"github.com/AvengeMedia/dankwizard/internal/errdefs"
	"github.com/AvengeMedia/dankwizard/internal/layout"
	"github.com/AvengeMedia/dankwizard/internal/menu"
)

const instructions = "Use arrow keys to navigate up and down. Press enter to make a selection."

// Session is one running menu screen: static pane, option list and details
// pane. A new Session always starts on the first option.
type Session struct {
	def          *content.MenuDef
	static       *StaticContentPane
	options      *OptionMenu
	details      *DetailsPane
	descriptions []string
}

// NewSession validates the whole data model before anything is drawn.
func NewSession(def *content.MenuDef, text content.Screen, l layout.Layout, styles Styles) (*Session, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	opts, err := menu.NewOptions(def.Options)
	if err != nil {
		return nil, fmt.Errorf("menu %q: %w", def.ID, err)
	}
	if len(def.Descriptions) != opts.Len() {
		return nil, errdefs.NewCustomErrorf(errdefs.ErrTypeMisalignedDescriptions,
			"menu %q has %d options but %d descriptions", def.ID, opts.Len(), len(def.Descriptions))
	}

	optionMenu, err := NewOptionMenu(l.Menu, styles, def.Title, opts)
	if err != nil {
		return nil, fmt.Errorf("menu %q: %w", def.ID, err)
	}

	details := NewDetailsPane(l.Details, styles)
	for _, d := range def.Descriptions {
		if err := details.Check(d); err != nil {
			return nil, fmt.Errorf("menu %q: %w", def.ID, err)
		}
	}

	static, err := NewStaticContentPane(l.Main, styles, text)
	if err != nil {
		return nil, fmt.Errorf("menu %q: %w", def.ID, err)
	}

	return &Session{
		def:          def,
		static:       static,
		options:      optionMenu,
		details:      details,
		descriptions: append([]string(nil), def.Descriptions...),
	}, nil
}

func (s *Session) ID() string        { return s.def.ID }
func (s *Session) Parent() string    { return s.def.Parent }
func (s *Session) Highlight() int    { return s.options.Highlight() }
func (s *Session) Options() []string { return s.options.Options() }

// Label returns the option label for a 1-based index.
func (s *Session) Label(index int) string { return s.options.Label(index) }

// Submenu returns the menu id the label opens, if any.
func (s *Session) Submenu(label string) (string, bool) {
	id, ok := s.def.Submenus[label]
	return id, ok
}

// Description is the text the details pane must show right now.
func (s *Session) Description() string {
	return s.descriptions[s.options.Highlight()-1]
}

// DetailsLines is the wrapped form of Description.
func (s *Session) DetailsLines() []string {
	return s.details.Wrap(s.Description())
}

// HandleKey applies one key event. It returns the confirmed index or
// menu.NoSelection.
func (s *Session) HandleKey(k menu.Key) int {
	return s.options.Navigate(k)
}

// Render places every pane of the session on scr. The details pane is redrawn
// from the current highlight on every call.
func (s *Session) Render(scr *screen) {
	main := s.static.Rect()
	scr.place(main.Y, main.X, s.static.Display())

	opts := s.options.Rect()
	scr.place(opts.Y, opts.X, s.options.Render())

	det := s.details.Rect()
	scr.place(det.Y, det.X, s.details.Render(s.Description()))
}
