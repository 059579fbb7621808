package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AvengeMedia/dankwizard/internal/content"
	"github.com/AvengeMedia/dankwizard/internal/layout"
	"github.com/AvengeMedia/dankwizard/internal/log"
	"github.com/AvengeMedia/dankwizard/internal/menu"
)

const defaultPause = 2 * time.Second

type Model struct {
	version string
	catalog *content.Catalog
	loader  *content.Loader
	layout  layout.Layout
	styles  Styles
	keys    keyMap
	pause   time.Duration

	state   ApplicationState
	session *Session
	caption string
	width   int
	height  int
	err     error
}

type ModelOption func(*Model)

// WithPause changes how long a leaf confirmation stays on screen.
func WithPause(d time.Duration) ModelOption {
	return func(m *Model) { m.pause = d }
}

// NewModel builds every menu of the catalog once, so configuration errors
// surface before the first frame, then starts the root menu.
func NewModel(version string, catalog *content.Catalog, loader *content.Loader, l layout.Layout, opts ...ModelOption) (Model, error) {
	m := Model{
		version: version,
		catalog: catalog,
		loader:  loader,
		layout:  l,
		styles:  NewStyles(TerminalTheme()),
		keys:    defaultKeyMap(),
		pause:   defaultPause,
		state:   StateMenu,
	}
	for _, opt := range opts {
		opt(&m)
	}

	if err := l.Validate(); err != nil {
		return Model{}, err
	}
	for id := range catalog.Menus {
		if _, err := m.newSession(id); err != nil {
			return Model{}, err
		}
	}

	if err := m.startSession(catalog.Root); err != nil {
		return Model{}, err
	}
	log.Info("wizard ready", "version", version, "menus", len(catalog.Menus))
	return m, nil
}

func (m *Model) newSession(id string) (*Session, error) {
	def, err := m.catalog.Menu(id)
	if err != nil {
		return nil, err
	}
	text, err := m.loader.LoadScreen(def)
	if err != nil {
		return nil, fmt.Errorf("menu %q: %w", id, err)
	}
	return NewSession(def, text, m.layout, m.styles)
}

// startSession replaces the active session with a fresh one for id. Nothing
// carries over from the previous session, including its highlight.
func (m *Model) startSession(id string) error {
	s, err := m.newSession(id)
	if err != nil {
		return err
	}
	m.session = s
	m.caption = instructions
	m.state = StateMenu
	log.Debug("session started", "menu", id)
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case pauseElapsedMsg:
		if m.state == StatePaused {
			m.state = StateMenu
			m.caption = instructions
		}
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.state = StateExiting
			return m, tea.Quit
		}
		switch m.state {
		case StateMenu:
			return m.updateMenuState(msg)
		case StatePaused:
			log.Debug("key discarded during pause", "key", msg.String())
		}
	}
	return m, nil
}

func (m Model) updateMenuState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys.translate(msg)
	selection := m.session.HandleKey(k)
	if selection == menu.NoSelection {
		return m, nil
	}

	label := m.session.Label(selection)
	log.Info("option selected", "menu", m.session.ID(), "index", selection, "label", label)
	return m.dispatch(label)
}

// dispatch acts on a confirmed option label.
func (m Model) dispatch(label string) (tea.Model, tea.Cmd) {
	if target, ok := m.session.Submenu(label); ok {
		return m.enter(target)
	}

	switch label {
	case content.LabelGoBack:
		return m.enter(m.session.Parent())
	case content.LabelExit:
		m.state = StateExiting
		return m, tea.Quit
	}

	m.state = StatePaused
	m.caption = "Selection: " + label
	return m, tea.Tick(m.pause, func(time.Time) tea.Msg {
		return pauseElapsedMsg{}
	})
}

func (m Model) enter(id string) (tea.Model, tea.Cmd) {
	if err := m.startSession(id); err != nil {
		log.Error("failed to start menu", "menu", id, "err", err)
		m.err = err
		m.state = StateExiting
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	if m.state == StateExiting {
		return ""
	}

	scr := newScreen(m.layout.Rows())
	m.session.Render(scr)

	// The caption sits two rows above the bottom of the terminal, never
	// over the panes.
	row := m.layout.Rows() + 1
	if m.height-2 > row {
		row = m.height - 2
	}
	scr.place(row, textColumn, []string{m.styles.Caption.Render(m.caption)})
	return scr.String()
}

func (m Model) State() ApplicationState { return m.state }
func (m Model) Session() *Session       { return m.session }
func (m Model) Caption() string         { return m.caption }

// Err is set when the wizard had to stop because a menu could not be started.
func (m Model) Err() error { return m.err }
