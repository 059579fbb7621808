package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvengeMedia/dankwizard/internal/content"
	"github.com/AvengeMedia/dankwizard/internal/errdefs"
	"github.com/AvengeMedia/dankwizard/internal/layout"
)

var (
	keyUp     = tea.KeyMsg{Type: tea.KeyUp}
	keyDown   = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter  = tea.KeyMsg{Type: tea.KeyEnter}
	keyLF     = tea.KeyMsg{Type: tea.KeyCtrlJ}
	keyCtrlC  = tea.KeyMsg{Type: tea.KeyCtrlC}
	keyLetter = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}
	keyTab    = tea.KeyMsg{Type: tea.KeyTab}
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	fsys := content.EmbeddedFs()
	catalog, err := content.LoadCatalog(fsys)
	require.NoError(t, err)

	m, err := NewModel("test", catalog, content.NewLoader(fsys), layout.Default(), WithPause(time.Millisecond))
	require.NoError(t, err)
	return m
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "Update returned %T", next)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelStartsOnRootMenu(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, "main", m.Session().ID())
	assert.Equal(t, 1, m.Session().Highlight())
	assert.Equal(t, StateMenu, m.State())
	assert.Equal(t, instructions, m.Caption())
	assert.Nil(t, m.Init())

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Main Menu")
	assert.Contains(t, view, "Details:")
	assert.Contains(t, view, "Perform a basic installation with default")
	assert.Contains(t, view, "Welcome to the installation manager.")
	assert.Contains(t, view, instructions)
}

func TestModelNavigation(t *testing.T) {
	tests := []struct {
		name          string
		keys          []tea.Msg
		wantHighlight int
	}{
		{"down twice", []tea.Msg{keyDown, keyDown}, 3},
		{"up wraps to exit", []tea.Msg{keyUp}, 5},
		{"five downs cycle", []tea.Msg{keyDown, keyDown, keyDown, keyDown, keyDown}, 1},
		{"vim keys", []tea.Msg{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")}, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")}}, 5},
		{"unrecognized keys", []tea.Msg{keyDown, keyLetter, keyTab, keyLetter}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			m, cmd := send(t, m, tt.keys...)
			assert.Nil(t, cmd)
			assert.Equal(t, StateMenu, m.State())
			assert.Equal(t, tt.wantHighlight, m.Session().Highlight())
		})
	}
}

func TestModelDetailsFollowHighlight(t *testing.T) {
	m := newTestModel(t)
	descriptions := []string{
		"Perform a basic installation with default settings.",
		"Customize installation settings to your preference.",
		"Update existing tools to the latest versions.",
		"Access advanced configuration options and settings.",
		"Exit the installation manager.",
	}

	for step := 0; step < len(descriptions)*2; step++ {
		h := m.Session().Highlight()
		want := descriptions[h-1]
		assert.Equal(t, want, m.Session().Description())

		details := NewDetailsPane(layout.Default().Details, m.styles)
		assert.Equal(t, details.Wrap(want), m.Session().DetailsLines())

		view := ansi.Strip(m.View())
		for _, l := range m.Session().DetailsLines() {
			assert.Contains(t, view, l)
		}
		for i, other := range descriptions {
			if i != h-1 {
				assert.NotContains(t, view, details.Wrap(other)[0])
			}
		}

		m, _ = send(t, m, keyDown)
	}
}

func TestModelLeafSelectionPauses(t *testing.T) {
	m := newTestModel(t)

	m, cmd := send(t, m, keyDown, keyEnter)
	require.NotNil(t, cmd)
	assert.Equal(t, StatePaused, m.State())
	assert.Equal(t, "Selection: Custom Installation", m.Caption())
	assert.Equal(t, 2, m.Session().Highlight())
	assert.Contains(t, ansi.Strip(m.View()), "Selection: Custom Installation")

	// input is discarded until the pause ends
	m, _ = send(t, m, keyDown, keyEnter)
	assert.Equal(t, 2, m.Session().Highlight())
	assert.Equal(t, StatePaused, m.State())

	msg := cmd()
	assert.IsType(t, pauseElapsedMsg{}, msg)
	m, _ = send(t, m, msg)
	assert.Equal(t, StateMenu, m.State())
	assert.Equal(t, instructions, m.Caption())
	assert.Equal(t, "main", m.Session().ID())
	assert.Equal(t, 2, m.Session().Highlight())

	m, _ = send(t, m, keyDown)
	assert.Equal(t, 3, m.Session().Highlight())
}

func TestModelLineFeedConfirms(t *testing.T) {
	m := newTestModel(t)
	m, cmd := send(t, m, keyDown, keyDown, keyLF)
	require.NotNil(t, cmd)
	assert.Equal(t, "Selection: Update Tools", m.Caption())
	assert.Equal(t, 3, m.Session().Highlight())
}

func TestModelExit(t *testing.T) {
	m := newTestModel(t)
	m, cmd := send(t, m, keyUp, keyEnter)
	assert.True(t, isQuit(cmd))
	assert.Equal(t, StateExiting, m.State())
	assert.Empty(t, m.View())
	assert.NoError(t, m.Err())
}

func TestModelCtrlCQuits(t *testing.T) {
	m := newTestModel(t)
	m, cmd := send(t, m, keyCtrlC)
	assert.True(t, isQuit(cmd))
	assert.Equal(t, StateExiting, m.State())
}

func TestModelSubmenuRoundTrip(t *testing.T) {
	m := newTestModel(t)
	root := m.Session()

	m, cmd := send(t, m, keyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, "basic", m.Session().ID())
	assert.Equal(t, []string{"Install", "Go Back"}, m.Session().Options())
	assert.Equal(t, 1, m.Session().Highlight())

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Basic Installation")
	assert.Contains(t, view, "Start the basic installation process.")
	assert.NotContains(t, view, "Main Menu")

	m, _ = send(t, m, keyDown, keyEnter)
	assert.Equal(t, "main", m.Session().ID())
	assert.Equal(t, 1, m.Session().Highlight())
	assert.NotSame(t, root, m.Session(), "going back builds a fresh session")
	assert.Equal(t, instructions, m.Caption())
}

func TestModelGoBackResetsHighlight(t *testing.T) {
	m := newTestModel(t)

	// leave the main menu highlighted elsewhere, then wander into the submenu
	m, _ = send(t, m, keyDown, keyDown, keyUp, keyUp, keyEnter)
	require.Equal(t, "basic", m.Session().ID())

	m, _ = send(t, m, keyUp, keyEnter)
	require.Equal(t, "main", m.Session().ID())
	assert.Equal(t, 1, m.Session().Highlight())
}

func TestModelExitFromSubmenu(t *testing.T) {
	fsys := memCatalog(t, `root: main
menus:
  main:
    title: Main Menu
    primary: p.txt
    secondary: s.txt
    options: [Nested, Exit]
    descriptions: [Open nested., Leave.]
    submenus:
      Nested: nested
  nested:
    title: Nested
    primary: p.txt
    secondary: s.txt
    parent: main
    options: [Exit, Go Back]
    descriptions: [Leave from here., Back up.]
`)
	catalog, err := content.LoadCatalog(fsys)
	require.NoError(t, err)
	m, err := NewModel("test", catalog, content.NewLoader(fsys), layout.Default())
	require.NoError(t, err)

	m, cmd := send(t, m, keyEnter)
	assert.Nil(t, cmd)
	require.Equal(t, "nested", m.Session().ID())

	_, cmd = send(t, m, keyEnter)
	assert.True(t, isQuit(cmd))
}

func TestModelCaptionPlacement(t *testing.T) {
	m := newTestModel(t)

	lines := strings.Split(ansi.Strip(m.View()), "\n")
	rows := layout.Default().Rows()
	require.Len(t, lines, rows+2)
	assert.Equal(t, "  "+instructions, lines[rows+1])

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	lines = strings.Split(ansi.Strip(m.View()), "\n")
	require.Len(t, lines, 39)
	assert.Equal(t, "  "+instructions, lines[38])
}

func memCatalog(t *testing.T, catalog string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, content.CatalogFile, []byte(catalog), 0644))
	require.NoError(t, afero.WriteFile(fsys, "p.txt", []byte("TITLE\n"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "s.txt", []byte("subtitle\n"), 0644))
	return fsys
}

func TestNewModelConfigurationErrors(t *testing.T) {
	tests := []struct {
		name    string
		catalog string
		errType errdefs.ErrorType
	}{
		{
			name: "too many options",
			catalog: `root: main
menus:
  main:
    title: Main
    primary: p.txt
    secondary: s.txt
    options: [a, b, c, d, e, Exit]
    descriptions: [a, b, c, d, e, f]
`,
			errType: errdefs.ErrTypeMenuOverflow,
		},
		{
			name: "missing text resource in submenu",
			catalog: `root: main
menus:
  main:
    title: Main
    primary: p.txt
    secondary: s.txt
    options: [Sub, Exit]
    descriptions: [a, b]
    submenus:
      Sub: sub
  sub:
    title: Sub
    primary: p.txt
    secondary: nowhere.txt
    parent: main
    options: [Go Back]
    descriptions: [a]
`,
			errType: errdefs.ErrTypeMissingResource,
		},
		{
			name: "description too long for details pane",
			catalog: `root: main
menus:
  main:
    title: Main
    primary: p.txt
    secondary: s.txt
    options: [Exit]
    descriptions: ["` + strings.Repeat("far too many words here ", 15) + `"]
`,
			errType: errdefs.ErrTypeContentOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := memCatalog(t, tt.catalog)
			catalog, err := content.LoadCatalog(fsys)
			require.NoError(t, err)

			_, err = NewModel("test", catalog, content.NewLoader(fsys), layout.Default())
			require.Error(t, err)
			assert.True(t, errdefs.IsType(err, tt.errType), "got %v", err)
		})
	}
}

func TestNewModelInvalidLayout(t *testing.T) {
	fsys := content.EmbeddedFs()
	catalog, err := content.LoadCatalog(fsys)
	require.NoError(t, err)

	l := layout.Default()
	l.Details.X = l.Menu.X
	_, err = NewModel("test", catalog, content.NewLoader(fsys), l)
	assert.True(t, errdefs.IsType(err, errdefs.ErrTypeInvalidGeometry))
}
