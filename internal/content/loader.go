package content

import (
	"embed"
	"io/fs"
	"strings"

	"github.com/spf13/afero"

	"github.com/AvengeMedia/dankwizard/internal/errdefs"
)

//go:embed assets
var assets embed.FS

// EmbeddedFs exposes the bundled screen text and menu catalog.
func EmbeddedFs() afero.Fs {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	return afero.FromIOFS{FS: sub}
}

// Loader reads named text resources as line sequences.
type Loader struct {
	fs afero.Fs
}

func NewLoader(fsys afero.Fs) *Loader {
	return &Loader{fs: fsys}
}

// ReadLines returns the resource split into lines with line terminators
// trimmed. A missing resource is a configuration error.
func (l *Loader) ReadLines(name string) ([]string, error) {
	data, err := afero.ReadFile(l.fs, name)
	if err != nil {
		return nil, errdefs.NewCustomErrorf(errdefs.ErrTypeMissingResource, "failed to load %s: %v", name, err)
	}

	text := string(data)
	if text == "" {
		return nil, nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	return lines, nil
}

// Screen holds the two text blocks shown in a menu's static pane.
type Screen struct {
	Primary   []string
	Secondary []string
}

// LoadScreen reads the primary and secondary resources of one menu.
func (l *Loader) LoadScreen(def *MenuDef) (Screen, error) {
	primary, err := l.ReadLines(def.Primary)
	if err != nil {
		return Screen{}, err
	}
	secondary, err := l.ReadLines(def.Secondary)
	if err != nil {
		return Screen{}, err
	}
	return Screen{Primary: primary, Secondary: secondary}, nil
}
