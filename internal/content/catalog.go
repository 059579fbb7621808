package content

import (
	"fmt"
	"sort"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/AvengeMedia/dankwizard/internal/errdefs"
)

const CatalogFile = "menus.yaml"

// Option labels with built-in behavior.
const (
	LabelGoBack = "Go Back"
	LabelExit   = "Exit"
)

// MenuDef describes one menu screen.
type MenuDef struct {
	ID           string            `yaml:"-"`
	Title        string            `yaml:"title"`
	Primary      string            `yaml:"primary"`
	Secondary    string            `yaml:"secondary"`
	Parent       string            `yaml:"parent,omitempty"`
	Options      []string          `yaml:"options"`
	Descriptions []string          `yaml:"descriptions"`
	Submenus     map[string]string `yaml:"submenus,omitempty"`
}

// Catalog is the set of menus the wizard can show.
type Catalog struct {
	Root  string              `yaml:"root"`
	Menus map[string]*MenuDef `yaml:"menus"`
}

// LoadCatalog decodes and validates the catalog file from fsys.
func LoadCatalog(fsys afero.Fs) (*Catalog, error) {
	data, err := afero.ReadFile(fsys, CatalogFile)
	if err != nil {
		return nil, errdefs.NewCustomErrorf(errdefs.ErrTypeMissingResource, "failed to load %s: %v", CatalogFile, err)
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errdefs.NewCustomErrorf(errdefs.ErrTypeInvalidCatalog, "failed to parse menu catalog: %v", err)
	}
	for id, def := range c.Menus {
		if def == nil {
			return nil, errdefs.NewCustomErrorf(errdefs.ErrTypeInvalidCatalog, "menu %q has no definition", id)
		}
		def.ID = id
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Menu returns the definition for id.
func (c *Catalog) Menu(id string) (*MenuDef, error) {
	def, ok := c.Menus[id]
	if !ok {
		return nil, errdefs.NewCustomErrorf(errdefs.ErrTypeUnknownMenu, "unknown menu %q", id)
	}
	return def, nil
}

// Validate checks option/description alignment and every menu reference.
func (c *Catalog) Validate() error {
	if _, err := c.Menu(c.Root); err != nil {
		return fmt.Errorf("root menu: %w", err)
	}

	ids := make([]string, 0, len(c.Menus))
	for id := range c.Menus {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		def := c.Menus[id]
		if len(def.Options) == 0 {
			return errdefs.NewCustomErrorf(errdefs.ErrTypeEmptyMenu, "menu %q has no options", id)
		}
		if len(def.Descriptions) != len(def.Options) {
			return errdefs.NewCustomErrorf(errdefs.ErrTypeMisalignedDescriptions,
				"menu %q has %d options but %d descriptions", id, len(def.Options), len(def.Descriptions))
		}
		if def.Primary == "" || def.Secondary == "" {
			return errdefs.NewCustomErrorf(errdefs.ErrTypeInvalidCatalog, "menu %q must name a primary and a secondary resource", id)
		}

		labels := make(map[string]bool, len(def.Options))
		for _, label := range def.Options {
			labels[label] = true
		}
		for label, target := range def.Submenus {
			if !labels[label] {
				return errdefs.NewCustomErrorf(errdefs.ErrTypeInvalidCatalog, "menu %q maps submenu for unknown option %q", id, label)
			}
			if _, err := c.Menu(target); err != nil {
				return fmt.Errorf("menu %q option %q: %w", id, label, err)
			}
		}
		if labels[LabelGoBack] {
			if def.Parent == "" {
				return errdefs.NewCustomErrorf(errdefs.ErrTypeInvalidCatalog, "menu %q offers %q without a parent", id, LabelGoBack)
			}
			if _, err := c.Menu(def.Parent); err != nil {
				return fmt.Errorf("menu %q parent: %w", id, err)
			}
		}
	}
	return nil
}
