package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/AvengeMedia/dankwizard/internal/content"
	"github.com/AvengeMedia/dankwizard/internal/errdefs"
	"github.com/AvengeMedia/dankwizard/internal/layout"
	"github.com/AvengeMedia/dankwizard/internal/log"
	"github.com/AvengeMedia/dankwizard/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:           "dankwizard",
	Short:         "Installation wizard",
	Long:          "Interactive installation wizard.\n\nNavigate with the arrow keys and press Enter to select an option.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWizard,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run:   runVersion,
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Fprintf(cmd.OutOrStdout(), "dankwizard v%s\n", Version)
}

// newWizard loads the bundled catalog and builds the model. Any configuration
// problem surfaces here, before the terminal is taken over.
func newWizard() (tui.Model, error) {
	fsys := content.EmbeddedFs()
	catalog, err := content.LoadCatalog(fsys)
	if err != nil {
		return tui.Model{}, err
	}
	return tui.NewModel(Version, catalog, content.NewLoader(fsys), layout.Default())
}

func runWizard(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errdefs.ErrNotTerminal
	}

	model, restore, err := prepareWizard()
	if err != nil {
		return err
	}
	defer restore()

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

// prepareWizard moves logging to the log file before building the model.
// restore puts logging back on stderr.
func prepareWizard() (model tui.Model, restore func(), err error) {
	restore = redirectLog()
	model, err = newWizard()
	if err != nil {
		restore()
		return tui.Model{}, nil, fmt.Errorf("invalid wizard configuration: %w", err)
	}
	return model, restore, nil
}

func redirectLog() func() {
	path, err := logPath()
	if err != nil {
		return func() {}
	}
	closer, err := log.OpenFile(path)
	if err != nil {
		return func() {}
	}
	return func() { closer.Close() }
}

func logPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "dankwizard", "dankwizard.log"), nil
}
