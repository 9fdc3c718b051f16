package tui

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/halcyard/tempo/internal/catalog"
)

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// NewProgram creates the dashboard program. The program uses the
// alternate screen buffer for a clean TUI experience.
func NewProgram(catalogPath string, reloads <-chan struct{}, opts ...tea.ProgramOption) *Program {
	model := NewModel(catalogPath, reloads)

	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
	}
	allOpts = append(allOpts, opts...)

	return tea.NewProgram(model, allOpts...)
}

// Run launches the dashboard and blocks until it exits. The catalog file
// is watched for edits so entries refresh live.
func Run(catalogPath string) error {
	// The watcher observes the catalog's directory, which may not exist
	// until the first save.
	if err := os.MkdirAll(filepath.Dir(catalogPath), 0o755); err != nil {
		return err
	}

	w, err := catalog.NewWatcher(catalogPath)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	p := NewProgram(catalogPath, w.Reloads)
	_, err = p.Run()
	return err
}
