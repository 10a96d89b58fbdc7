package tui

import (
	"context"

	"saleshub-cli/internal/logging"
	"saleshub-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// StateStore persists the screen and selection between runs.
type StateStore interface {
	LoadTUIState() (*store.TUIState, error)
	SaveTUIState(*store.TUIState) error
}

type Options struct {
	Departments DepartmentService
	Sellers     SellerService
	// Theme is the configured theme (light, dark or auto).
	Theme string
	// State is optional.
	State StateStore
}

// Run starts the interactive TUI and blocks until the user quits or ctx ends.
func Run(ctx context.Context, opts Options) error {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)

	log := logging.FromContext(ctx)
	m := newAppModel(ctx, opts.Departments, opts.Sellers)
	if opts.State != nil {
		st, err := opts.State.LoadTUIState()
		if err != nil {
			log.Warn("load tui state", "error", err)
		} else {
			m.restoreState(st)
		}
	}

	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		log.Error("tui exited", "error", err)
	}
	if fm, ok := final.(appModel); ok && opts.State != nil {
		if serr := opts.State.SaveTUIState(fm.snapshotState()); serr != nil {
			log.Warn("save tui state", "error", serr)
		}
	}
	return err
}
