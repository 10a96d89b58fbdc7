package cli

import (
	"context"
	"os"

	"saleshub-cli/internal/crud"
	"saleshub-cli/internal/logging"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func isInteractive(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// deleteConfirmer answers yes when --yes was given, otherwise asks on the
// terminal. Without a terminal the prompt fails, which the gate treats as no.
func deleteConfirmer(cmd *cobra.Command, yes bool) crud.Confirmer {
	return crud.ConfirmFunc(func(ctx context.Context, p crud.Prompt) (bool, error) {
		if yes {
			return true, nil
		}
		if !isInteractive(cmd) {
			return false, errNeedsYes
		}
		ok := false
		err := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(p.Title).
				Description(p.Header + "\n" + p.Question).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		)).RunWithContext(ctx)
		if err != nil {
			return false, err
		}
		return ok, nil
	})
}

// notifyLog logs data changes made from the CLI.
func notifyLog(cmd *cobra.Command, kind string) crud.DataChangeListener {
	return crud.ListenerFunc(func() {
		logging.FromContext(cmd.Context()).Debug("data changed", "kind", kind)
	})
}

// submit runs the same open/submit dialog workflow the TUI uses; opened has a
// zero id for creates.
func submit[E crud.Entity](cmd *cobra.Command, ctrl *crud.Controller[E], kind string, opened, edited E) (E, error) {
	var zero E
	d, err := ctrl.Dialog.Open(cmd.Context(), opened, notifyLog(cmd, kind))
	if err != nil {
		return zero, err
	}
	saved, err := d.Submit(cmd.Context(), edited)
	if err != nil {
		d.Cancel()
		return zero, err
	}
	return saved, nil
}
