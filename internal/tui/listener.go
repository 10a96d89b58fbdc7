package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// changeNotifier bridges crud.DataChangeListener callbacks, which fire on
// command goroutines, into the Bubble Tea message loop. Bursts of
// notifications coalesce into one pending signal.
type changeNotifier struct {
	ch chan struct{}
}

func newChangeNotifier() *changeNotifier {
	return &changeNotifier{ch: make(chan struct{}, 1)}
}

func (n *changeNotifier) OnDataChanged() {
	select {
	case n.ch <- struct{}{}:
	default:
	}
}

// wait delivers the next dataChangedMsg. It must be re-armed after each one.
func (n *changeNotifier) wait(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-n.ch:
			return dataChangedMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}
