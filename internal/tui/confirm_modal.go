package tui

import (
	"strings"

	"saleshub-cli/internal/crud"

	"github.com/charmbracelet/lipgloss"
)

const (
	modalMaxWidth = 72
	modalMinWidth = 28
)

func modalWidth(width int) int {
	return min(max(width-8, modalMinWidth), modalMaxWidth)
}

// modalBodyWidth is the usable text width inside renderModalBox.
func modalBodyWidth(width int) int {
	return modalWidth(width) - 4
}

func renderModalBox(width int, title string, body string) string {
	w := modalWidth(width)
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorModalHeaderFg).
		Background(colorModalHeaderBg).
		Width(w - 4).
		Render(title)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 1).
		Width(w - 2)
	return box.Render(header + "\n\n" + body)
}

func renderConfirmModal(width int, p crud.Prompt, confirmLabel string, cancelLabel string, focus confirmModalFocus, busy bool) string {
	// No borders on the buttons: nested borders inside a modal with a
	// background color leave artifacts on some terminals.
	btnBase := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	btnActive := btnBase.
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)

	confirm := btnBase.Render(confirmLabel)
	cancel := btnBase.Render(cancelLabel)
	if focus == confirmFocusConfirm {
		confirm = btnActive.Render(confirmLabel)
	} else {
		cancel = btnActive.Render(cancelLabel)
	}
	sep := lipgloss.NewStyle().Background(colorControlBg).Render(" ")
	controls := lipgloss.JoinHorizontal(lipgloss.Top, confirm, sep, cancel)

	bodyW := modalBodyWidth(width)
	help := styleMuted().Width(bodyW).Render("tab: focus   enter: select   y: yes   n/esc: cancel")
	if busy {
		controls = styleMuted().Render("Deleting…")
		help = ""
	}

	content := strings.Join([]string{
		lipgloss.NewStyle().Bold(true).Render(p.Header),
		"",
		p.Question,
		"",
		controls,
		"",
		help,
	}, "\n")
	return renderModalBox(width, p.Title, content)
}

func renderAlertModal(width int, a crud.Alert) string {
	bodyW := modalBodyWidth(width)
	content := strings.Join([]string{
		styleError().Width(bodyW).Render(a.Header),
		"",
		lipgloss.NewStyle().Width(bodyW).Render(a.Message),
		"",
		styleMuted().Width(bodyW).Render("enter/esc: close"),
	}, "\n")
	return renderModalBox(width, a.Title, content)
}
