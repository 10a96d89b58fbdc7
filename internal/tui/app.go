package tui

import (
	"fmt"
	"strings"

	"saleshub-cli/internal/docs"

	"github.com/charmbracelet/lipgloss"
)

// tab bar, spacer and footer
const chromeLines = 3

func (m appModel) bodyHeight() int {
	return max(m.height-chromeLines, 3)
}

func (m appModel) View() string {
	if m.modal != modalNone {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderModal())
	}

	var body string
	if m.view == viewDepartments {
		body = m.deptTable.View()
		if len(m.deptRows) == 0 {
			body += "\n" + styleMuted().Render("No departments. Press n to create one.")
		}
	} else {
		body = m.sellerTable.View()
		if len(m.sellerRows) == 0 {
			body += "\n" + styleMuted().Render("No sellers. Press n to create one.")
		}
	}

	return strings.Join([]string{
		m.renderTabs(),
		"",
		normalizePane(body, m.width, m.bodyHeight()),
		m.renderFooter(),
	}, "\n")
}

func (m appModel) renderTabs() string {
	active := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(colorAccentFg).
		Background(colorAccent)
	inactive := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorMuted)
	tabs := make([]string, 0, 2)
	for _, v := range []view{viewDepartments, viewSellers} {
		label := v.title()
		if v == viewDepartments && m.departments.List.Loaded() {
			label = fmt.Sprintf("%s (%d)", label, len(m.deptRows))
		}
		if v == viewSellers && m.sellers.List.Loaded() {
			label = fmt.Sprintf("%s (%d)", label, len(m.sellerRows))
		}
		if v == m.view {
			tabs = append(tabs, active.Render(label))
		} else {
			tabs = append(tabs, inactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m appModel) renderFooter() string {
	if m.minibuffer != "" {
		return normalizePane(m.minibuffer, m.width, 1)
	}
	return normalizePane(m.help.ShortHelpView(keys.shortHelp()), m.width, 1)
}

func (m appModel) renderModal() string {
	switch m.modal {
	case modalForm:
		return m.renderFormModal()
	case modalConfirmDelete:
		box := renderConfirmModal(m.width, m.confirm, "Yes", "No", m.confirmFocus, m.deleting)
		if m.minibuffer != "" {
			note := styleError().Width(modalWidth(m.width)).Render(m.minibuffer)
			box = lipgloss.JoinVertical(lipgloss.Left, box, note)
		}
		return box
	case modalAlert:
		return renderAlertModal(m.width, m.alert)
	case modalHelp:
		return m.renderHelpModal()
	default:
		return ""
	}
}

func (m appModel) renderFormModal() string {
	title := "Department"
	isNew := m.deptDraft != nil && m.deptDraft.id == 0
	if m.formView == viewSellers {
		title = "Seller"
		isNew = m.sellerDraft != nil && m.sellerDraft.id == 0
	}
	if isNew {
		title = "New " + strings.ToLower(title)
	} else {
		title = "Edit " + strings.ToLower(title)
	}

	bodyW := modalBodyWidth(m.width)
	parts := []string{}
	if m.form != nil {
		parts = append(parts, m.form.View())
	}
	if m.formErr != "" {
		parts = append(parts, styleError().Width(bodyW).Render(m.formErr))
	}
	if m.minibuffer != "" {
		parts = append(parts, styleMuted().Width(bodyW).Render(m.minibuffer))
	}
	help := "enter: next/save   esc: cancel"
	if m.saving {
		help = "Saving…"
	}
	parts = append(parts, styleMuted().Width(bodyW).Render(help))
	return renderModalBox(m.width, title, strings.Join(parts, "\n\n"))
}

func (m appModel) renderHelpModal() string {
	md, ok := docs.Get("tui")
	if !ok {
		md = "No help available."
	}
	bodyW := modalBodyWidth(m.width)
	body := normalizePane(renderMarkdown(md, bodyW), bodyW, max(m.height-8, 5))
	return renderModalBox(m.width, "Help", body+"\n\n"+styleMuted().Render("esc/?: close"))
}
