package tui

import (
	"fmt"
	"time"

	"saleshub-cli/internal/crud"
	"saleshub-cli/internal/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

const minibufferTTL = 3 * time.Second

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.syncTables()
		if m.form != nil {
			m.form = m.form.WithWidth(modalBodyWidth(m.width))
		}
		return m, nil

	case dataChangedMsg:
		return m, tea.Batch(m.reloadAll(), m.changes.wait(m.ctx))

	case listLoadedMsg[model.Department]:
		applied, again, err := m.departments.List.Apply(msg.reload, msg.items, msg.err)
		if applied {
			m.deptRows = msg.rows
			m.syncTables()
			selectPending(&m.deptTable, m.deptRows, &m.pendingDeptID)
		}
		return m.afterLoad(again, err, func() tea.Cmd { return loadList(m.ctx, m.departments) })

	case listLoadedMsg[model.Seller]:
		applied, again, err := m.sellers.List.Apply(msg.reload, msg.items, msg.err)
		if applied {
			m.sellerRows = msg.rows
			m.syncTables()
			selectPending(&m.sellerTable, m.sellerRows, &m.pendingSellerID)
		}
		return m.afterLoad(again, err, func() tea.Cmd { return loadList(m.ctx, m.sellers) })

	case formSavedMsg:
		m.saving = false
		if msg.err != nil {
			// The dialog stays open; rebuild the form from the draft.
			m.formErr = crud.AlertFor(msg.err).Message
			m.log.Warn("save failed", "kind", msg.view.kind(), "error", msg.err)
			m.rebuildForm()
			return m, m.form.Init()
		}
		m.closeForm()
		verb := "Updated"
		if msg.isNew {
			verb = "Created"
		}
		return m, m.showMinibuffer(fmt.Sprintf("%s %s: %s", verb, msg.view.kind(), msg.name))

	case deleteDoneMsg:
		m.deleting = false
		m.modal = modalNone
		if msg.err != nil {
			m.showAlert(msg.err)
			return m, nil
		}
		if !msg.deleted {
			return m, nil
		}
		return m, m.showMinibuffer(fmt.Sprintf("Deleted %s: %s", msg.view.kind(), msg.name))

	case minibufferClearMsg:
		if msg.seq == m.minibufferSeq {
			m.minibuffer = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch m.modal {
		case modalForm:
			return m.updateForm(msg)
		case modalConfirmDelete:
			return m.updateConfirmDelete(msg)
		case modalAlert, modalHelp:
			if key.Matches(msg, keys.Cancel, keys.Confirm, keys.Quit, keys.Help) {
				m.modal = modalNone
			}
			return m, nil
		}
		return m.updateList(msg)
	}

	// huh sends its own messages (focus changes, cursor blink) while a form is open.
	if m.modal == modalForm && m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m appModel) afterLoad(again bool, err error, next func() tea.Cmd) (tea.Model, tea.Cmd) {
	if err != nil {
		m.log.Warn("reload failed", "error", err)
		m.showAlert(err)
	}
	if again {
		return m, next()
	}
	return m, nil
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Switch):
		if m.view == viewDepartments {
			m.view = viewSellers
		} else {
			m.view = viewDepartments
		}
		return m, nil
	case key.Matches(msg, keys.Reload):
		return m, m.reloadAll()
	case key.Matches(msg, keys.Help):
		m.modal = modalHelp
		return m, nil
	case key.Matches(msg, keys.New):
		return m.openCreate()
	case key.Matches(msg, keys.Edit):
		return m.runRowAction(false)
	case key.Matches(msg, keys.Delete):
		return m.runRowAction(true)
	}

	var cmd tea.Cmd
	if m.view == viewDepartments {
		m.deptTable, cmd = m.deptTable.Update(msg)
	} else {
		m.sellerTable, cmd = m.sellerTable.Update(msg)
	}
	return m, cmd
}

func (m appModel) openCreate() (tea.Model, tea.Cmd) {
	var err error
	if m.view == viewDepartments {
		_, err = m.departments.Dialog.Open(m.ctx, model.Department{}, m.changes)
	} else {
		_, err = m.sellers.Dialog.Open(m.ctx, model.Seller{}, m.changes)
	}
	if err != nil {
		m.showAlert(err)
		return m, nil
	}
	return m.openActiveForm()
}

// runRowAction resolves the cursor against the current rows and runs the
// row's edit or delete action.
func (m appModel) runRowAction(del bool) (tea.Model, tea.Cmd) {
	var err error
	found := false
	if m.view == viewDepartments {
		if row, ok := crud.Lookup(m.deptRows, m.deptTable.Cursor()); ok {
			found = true
			if del {
				err = row.Delete(m.ctx)
			} else {
				err = row.Edit(m.ctx)
			}
		}
	} else if row, ok := crud.Lookup(m.sellerRows, m.sellerTable.Cursor()); ok {
		found = true
		if del {
			err = row.Delete(m.ctx)
		} else {
			err = row.Edit(m.ctx)
		}
	}
	if !found {
		return m, nil
	}
	if err != nil {
		m.showAlert(err)
		return m, nil
	}
	if del {
		m.openConfirm()
		return m, nil
	}
	return m.openActiveForm()
}

func (m *appModel) openConfirm() {
	if d, ok := m.departments.Gate.Pending(); ok {
		m.confirmView = viewDepartments
		m.confirm = m.departments.Gate.PromptFor(d)
	} else if s, ok := m.sellers.Gate.Pending(); ok {
		m.confirmView = viewSellers
		m.confirm = m.sellers.Gate.PromptFor(s)
	} else {
		return
	}
	m.modal = modalConfirmDelete
	m.confirmFocus = confirmFocusCancel
	m.deleting = false
}

func (m appModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.deleting {
		return m, nil
	}
	switch {
	case key.Matches(msg, keys.Focus):
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
		return m, nil
	case key.Matches(msg, keys.Yes):
		return m.resolveConfirm(true)
	case key.Matches(msg, keys.Cancel, keys.No):
		return m.resolveConfirm(false)
	case key.Matches(msg, keys.Confirm):
		return m.resolveConfirm(m.confirmFocus == confirmFocusConfirm)
	}
	return m, nil
}

func (m appModel) resolveConfirm(yes bool) (tea.Model, tea.Cmd) {
	if !yes {
		var err error
		if m.confirmView == viewDepartments {
			_, err = m.departments.Gate.Resolve(m.ctx, false)
		} else {
			_, err = m.sellers.Gate.Resolve(m.ctx, false)
		}
		m.modal = modalNone
		if err != nil {
			m.showAlert(err)
		}
		return m, nil
	}
	m.deleting = true
	if m.confirmView == viewDepartments {
		return m, resolveDelete(m.ctx, m.departments.Gate, viewDepartments)
	}
	return m, resolveDelete(m.ctx, m.sellers.Gate, viewSellers)
}

// openActiveForm shows the form for whichever dialog is open.
func (m appModel) openActiveForm() (tea.Model, tea.Cmd) {
	if d, ok := m.departments.Dialog.Active(); ok {
		m.formView = viewDepartments
		m.deptDraft = newDepartmentDraft(d.Entity())
	} else if s, ok := m.sellers.Dialog.Active(); ok {
		m.formView = viewSellers
		m.sellerDraft = newSellerDraft(s.Entity())
	} else {
		return m, nil
	}
	m.formErr = ""
	m.saving = false
	m.modal = modalForm
	m.rebuildForm()
	m.log.Debug("form opened", "kind", m.formView.kind())
	return m, m.form.Init()
}

func (m *appModel) rebuildForm() {
	w := modalBodyWidth(m.width)
	if m.formView == viewDepartments {
		m.form = newDepartmentForm(m.deptDraft, w)
	} else {
		m.form = newSellerForm(m.sellerDraft, m.resources.departments, w)
	}
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, keys.Cancel) {
		m.cancelForm()
		return m, nil
	}
	f, cmd := m.form.Update(msg)
	if ff, ok := f.(*huh.Form); ok {
		m.form = ff
	}
	switch m.form.State {
	case huh.StateAborted:
		m.cancelForm()
		return m, nil
	case huh.StateCompleted:
		return m.submitForm()
	}
	return m, cmd
}

func (m appModel) submitForm() (tea.Model, tea.Cmd) {
	if m.formView == viewDepartments {
		d, ok := m.departments.Dialog.Active()
		if !ok {
			m.closeForm()
			return m, nil
		}
		m.saving = true
		return m, submitDialog(m.ctx, d, viewDepartments, m.deptDraft.entity())
	}
	d, ok := m.sellers.Dialog.Active()
	if !ok {
		m.closeForm()
		return m, nil
	}
	s, err := m.sellerDraft.entity()
	if err != nil {
		m.formErr = err.Error()
		m.rebuildForm()
		return m, m.form.Init()
	}
	m.saving = true
	return m, submitDialog(m.ctx, d, viewSellers, s)
}

func (m *appModel) cancelForm() {
	if d, ok := m.departments.Dialog.Active(); ok {
		d.Cancel()
	}
	if d, ok := m.sellers.Dialog.Active(); ok {
		d.Cancel()
	}
	m.closeForm()
}

func (m *appModel) closeForm() {
	m.modal = modalNone
	m.form = nil
	m.formErr = ""
	m.saving = false
}

// showAlert opens the alert modal. While a form or a delete confirmation is
// open the message goes to the minibuffer instead, so the open dialog or the
// pending gate is still resolved by the user.
func (m *appModel) showAlert(err error) {
	a := crud.AlertFor(err)
	if m.modal == modalForm || m.modal == modalConfirmDelete {
		m.minibuffer = a.Header + ": " + a.Message
		return
	}
	m.alert = a
	m.modal = modalAlert
}

func (m *appModel) showMinibuffer(s string) tea.Cmd {
	m.minibuffer = s
	m.minibufferSeq++
	seq := m.minibufferSeq
	return tea.Tick(minibufferTTL, func(time.Time) tea.Msg { return minibufferClearMsg{seq: seq} })
}
