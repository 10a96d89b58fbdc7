package tui

import (
	"saleshub-cli/internal/crud"
	"saleshub-cli/internal/store"

	"github.com/charmbracelet/bubbles/table"
)

func (m *appModel) restoreState(st *store.TUIState) {
	if st == nil {
		return
	}
	if st.View == viewSellers.stateName() {
		m.view = viewSellers
	}
	m.pendingDeptID = st.SelectedDepartmentID
	m.pendingSellerID = st.SelectedSellerID
}

func (m appModel) snapshotState() *store.TUIState {
	st := &store.TUIState{Version: 1, View: m.view.stateName()}
	if row, ok := crud.Lookup(m.deptRows, m.deptTable.Cursor()); ok {
		st.SelectedDepartmentID = row.Entity.EntityID()
	}
	if row, ok := crud.Lookup(m.sellerRows, m.sellerTable.Cursor()); ok {
		st.SelectedSellerID = row.Entity.EntityID()
	}
	return st
}

// selectPending moves the cursor to the row restored from the last run, once
// the first list containing it arrives.
func selectPending[E crud.Entity](t *table.Model, rows []crud.Row[E], id *int64) {
	if *id == 0 {
		return
	}
	for i, r := range rows {
		if r.Entity.EntityID() == *id {
			t.SetCursor(i)
			break
		}
	}
	*id = 0
}
