package tui

import (
	"testing"

	"saleshub-cli/internal/store"
)

func TestState_RestoresViewAndSelection(t *testing.T) {
	m, deps, sellers := newTestApp(t)
	mustDepartment(t, deps, "Appliances")
	books := mustDepartment(t, deps, "Books")
	mustSeller(t, sellers, "Ann Lee", books)
	bob := mustSeller(t, sellers, "Bob Brown", books)

	m.restoreState(&store.TUIState{
		Version:              1,
		View:                 "sellers",
		SelectedDepartmentID: books.ID,
		SelectedSellerID:     bob.ID,
	})
	m = loadAll(t, m)

	if m.view != viewSellers {
		t.Fatalf("expected sellers view, got %v", m.view)
	}
	if got := m.deptTable.Cursor(); got != 1 {
		t.Fatalf("expected department cursor on Books (1), got %d", got)
	}
	if got := m.sellerTable.Cursor(); got != 1 {
		t.Fatalf("expected seller cursor on Bob (1), got %d", got)
	}
	if m.pendingDeptID != 0 || m.pendingSellerID != 0 {
		t.Fatalf("expected pending selection to be consumed")
	}

	st := m.snapshotState()
	if st.View != "sellers" || st.SelectedDepartmentID != books.ID || st.SelectedSellerID != bob.ID {
		t.Fatalf("unexpected snapshot: %#v", st)
	}
}

func TestState_UnknownSelectionIsIgnored(t *testing.T) {
	m, deps, _ := newTestApp(t)
	mustDepartment(t, deps, "Appliances")

	m.restoreState(&store.TUIState{Version: 1, View: "bogus", SelectedDepartmentID: 999})
	m = loadAll(t, m)

	if m.view != viewDepartments {
		t.Fatalf("expected departments view, got %v", m.view)
	}
	if got := m.deptTable.Cursor(); got != 0 {
		t.Fatalf("expected cursor 0, got %d", got)
	}
}

func TestState_SaveLoadThroughStore(t *testing.T) {
	s := store.Store{Dir: t.TempDir()}
	var _ StateStore = s

	if err := s.SaveTUIState(&store.TUIState{View: "sellers", SelectedSellerID: 3}); err != nil {
		t.Fatalf("save: %v", err)
	}
	st, err := s.LoadTUIState()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	m, _, _ := newTestApp(t)
	m.restoreState(st)
	if m.view != viewSellers || m.pendingSellerID != 3 {
		t.Fatalf("unexpected restored model: view=%v seller=%d", m.view, m.pendingSellerID)
	}
}
