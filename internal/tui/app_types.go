package tui

import (
	"saleshub-cli/internal/crud"
)

type view int

const (
	viewDepartments view = iota
	viewSellers
)

func (v view) title() string {
	if v == viewSellers {
		return "Sellers"
	}
	return "Departments"
}

func (v view) stateName() string {
	if v == viewSellers {
		return "sellers"
	}
	return "departments"
}

func (v view) kind() string {
	if v == viewSellers {
		return "seller"
	}
	return "department"
}

type modalKind int

const (
	modalNone modalKind = iota
	modalForm
	modalConfirmDelete
	modalAlert
	modalHelp
)

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

// dataChangedMsg is delivered after a create, update or delete succeeded.
type dataChangedMsg struct{}

// listLoadedMsg carries the result of one asynchronous list reload.
type listLoadedMsg[E crud.Entity] struct {
	reload crud.Reload
	items  []E
	rows   []crud.Row[E]
	err    error
}

type formSavedMsg struct {
	view  view
	name  string
	isNew bool
	err   error
}

type deleteDoneMsg struct {
	view    view
	name    string
	deleted bool
	err     error
}

type minibufferClearMsg struct{ seq int }
