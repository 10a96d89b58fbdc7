package tui

import (
	"context"

	"saleshub-cli/internal/crud"
	"saleshub-cli/internal/logging"
	"saleshub-cli/internal/model"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// DepartmentService is what the departments screen needs.
type DepartmentService interface {
	crud.Service[model.Department]
}

// SellerService is what the sellers screen needs, plus the per-department
// count shown on the departments screen.
type SellerService interface {
	crud.Service[model.Seller]
	QuantityByDepartment(ctx context.Context, d model.Department) (int, error)
}

type appModel struct {
	ctx context.Context
	log logging.Logger

	departments *crud.Controller[model.Department]
	sellers     *crud.Controller[model.Seller]
	changes     *changeNotifier
	resources   *formResources

	width  int
	height int

	view        view
	deptTable   table.Model
	sellerTable table.Model
	deptRows    []crud.Row[model.Department]
	sellerRows  []crud.Row[model.Seller]
	help        help.Model

	// Selection restored from the previous run, applied on first load.
	pendingDeptID   int64
	pendingSellerID int64

	modal modalKind

	form        *huh.Form
	formView    view
	deptDraft   *departmentDraft
	sellerDraft *sellerDraft
	formErr     string
	saving      bool

	confirmView  view
	confirm      crud.Prompt
	confirmFocus confirmModalFocus
	deleting     bool

	alert crud.Alert

	minibuffer    string
	minibufferSeq int
}

func newAppModel(ctx context.Context, deps DepartmentService, sellers SellerService) appModel {
	changes := newChangeNotifier()
	res := &formResources{}

	dc := crud.NewController[model.Department](deps, crud.Options[model.Department]{
		Kind:     "department",
		Count:    sellers.QuantityByDepartment,
		Listener: changes,
	})
	dc.Binder.OnEdit = openDialogAction(dc, changes)
	dc.Binder.OnDelete = requestDeleteAction(dc)

	sc := crud.NewController[model.Seller](sellers, crud.Options[model.Seller]{
		Kind:     "seller",
		Prepare:  res.prepareSeller(deps),
		Listener: changes,
	})
	sc.Binder.OnEdit = openDialogAction(sc, changes)
	sc.Binder.OnDelete = requestDeleteAction(sc)

	m := appModel{
		ctx:          ctx,
		log:          logging.FromContext(ctx).With("component", "tui"),
		departments:  dc,
		sellers:      sc,
		changes:      changes,
		resources:    res,
		width:        100,
		height:       30,
		view:         viewDepartments,
		deptTable:    newTable(),
		sellerTable:  newTable(),
		help:         help.New(),
		confirmFocus: confirmFocusCancel,
	}
	m.syncTables()
	return m
}

// Row actions only touch the controller; the model reads the resulting
// dialog or gate state back after running them.
func openDialogAction[E crud.Entity](c *crud.Controller[E], l crud.DataChangeListener) crud.Action[E] {
	return func(ctx context.Context, e E) error {
		_, err := c.Dialog.Open(ctx, e, l)
		return err
	}
}

func requestDeleteAction[E crud.Entity](c *crud.Controller[E]) crud.Action[E] {
	return func(_ context.Context, e E) error {
		_, err := c.Gate.Request(e)
		return err
	}
}

// loadList starts an asynchronous reload of c. It returns nil when a reload
// is already in flight; that one will be followed by another round.
func loadList[E crud.Entity](ctx context.Context, c *crud.Controller[E]) tea.Cmd {
	r, ok := c.List.StartReload()
	if !ok {
		return nil
	}
	binder := c.Binder
	return func() tea.Msg {
		items, err := c.List.Fetch(ctx, r)
		msg := listLoadedMsg[E]{reload: r, items: items, err: err}
		if err == nil {
			msg.rows = binder.Bind(ctx, items)
		}
		return msg
	}
}

func submitDialog[E crud.Entity](ctx context.Context, d *crud.Dialog[E], v view, e E) tea.Cmd {
	isNew := d.IsNew()
	return func() tea.Msg {
		saved, err := d.Submit(ctx, e)
		name := e.EntityName()
		if err == nil {
			name = saved.EntityName()
		}
		return formSavedMsg{view: v, name: name, isNew: isNew, err: err}
	}
}

func resolveDelete[E crud.Entity](ctx context.Context, g *crud.ConfirmationGate[E], v view) tea.Cmd {
	pending, _ := g.Pending()
	return func() tea.Msg {
		deleted, err := g.Resolve(ctx, true)
		return deleteDoneMsg{view: v, name: pending.EntityName(), deleted: deleted, err: err}
	}
}

func (m appModel) reloadAll() tea.Cmd {
	return tea.Batch(loadList(m.ctx, m.departments), loadList(m.ctx, m.sellers))
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.reloadAll(), m.changes.wait(m.ctx))
}
