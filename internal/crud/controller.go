package crud

import "context"

// Controller assembles the four list-screen parts around one service.
type Controller[E Entity] struct {
	List   *ListViewModel[E]
	Dialog *DialogWorkflow[E]
	Gate   *ConfirmationGate[E]
	Binder RowActionBinder[E]
}

// Options configures NewController.
type Options[E Entity] struct {
	// Kind is the singular entity name ("department").
	Kind string
	// Prepare loads form resources before a dialog opens.
	Prepare PrepareFunc[E]
	// Count fills the derived count column.
	Count CountFunc[E]
	// Listener is notified after every successful mutation.
	Listener DataChangeListener
}

func NewController[E Entity](svc Service[E], opts Options[E]) *Controller[E] {
	return &Controller[E]{
		List:   NewListViewModel[E](opts.Kind+"s", svc),
		Dialog: NewDialogWorkflow[E](opts.Kind, svc, opts.Prepare),
		Gate:   NewConfirmationGate[E](opts.Kind, svc, opts.Listener),
		Binder: RowActionBinder[E]{Count: opts.Count},
	}
}

// Rows binds rows for the current snapshot.
func (c *Controller[E]) Rows(ctx context.Context) []Row[E] {
	return c.Binder.Bind(ctx, c.List.Items())
}

// Refresh reloads the list and returns freshly bound rows.
func (c *Controller[E]) Refresh(ctx context.Context) ([]Row[E], error) {
	items, err := c.List.Load(ctx)
	if err != nil {
		return nil, err
	}
	return c.Binder.Bind(ctx, items), nil
}
