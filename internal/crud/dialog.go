package crud

import (
	"context"
	"sync"

	"saleshub-cli/internal/logging"
)

// Outcome is how a dialog closed.
type Outcome int

const (
	Cancelled Outcome = iota
	Submitted
)

func (o Outcome) String() string {
	if o == Submitted {
		return "submitted"
	}
	return "cancelled"
}

// Result is delivered once when a dialog closes.
type Result[E Entity] struct {
	Outcome Outcome
	Entity  E
}

// PrepareFunc loads whatever a form needs before it can be shown.
type PrepareFunc[E Entity] func(ctx context.Context, e E) error

// DialogWorkflow opens modal create/edit dialogs, one at a time.
type DialogWorkflow[E Entity] struct {
	name    string
	saver   Saver[E]
	prepare PrepareFunc[E]

	mu     sync.Mutex
	active *Dialog[E]
}

func NewDialogWorkflow[E Entity](name string, saver Saver[E], prepare PrepareFunc[E]) *DialogWorkflow[E] {
	return &DialogWorkflow[E]{name: name, saver: saver, prepare: prepare}
}

// Active returns the open dialog, if any.
func (w *DialogWorkflow[E]) Active() (*Dialog[E], bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.active, w.active != nil
}

// Open shows a dialog for entity (zero id means create). listener is notified
// once if the dialog is submitted successfully. A prepare failure is returned
// as *PresentationError and no dialog opens.
func (w *DialogWorkflow[E]) Open(ctx context.Context, entity E, listener DataChangeListener) (*Dialog[E], error) {
	w.mu.Lock()
	if w.active != nil {
		w.mu.Unlock()
		return nil, &PresentationError{Op: w.name + " form", Err: ErrDialogOpen}
	}
	w.mu.Unlock()

	if w.prepare != nil {
		if err := w.prepare(ctx, entity); err != nil {
			logging.FromContext(ctx).Warn("form prepare failed", "form", w.name, "error", err)
			return nil, &PresentationError{Op: w.name + " form", Err: err}
		}
	}

	d := &Dialog[E]{
		workflow: w,
		entity:   entity,
		listener: listener,
		done:     make(chan Result[E], 1),
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.active != nil {
		return nil, &PresentationError{Op: w.name + " form", Err: ErrDialogOpen}
	}
	w.active = d
	return d, nil
}

func (w *DialogWorkflow[E]) release(d *Dialog[E]) {
	w.mu.Lock()
	if w.active == d {
		w.active = nil
	}
	w.mu.Unlock()
}

// Dialog is one open modal form.
type Dialog[E Entity] struct {
	workflow *DialogWorkflow[E]
	entity   E
	listener DataChangeListener
	done     chan Result[E]

	mu     sync.Mutex
	closed bool
}

// Entity is the value the dialog was opened with.
func (d *Dialog[E]) Entity() E { return d.entity }

// IsNew reports whether the dialog creates a new entity.
func (d *Dialog[E]) IsNew() bool { return d.entity.EntityID() == 0 }

// Done resolves once with the dialog's outcome.
func (d *Dialog[E]) Done() <-chan Result[E] { return d.done }

// Wait blocks until the dialog closes or ctx ends.
func (d *Dialog[E]) Wait(ctx context.Context) (Result[E], error) {
	select {
	case r := <-d.done:
		return r, nil
	case <-ctx.Done():
		var zero Result[E]
		return zero, ctx.Err()
	}
}

// Submit saves edited. On success the dialog closes and the listener fires
// once; on failure the dialog stays open and the error is returned.
func (d *Dialog[E]) Submit(ctx context.Context, edited E) (E, error) {
	var zero E
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return zero, ErrDialogClosed
	}
	d.mu.Unlock()

	saved, err := d.workflow.saver.Save(ctx, edited)
	if err != nil {
		return zero, serviceErr("save "+d.workflow.name, err)
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return saved, ErrDialogClosed
	}
	d.closed = true
	d.mu.Unlock()

	d.workflow.release(d)
	d.done <- Result[E]{Outcome: Submitted, Entity: saved}
	logging.FromContext(ctx).Debug("dialog submitted", "form", d.workflow.name, "id", saved.EntityID())
	if d.listener != nil {
		d.listener.OnDataChanged()
	}
	return saved, nil
}

// Cancel closes the dialog without saving. Calling it again, or after a
// submit, does nothing.
func (d *Dialog[E]) Cancel() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.mu.Unlock()

	d.workflow.release(d)
	d.done <- Result[E]{Outcome: Cancelled, Entity: d.entity}
}
