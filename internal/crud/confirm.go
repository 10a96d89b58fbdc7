package crud

import (
	"context"
	"fmt"
	"sync"

	"saleshub-cli/internal/logging"
)

// GateState is the ConfirmationGate state.
type GateState int

const (
	GateIdle GateState = iota
	GateAwaitingConfirmation
	GateDeleting
)

func (s GateState) String() string {
	switch s {
	case GateAwaitingConfirmation:
		return "awaiting-confirmation"
	case GateDeleting:
		return "deleting"
	default:
		return "idle"
	}
}

// Prompt is the confirmation shown before a delete.
type Prompt struct {
	Title    string
	Header   string
	Question string
}

// Confirmer asks the user a blocking yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, p Prompt) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, p Prompt) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, p Prompt) (bool, error) { return f(ctx, p) }

// ConfirmationGate puts a yes/no question in front of every delete.
type ConfirmationGate[E Entity] struct {
	kind     string
	deleter  Deleter[E]
	listener DataChangeListener

	mu      sync.Mutex
	state   GateState
	pending E
}

// NewConfirmationGate builds a gate; kind names the entity in prompts
// ("department"), listener is notified after a successful delete.
func NewConfirmationGate[E Entity](kind string, deleter Deleter[E], listener DataChangeListener) *ConfirmationGate[E] {
	return &ConfirmationGate[E]{kind: kind, deleter: deleter, listener: listener}
}

func (g *ConfirmationGate[E]) State() GateState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Pending returns the entity awaiting confirmation.
func (g *ConfirmationGate[E]) Pending() (E, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pending, g.state == GateAwaitingConfirmation
}

// PromptFor builds the confirmation text for e.
func (g *ConfirmationGate[E]) PromptFor(e E) Prompt {
	return Prompt{
		Title:    "Delete " + g.kind,
		Header:   fmt.Sprintf("Id: %d - %s", e.EntityID(), e.EntityName()),
		Question: "Are you sure you want to delete?",
	}
}

// Request moves Idle -> AwaitingConfirmation for e.
func (g *ConfirmationGate[E]) Request(e E) (Prompt, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != GateIdle {
		return Prompt{}, ErrPendingConfirm
	}
	g.state = GateAwaitingConfirmation
	g.pending = e
	return g.PromptFor(e), nil
}

// Resolve answers the pending request. Anything but confirmed == true returns
// to Idle without deleting. A failed delete is a *ServiceError; the listener
// only fires after a successful one.
func (g *ConfirmationGate[E]) Resolve(ctx context.Context, confirmed bool) (deleted bool, err error) {
	var zero E
	g.mu.Lock()
	if g.state != GateAwaitingConfirmation {
		g.mu.Unlock()
		return false, ErrNothingPending
	}
	e := g.pending
	if !confirmed {
		g.state = GateIdle
		g.pending = zero
		g.mu.Unlock()
		return false, nil
	}
	g.state = GateDeleting
	g.mu.Unlock()

	err = g.deleter.Delete(ctx, e)

	g.mu.Lock()
	g.state = GateIdle
	g.pending = zero
	g.mu.Unlock()

	log := logging.FromContext(ctx)
	if err != nil {
		log.Warn("delete failed", "kind", g.kind, "id", e.EntityID(), "error", err)
		return false, serviceErr("delete "+g.kind, err)
	}
	log.Debug("deleted", "kind", g.kind, "id", e.EntityID())
	if g.listener != nil {
		g.listener.OnDataChanged()
	}
	return true, nil
}

// ConfirmDelete runs Request, asks c, and resolves with the answer. A prompt
// error counts as "no".
func (g *ConfirmationGate[E]) ConfirmDelete(ctx context.Context, e E, c Confirmer) (bool, error) {
	p, err := g.Request(e)
	if err != nil {
		return false, err
	}
	ok, askErr := c.Confirm(ctx, p)
	deleted, err := g.Resolve(ctx, ok && askErr == nil)
	if err != nil {
		return false, err
	}
	if askErr != nil {
		return false, &PresentationError{Op: "delete confirmation", Err: askErr}
	}
	return deleted, nil
}
