package crud

import (
	"context"
	"slices"
	"strings"
	"sync"

	"saleshub-cli/internal/logging"
)

// SortByName stable-sorts entities by upper-cased name, ascending, in place.
func SortByName[E Entity](items []E) {
	slices.SortStableFunc(items, func(a, b E) int {
		return strings.Compare(strings.ToUpper(a.EntityName()), strings.ToUpper(b.EntityName()))
	})
}

// ListViewModel holds the snapshot a table displays. The snapshot only changes
// when a whole FindAll completes.
type ListViewModel[E Entity] struct {
	name   string
	lister Lister[E]

	mu       sync.Mutex
	items    []E
	loaded   bool
	gen      uint64
	inFlight bool
	pending  bool
}

// NewListViewModel names the list (used in errors and logs) and binds its source.
func NewListViewModel[E Entity](name string, lister Lister[E]) *ListViewModel[E] {
	return &ListViewModel[E]{name: name, lister: lister}
}

func (vm *ListViewModel[E]) Name() string { return vm.name }

// Items returns a copy of the current snapshot.
func (vm *ListViewModel[E]) Items() []E {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return slices.Clone(vm.items)
}

// Loaded reports whether at least one reload completed.
func (vm *ListViewModel[E]) Loaded() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.loaded
}

func (vm *ListViewModel[E]) fetch(ctx context.Context) ([]E, error) {
	items, err := vm.lister.FindAll(ctx)
	if err != nil {
		return nil, serviceErr("load "+vm.name, err)
	}
	SortByName(items)
	return items, nil
}

// Load fetches and sorts the whole collection and replaces the snapshot. On
// failure the previous snapshot is kept.
func (vm *ListViewModel[E]) Load(ctx context.Context) ([]E, error) {
	items, err := vm.fetch(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn("list load failed", "list", vm.name, "error", err)
		return nil, err
	}
	vm.mu.Lock()
	vm.gen++
	vm.items = items
	vm.loaded = true
	vm.mu.Unlock()
	return slices.Clone(items), nil
}

// Reload is a ticket for one asynchronous reload.
type Reload struct {
	gen uint64
}

// StartReload begins an asynchronous reload. Only one runs at a time: when one
// is already in flight its result is marked stale and ok is false; Apply then
// asks for another round.
func (vm *ListViewModel[E]) StartReload() (r Reload, ok bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.gen++
	if vm.inFlight {
		vm.pending = true
		return Reload{}, false
	}
	vm.inFlight = true
	return Reload{gen: vm.gen}, true
}

// Fetch runs the service call for r. It does not touch the snapshot.
func (vm *ListViewModel[E]) Fetch(ctx context.Context, _ Reload) ([]E, error) {
	return vm.fetch(ctx)
}

// Apply installs the result of r unless a newer reload was requested meanwhile.
// applied reports whether the snapshot was replaced; again reports that the
// caller must start another reload.
func (vm *ListViewModel[E]) Apply(r Reload, items []E, fetchErr error) (applied, again bool, err error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.inFlight = false
	again = vm.pending
	vm.pending = false
	if r.gen != vm.gen {
		return false, again, nil
	}
	if fetchErr != nil {
		return false, again, serviceErr("load "+vm.name, fetchErr)
	}
	vm.items = items
	vm.loaded = true
	return true, again, nil
}
