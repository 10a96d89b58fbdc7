// Package crud holds the list/detail workflow shared by the TUI and the CLI:
// a sorted list snapshot that is only ever replaced by a full reload, per-row
// edit/delete actions bound to entity values, a modal create/edit dialog, and a
// confirmation gate in front of deletes.
package crud

import "context"

// Entity is a persisted record with a store-assigned id and a display name.
type Entity interface {
	EntityID() int64
	EntityName() string
}

// Lister fetches the whole collection.
type Lister[E Entity] interface {
	FindAll(ctx context.Context) ([]E, error)
}

// Saver inserts (id == 0) or updates an entity and returns the stored value.
type Saver[E Entity] interface {
	Save(ctx context.Context, e E) (E, error)
}

// Deleter removes an entity.
type Deleter[E Entity] interface {
	Delete(ctx context.Context, e E) error
}

// Service is the full entity service a list screen drives.
type Service[E Entity] interface {
	Lister[E]
	Saver[E]
	Deleter[E]
}

// DataChangeListener is notified after a successful create, update or delete.
type DataChangeListener interface {
	OnDataChanged()
}

// ListenerFunc adapts a plain function to DataChangeListener.
type ListenerFunc func()

func (f ListenerFunc) OnDataChanged() {
	if f != nil {
		f()
	}
}
