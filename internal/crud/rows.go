package crud

import "context"

// CountFunc computes a derived count for one row (e.g. sellers per department).
type CountFunc[E Entity] func(ctx context.Context, e E) (int, error)

// Action is a row action; it receives the entity value captured at bind time.
type Action[E Entity] func(ctx context.Context, e E) error

// Row is one rendered table row.
type Row[E Entity] struct {
	Index  int
	Entity E
	// Count is the derived count; HasCount is false when no CountFunc is bound.
	Count    int
	HasCount bool
	CountErr error

	onEdit   Action[E]
	onDelete Action[E]
}

// Edit runs the edit action with this row's entity value.
func (r Row[E]) Edit(ctx context.Context) error {
	if r.onEdit == nil {
		return nil
	}
	return r.onEdit(ctx, r.Entity)
}

// Delete runs the delete action with this row's entity value.
func (r Row[E]) Delete(ctx context.Context) error {
	if r.onDelete == nil {
		return nil
	}
	return r.onDelete(ctx, r.Entity)
}

// RowActionBinder turns a snapshot into rows carrying edit/delete actions.
type RowActionBinder[E Entity] struct {
	OnEdit   Action[E]
	OnDelete Action[E]
	// Count, when set, is queried once per row on every Bind.
	Count CountFunc[E]
}

// Bind renders rows for items. Each row captures its own entity value, so a
// row reused by a view after a reload never acts on the previous entity.
func (b RowActionBinder[E]) Bind(ctx context.Context, items []E) []Row[E] {
	rows := make([]Row[E], 0, len(items))
	for i, e := range items {
		row := Row[E]{
			Index:    i,
			Entity:   e,
			onEdit:   b.OnEdit,
			onDelete: b.OnDelete,
		}
		if b.Count != nil {
			n, err := b.Count(ctx, e)
			row.Count, row.CountErr, row.HasCount = n, err, err == nil
		}
		rows = append(rows, row)
	}
	return rows
}

// Lookup returns the row displayed at index, resolving a view cursor against
// the current rows on every interaction.
func Lookup[E Entity](rows []Row[E], index int) (Row[E], bool) {
	if index < 0 || index >= len(rows) {
		return Row[E]{}, false
	}
	return rows[index], true
}
