package cli

import (
	"errors"
	"fmt"
	"strconv"

	"saleshub-cli/internal/store"
)

type notFoundError struct {
	kind string
	id   int64
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %d", e.kind, e.id)
}

func errNotFound(kind string, id int64) error {
	return notFoundError{kind: kind, id: id}
}

// notFoundOr maps a store miss onto notFoundError and passes other errors through.
func notFoundOr(err error, kind string, id int64) error {
	if errors.Is(err, store.ErrNotFound) {
		return errNotFound(kind, id)
	}
	return err
}

var errNeedsYes = errors.New("refusing to delete without confirmation; pass --yes")

func parseID(kind, s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id: %q", kind, s)
	}
	return id, nil
}
