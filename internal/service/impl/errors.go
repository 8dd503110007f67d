package core

import (
	"fmt"

	"agora/internal/db"
)

// errNotFound folds a lower level failure into the not-found taxonomy so the
// web layer renders it as a generic 404.
func errNotFound(err error) error {
	return fmt.Errorf("%w: %s", db.ErrNotFound, err)
}
