package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound is returned when the addressed row does not exist.
var ErrNotFound = errors.New("not found")

// ReferentialIntegrityError reports a delete blocked by a protecting reference.
type ReferentialIntegrityError struct {
	Table    string
	ID       uuid.UUID
	Relation string
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("cannot delete %s %s: still referenced by %s", e.Table, e.ID, e.Relation)
}
