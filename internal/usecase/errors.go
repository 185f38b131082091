package usecase

import (
	"fmt"

	"cinema-tickets/internal/data/repository"
	"cinema-tickets/pkg/utils"

	"github.com/google/uuid"
)

// MsgMissingReference is reported for a reference to a row that does not exist.
const MsgMissingReference = `Invalid pk "%s" - object does not exist.`

// ErrNotFound is wrapped by every error about a missing entity.
var ErrNotFound = repository.ErrNotFound

// ReferentialIntegrityError is returned by deletes blocked by a protecting reference.
type ReferentialIntegrityError = repository.ReferentialIntegrityError

// ValidationError carries every rejected field of a write.
type ValidationError struct {
	Fields utils.FieldErrors
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Fields.Error()
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
}

// parseID treats a malformed id like an unknown one.
func parseID(kind, id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, notFound(kind, id)
	}
	return parsed, nil
}
