package usecase

import (
	"context"
	"fmt"

	"cinema-tickets/internal/data/repository"
	"cinema-tickets/pkg/utils"

	"github.com/google/uuid"
)

// reference is a request field naming a row of table.
type reference struct {
	field string
	table string
	value *string
}

func referencesOf(field, table string, values []string) []reference {
	refs := make([]reference, len(values))
	for i := range values {
		refs[i] = reference{field: field, table: table, value: &values[i]}
	}
	return refs
}

// decodeErrorer is implemented by requests that carry errors from decoding
// the body.
type decodeErrorer interface {
	DecodeErrors() utils.FieldErrors
}

// validate runs the field rules of req and then checks that every
// well-formed reference exists. Referenced rows stay locked until tx ends.
//
// A field that could not be decoded keeps its decode error and is not
// validated further.
func validate(ctx context.Context, tx *repository.Repository, req any, refs ...reference) error {
	errs := make(utils.FieldErrors)
	if d, ok := req.(decodeErrorer); ok {
		errs.Merge(d.DecodeErrors())
	}
	for field, msgs := range utils.ValidateStruct(req) {
		if _, ok := errs[field]; !ok {
			errs[field] = msgs
		}
	}
	rejected := make(map[string]bool, len(errs))
	for field := range errs {
		rejected[field] = true
	}

	for _, ref := range refs {
		if ref.value == nil || rejected[ref.field] {
			continue
		}
		id, err := uuid.Parse(*ref.value)
		if err != nil {
			errs.Add(ref.field, utils.MsgUUID)
			continue
		}
		found, err := tx.ReferenceExists(ctx, ref.table, id)
		if err != nil {
			return fmt.Errorf("check %s reference: %w", ref.field, err)
		}
		if !found {
			errs.Add(ref.field, fmt.Sprintf(MsgMissingReference, *ref.value))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// parseIDs parses ids that already passed validation, dropping duplicates.
func parseIDs(values []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(values))
	seen := make(map[uuid.UUID]bool, len(values))
	for _, v := range values {
		id := uuid.MustParse(v)
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}
