package domain

import "github.com/google/uuid"

// DefaultItemLimit and MaxItemLimit bound item listings.
const (
	DefaultItemLimit = 50
	MaxItemLimit     = 200
)

// ItemFilter narrows item listings. Nil fields mean "no constraint".
type ItemFilter struct {
	Status   *Status
	AuthorID *uuid.UUID
	Assignee *uuid.UUID
	Limit    int
	Offset   int
}

// Normalize validates the filter and clamps the page size.
func (f ItemFilter) Normalize() (ItemFilter, error) {
	var errs []FieldError

	if f.Status != nil && !f.Status.IsValid() {
		errs = append(errs, FieldError{Field: "status", Message: "unknown status"})
	}
	if f.Limit < 0 {
		errs = append(errs, FieldError{Field: "limit", Message: "must be >= 0"})
	}
	if f.Offset < 0 {
		errs = append(errs, FieldError{Field: "offset", Message: "must be >= 0"})
	}
	if len(errs) > 0 {
		return f, NewValidationErrors(errs)
	}

	switch {
	case f.Limit == 0:
		f.Limit = DefaultItemLimit
	case f.Limit > MaxItemLimit:
		f.Limit = MaxItemLimit
	}
	return f, nil
}
