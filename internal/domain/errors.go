package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Workflow errors. Every one of them is terminal: the item and its notes are
// left exactly as they were before the call.
var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrAlreadyClaimed    = errors.New("already claimed")
	ErrItemArchived      = errors.New("item archived")
	ErrInvalidTrack      = errors.New("invalid track")
	ErrNoteNotFound      = errors.New("note not found")
	ErrUnresolvedNotes   = errors.New("unresolved notes")
	ErrContentLocked     = errors.New("content locked")
	ErrAppendOnly        = errors.New("activity log is append-only")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// TransitionError reports a rejected status change.
type TransitionError struct {
	From   Status
	To     Status
	Reason string
}

func (e *TransitionError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid transition %s -> %s", e.From, e.To)
	}
	return fmt.Sprintf("invalid transition %s -> %s: %s", e.From, e.To, e.Reason)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// NewTransitionError creates a TransitionError.
func NewTransitionError(from, to Status, reason string) *TransitionError {
	return &TransitionError{From: from, To: to, Reason: reason}
}

// ClaimError is returned when an item is already held by another typesetter.
// Assignee is the holder that won.
type ClaimError struct {
	ItemID   uuid.UUID
	Assignee uuid.UUID
}

func (e *ClaimError) Error() string {
	return fmt.Sprintf("item %s already claimed by %s", e.ItemID, e.Assignee)
}

func (e *ClaimError) Unwrap() error { return ErrAlreadyClaimed }
