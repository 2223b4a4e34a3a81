package workflow

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/question-pipeline/internal/domain"
)

const maxTitleLength = 500

// CreateItemInput holds the parameters for creating an item.
type CreateItemInput struct {
	Title string
}

// Validate checks all fields and collects all errors.
func (i CreateItemInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TransitionInput holds the parameters for a status change.
// NoteBody, when set, is stored as a whole-item note on the track under
// review before the approval decision is taken.
type TransitionInput struct {
	ItemID   uuid.UUID
	Target   domain.Status
	Track    *domain.Track
	NoteBody *string
}

// Validate checks all fields and collects all errors.
func (i TransitionInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.Target == "" {
		errs = append(errs, domain.FieldError{Field: "target", Message: "required"})
	}
	if i.NoteBody != nil {
		body := strings.TrimSpace(*i.NoteBody)
		if body == "" {
			errs = append(errs, domain.FieldError{Field: "note_body", Message: "must not be blank"})
		}
		if len(body) > domain.MaxNoteBodyLength {
			errs = append(errs, domain.FieldError{Field: "note_body", Message: "max 10000 characters"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	if i.Track != nil && !i.Track.IsValid() {
		return domain.ErrInvalidTrack
	}
	return nil
}

// EditInput reports an edit made by the content-editing collaborator.
// Title is only honoured for metadata edits.
type EditInput struct {
	ItemID uuid.UUID
	Kind   domain.EditKind
	Title  *string
}

// Validate checks all fields and collects all errors.
func (i EditInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be content or metadata"})
	}
	if i.Title != nil {
		if i.Kind != domain.EditKindMetadata {
			errs = append(errs, domain.FieldError{Field: "title", Message: "only allowed for metadata edits"})
		}
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		if len(title) > maxTitleLength {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 500 characters"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AttachArtifactInput sets the canonical rendered artifact of an item.
type AttachArtifactInput struct {
	ItemID uuid.UUID
	Ref    string
}

// Validate checks all fields and collects all errors.
func (i AttachArtifactInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	ref := strings.TrimSpace(i.Ref)
	if ref == "" {
		errs = append(errs, domain.FieldError{Field: "ref", Message: "required"})
	}
	if len(ref) > 2048 {
		errs = append(errs, domain.FieldError{Field: "ref", Message: "max 2048 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
