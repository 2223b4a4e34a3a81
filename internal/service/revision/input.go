package revision

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/question-pipeline/internal/domain"
)

// AddNoteInput holds the parameters for adding a note. Anchor is already
// decoded from its wire form.
type AddNoteInput struct {
	ItemID uuid.UUID
	Track  domain.Track
	Anchor domain.Anchor
	Body   string
}

// Validate checks all fields and collects all errors. An unknown track is
// reported as domain.ErrInvalidTrack rather than a field error.
func (i AddNoteInput) Validate() error {
	if !i.Track.IsValid() {
		return domain.ErrInvalidTrack
	}

	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}

	body := strings.TrimSpace(i.Body)
	if body == "" {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	}
	if len(body) > domain.MaxNoteBodyLength {
		errs = append(errs, domain.FieldError{Field: "body", Message: "max 10000 characters"})
	}

	if err := domain.ValidateAnchor(i.Anchor); err != nil {
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		errs = append(errs, verr.Errors...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
