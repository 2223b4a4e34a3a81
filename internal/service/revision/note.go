package revision

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/question-pipeline/internal/domain"
	"github.com/heartmarshall/question-pipeline/pkg/ctxutil"
)

// AddNote attaches a note to an item on one review track. The item row is
// held FOR SHARE so the note cannot interleave with an approval decision.
func (s *Service) AddNote(ctx context.Context, input AddNoteInput) (domain.RevisionNote, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.RevisionNote{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.RevisionNote{}, err
	}

	if !actor.CanReview(input.Track) {
		return domain.RevisionNote{}, fmt.Errorf("add %s note: %w", input.Track, domain.ErrUnauthorized)
	}

	var created domain.RevisionNote
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		it, err := s.items.GetForShare(txCtx, input.ItemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if it.Status == domain.StatusArchived {
			return domain.ErrItemArchived
		}
		if domain.IsShapeAnchor(input.Anchor) && !it.HasArtifact() {
			return domain.NewValidationError("anchor", "shape anchors need a rendered artifact")
		}

		created, err = s.notes.Create(txCtx, domain.RevisionNote{
			ID:          uuid.New(),
			ItemID:      it.ID,
			Track:       input.Track,
			AuthorID:    actor.ID,
			Anchor:      input.Anchor,
			Body:        strings.TrimSpace(input.Body),
			ArtifactRef: it.RenderedArtifactRef,
			CreatedAt:   s.now(),
		})
		if err != nil {
			return fmt.Errorf("create note: %w", err)
		}

		entry := domain.NewActivityEntry(it.ID, actor.ID, domain.ActionNoteAdded, map[string]any{
			"note_id": created.ID.String(),
			"track":   string(created.Track),
			"anchor":  string(created.Anchor.Kind()),
		}, s.now())
		if err := s.activity.Log(txCtx, entry); err != nil {
			return fmt.Errorf("activity log: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.RevisionNote{}, err
	}

	s.log.InfoContext(ctx, "note added",
		slog.String("item_id", created.ItemID.String()),
		slog.String("note_id", created.ID.String()),
		slog.String("track", string(created.Track)),
	)

	return created, nil
}

// ListNotes returns an item's notes in creation order.
func (s *Service) ListNotes(ctx context.Context, itemID uuid.UUID, filter domain.NoteFilter) ([]domain.RevisionNote, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if filter.Track != nil && !filter.Track.IsValid() {
		return nil, domain.ErrInvalidTrack
	}

	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	notes, err := s.notes.List(ctx, itemID, filter)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// DeleteNote removes a note. Deleting is how a note gets resolved.
func (s *Service) DeleteNote(ctx context.Context, itemID, noteID uuid.UUID) error {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		it, err := s.items.GetForShare(txCtx, itemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if it.Status == domain.StatusArchived {
			return domain.ErrItemArchived
		}

		n, err := s.notes.GetByID(txCtx, itemID, noteID)
		if err != nil {
			return err
		}
		if !n.CanBeDeletedBy(actor, it) {
			return fmt.Errorf("delete note: %w", domain.ErrUnauthorized)
		}

		if err := s.notes.Delete(txCtx, itemID, noteID); err != nil {
			return err
		}

		entry := domain.NewActivityEntry(itemID, actor.ID, domain.ActionNoteDeleted, map[string]any{
			"note_id": noteID.String(),
			"track":   string(n.Track),
		}, s.now())
		if err := s.activity.Log(txCtx, entry); err != nil {
			return fmt.Errorf("activity log: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "note deleted",
		slog.String("item_id", itemID.String()),
		slog.String("note_id", noteID.String()),
	)

	return nil
}
