package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/question-pipeline/internal/domain"
	"github.com/heartmarshall/question-pipeline/pkg/ctxutil"
)

// AttachArtifact makes ref the canonical rendered artifact of a claimed item.
// Replacing an existing artifact clears the notes positioned on it.
func (s *Service) AttachArtifact(ctx context.Context, input AttachArtifactInput) (domain.Item, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.Item{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Item{}, err
	}

	ref := strings.TrimSpace(input.Ref)

	var (
		updated domain.Item
		cleared int64
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		it, err := s.items.GetForUpdate(txCtx, input.ItemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}

		if it.Status == domain.StatusArchived {
			return domain.ErrItemArchived
		}
		if it.Status != domain.StatusTypesettingInProgress {
			return fmt.Errorf("attach artifact in %s: %w", it.Status, domain.ErrContentLocked)
		}
		if !actor.IsAdmin && !it.IsAssignedTo(actor.ID) {
			return fmt.Errorf("attach artifact: %w", domain.ErrUnauthorized)
		}

		var previous string
		if it.RenderedArtifactRef != nil {
			previous = *it.RenderedArtifactRef
		}
		if previous == ref {
			updated = it
			return nil
		}

		if previous != "" {
			cleared, err = s.clearer.ClearAllForArtifactChange(txCtx, it.ID, actor.ID)
			if err != nil {
				return fmt.Errorf("clear notes: %w", err)
			}
		}

		next := it
		next.RenderedArtifactRef = &ref
		next.UpdatedAt = s.now()

		updated, err = s.items.UpdateState(txCtx, next, it.Status)
		if err != nil {
			return fmt.Errorf("update item: %w", err)
		}

		detail := map[string]any{"ref": ref}
		if previous != "" {
			detail["previous"] = previous
		}
		if err := s.record(txCtx, updated, actor.ID, domain.ActionArtifactAttached, detail); err != nil {
			return fmt.Errorf("activity log: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Item{}, err
	}

	s.log.InfoContext(ctx, "artifact attached",
		slog.String("item_id", updated.ID.String()),
		slog.String("ref", ref),
		slog.Int64("notes_cleared", cleared),
	)

	return updated, nil
}
