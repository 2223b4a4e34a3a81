package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/question-pipeline/internal/domain"
	"github.com/heartmarshall/question-pipeline/pkg/ctxutil"
)

// EditContent records an edit reported by the content-editing collaborator.
// Content edits bump the version; inside a revision loop they also reset
// both approvals. Metadata edits may only rename the item.
func (s *Service) EditContent(ctx context.Context, input EditInput) (domain.Item, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.Item{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Item{}, err
	}

	var (
		updated domain.Item
		reset   bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		it, err := s.items.GetForUpdate(txCtx, input.ItemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}

		if !actor.IsAdmin && !it.IsOwnedBy(actor.ID) && !it.IsAssignedTo(actor.ID) {
			return fmt.Errorf("edit item: %w", domain.ErrUnauthorized)
		}

		next, err := domain.ApplyEdit(it, input.Kind)
		if err != nil {
			return err
		}
		reset = domain.ResetsApprovals(it, input.Kind)

		detail := map[string]any{"version": next.Version}
		if input.Title != nil {
			next.Title = strings.TrimSpace(*input.Title)
			detail["title"] = next.Title
		}
		if reset {
			detail["approvals_reset"] = true
		}
		next.UpdatedAt = s.now()

		updated, err = s.items.UpdateState(txCtx, next, it.Status)
		if err != nil {
			return fmt.Errorf("update item: %w", err)
		}

		kind := domain.ActionMetadataEdited
		if input.Kind == domain.EditKindContent {
			kind = domain.ActionContentEdited
		}
		if err := s.record(txCtx, updated, actor.ID, kind, detail); err != nil {
			return fmt.Errorf("activity log: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Item{}, err
	}

	s.log.InfoContext(ctx, "item edited",
		slog.String("item_id", updated.ID.String()),
		slog.String("kind", string(input.Kind)),
		slog.Int("version", updated.Version),
		slog.Bool("approvals_reset", reset),
	)

	return updated, nil
}
