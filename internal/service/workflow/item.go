package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/question-pipeline/internal/domain"
	"github.com/heartmarshall/question-pipeline/pkg/ctxutil"
)

// CreateItem creates a drafting item owned by the authenticated actor.
func (s *Service) CreateItem(ctx context.Context, input CreateItemInput) (domain.Item, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.Item{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Item{}, err
	}

	title := strings.TrimSpace(input.Title)

	var created domain.Item
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.items.Create(txCtx, domain.NewItem(actor.ID, title, s.now()))
		if err != nil {
			return fmt.Errorf("create item: %w", err)
		}

		if err := s.record(txCtx, created, actor.ID, domain.ActionCreated, map[string]any{"title": title}); err != nil {
			return fmt.Errorf("activity log: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Item{}, err
	}

	s.log.InfoContext(ctx, "item created",
		slog.String("item_id", created.ID.String()),
		slog.String("author_id", actor.ID.String()),
	)

	return created, nil
}

// GetItem returns an item by ID.
func (s *Service) GetItem(ctx context.Context, itemID uuid.UUID) (domain.Item, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return domain.Item{}, domain.ErrUnauthorized
	}

	it, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return domain.Item{}, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// ListItems returns items matching filter, newest first.
func (s *Service) ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	filter, err := filter.Normalize()
	if err != nil {
		return nil, err
	}

	items, err := s.items.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// CanComplete reports whether the item may be completed now.
func (s *Service) CanComplete(ctx context.Context, itemID uuid.UUID) (bool, error) {
	it, err := s.GetItem(ctx, itemID)
	if err != nil {
		return false, err
	}
	return domain.CanComplete(it), nil
}
