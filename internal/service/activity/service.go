// Package activity exposes the append-only activity log of items.
package activity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/question-pipeline/internal/domain"
	"github.com/heartmarshall/question-pipeline/pkg/ctxutil"
)

type itemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Item, error)
}

type activityRepo interface {
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]domain.ActivityEntry, error)
}

// Service provides read access to the activity log.
type Service struct {
	items    itemRepo
	activity activityRepo
	log      *slog.Logger
}

// NewService creates a new activity service.
func NewService(log *slog.Logger, items itemRepo, activity activityRepo) *Service {
	return &Service{
		items:    items,
		activity: activity,
		log:      log.With("service", "activity"),
	}
}

// GetActivityLog replays an item's entries, oldest first.
func (s *Service) GetActivityLog(ctx context.Context, itemID uuid.UUID) ([]domain.ActivityEntry, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	entries, err := s.activity.ListByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return entries, nil
}

// Summary compares the version derived from the log with the stored one.
// A mismatch is logged; it means something wrote the item outside the
// workflow.
func (s *Service) Summary(ctx context.Context, itemID uuid.UUID) (domain.ActivitySummary, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return domain.ActivitySummary{}, domain.ErrUnauthorized
	}

	it, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return domain.ActivitySummary{}, fmt.Errorf("get item: %w", err)
	}

	entries, err := s.activity.ListByItem(ctx, itemID)
	if err != nil {
		return domain.ActivitySummary{}, fmt.Errorf("list activity: %w", err)
	}

	summary := domain.ActivitySummary{
		Entries:          entries,
		EffectiveVersion: domain.EffectiveVersion(entries),
		StoredVersion:    it.Version,
	}
	if summary.Drift() {
		s.log.WarnContext(ctx, "item version drift",
			slog.String("item_id", itemID.String()),
			slog.Int("stored", summary.StoredVersion),
			slog.Int("effective", summary.EffectiveVersion),
		)
	}

	return summary, nil
}
