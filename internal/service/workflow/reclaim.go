package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/question-pipeline/internal/domain"
)

const reclaimBatchSize = 100

// Reclaim returns every claim older than ttl to the typesetting queue and
// logs claim_expired for each. Stale claims are fetched in batches of
// reclaimBatchSize until a short batch comes back, or until a full batch
// releases nothing because every row moved on under the lock. It returns the
// number of items released.
func (s *Service) Reclaim(ctx context.Context, ttl time.Duration) (int, error) {
	if ttl <= 0 {
		return 0, nil
	}

	cutoff := s.now().Add(-ttl)
	released := 0
	for {
		stale, err := s.items.ListStaleClaims(ctx, cutoff, reclaimBatchSize)
		if err != nil {
			return released, fmt.Errorf("list stale claims: %w", err)
		}

		n, err := s.reclaimBatch(ctx, stale, cutoff)
		released += n
		if err != nil {
			return released, err
		}

		if len(stale) < reclaimBatchSize || n == 0 {
			return released, nil
		}
	}
}

func (s *Service) reclaimBatch(ctx context.Context, stale []domain.Item, cutoff time.Time) (int, error) {
	system := domain.Actor{ID: SystemActorID, IsAdmin: true}

	released := 0
	for _, candidate := range stale {
		err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			it, err := s.items.GetForUpdate(txCtx, candidate.ID)
			if err != nil {
				return fmt.Errorf("get item: %w", err)
			}
			// Re-check under the lock: the holder may have finished or
			// released since the listing.
			if it.Status != domain.StatusTypesettingInProgress || it.ClaimedAt == nil || !it.ClaimedAt.Before(cutoff) {
				return errSkip
			}

			res, err := domain.Apply(it, domain.TransitionRequest{
				Target: domain.StatusAwaitingTypesetting,
				Actor:  system,
				Now:    s.now(),
			})
			if err != nil {
				return err
			}

			res.Item, err = s.items.UpdateState(txCtx, res.Item, it.Status)
			if err != nil {
				return fmt.Errorf("update item: %w", err)
			}

			return s.record(txCtx, res.Item, system.ID, domain.ActionClaimExpired, map[string]any{
				"assignee":   it.AssigneeTypesetter.String(),
				"claimed_at": it.ClaimedAt.Format(time.RFC3339),
			})
		})
		switch {
		case errors.Is(err, errSkip):
			continue
		case err != nil:
			return released, fmt.Errorf("reclaim item %s: %w", candidate.ID, err)
		}

		released++
		s.log.InfoContext(ctx, "claim expired", slog.String("item_id", candidate.ID.String()))
	}

	return released, nil
}

var errSkip = errors.New("skip")

// RunReclaimer calls Reclaim every interval until ctx is cancelled.
// Failures are logged and retried on the next tick.
func (s *Service) RunReclaimer(ctx context.Context, ttl, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.log.InfoContext(ctx, "claim reclaimer started",
		slog.Duration("lease_ttl", ttl),
		slog.Duration("interval", interval),
	)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			n, err := s.Reclaim(ctx, ttl)
			if err != nil {
				s.log.ErrorContext(ctx, "reclaim failed", slog.String("error", err.Error()))
				continue
			}
			if n > 0 {
				s.log.InfoContext(ctx, "reclaimed stale claims", slog.Int("count", n))
			}
		}
	}
}
