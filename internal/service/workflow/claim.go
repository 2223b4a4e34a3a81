package workflow

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/question-pipeline/internal/domain"
	"github.com/heartmarshall/question-pipeline/pkg/ctxutil"
)

// Claim takes exclusive typesetting ownership of an item. Concurrent claims
// serialize on the row lock: exactly one wins, the others observe the
// winner's row and get a *domain.ClaimError naming the assignee. A repeated
// claim by the current holder succeeds without a write.
func (s *Service) Claim(ctx context.Context, itemID uuid.UUID) (domain.ClaimToken, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ClaimToken{}, domain.ErrUnauthorized
	}

	res, err := s.apply(ctx, actor, TransitionInput{
		ItemID: itemID,
		Target: domain.StatusTypesettingInProgress,
	}, nil)
	if err != nil {
		return domain.ClaimToken{}, err
	}

	token := domain.ClaimToken{
		ItemID:   res.Item.ID,
		Assignee: actor.ID,
		Version:  res.Item.Version,
	}
	if res.Item.ClaimedAt != nil {
		token.ClaimedAt = *res.Item.ClaimedAt
	}
	return token, nil
}

// Release gives a claimed item back to the typesetting queue. Only the
// assignee or an admin may release.
func (s *Service) Release(ctx context.Context, itemID uuid.UUID) (domain.Item, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.Item{}, domain.ErrUnauthorized
	}

	res, err := s.apply(ctx, actor, TransitionInput{
		ItemID: itemID,
		Target: domain.StatusAwaitingTypesetting,
	}, requireClaimed)
	if err != nil {
		return domain.Item{}, err
	}
	return res.Item, nil
}

func requireClaimed(it domain.Item) error {
	if it.Status == domain.StatusArchived {
		return domain.ErrItemArchived
	}
	if it.Status != domain.StatusTypesettingInProgress {
		return domain.NewTransitionError(it.Status, domain.StatusAwaitingTypesetting, "item is not claimed")
	}
	return nil
}
