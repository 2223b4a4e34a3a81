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

// guardFunc runs against the locked row before domain.Apply.
type guardFunc func(it domain.Item) error

// Transition moves an item to input.Target on behalf of the authenticated
// actor. Finishing a review counts the track's notes in the same
// transaction: any note turns the request into revision_requested.
// typesetting_in_progress is only reachable through Claim.
func (s *Service) Transition(ctx context.Context, input TransitionInput) (domain.Item, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.Item{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Item{}, err
	}

	var guard guardFunc
	if input.Target == domain.StatusTypesettingInProgress {
		guard = func(it domain.Item) error {
			return domain.NewTransitionError(it.Status, input.Target, "use Claim")
		}
	}

	res, err := s.apply(ctx, actor, input, guard)
	if err != nil {
		return domain.Item{}, err
	}
	return res.Item, nil
}

// apply is the shared locked read → decide → compare-and-set → log path.
func (s *Service) apply(ctx context.Context, actor domain.Actor, input TransitionInput, guard guardFunc) (domain.TransitionResult, error) {
	var (
		res  domain.TransitionResult
		from domain.Status
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		it, err := s.items.GetForUpdate(txCtx, input.ItemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		from = it.Status

		if guard != nil {
			if err := guard(it); err != nil {
				return err
			}
		}

		req := domain.TransitionRequest{
			Target: input.Target,
			Actor:  actor,
			Track:  input.Track,
			Now:    s.now(),
		}

		var added *domain.RevisionNote
		if it.Status.IsReviewInProgress() {
			track, _ := domain.ReviewTrackOf(it.Status)
			if input.NoteBody != nil && it.HasArtifact() && actor.CanReview(track) {
				n, err := s.notes.Create(txCtx, domain.RevisionNote{
					ID:          uuid.New(),
					ItemID:      it.ID,
					Track:       track,
					AuthorID:    actor.ID,
					Anchor:      domain.WholeItem{},
					Body:        strings.TrimSpace(*input.NoteBody),
					ArtifactRef: it.RenderedArtifactRef,
					CreatedAt:   req.Now,
				})
				if err != nil {
					return fmt.Errorf("add review note: %w", err)
				}
				added = &n
			}

			req.TrackNotes, err = s.notes.CountByTrack(txCtx, it.ID, track)
			if err != nil {
				return fmt.Errorf("count %s notes: %w", track, err)
			}
		} else if input.NoteBody != nil {
			return domain.NewValidationError("note_body", "only allowed when finishing a review")
		}

		res, err = domain.Apply(it, req)
		if err != nil {
			return err
		}
		if !res.Changed {
			return nil
		}

		res.Item, err = s.items.UpdateState(txCtx, res.Item, it.Status)
		if err != nil {
			return fmt.Errorf("update item: %w", err)
		}

		if added != nil {
			if err := s.record(txCtx, res.Item, actor.ID, domain.ActionNoteAdded, map[string]any{
				"note_id": added.ID.String(),
				"track":   string(added.Track),
				"anchor":  string(domain.AnchorKindItem),
			}); err != nil {
				return fmt.Errorf("activity log: %w", err)
			}
		}
		if err := s.record(txCtx, res.Item, actor.ID, res.Action, domain.StatusChangeDetail(it.Status, res.Item.Status)); err != nil {
			return fmt.Errorf("activity log: %w", err)
		}
		if res.Approved != nil {
			if err := s.record(txCtx, res.Item, actor.ID, domain.ActionApprovalRecorded, map[string]any{
				"track": string(*res.Approved),
			}); err != nil {
				return fmt.Errorf("activity log: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return domain.TransitionResult{}, err
	}

	if res.Changed {
		s.log.InfoContext(ctx, "item transitioned",
			slog.String("item_id", res.Item.ID.String()),
			slog.String("actor_id", actor.ID.String()),
			slog.String("from", string(from)),
			slog.String("to", string(res.Item.Status)),
		)
	}

	return res, nil
}
