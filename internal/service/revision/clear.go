package revision

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/question-pipeline/internal/domain"
)

// ClearAllForArtifactChange deletes the notes positioned on the rendered
// artifact. Text and whole-item notes survive a new render. It is called by
// the workflow inside its own transaction whenever the artifact changes.
func (s *Service) ClearAllForArtifactChange(ctx context.Context, itemID, actorID uuid.UUID) (int64, error) {
	var cleared int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		cleared, err = s.notes.DeleteShapeNotes(txCtx, itemID)
		if err != nil {
			return fmt.Errorf("delete shape notes: %w", err)
		}
		if cleared == 0 {
			return nil
		}

		entry := domain.NewActivityEntry(itemID, actorID, domain.ActionNotesCleared, map[string]any{
			"count":  cleared,
			"reason": "artifact_changed",
		}, s.now())
		if err := s.activity.Log(txCtx, entry); err != nil {
			return fmt.Errorf("activity log: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return cleared, nil
}
