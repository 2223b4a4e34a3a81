// Package revision stores reviewer notes and their annotation anchors.
package revision

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/question-pipeline/internal/domain"
)

type itemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Item, error)
	GetForShare(ctx context.Context, id uuid.UUID) (domain.Item, error)
}

type noteRepo interface {
	Create(ctx context.Context, n domain.RevisionNote) (domain.RevisionNote, error)
	GetByID(ctx context.Context, itemID, noteID uuid.UUID) (domain.RevisionNote, error)
	List(ctx context.Context, itemID uuid.UUID, f domain.NoteFilter) ([]domain.RevisionNote, error)
	Delete(ctx context.Context, itemID, noteID uuid.UUID) error
	DeleteShapeNotes(ctx context.Context, itemID uuid.UUID) (int64, error)
}

type activityLogger interface {
	Log(ctx context.Context, e domain.ActivityEntry) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides the revision note operations.
type Service struct {
	items    itemRepo
	notes    noteRepo
	activity activityLogger
	tx       txManager
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new revision service.
func NewService(
	log *slog.Logger,
	items itemRepo,
	notes noteRepo,
	activity activityLogger,
	tx txManager,
) *Service {
	return &Service{
		items:    items,
		notes:    notes,
		activity: activity,
		tx:       tx,
		log:      log.With("service", "revision"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}
