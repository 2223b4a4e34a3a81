// Package workflow drives items through the editorial pipeline. Every
// operation locks the item row, decides with domain.Apply, writes with a
// status compare-and-set and appends to the activity log, all in one
// transaction.
package workflow

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/question-pipeline/internal/domain"
)

type itemRepo interface {
	Create(ctx context.Context, it domain.Item) (domain.Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Item, error)
	List(ctx context.Context, f domain.ItemFilter) ([]domain.Item, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Item, error)
	UpdateState(ctx context.Context, it domain.Item, expected domain.Status) (domain.Item, error)
	ListStaleClaims(ctx context.Context, cutoff time.Time, limit uint64) ([]domain.Item, error)
}

type noteRepo interface {
	Create(ctx context.Context, n domain.RevisionNote) (domain.RevisionNote, error)
	CountByTrack(ctx context.Context, itemID uuid.UUID, track domain.Track) (int, error)
}

// artifactNoteClearer removes notes invalidated by a new rendered artifact.
type artifactNoteClearer interface {
	ClearAllForArtifactChange(ctx context.Context, itemID uuid.UUID, actorID uuid.UUID) (int64, error)
}

type activityLogger interface {
	Log(ctx context.Context, e domain.ActivityEntry) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// SystemActorID is recorded as the actor of entries written by background
// jobs such as the claim reclaimer.
var SystemActorID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// Service provides the workflow operations.
type Service struct {
	items    itemRepo
	notes    noteRepo
	clearer  artifactNoteClearer
	activity activityLogger
	tx       txManager
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new workflow service.
func NewService(
	log *slog.Logger,
	items itemRepo,
	notes noteRepo,
	clearer artifactNoteClearer,
	activity activityLogger,
	tx txManager,
) *Service {
	return &Service{
		items:    items,
		notes:    notes,
		clearer:  clearer,
		activity: activity,
		tx:       tx,
		log:      log.With("service", "workflow"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// record appends one activity entry for it.
func (s *Service) record(ctx context.Context, it domain.Item, actorID uuid.UUID, kind domain.ActionKind, detail map[string]any) error {
	return s.activity.Log(ctx, domain.NewActivityEntry(it.ID, actorID, kind, detail, s.now()))
}
