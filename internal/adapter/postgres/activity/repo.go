// Package activity implements the ActivityLog repository using PostgreSQL.
// It provides append-only operations; UPDATE, DELETE and TRUNCATE on the
// table are rejected by a trigger.
package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/question-pipeline/internal/adapter/postgres"
	"github.com/heartmarshall/question-pipeline/internal/domain"
)

// Repo provides activity log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const activityColumns = `id, item_id, actor_id, kind, detail, created_at`

const appendSQL = `
INSERT INTO activity_log (id, item_id, actor_id, kind, detail, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + activityColumns

const listByItemSQL = `
SELECT ` + activityColumns + `
FROM activity_log
WHERE item_id = $1
ORDER BY seq`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Append inserts an entry and returns it as persisted. Called inside the
// transaction that performs the change it records.
func (r *Repo) Append(ctx context.Context, e domain.ActivityEntry) (domain.ActivityEntry, error) {
	if !e.Kind.IsValid() {
		return domain.ActivityEntry{}, domain.NewValidationError("kind", fmt.Sprintf("unknown action %q", e.Kind))
	}

	var detailJSON []byte
	if e.Detail != nil {
		var err error
		detailJSON, err = json.Marshal(e.Detail)
		if err != nil {
			return domain.ActivityEntry{}, fmt.Errorf("activity %s marshal detail: %w", e.ID, err)
		}
	}

	var row activityRow
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, appendSQL,
		e.ID,
		e.ItemID,
		e.ActorID,
		string(e.Kind),
		detailJSON,
		e.CreatedAt.UTC().Truncate(time.Microsecond),
	).Scan(&row.ID, &row.ItemID, &row.ActorID, &row.Kind, &row.Detail, &row.CreatedAt)
	if err != nil {
		return domain.ActivityEntry{}, postgres.MapError(err, "activity", e.ID)
	}

	return row.toDomain()
}

// Log appends an entry without returning it.
func (r *Repo) Log(ctx context.Context, e domain.ActivityEntry) error {
	_, err := r.Append(ctx, e)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByItem returns every entry for itemID in the order they were appended.
func (r *Repo) ListByItem(ctx context.Context, itemID uuid.UUID) ([]domain.ActivityEntry, error) {
	var rows []activityRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listByItemSQL, itemID); err != nil {
		return nil, fmt.Errorf("get activity by item: %w", err)
	}

	entries := make([]domain.ActivityEntry, len(rows))
	for i, row := range rows {
		e, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		entries[i] = e
	}

	return entries, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type activityRow struct {
	ID        uuid.UUID `db:"id"`
	ItemID    uuid.UUID `db:"item_id"`
	ActorID   uuid.UUID `db:"actor_id"`
	Kind      string    `db:"kind"`
	Detail    []byte    `db:"detail"`
	CreatedAt time.Time `db:"created_at"`
}

func (row activityRow) toDomain() (domain.ActivityEntry, error) {
	e := domain.ActivityEntry{
		ID:        row.ID,
		ItemID:    row.ItemID,
		ActorID:   row.ActorID,
		Kind:      domain.ActionKind(row.Kind),
		CreatedAt: row.CreatedAt,
	}

	// detail: JSONB -> map[string]any
	if len(row.Detail) > 0 {
		detail := make(map[string]any)
		if err := json.Unmarshal(row.Detail, &detail); err != nil {
			return domain.ActivityEntry{}, fmt.Errorf("activity %s unmarshal detail: %w", row.ID, err)
		}
		e.Detail = detail
	}

	return e, nil
}
