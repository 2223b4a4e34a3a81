package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/question-pipeline/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedItem creates an item in drafting owned by a fresh author.
func SeedItem(t *testing.T, pool *pgxpool.Pool) domain.Item {
	t.Helper()
	return SeedItemInState(t, pool, domain.StatusDrafting, func(*domain.Item) {})
}

// SeedItemInState inserts an item directly in status, bypassing the
// workflow. mutate may set flags, the artifact or the assignee before insert;
// the row must still satisfy the table constraints.
func SeedItemInState(t *testing.T, pool *pgxpool.Pool, status domain.Status, mutate func(*domain.Item)) domain.Item {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	it := domain.NewItem(uuid.New(), "Question "+uniqueSuffix(), now)
	it.Status = status
	if status == domain.StatusTypesettingInProgress {
		assignee := uuid.New()
		it.AssigneeTypesetter = &assignee
		it.ClaimedAt = &now
	}
	mutate(&it)

	_, err := pool.Exec(ctx,
		`INSERT INTO items (id, author_id, title, status, approved_subject, approved_language,
		                    assignee_typesetter, claimed_at, version, rendered_artifact_ref, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		it.ID, it.AuthorID, it.Title, string(it.Status), it.ApprovedSubject, it.ApprovedLanguage,
		it.AssigneeTypesetter, it.ClaimedAt, it.Version, it.RenderedArtifactRef, it.CreatedAt, it.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItemInState insert: %v", err)
	}

	return it
}

// SeedNote inserts a revision note with a whole-item anchor.
func SeedNote(t *testing.T, pool *pgxpool.Pool, itemID uuid.UUID, track domain.Track) uuid.UUID {
	t.Helper()
	return SeedNoteWithAnchor(t, pool, itemID, track, domain.WholeItem{})
}

// SeedNoteWithAnchor inserts a revision note anchored at a.
func SeedNoteWithAnchor(t *testing.T, pool *pgxpool.Pool, itemID uuid.UUID, track domain.Track, a domain.Anchor) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	anchorJSON, err := domain.EncodeAnchor(a)
	if err != nil {
		t.Fatalf("testhelper: SeedNote encode anchor: %v", err)
	}

	id := uuid.New()
	_, err = pool.Exec(ctx,
		`INSERT INTO revision_notes (id, item_id, track, author_id, anchor_kind, anchor, body, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, now())`,
		id, itemID, string(track), uuid.New(), string(a.Kind()), anchorJSON, "note "+uniqueSuffix(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNote insert: %v", err)
	}

	return id
}

// CountActivity returns the number of log entries recorded for itemID.
func CountActivity(t *testing.T, pool *pgxpool.Pool, itemID uuid.UUID) int {
	t.Helper()
	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM activity_log WHERE item_id = $1`, itemID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountActivity: %v", err)
	}
	return n
}
