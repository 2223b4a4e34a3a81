// Package item implements the Item repository using PostgreSQL.
// Single-row reads and the compare-and-set update use raw SQL; list queries
// are built with squirrel and scanned with scany.
package item

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/question-pipeline/internal/adapter/postgres"
	"github.com/heartmarshall/question-pipeline/internal/domain"
)

// Repo provides item persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new item repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const itemColumns = `id, author_id, title, status, approved_subject, approved_language,
assignee_typesetter, claimed_at, version, rendered_artifact_ref, created_at, updated_at`

const createSQL = `
INSERT INTO items (id, author_id, title, status, version, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + itemColumns

const getByIDSQL = `
SELECT ` + itemColumns + `
FROM items
WHERE id = $1`

// The workflow writes only after holding one of these row locks.
const (
	getForUpdateSQL = getByIDSQL + `
FOR UPDATE`
	getForShareSQL = getByIDSQL + `
FOR SHARE`
)

// updateStateSQL is a compare-and-set on status: it only succeeds when the
// row is still in the state the caller decided from.
const updateStateSQL = `
UPDATE items
SET status = $3,
    approved_subject = $4,
    approved_language = $5,
    assignee_typesetter = $6,
    claimed_at = $7,
    version = $8,
    rendered_artifact_ref = $9,
    updated_at = $10,
    title = $11
WHERE id = $1 AND status = $2
RETURNING ` + itemColumns

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an item by primary key without locking it.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Item, error) {
	return r.get(ctx, getByIDSQL, id)
}

// GetForUpdate returns an item and holds an exclusive row lock until the
// surrounding transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Item, error) {
	return r.get(ctx, getForUpdateSQL, id)
}

// GetForShare returns an item and holds a shared row lock: notes can be added
// concurrently, but no status change can commit until the transaction ends.
func (r *Repo) GetForShare(ctx context.Context, id uuid.UUID) (domain.Item, error) {
	return r.get(ctx, getForShareSQL, id)
}

func (r *Repo) get(ctx context.Context, query string, id uuid.UUID) (domain.Item, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	it, err := scanItem(querier.QueryRow(ctx, query, id))
	if err != nil {
		return domain.Item{}, postgres.MapError(err, "item", id)
	}

	return it, nil
}

// List returns items ordered by creation time, newest first. A zero Limit
// returns every match.
func (r *Repo) List(ctx context.Context, f domain.ItemFilter) ([]domain.Item, error) {
	query := postgres.Builder().
		Select(itemColumns).
		From("items").
		OrderBy("created_at DESC", "id")

	if f.Status != nil {
		query = query.Where(squirrel.Eq{"status": string(*f.Status)})
	}
	if f.AuthorID != nil {
		query = query.Where(squirrel.Eq{"author_id": *f.AuthorID})
	}
	if f.Assignee != nil {
		query = query.Where(squirrel.Eq{"assignee_typesetter": *f.Assignee})
	}
	if f.Limit > 0 {
		query = query.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		query = query.Offset(uint64(f.Offset))
	}

	return r.selectItems(ctx, query)
}

// ListStaleClaims returns items held in typesetting_in_progress since before
// cutoff, oldest claim first.
func (r *Repo) ListStaleClaims(ctx context.Context, cutoff time.Time, limit uint64) ([]domain.Item, error) {
	query := postgres.Builder().
		Select(itemColumns).
		From("items").
		Where(squirrel.Eq{"status": string(domain.StatusTypesettingInProgress)}).
		Where(squirrel.Lt{"claimed_at": cutoff}).
		OrderBy("claimed_at", "id").
		Limit(limit)

	return r.selectItems(ctx, query)
}

func (r *Repo) selectItems(ctx context.Context, query squirrel.SelectBuilder) ([]domain.Item, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build items query: %w", err)
	}

	var rows []itemRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	items := make([]domain.Item, len(rows))
	for i, row := range rows {
		items[i] = row.toDomain()
	}

	return items, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new item and returns the persisted domain.Item.
func (r *Repo) Create(ctx context.Context, it domain.Item) (domain.Item, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	created, err := scanItem(querier.QueryRow(ctx, createSQL,
		it.ID,
		it.AuthorID,
		it.Title,
		string(it.Status),
		it.Version,
		it.CreatedAt.UTC().Truncate(time.Microsecond),
		it.UpdatedAt.UTC().Truncate(time.Microsecond),
	))
	if err != nil {
		return domain.Item{}, postgres.MapError(err, "item", it.ID)
	}

	return created, nil
}

// UpdateState writes every mutable column of it, provided the row is
// still in expected. A row that moved on returns domain.ErrConflict.
func (r *Repo) UpdateState(ctx context.Context, it domain.Item, expected domain.Status) (domain.Item, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var claimedAt *time.Time
	if it.ClaimedAt != nil {
		t := it.ClaimedAt.UTC().Truncate(time.Microsecond)
		claimedAt = &t
	}

	updated, err := scanItem(querier.QueryRow(ctx, updateStateSQL,
		it.ID,
		string(expected),
		string(it.Status),
		it.ApprovedSubject,
		it.ApprovedLanguage,
		it.AssigneeTypesetter,
		claimedAt,
		it.Version,
		it.RenderedArtifactRef,
		it.UpdatedAt.UTC().Truncate(time.Microsecond),
		it.Title,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Item{}, fmt.Errorf("item %s: status is no longer %s: %w", it.ID, expected, domain.ErrConflict)
	}
	if err != nil {
		return domain.Item{}, postgres.MapError(err, "item", it.ID)
	}

	return updated, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

type itemRow struct {
	ID                  uuid.UUID  `db:"id"`
	AuthorID            uuid.UUID  `db:"author_id"`
	Title               string     `db:"title"`
	Status              string     `db:"status"`
	ApprovedSubject     bool       `db:"approved_subject"`
	ApprovedLanguage    bool       `db:"approved_language"`
	AssigneeTypesetter  *uuid.UUID `db:"assignee_typesetter"`
	ClaimedAt           *time.Time `db:"claimed_at"`
	Version             int        `db:"version"`
	RenderedArtifactRef *string    `db:"rendered_artifact_ref"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
}

func (row itemRow) toDomain() domain.Item {
	return domain.Item{
		ID:                  row.ID,
		AuthorID:            row.AuthorID,
		Title:               row.Title,
		Status:              domain.Status(row.Status),
		ApprovedSubject:     row.ApprovedSubject,
		ApprovedLanguage:    row.ApprovedLanguage,
		AssigneeTypesetter:  row.AssigneeTypesetter,
		ClaimedAt:           row.ClaimedAt,
		Version:             row.Version,
		RenderedArtifactRef: row.RenderedArtifactRef,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}
}

// scanItem scans a single item row from pgx.Row.
func scanItem(row pgx.Row) (domain.Item, error) {
	var r itemRow
	if err := row.Scan(
		&r.ID, &r.AuthorID, &r.Title, &r.Status, &r.ApprovedSubject, &r.ApprovedLanguage,
		&r.AssigneeTypesetter, &r.ClaimedAt, &r.Version, &r.RenderedArtifactRef, &r.CreatedAt, &r.UpdatedAt,
	); err != nil {
		return domain.Item{}, err
	}
	return r.toDomain(), nil
}
