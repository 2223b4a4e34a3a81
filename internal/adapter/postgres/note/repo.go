// Package note implements the RevisionNote repository using PostgreSQL.
// Anchors are stored as a JSONB envelope next to a denormalized anchor_kind
// column so shape notes can be cleared without decoding every row.
package note

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/question-pipeline/internal/adapter/postgres"
	"github.com/heartmarshall/question-pipeline/internal/domain"
)

// Repo provides revision note persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new note repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const noteColumns = `id, item_id, track, author_id, anchor, body, artifact_ref, created_at`

const createSQL = `
INSERT INTO revision_notes (id, item_id, track, author_id, anchor_kind, anchor, body, artifact_ref, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + noteColumns

var shapeKinds = []string{
	string(domain.AnchorKindPoint),
	string(domain.AnchorKindBox),
	string(domain.AnchorKindLine),
	string(domain.AnchorKindFreehand),
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a note. The anchor must already be validated.
func (r *Repo) Create(ctx context.Context, n domain.RevisionNote) (domain.RevisionNote, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	anchorJSON, err := domain.EncodeAnchor(n.Anchor)
	if err != nil {
		return domain.RevisionNote{}, fmt.Errorf("revision_note %s: %w", n.ID, err)
	}

	var row noteRow
	err = querier.QueryRow(ctx, createSQL,
		n.ID,
		n.ItemID,
		string(n.Track),
		n.AuthorID,
		string(n.Anchor.Kind()),
		anchorJSON,
		n.Body,
		n.ArtifactRef,
		n.CreatedAt.UTC().Truncate(time.Microsecond),
	).Scan(&row.ID, &row.ItemID, &row.Track, &row.AuthorID, &row.Anchor, &row.Body, &row.ArtifactRef, &row.CreatedAt)
	if err != nil {
		return domain.RevisionNote{}, postgres.MapError(err, "revision_note", n.ID)
	}

	return row.toDomain()
}

// Delete removes one note of itemID. A note that does not exist or belongs
// to another item returns domain.ErrNoteNotFound.
func (r *Repo) Delete(ctx context.Context, itemID, noteID uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete("revision_notes").
		Where(squirrel.Eq{"id": noteID, "item_id": itemID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete note: %w", err)
	}

	ct, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "revision_note", noteID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("revision_note %s: %w", noteID, domain.ErrNoteNotFound)
	}

	return nil
}

// DeleteShapeNotes removes every note of itemID whose anchor is positioned
// on the rendered artifact and returns how many were removed.
func (r *Repo) DeleteShapeNotes(ctx context.Context, itemID uuid.UUID) (int64, error) {
	sql, args, err := postgres.Builder().
		Delete("revision_notes").
		Where(squirrel.Eq{"item_id": itemID, "anchor_kind": shapeKinds}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete shape notes: %w", err)
	}

	ct, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "item", itemID)
	}

	return ct.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns one note of itemID.
func (r *Repo) GetByID(ctx context.Context, itemID, noteID uuid.UUID) (domain.RevisionNote, error) {
	notes, err := r.selectNotes(ctx, postgres.Builder().
		Select(noteColumns).
		From("revision_notes").
		Where(squirrel.Eq{"id": noteID, "item_id": itemID}))
	if err != nil {
		return domain.RevisionNote{}, err
	}
	if len(notes) == 0 {
		return domain.RevisionNote{}, fmt.Errorf("revision_note %s: %w", noteID, domain.ErrNoteNotFound)
	}
	return notes[0], nil
}

// List returns the notes of itemID in creation order, optionally narrowed to
// one track.
func (r *Repo) List(ctx context.Context, itemID uuid.UUID, f domain.NoteFilter) ([]domain.RevisionNote, error) {
	query := postgres.Builder().
		Select(noteColumns).
		From("revision_notes").
		Where(squirrel.Eq{"item_id": itemID}).
		OrderBy("created_at", "id")

	if f.Track != nil {
		query = query.Where(squirrel.Eq{"track": string(*f.Track)})
	}

	return r.selectNotes(ctx, query)
}

// CountByTrack returns how many notes itemID currently has on track.
func (r *Repo) CountByTrack(ctx context.Context, itemID uuid.UUID, track domain.Track) (int, error) {
	sql, args, err := postgres.Builder().
		Select("count(*)").
		From("revision_notes").
		Where(squirrel.Eq{"item_id": itemID, "track": string(track)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count notes: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "item", itemID)
	}

	return n, nil
}

func (r *Repo) selectNotes(ctx context.Context, query squirrel.SelectBuilder) ([]domain.RevisionNote, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build notes query: %w", err)
	}

	var rows []noteRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list revision_notes: %w", err)
	}

	notes := make([]domain.RevisionNote, len(rows))
	for i, row := range rows {
		n, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		notes[i] = n
	}

	return notes, nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type noteRow struct {
	ID          uuid.UUID `db:"id"`
	ItemID      uuid.UUID `db:"item_id"`
	Track       string    `db:"track"`
	AuthorID    uuid.UUID `db:"author_id"`
	Anchor      []byte    `db:"anchor"`
	Body        string    `db:"body"`
	ArtifactRef *string   `db:"artifact_ref"`
	CreatedAt   time.Time `db:"created_at"`
}

func (row noteRow) toDomain() (domain.RevisionNote, error) {
	a, err := domain.DecodeAnchor(row.Anchor)
	if err != nil {
		return domain.RevisionNote{}, fmt.Errorf("revision_note %s decode anchor: %w", row.ID, err)
	}

	return domain.RevisionNote{
		ID:          row.ID,
		ItemID:      row.ItemID,
		Track:       domain.Track(row.Track),
		AuthorID:    row.AuthorID,
		Anchor:      a,
		Body:        row.Body,
		ArtifactRef: row.ArtifactRef,
		CreatedAt:   row.CreatedAt,
	}, nil
}
