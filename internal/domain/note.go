package domain

import (
	"time"

	"github.com/google/uuid"
)

// RevisionNote is one reviewer comment attached to an item on a track.
// ArtifactRef records which rendered artifact was canonical when the note
// was written (nil means the original text render).
type RevisionNote struct {
	ID          uuid.UUID
	ItemID      uuid.UUID
	Track       Track
	AuthorID    uuid.UUID
	Anchor      Anchor
	Body        string
	ArtifactRef *string
	CreatedAt   time.Time
}

// MaxNoteBodyLength bounds the free-text comment.
const MaxNoteBodyLength = 10000

// CanBeDeletedBy reports whether actor may delete the note: its author, the
// owner of the item, or an admin.
func (n RevisionNote) CanBeDeletedBy(actor Actor, item Item) bool {
	return actor.IsAdmin || n.AuthorID == actor.ID || item.IsOwnedBy(actor.ID)
}

// NoteFilter narrows ListNotes. A nil Track returns all tracks.
type NoteFilter struct {
	Track *Track
}
