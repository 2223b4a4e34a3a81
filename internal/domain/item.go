package domain

import (
	"time"

	"github.com/google/uuid"
)

// Item is one unit of editorial work (a question) moving through the
// pipeline. Status, approval flags, assignee and version change only through
// Apply and the approval gate functions.
type Item struct {
	ID                  uuid.UUID
	AuthorID            uuid.UUID
	Title               string
	Status              Status
	ApprovedSubject     bool
	ApprovedLanguage    bool
	AssigneeTypesetter  *uuid.UUID
	ClaimedAt           *time.Time
	Version             int
	RenderedArtifactRef *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewItem returns an item in the initial state owned by authorID.
func NewItem(authorID uuid.UUID, title string, now time.Time) Item {
	return Item{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Title:     title,
		Status:    StatusDrafting,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HasArtifact reports whether a rendered artifact is currently canonical.
func (i Item) HasArtifact() bool {
	return i.RenderedArtifactRef != nil && *i.RenderedArtifactRef != ""
}

// IsOwnedBy reports whether actorID authored the item.
func (i Item) IsOwnedBy(actorID uuid.UUID) bool {
	return i.AuthorID == actorID
}

// IsAssignedTo reports whether actorID currently holds the typesetting claim.
func (i Item) IsAssignedTo(actorID uuid.UUID) bool {
	return i.AssigneeTypesetter != nil && *i.AssigneeTypesetter == actorID
}

// Approved reports the approval flag of a review track.
func (i Item) Approved(track Track) bool {
	switch track {
	case TrackSubject:
		return i.ApprovedSubject
	case TrackLanguage:
		return i.ApprovedLanguage
	}
	return false
}

// ClaimToken is proof of a successful claim.
type ClaimToken struct {
	ItemID    uuid.UUID
	Assignee  uuid.UUID
	ClaimedAt time.Time
	Version   int
}

// EditKind distinguishes content-body edits from metadata-only edits.
type EditKind string

const (
	EditKindContent  EditKind = "content"
	EditKindMetadata EditKind = "metadata"
)

func (k EditKind) String() string { return string(k) }

func (k EditKind) IsValid() bool {
	return k == EditKindContent || k == EditKindMetadata
}
