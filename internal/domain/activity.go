package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActionKind names the event recorded by an activity log entry.
type ActionKind string

const (
	ActionCreated          ActionKind = "created"
	ActionTransitioned     ActionKind = "transitioned"
	ActionClaimed          ActionKind = "claimed"
	ActionReleased         ActionKind = "released"
	ActionClaimExpired     ActionKind = "claim_expired"
	ActionNoteAdded        ActionKind = "note_added"
	ActionNoteDeleted      ActionKind = "note_deleted"
	ActionNotesCleared     ActionKind = "notes_cleared"
	ActionContentEdited    ActionKind = "content_edited"
	ActionMetadataEdited   ActionKind = "metadata_edited"
	ActionArtifactAttached ActionKind = "artifact_attached"
	ActionApprovalRecorded ActionKind = "approval_recorded"
)

func (a ActionKind) String() string { return string(a) }

func (a ActionKind) IsValid() bool {
	switch a {
	case ActionCreated, ActionTransitioned, ActionClaimed, ActionReleased, ActionClaimExpired,
		ActionNoteAdded, ActionNoteDeleted, ActionNotesCleared, ActionContentEdited,
		ActionMetadataEdited, ActionArtifactAttached, ActionApprovalRecorded:
		return true
	}
	return false
}

// ActivityEntry is an immutable record of something that happened to an item.
type ActivityEntry struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	ActorID   uuid.UUID
	Kind      ActionKind
	Detail    map[string]any
	CreatedAt time.Time
}

// NewActivityEntry builds an entry stamped with now.
func NewActivityEntry(itemID, actorID uuid.UUID, kind ActionKind, detail map[string]any, now time.Time) ActivityEntry {
	return ActivityEntry{
		ID:        uuid.New(),
		ItemID:    itemID,
		ActorID:   actorID,
		Kind:      kind,
		Detail:    detail,
		CreatedAt: now,
	}
}

// StatusChangeDetail is the detail payload of status-changing entries.
func StatusChangeDetail(from, to Status) map[string]any {
	return map[string]any{"from": string(from), "to": string(to)}
}

// ActivitySummary is the audit view of an item: the replayed log plus the
// revision count derived from it, compared with the stored counter.
type ActivitySummary struct {
	Entries          []ActivityEntry
	EffectiveVersion int
	StoredVersion    int
}

// Drift reports whether the stored version disagrees with the log.
func (s ActivitySummary) Drift() bool {
	return s.EffectiveVersion != s.StoredVersion
}

// EffectiveVersion derives an item's content version from its log: 1 plus
// one for every content edit.
func EffectiveVersion(entries []ActivityEntry) int {
	v := 1
	for _, e := range entries {
		if e.Kind == ActionContentEdited {
			v++
		}
	}
	return v
}
