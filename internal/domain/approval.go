package domain

import "fmt"

// CanComplete reports whether the item may move to completed: both approval
// flags are set and the item rests in one of the approved states.
func CanComplete(item Item) bool {
	if !item.ApprovedSubject || !item.ApprovedLanguage {
		return false
	}
	return item.Status == StatusSubjectApproved || item.Status == StatusLanguageApproved
}

// RecordApproval sets the approval flag of track. unresolved is the number of
// notes still attached to that track; approving over open notes is a caller
// bug and returns ErrUnresolvedNotes.
func RecordApproval(item Item, track Track, unresolved int) (Item, error) {
	if unresolved > 0 {
		return item, fmt.Errorf("approve %s with %d notes: %w", track, unresolved, ErrUnresolvedNotes)
	}
	switch track {
	case TrackSubject:
		item.ApprovedSubject = true
	case TrackLanguage:
		item.ApprovedLanguage = true
	default:
		return item, ErrInvalidTrack
	}
	return item, nil
}

// ResetApprovalsOnEdit clears both approval flags and bumps the version by
// exactly one. It is applied to every content change made after a revision
// was requested, including edits after the item went back to typesetting.
func ResetApprovalsOnEdit(item Item) Item {
	item.ApprovedSubject = false
	item.ApprovedLanguage = false
	item.Version++
	return item
}

// contentEditableStatuses are the states in which the body may still change.
var contentEditableStatuses = map[Status]struct{}{
	StatusDrafting:              {},
	StatusAwaitingTypesetting:   {},
	StatusTypesettingInProgress: {},
	StatusRevisionRequested:     {},
}

// ApplyEdit decides the effect of an edit reported by the content-editing
// collaborator. Metadata edits change nothing tracked here; content edits
// bump the version and, once a revision loop has started, reset approvals.
func ApplyEdit(item Item, kind EditKind) (Item, error) {
	if item.Status == StatusArchived {
		return item, ErrItemArchived
	}
	if !kind.IsValid() {
		return item, NewValidationError("kind", "must be content or metadata")
	}
	if kind == EditKindMetadata {
		return item, nil
	}
	if _, ok := contentEditableStatuses[item.Status]; !ok {
		return item, fmt.Errorf("edit content in %s: %w", item.Status, ErrContentLocked)
	}
	if ResetsApprovals(item, kind) {
		return ResetApprovalsOnEdit(item), nil
	}
	item.Version++
	return item, nil
}

// ResetsApprovals reports whether an edit of kind clears the approval flags.
// Flags can only be set in an editable state after a revision was requested,
// so a set flag marks the item as being inside a revision loop.
func ResetsApprovals(item Item, kind EditKind) bool {
	if kind != EditKindContent {
		return false
	}
	return item.Status == StatusRevisionRequested || item.ApprovedSubject || item.ApprovedLanguage
}
