package domain

import (
	"fmt"
	"time"
)

// TransitionRequest carries everything Apply needs to decide a status change.
// TrackNotes is the number of notes on the track under review; the caller
// must count them inside the same transaction that writes the result.
type TransitionRequest struct {
	Target     Status
	Actor      Actor
	Track      *Track
	TrackNotes int
	Now        time.Time
}

// TransitionResult is the decided outcome of a request.
type TransitionResult struct {
	Item     Item
	Changed  bool
	Action   ActionKind
	Approved *Track
}

// Apply is the single authoritative transition function. It never mutates
// its input; on error the returned result is empty and nothing must be
// written.
func Apply(item Item, req TransitionRequest) (TransitionResult, error) {
	if item.Status == StatusArchived {
		return TransitionResult{}, ErrItemArchived
	}
	if !req.Target.IsValid() {
		return TransitionResult{}, NewTransitionError(item.Status, req.Target, "unknown target state")
	}

	switch req.Target {
	case StatusArchived:
		return archive(item, req)
	case StatusCompleted:
		if item.Status == StatusCompleted {
			return TransitionResult{Item: item}, nil
		}
	}

	switch item.Status {
	case StatusDrafting:
		if req.Target == StatusAwaitingTypesetting {
			return submit(item, req)
		}
	case StatusAwaitingTypesetting:
		if req.Target == StatusTypesettingInProgress {
			return claim(item, req)
		}
	case StatusRevisionRequested:
		switch req.Target {
		case StatusTypesettingInProgress:
			return claim(item, req)
		case StatusAwaitingTypesetting:
			return resubmit(item, req)
		}
	case StatusTypesettingInProgress:
		switch req.Target {
		case StatusTypesettingInProgress:
			return claim(item, req)
		case StatusTypesettingDone:
			return finishTypesetting(item, req)
		case StatusAwaitingTypesetting:
			return release(item, req)
		}
	case StatusTypesettingDone:
		if req.Target.IsReviewInProgress() {
			return startReview(item, req)
		}
	case StatusSubjectApproved, StatusLanguageApproved:
		switch {
		case req.Target.IsReviewInProgress():
			return startReview(item, req)
		case req.Target == StatusCompleted:
			return complete(item, req)
		}
	case StatusSubjectReviewInProgress, StatusLanguageReviewInProgress:
		return finishReview(item, req)
	}

	return TransitionResult{}, NewTransitionError(item.Status, req.Target, "")
}

func moved(item Item, req TransitionRequest, action ActionKind) TransitionResult {
	item.Status = req.Target
	item.UpdatedAt = req.Now
	return TransitionResult{Item: item, Changed: true, Action: action}
}

func clearClaim(item Item) Item {
	item.AssigneeTypesetter = nil
	item.ClaimedAt = nil
	return item
}

func archive(item Item, req TransitionRequest) (TransitionResult, error) {
	if !req.Actor.IsAdmin {
		return TransitionResult{}, fmt.Errorf("archive: %w", ErrUnauthorized)
	}
	return moved(clearClaim(item), req, ActionTransitioned), nil
}

func submit(item Item, req TransitionRequest) (TransitionResult, error) {
	if !req.Actor.IsAdmin && !item.IsOwnedBy(req.Actor.ID) {
		return TransitionResult{}, fmt.Errorf("submit for typesetting: %w", ErrUnauthorized)
	}
	return moved(item, req, ActionTransitioned), nil
}

func resubmit(item Item, req TransitionRequest) (TransitionResult, error) {
	if !req.Actor.IsAdmin && !item.IsOwnedBy(req.Actor.ID) {
		return TransitionResult{}, fmt.Errorf("resubmit for typesetting: %w", ErrUnauthorized)
	}
	return moved(clearClaim(item), req, ActionTransitioned), nil
}

func claim(item Item, req TransitionRequest) (TransitionResult, error) {
	if !req.Actor.MayTypeset() {
		return TransitionResult{}, fmt.Errorf("claim: %w", ErrUnauthorized)
	}
	if item.Status == StatusTypesettingInProgress {
		if item.IsAssignedTo(req.Actor.ID) {
			return TransitionResult{Item: item, Action: ActionClaimed}, nil
		}
		holder := item.AssigneeTypesetter
		if holder == nil {
			return TransitionResult{}, NewTransitionError(item.Status, req.Target, "claimed item has no assignee")
		}
		return TransitionResult{}, &ClaimError{ItemID: item.ID, Assignee: *holder}
	}

	id := req.Actor.ID
	at := req.Now
	item.AssigneeTypesetter = &id
	item.ClaimedAt = &at
	return moved(item, req, ActionClaimed), nil
}

func release(item Item, req TransitionRequest) (TransitionResult, error) {
	if !req.Actor.IsAdmin && !item.IsAssignedTo(req.Actor.ID) {
		return TransitionResult{}, fmt.Errorf("release: %w", ErrUnauthorized)
	}
	return moved(clearClaim(item), req, ActionReleased), nil
}

func finishTypesetting(item Item, req TransitionRequest) (TransitionResult, error) {
	if !req.Actor.IsAdmin && !item.IsAssignedTo(req.Actor.ID) {
		return TransitionResult{}, fmt.Errorf("finish typesetting: %w", ErrUnauthorized)
	}
	if !item.HasArtifact() {
		return TransitionResult{}, NewTransitionError(item.Status, req.Target, "cannot finish typesetting without an artifact")
	}
	return moved(clearClaim(item), req, ActionTransitioned), nil
}

func startReview(item Item, req TransitionRequest) (TransitionResult, error) {
	track, _ := ReviewTrackOf(req.Target)
	if req.Track != nil && *req.Track != track {
		return TransitionResult{}, NewTransitionError(item.Status, req.Target, "track does not match target")
	}
	if !req.Actor.CanReview(track) {
		return TransitionResult{}, fmt.Errorf("start %s review: %w", track, ErrUnauthorized)
	}
	if !item.HasArtifact() {
		return TransitionResult{}, NewTransitionError(item.Status, req.Target, "no rendered artifact to review")
	}
	if item.Approved(track) {
		return TransitionResult{}, NewTransitionError(item.Status, req.Target, fmt.Sprintf("%s track already approved", track))
	}
	return moved(item, req, ActionTransitioned), nil
}

func finishReview(item Item, req TransitionRequest) (TransitionResult, error) {
	track, _ := ReviewTrackOf(item.Status)
	states := reviewTracks[track]

	if req.Target != states.approved && req.Target != StatusRevisionRequested {
		return TransitionResult{}, NewTransitionError(item.Status, req.Target, "")
	}
	if req.Track != nil && *req.Track != track {
		return TransitionResult{}, NewTransitionError(item.Status, req.Target, "track does not match review in progress")
	}
	if !req.Actor.CanReview(track) {
		return TransitionResult{}, fmt.Errorf("finish %s review: %w", track, ErrUnauthorized)
	}
	if !item.HasArtifact() {
		return TransitionResult{}, NewTransitionError(item.Status, req.Target, "no rendered artifact to review")
	}

	if req.TrackNotes > 0 {
		req.Target = StatusRevisionRequested
		return moved(item, req, ActionTransitioned), nil
	}
	if req.Target == StatusRevisionRequested {
		return TransitionResult{}, NewTransitionError(item.Status, req.Target, fmt.Sprintf("no %s notes recorded", track))
	}

	approved, err := RecordApproval(item, track, req.TrackNotes)
	if err != nil {
		return TransitionResult{}, err
	}
	res := moved(approved, req, ActionTransitioned)
	res.Approved = &track
	return res, nil
}

func complete(item Item, req TransitionRequest) (TransitionResult, error) {
	if !req.Actor.IsReviewer() {
		return TransitionResult{}, fmt.Errorf("complete: %w", ErrUnauthorized)
	}
	if !CanComplete(item) {
		return TransitionResult{}, NewTransitionError(item.Status, req.Target, "both tracks must be approved")
	}
	return moved(item, req, ActionTransitioned), nil
}
