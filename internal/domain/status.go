package domain

// Status is the workflow state of an item. The set is closed: values outside
// it are rejected at every boundary.
type Status string

const (
	StatusDrafting                 Status = "drafting"
	StatusAwaitingTypesetting      Status = "awaiting_typesetting"
	StatusTypesettingInProgress    Status = "typesetting_in_progress"
	StatusTypesettingDone          Status = "typesetting_done"
	StatusSubjectReviewInProgress  Status = "subject_review_in_progress"
	StatusSubjectApproved          Status = "subject_approved"
	StatusLanguageReviewInProgress Status = "language_review_in_progress"
	StatusLanguageApproved         Status = "language_approved"
	StatusCompleted                Status = "completed"
	StatusRevisionRequested        Status = "revision_requested"
	StatusArchived                 Status = "archived"
)

var allStatuses = []Status{
	StatusDrafting,
	StatusAwaitingTypesetting,
	StatusTypesettingInProgress,
	StatusTypesettingDone,
	StatusSubjectReviewInProgress,
	StatusSubjectApproved,
	StatusLanguageReviewInProgress,
	StatusLanguageApproved,
	StatusCompleted,
	StatusRevisionRequested,
	StatusArchived,
}

// AllStatuses returns the ordered list of known statuses.
func AllStatuses() []Status {
	cp := make([]Status, len(allStatuses))
	copy(cp, allStatuses)
	return cp
}

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	for _, known := range allStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsClaimable reports whether a typesetter may take the item in this state.
func (s Status) IsClaimable() bool {
	return s == StatusAwaitingTypesetting || s == StatusRevisionRequested
}

// Track is a review dimension a note or an approval belongs to.
type Track string

const (
	TrackSubject        Track = "subject"
	TrackLanguage       Track = "language"
	TrackAdministrative Track = "administrative"
)

func (t Track) String() string { return string(t) }

func (t Track) IsValid() bool {
	switch t {
	case TrackSubject, TrackLanguage, TrackAdministrative:
		return true
	}
	return false
}

// ParseTrack converts s into a Track or returns ErrInvalidTrack.
func ParseTrack(s string) (Track, error) {
	t := Track(s)
	if !t.IsValid() {
		return "", ErrInvalidTrack
	}
	return t, nil
}

// reviewStates describes the status pair owned by one review track.
type reviewStates struct {
	inProgress Status
	approved   Status
}

var reviewTracks = map[Track]reviewStates{
	TrackSubject:  {inProgress: StatusSubjectReviewInProgress, approved: StatusSubjectApproved},
	TrackLanguage: {inProgress: StatusLanguageReviewInProgress, approved: StatusLanguageApproved},
}

// ReviewTrackOf returns the review track whose in-progress or approved state
// is s. The second result is false for statuses that belong to no track.
func ReviewTrackOf(s Status) (Track, bool) {
	for track, states := range reviewTracks {
		if s == states.inProgress || s == states.approved {
			return track, true
		}
	}
	return "", false
}

// IsReviewInProgress reports whether s is one of the two review sub-states.
func (s Status) IsReviewInProgress() bool {
	return s == StatusSubjectReviewInProgress || s == StatusLanguageReviewInProgress
}
