package domain

import "github.com/google/uuid"

// Actor is the caller of a core operation. Identity and capabilities are
// resolved once by the external auth layer; the core never looks at role
// names.
type Actor struct {
	ID                uuid.UUID
	CanReviewSubject  bool
	CanReviewLanguage bool
	CanTypeset        bool
	IsAdmin           bool
}

// CanReview reports whether the actor may review the given track.
// The administrative track is reserved for admins.
func (a Actor) CanReview(track Track) bool {
	if a.IsAdmin {
		return true
	}
	switch track {
	case TrackSubject:
		return a.CanReviewSubject
	case TrackLanguage:
		return a.CanReviewLanguage
	}
	return false
}

// IsReviewer reports whether the actor holds any review capability.
func (a Actor) IsReviewer() bool {
	return a.IsAdmin || a.CanReviewSubject || a.CanReviewLanguage
}

// MayTypeset reports whether the actor may claim typesetting work.
func (a Actor) MayTypeset() bool {
	return a.IsAdmin || a.CanTypeset
}

// Capability names used on the wire (token claims, JSON).
const (
	CapabilityReviewSubject  = "review_subject"
	CapabilityReviewLanguage = "review_language"
	CapabilityTypeset        = "typeset"
	CapabilityAdmin          = "admin"
)

// ActorFromCapabilities builds an Actor from capability names. Unknown names
// are ignored.
func ActorFromCapabilities(id uuid.UUID, caps []string) Actor {
	a := Actor{ID: id}
	for _, c := range caps {
		switch c {
		case CapabilityReviewSubject:
			a.CanReviewSubject = true
		case CapabilityReviewLanguage:
			a.CanReviewLanguage = true
		case CapabilityTypeset:
			a.CanTypeset = true
		case CapabilityAdmin:
			a.IsAdmin = true
		}
	}
	return a
}

// Capabilities returns the capability names held by the actor.
func (a Actor) Capabilities() []string {
	var caps []string
	if a.CanReviewSubject {
		caps = append(caps, CapabilityReviewSubject)
	}
	if a.CanReviewLanguage {
		caps = append(caps, CapabilityReviewLanguage)
	}
	if a.CanTypeset {
		caps = append(caps, CapabilityTypeset)
	}
	if a.IsAdmin {
		caps = append(caps, CapabilityAdmin)
	}
	return caps
}
