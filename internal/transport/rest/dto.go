package rest

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/heartmarshall/question-pipeline/internal/domain"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type createItemRequest struct {
	Title string `json:"title"`
}

type transitionRequest struct {
	Target   string  `json:"target"`
	Track    *string `json:"track,omitempty"`
	NoteBody *string `json:"note_body,omitempty"`
}

type editRequest struct {
	Kind  string  `json:"kind"`
	Title *string `json:"title,omitempty"`
}

type artifactRequest struct {
	Ref string `json:"ref"`
}

// addNoteRequest carries the anchor either as a JSON object or as a legacy
// tagged string. Neither means the whole item.
type addNoteRequest struct {
	Track     string          `json:"track"`
	Anchor    json.RawMessage `json:"anchor,omitempty"`
	AnchorTag string          `json:"anchor_tag,omitempty"`
	Body      string          `json:"body"`
}

func (r addNoteRequest) anchor() (domain.Anchor, error) {
	switch {
	case len(r.Anchor) > 0 && r.AnchorTag != "":
		return nil, domain.NewValidationError("anchor", "use either anchor or anchor_tag")
	case len(r.Anchor) > 0:
		return domain.DecodeAnchor(r.Anchor)
	case r.AnchorTag != "":
		return domain.ParseAnchorTag(r.AnchorTag)
	default:
		return domain.WholeItem{}, nil
	}
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type itemResponse struct {
	ID                  string     `json:"id"`
	AuthorID            string     `json:"author_id"`
	Title               string     `json:"title"`
	Status              string     `json:"status"`
	ApprovedSubject     bool       `json:"approved_subject"`
	ApprovedLanguage    bool       `json:"approved_language"`
	AssigneeTypesetter  *string    `json:"assignee_typesetter"`
	ClaimedAt           *time.Time `json:"claimed_at"`
	Version             int        `json:"version"`
	RenderedArtifactRef *string    `json:"rendered_artifact_ref"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func toItemResponse(it domain.Item) itemResponse {
	resp := itemResponse{
		ID:                  it.ID.String(),
		AuthorID:            it.AuthorID.String(),
		Title:               it.Title,
		Status:              it.Status.String(),
		ApprovedSubject:     it.ApprovedSubject,
		ApprovedLanguage:    it.ApprovedLanguage,
		ClaimedAt:           it.ClaimedAt,
		Version:             it.Version,
		RenderedArtifactRef: it.RenderedArtifactRef,
		CreatedAt:           it.CreatedAt,
		UpdatedAt:           it.UpdatedAt,
	}
	if it.AssigneeTypesetter != nil {
		s := it.AssigneeTypesetter.String()
		resp.AssigneeTypesetter = &s
	}
	return resp
}

type itemListResponse struct {
	Items  []itemResponse `json:"items"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

type claimResponse struct {
	ItemID    string    `json:"item_id"`
	Assignee  string    `json:"assignee"`
	ClaimedAt time.Time `json:"claimed_at"`
	Version   int       `json:"version"`
}

func toClaimResponse(t domain.ClaimToken) claimResponse {
	return claimResponse{
		ItemID:    t.ItemID.String(),
		Assignee:  t.Assignee.String(),
		ClaimedAt: t.ClaimedAt,
		Version:   t.Version,
	}
}

type canCompleteResponse struct {
	CanComplete bool `json:"can_complete"`
}

type noteResponse struct {
	ID          string          `json:"id"`
	ItemID      string          `json:"item_id"`
	Track       string          `json:"track"`
	AuthorID    string          `json:"author_id"`
	Anchor      json.RawMessage `json:"anchor"`
	Body        string          `json:"body"`
	ArtifactRef *string         `json:"artifact_ref"`
	CreatedAt   time.Time       `json:"created_at"`
}

func toNoteResponse(n domain.RevisionNote) (noteResponse, error) {
	anchor, err := domain.EncodeAnchor(n.Anchor)
	if err != nil {
		return noteResponse{}, fmt.Errorf("encode anchor of note %s: %w", n.ID, err)
	}
	return noteResponse{
		ID:          n.ID.String(),
		ItemID:      n.ItemID.String(),
		Track:       n.Track.String(),
		AuthorID:    n.AuthorID.String(),
		Anchor:      anchor,
		Body:        n.Body,
		ArtifactRef: n.ArtifactRef,
		CreatedAt:   n.CreatedAt,
	}, nil
}

type activityEntryResponse struct {
	ID        string         `json:"id"`
	ActorID   string         `json:"actor_id"`
	Kind      string         `json:"kind"`
	Detail    map[string]any `json:"detail,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func toActivityResponse(entries []domain.ActivityEntry) []activityEntryResponse {
	out := make([]activityEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = activityEntryResponse{
			ID:        e.ID.String(),
			ActorID:   e.ActorID.String(),
			Kind:      e.Kind.String(),
			Detail:    e.Detail,
			CreatedAt: e.CreatedAt,
		}
	}
	return out
}

type activitySummaryResponse struct {
	Entries          []activityEntryResponse `json:"entries"`
	EffectiveVersion int                     `json:"effective_version"`
	StoredVersion    int                     `json:"stored_version"`
	Drift            bool                    `json:"drift"`
}
