package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/question-pipeline/internal/domain"
	"github.com/heartmarshall/question-pipeline/internal/service/workflow"
)

type workflowService interface {
	CreateItem(ctx context.Context, input workflow.CreateItemInput) (domain.Item, error)
	GetItem(ctx context.Context, itemID uuid.UUID) (domain.Item, error)
	ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error)
	Transition(ctx context.Context, input workflow.TransitionInput) (domain.Item, error)
	Claim(ctx context.Context, itemID uuid.UUID) (domain.ClaimToken, error)
	Release(ctx context.Context, itemID uuid.UUID) (domain.Item, error)
	CanComplete(ctx context.Context, itemID uuid.UUID) (bool, error)
	EditContent(ctx context.Context, input workflow.EditInput) (domain.Item, error)
	AttachArtifact(ctx context.Context, input workflow.AttachArtifactInput) (domain.Item, error)
}

// ItemHandler serves the item lifecycle endpoints.
type ItemHandler struct {
	svc workflowService
	log *slog.Logger
}

// NewItemHandler creates an ItemHandler.
func NewItemHandler(svc workflowService, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{svc: svc, log: logger.With("handler", "item")}
}

// Create handles POST /api/items.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	it, err := h.svc.CreateItem(r.Context(), workflow.CreateItemInput{Title: req.Title})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toItemResponse(it))
}

// Get handles GET /api/items/{id}.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	it, err := h.svc.GetItem(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(it))
}

// List handles GET /api/items?status=&author=&assignee=&limit=&offset=.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseItemFilter(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items, err := h.svc.ListItems(r.Context(), filter)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	// Echo the page the service actually served.
	page, _ := filter.Normalize()

	resp := itemListResponse{
		Items:  make([]itemResponse, len(items)),
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	for i, it := range items {
		resp.Items[i] = toItemResponse(it)
	}

	writeJSON(w, http.StatusOK, resp)
}

func parseItemFilter(r *http.Request) (domain.ItemFilter, error) {
	var (
		f   domain.ItemFilter
		err error
	)

	if v := r.URL.Query().Get("status"); v != "" {
		s := domain.Status(v)
		f.Status = &s
	}
	if f.AuthorID, err = uuidQuery(r, "author"); err != nil {
		return f, err
	}
	if f.Assignee, err = uuidQuery(r, "assignee"); err != nil {
		return f, err
	}
	if f.Limit, err = intQuery(r, "limit"); err != nil {
		return f, err
	}
	if f.Offset, err = intQuery(r, "offset"); err != nil {
		return f, err
	}
	return f, nil
}

// Transition handles POST /api/items/{id}/transitions.
func (h *ItemHandler) Transition(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req transitionRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input := workflow.TransitionInput{
		ItemID:   id,
		Target:   domain.Status(req.Target),
		NoteBody: req.NoteBody,
	}
	if req.Track != nil {
		track := domain.Track(*req.Track)
		input.Track = &track
	}

	it, err := h.svc.Transition(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(it))
}

// Claim handles POST /api/items/{id}/claim.
func (h *ItemHandler) Claim(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	token, err := h.svc.Claim(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toClaimResponse(token))
}

// Release handles DELETE /api/items/{id}/claim.
func (h *ItemHandler) Release(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	it, err := h.svc.Release(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(it))
}

// CanComplete handles GET /api/items/{id}/can-complete.
func (h *ItemHandler) CanComplete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	ok, err := h.svc.CanComplete(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, canCompleteResponse{CanComplete: ok})
}

// Edit handles POST /api/items/{id}/edits. The content itself lives with the
// editing collaborator; this only reports that an edit happened.
func (h *ItemHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req editRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	it, err := h.svc.EditContent(r.Context(), workflow.EditInput{
		ItemID: id,
		Kind:   domain.EditKind(req.Kind),
		Title:  req.Title,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(it))
}

// AttachArtifact handles PUT /api/items/{id}/artifact.
func (h *ItemHandler) AttachArtifact(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req artifactRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	it, err := h.svc.AttachArtifact(r.Context(), workflow.AttachArtifactInput{ItemID: id, Ref: req.Ref})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(it))
}
