package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/question-pipeline/internal/domain"
	"github.com/heartmarshall/question-pipeline/internal/service/revision"
)

type revisionService interface {
	AddNote(ctx context.Context, input revision.AddNoteInput) (domain.RevisionNote, error)
	ListNotes(ctx context.Context, itemID uuid.UUID, filter domain.NoteFilter) ([]domain.RevisionNote, error)
	DeleteNote(ctx context.Context, itemID, noteID uuid.UUID) error
}

// NoteHandler serves revision note endpoints.
type NoteHandler struct {
	svc revisionService
	log *slog.Logger
}

// NewNoteHandler creates a NoteHandler.
func NewNoteHandler(svc revisionService, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{svc: svc, log: logger.With("handler", "note")}
}

// Add handles POST /api/items/{id}/notes.
func (h *NoteHandler) Add(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req addNoteRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	anchor, err := req.anchor()
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	note, err := h.svc.AddNote(r.Context(), revision.AddNoteInput{
		ItemID: itemID,
		Track:  domain.Track(req.Track),
		Anchor: anchor,
		Body:   req.Body,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp, err := toNoteResponse(note)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// List handles GET /api/items/{id}/notes?track=.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var filter domain.NoteFilter
	if v := r.URL.Query().Get("track"); v != "" {
		track := domain.Track(v)
		filter.Track = &track
	}

	notes, err := h.svc.ListNotes(r.Context(), itemID, filter)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]noteResponse, len(notes))
	for i, n := range notes {
		if out[i], err = toNoteResponse(n); err != nil {
			handleError(w, r, h.log, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, out)
}

// Delete handles DELETE /api/items/{id}/notes/{noteID}. Deleting a note is
// how it gets resolved.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	noteID, err := uuidParam(r, "noteID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteNote(r.Context(), itemID, noteID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
