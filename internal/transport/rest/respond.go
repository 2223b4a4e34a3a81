package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/question-pipeline/internal/domain"
	"github.com/heartmarshall/question-pipeline/pkg/ctxutil"
)

// errorResponse is the envelope for every non-2xx answer.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Fields  []fieldError   `json:"fields,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: message}})
}

// handleError translates a service error into an HTTP answer. Unknown errors
// are logged and surface as 500 without leaking their text.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		verr  *domain.ValidationError
		terr  *domain.TransitionError
		clerr *domain.ClaimError
	)

	switch {
	case errors.As(err, &verr):
		body := errorBody{Code: "validation", Message: "invalid request"}
		for _, fe := range verr.Errors {
			body.Fields = append(body.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: body})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation", err.Error())
	case errors.Is(err, domain.ErrInvalidTrack):
		writeError(w, http.StatusBadRequest, "invalid_track", "unknown review track")
	case errors.Is(err, domain.ErrUnauthorized):
		if _, ok := ctxutil.ActorFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "unauthenticated", "authentication required")
			return
		}
		writeError(w, http.StatusForbidden, "forbidden", "not allowed")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden", "not allowed")
	case errors.Is(err, domain.ErrNoteNotFound):
		writeError(w, http.StatusNotFound, "note_not_found", "note not found")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "item not found")
	case errors.As(err, &clerr):
		writeJSON(w, http.StatusConflict, errorResponse{Error: errorBody{
			Code:    "already_claimed",
			Message: "item is held by another typesetter",
			Details: map[string]any{"assignee": clerr.Assignee.String()},
		}})
	case errors.As(err, &terr):
		details := map[string]any{"from": terr.From.String(), "to": terr.To.String()}
		if terr.Reason != "" {
			details["reason"] = terr.Reason
		}
		writeJSON(w, http.StatusConflict, errorResponse{Error: errorBody{
			Code:    "invalid_transition",
			Message: terr.Error(),
			Details: details,
		}})
	case errors.Is(err, domain.ErrAlreadyClaimed):
		writeError(w, http.StatusConflict, "already_claimed", "item is already claimed")
	case errors.Is(err, domain.ErrInvalidTransition):
		writeError(w, http.StatusConflict, "invalid_transition", err.Error())
	case errors.Is(err, domain.ErrItemArchived):
		writeError(w, http.StatusConflict, "item_archived", "item is archived")
	case errors.Is(err, domain.ErrContentLocked):
		writeError(w, http.StatusConflict, "content_locked", "content is locked in the current status")
	case errors.Is(err, domain.ErrUnresolvedNotes):
		writeError(w, http.StatusConflict, "unresolved_notes", "track still has notes")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict", "item changed concurrently, retry")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already_exists", "already exists")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}

// decodeJSON reads a single JSON object from the request body. Unknown
// fields and trailing data are rejected.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return domain.NewValidationError("body", fmt.Sprintf("exceeds %d bytes", maxErr.Limit))
		}
		if errors.Is(err, io.EOF) {
			return domain.NewValidationError("body", "required")
		}
		return domain.NewValidationError("body", "malformed JSON")
	}
	if dec.More() {
		return domain.NewValidationError("body", "must contain a single JSON object")
	}
	return nil
}

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}

func uuidQuery(r *http.Request, name string) (*uuid.UUID, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be a UUID")
	}
	return &id, nil
}

func intQuery(r *http.Request, name string) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}
