package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/question-pipeline/internal/domain"
)

type activityService interface {
	GetActivityLog(ctx context.Context, itemID uuid.UUID) ([]domain.ActivityEntry, error)
	Summary(ctx context.Context, itemID uuid.UUID) (domain.ActivitySummary, error)
}

// ActivityHandler serves the read-only activity log.
type ActivityHandler struct {
	svc activityService
	log *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, log: logger.With("handler", "activity")}
}

// List handles GET /api/items/{id}/activity.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entries, err := h.svc.GetActivityLog(r.Context(), itemID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toActivityResponse(entries))
}

// Summary handles GET /api/items/{id}/activity/summary.
func (h *ActivityHandler) Summary(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	sum, err := h.svc.Summary(r.Context(), itemID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, activitySummaryResponse{
		Entries:          toActivityResponse(sum.Entries),
		EffectiveVersion: sum.EffectiveVersion,
		StoredVersion:    sum.StoredVersion,
		Drift:            sum.Drift(),
	})
}
