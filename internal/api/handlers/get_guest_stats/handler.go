package get_guest_stats

import (
	"net/http"

	"github.com/m04kA/RBM-DashboardService/internal/api/handlers"
)

type Handler struct {
	service GuestService
	logger  Logger
}

func NewHandler(service GuestService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/guests/stats
// Query params: franchiseId (опционально, по умолчанию все франшизы)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	franchiseID := r.URL.Query().Get("franchiseId")

	result, err := h.service.GetStats(r.Context(), franchiseID)
	if err != nil {
		h.logger.Error("GET /guests/stats - Failed to compute stats: franchise_id=%s, error=%v",
			franchiseID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /guests/stats - Stats retrieved successfully: franchise_id=%s, total=%d, source=%s",
		franchiseID, result.Stats.Total, result.Source)
	handlers.RespondJSON(w, http.StatusOK, result)
}
