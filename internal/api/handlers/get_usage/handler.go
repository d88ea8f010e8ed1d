package get_usage

import (
	"net/http"

	"github.com/m04kA/RBM-DashboardService/internal/api/handlers"
)

type Handler struct {
	tracker UsageTracker
	logger  Logger
}

func NewHandler(tracker UsageTracker, logger Logger) *Handler {
	return &Handler{
		tracker: tracker,
		logger:  logger,
	}
}

// Handle GET /api/v1/usage
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	snapshot := h.tracker.Snapshot()

	if snapshot.NearLimit {
		h.logger.Warn("GET /usage - Usage near limit: total=%d, limit=%d", snapshot.Total, snapshot.Limit)
	}

	handlers.RespondJSON(w, http.StatusOK, snapshot)
}
