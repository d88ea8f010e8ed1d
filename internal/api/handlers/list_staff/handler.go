package list_staff

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RBM-DashboardService/internal/api/handlers"
	"github.com/m04kA/RBM-DashboardService/internal/service/staff"
)

const (
	msgInvalidFranchiseID = "некорректный ID франшизы"
	msgInvalidParams      = "некорректные параметры запроса"
)

type Handler struct {
	service StaffService
	logger  Logger
}

func NewHandler(service StaffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/franchises/{franchiseId}/staff
// Query params: includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	franchiseID := vars["franchiseId"]

	activeOnly := true
	if v := r.URL.Query().Get("includeInactive"); v != "" {
		includeInactive, err := strconv.ParseBool(v)
		if err != nil {
			h.logger.Warn("GET /franchises/{id}/staff - Invalid includeInactive: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		activeOnly = !includeInactive
	}

	result, err := h.service.List(r.Context(), franchiseID, activeOnly)
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrInvalidInput):
			h.logger.Warn("GET /franchises/{id}/staff - Invalid franchise ID: franchise_id=%s", franchiseID)
			handlers.RespondBadRequest(w, msgInvalidFranchiseID)

		default:
			h.logger.Error("GET /franchises/{id}/staff - Failed to list staff: franchise_id=%s, error=%v",
				franchiseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /franchises/{id}/staff - Staff retrieved successfully: franchise_id=%s, count=%d",
		franchiseID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
