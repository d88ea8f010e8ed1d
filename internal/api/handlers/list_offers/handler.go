package list_offers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RBM-DashboardService/internal/api/handlers"
	"github.com/m04kA/RBM-DashboardService/internal/service/offers"
)

const (
	msgInvalidFranchiseID = "некорректный ID франшизы"
	msgInvalidParams      = "некорректные параметры запроса"
)

type Handler struct {
	service OfferService
	logger  Logger
}

func NewHandler(service OfferService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/franchises/{franchiseId}/offers
// Query params: includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	franchiseID := vars["franchiseId"]

	activeOnly := true
	if v := r.URL.Query().Get("includeInactive"); v != "" {
		includeInactive, err := strconv.ParseBool(v)
		if err != nil {
			h.logger.Warn("GET /franchises/{id}/offers - Invalid includeInactive: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		activeOnly = !includeInactive
	}

	result, err := h.service.List(r.Context(), franchiseID, activeOnly)
	if err != nil {
		switch {
		case errors.Is(err, offers.ErrInvalidInput):
			h.logger.Warn("GET /franchises/{id}/offers - Invalid franchise ID: franchise_id=%s", franchiseID)
			handlers.RespondBadRequest(w, msgInvalidFranchiseID)

		default:
			h.logger.Error("GET /franchises/{id}/offers - Failed to list offers: franchise_id=%s, error=%v",
				franchiseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /franchises/{id}/offers - Offers retrieved successfully: franchise_id=%s, count=%d",
		franchiseID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
