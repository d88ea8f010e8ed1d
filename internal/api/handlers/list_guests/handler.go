package list_guests

import (
	"errors"
	"net/http"

	"github.com/m04kA/RBM-DashboardService/internal/api/handlers"
	"github.com/m04kA/RBM-DashboardService/internal/service/guests"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
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

// Handle GET /api/v1/guests
// Query params: search, franchiseId, guestType, lastVisitFrom, lastVisitTo,
// minVisits, maxVisits, preferences, loyaltyMin, loyaltyMax, offerRedeemed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceReq, err := ToServiceRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /guests - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, guests.ErrInvalidInput):
			h.logger.Warn("GET /guests - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /guests - Failed to list guests: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /guests - Guests retrieved successfully: count=%d, source=%s",
		result.Total, result.Source)
	handlers.RespondJSON(w, http.StatusOK, result)
}
