package list_carts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/RBM-DashboardService/internal/api/handlers"
	"github.com/m04kA/RBM-DashboardService/internal/service/carts"
	"github.com/m04kA/RBM-DashboardService/internal/service/carts/models"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
)

type Handler struct {
	service CartService
	logger  Logger
}

func NewHandler(service CartService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/carts
// Query params: search, franchiseId, reminderStatus, includeArchived
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	serviceReq := &models.ListCartsRequest{
		Search:         q.Get("search"),
		FranchiseID:    q.Get("franchiseId"),
		ReminderStatus: q.Get("reminderStatus"),
	}

	if v := q.Get("includeArchived"); v != "" {
		includeArchived, err := strconv.ParseBool(v)
		if err != nil {
			h.logger.Warn("GET /carts - Invalid includeArchived: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		serviceReq.IncludeArchived = includeArchived
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, carts.ErrInvalidInput):
			h.logger.Warn("GET /carts - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /carts - Failed to list carts: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /carts - Carts retrieved successfully: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
