package update_cart

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/RBM-DashboardService/internal/api/handlers"
	"github.com/m04kA/RBM-DashboardService/internal/api/middleware"
	"github.com/m04kA/RBM-DashboardService/internal/service/carts"
	"github.com/m04kA/RBM-DashboardService/internal/service/carts/models"
)

const (
	msgInvalidCartID      = "некорректный ID корзины"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "брошенная корзина не найдена"
	msgReminderNotSent    = "напоминание еще не отправлено"
	msgNothingToUpdate    = "некорректные данные обновления"
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

// Handle PATCH /api/v1/carts/{cartId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	cartID, err := uuid.Parse(vars["cartId"])
	if err != nil {
		h.logger.Warn("PATCH /carts/{id} - Invalid cart ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCartID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /carts/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateCartRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /carts/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), cartID, &req)
	if err != nil {
		switch {
		case errors.Is(err, carts.ErrCartNotFound):
			h.logger.Warn("PATCH /carts/{id} - Cart not found: cart_id=%s", cartID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, carts.ErrReminderNotSent):
			h.logger.Warn("PATCH /carts/{id} - Reminder not sent yet: cart_id=%s", cartID)
			handlers.RespondBadRequest(w, msgReminderNotSent)

		case errors.Is(err, carts.ErrInvalidInput):
			h.logger.Warn("PATCH /carts/{id} - Nothing to update: cart_id=%s", cartID)
			handlers.RespondBadRequest(w, msgNothingToUpdate)

		default:
			h.logger.Error("PATCH /carts/{id} - Failed to update cart: cart_id=%s, error=%v", cartID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /carts/{id} - Cart updated successfully: cart_id=%s, user_id=%d", cartID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
