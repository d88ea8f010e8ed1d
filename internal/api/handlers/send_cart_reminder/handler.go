package send_cart_reminder

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/RBM-DashboardService/internal/api/handlers"
	"github.com/m04kA/RBM-DashboardService/internal/api/middleware"
	"github.com/m04kA/RBM-DashboardService/internal/service/carts"
)

const (
	msgInvalidCartID  = "некорректный ID корзины"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgNotFound       = "брошенная корзина не найдена"
	msgAlreadySent    = "напоминание уже отправлено"
	msgDeliveryFailed = "не удалось доставить напоминание"
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

// Handle POST /api/v1/carts/{cartId}/reminder
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	cartID, err := uuid.Parse(vars["cartId"])
	if err != nil {
		h.logger.Warn("POST /carts/{id}/reminder - Invalid cart ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCartID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /carts/{id}/reminder - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.SendReminder(r.Context(), cartID)
	if err != nil {
		switch {
		case errors.Is(err, carts.ErrCartNotFound):
			h.logger.Warn("POST /carts/{id}/reminder - Cart not found: cart_id=%s", cartID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, carts.ErrReminderAlreadySent):
			h.logger.Warn("POST /carts/{id}/reminder - Reminder already sent: cart_id=%s", cartID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadySent)

		case errors.Is(err, carts.ErrReminderNotDelivered):
			h.logger.Error("POST /carts/{id}/reminder - Delivery failed: cart_id=%s, error=%v", cartID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgDeliveryFailed)

		default:
			h.logger.Error("POST /carts/{id}/reminder - Failed to send reminder: cart_id=%s, error=%v",
				cartID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /carts/{id}/reminder - Reminder sent successfully: cart_id=%s, user_id=%d",
		cartID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
