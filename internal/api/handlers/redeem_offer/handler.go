package redeem_offer

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/RBM-DashboardService/internal/api/handlers"
	"github.com/m04kA/RBM-DashboardService/internal/api/middleware"
	"github.com/m04kA/RBM-DashboardService/internal/service/offers"
)

const (
	msgInvalidGuestID  = "некорректный ID гостя"
	msgInvalidOfferID  = "некорректный ID оффера"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgGuestNotFound   = "гость не найден"
	msgOfferNotFound   = "оффер гостя не найден"
	msgAlreadyRedeemed = "оффер уже погашен"
	msgOfferExpired    = "срок действия оффера истек"
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

// Handle POST /api/v1/guests/{guestId}/offers/{offerId}/redeem
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	guestID, err := uuid.Parse(vars["guestId"])
	if err != nil {
		h.logger.Warn("POST /guests/{id}/offers/{id}/redeem - Invalid guest ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuestID)
		return
	}

	offerID, err := uuid.Parse(vars["offerId"])
	if err != nil {
		h.logger.Warn("POST /guests/{id}/offers/{id}/redeem - Invalid offer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOfferID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /guests/{id}/offers/{id}/redeem - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.Redeem(r.Context(), guestID, offerID)
	if err != nil {
		switch {
		case errors.Is(err, offers.ErrGuestNotFound):
			h.logger.Warn("POST /guests/{id}/offers/{id}/redeem - Guest not found: guest_id=%s", guestID)
			handlers.RespondNotFound(w, msgGuestNotFound)

		case errors.Is(err, offers.ErrOfferNotFound):
			h.logger.Warn("POST /guests/{id}/offers/{id}/redeem - Offer not found: guest_id=%s, offer_id=%s",
				guestID, offerID)
			handlers.RespondNotFound(w, msgOfferNotFound)

		case errors.Is(err, offers.ErrAlreadyRedeemed):
			h.logger.Warn("POST /guests/{id}/offers/{id}/redeem - Already redeemed: guest_id=%s, offer_id=%s",
				guestID, offerID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyRedeemed)

		case errors.Is(err, offers.ErrOfferExpired):
			h.logger.Warn("POST /guests/{id}/offers/{id}/redeem - Offer expired: guest_id=%s, offer_id=%s",
				guestID, offerID)
			handlers.RespondBadRequest(w, msgOfferExpired)

		default:
			h.logger.Error("POST /guests/{id}/offers/{id}/redeem - Failed to redeem offer: guest_id=%s, offer_id=%s, error=%v",
				guestID, offerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /guests/{id}/offers/{id}/redeem - Offer redeemed successfully: guest_id=%s, offer_id=%s, user_id=%d",
		guestID, offerID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
