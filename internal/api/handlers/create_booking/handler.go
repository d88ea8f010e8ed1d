package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/RBM-DashboardService/internal/api/handlers"
	"github.com/m04kA/RBM-DashboardService/internal/api/middleware"
	createBooking "github.com/m04kA/RBM-DashboardService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidDateTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgFranchiseNotFound  = "франшиза не найдена"
	msgFranchiseClosed    = "франшиза закрыта в выбранную дату"
	msgOutsideHours       = "время бронирования вне часов работы"
	msgNoTables           = "нет свободных столиков на выбранное время"
	msgInvalidDate        = "некорректная дата бронирования"
	msgInvalidBooking     = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrNoTablesAvailable):
			h.logger.Warn("POST /bookings - No tables available: franchise_id=%s, user_id=%d",
				req.FranchiseID, userID)
			handlers.RespondError(w, http.StatusConflict, msgNoTables)

		case errors.Is(err, createBooking.ErrFranchiseNotFound):
			h.logger.Warn("POST /bookings - Franchise not found: franchise_id=%s", req.FranchiseID)
			handlers.RespondNotFound(w, msgFranchiseNotFound)

		case errors.Is(err, createBooking.ErrFranchiseClosed):
			h.logger.Warn("POST /bookings - Franchise closed: franchise_id=%s, date=%s",
				req.FranchiseID, req.BookingDate)
			handlers.RespondBadRequest(w, msgFranchiseClosed)

		case errors.Is(err, createBooking.ErrOutsideOpeningHours):
			h.logger.Warn("POST /bookings - Outside opening hours: franchise_id=%s, time=%s",
				req.FranchiseID, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: franchise_id=%s, date=%s",
				req.FranchiseID, req.BookingDate)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: franchise_id=%s, error=%v",
				req.FranchiseID, err)
			handlers.RespondBadRequest(w, msgInvalidBooking)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: franchise_id=%s, user_id=%d, error=%v",
				req.FranchiseID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, franchise_id=%s, user_id=%d",
		result.ID, req.FranchiseID, userID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
