package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RBM-DashboardService/internal/domain"
	"github.com/m04kA/RBM-DashboardService/internal/filterengine"
	bookingRepo "github.com/m04kA/RBM-DashboardService/internal/infra/storage/booking"
	"github.com/m04kA/RBM-DashboardService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями дашборда
type Service struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	engine       *filterengine.Engine[*domain.Booking]
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		engine:       newBookingEngine(),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// List возвращает бронирования, удовлетворяющие фильтру запроса
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings franchise_id=%s, status=%s", req.FranchiseID, req.Status)

	state, err := req.ToFilterState()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var repoFilter *string
	if req.FranchiseID != "" && req.FranchiseID != domain.FranchiseAll {
		franchiseID := req.FranchiseID
		repoFilter = &franchiseID
	}

	bookings, err := s.bookingRepo.GetAll(ctx, repoFilter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	filtered := s.engine.Apply(bookings, state)

	s.logger.Info("List: %d of %d bookings matched", len(filtered), len(bookings))
	return models.FromDomainBookingList(filtered), nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// UpdateStatus переводит бронирование в новый статус.
// Допустим только переход pending -> confirmed; отмена выполняется через Cancel
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	if !domain.IsValidBookingStatus(req.Status) {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}
	if domain.BookingStatus(req.Status) == domain.BookingStatusCancelled {
		s.logger.Warn("UpdateStatus: cancellation requested through status update for booking id=%d", bookingID)
		return fmt.Errorf("%w: use the cancel operation to cancel a booking", ErrInvalidInput)
	}

	// Транзакция: читаем, применяем доменный переход, сохраняем
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			return err
		}

		if domain.BookingStatus(req.Status) == booking.Status {
			// Идемпотентный повтор не считается ошибкой
			return nil
		}

		if err := booking.Confirm(); err != nil {
			return err
		}

		return s.bookingRepo.UpdateStatuses(txCtx, bookingID, booking.Status, booking.PaymentStatus)
	})

	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		case errors.Is(err, domain.ErrInvalidBookingTransition):
			s.logger.Warn("UpdateStatus: invalid transition for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		default:
			s.logger.Error("UpdateStatus: failed for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: UpdateStatus - %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, req.Status)
	return nil
}

// Cancel отменяет бронирование с указанием причины
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for booking id=%d", bookingID)
		return fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			return err
		}

		if !booking.CanBeCancelled() {
			return ErrCannotCancel
		}

		now := s.timeProvider.Now()
		if err := booking.Cancel(req.CancellationReason, now); err != nil {
			return err
		}

		return s.bookingRepo.Cancel(txCtx, bookingID, req.CancellationReason, now)
	})

	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		case errors.Is(err, ErrCannotCancel), errors.Is(err, domain.ErrInvalidBookingTransition):
			s.logger.Warn("Cancel: booking id=%d cannot be cancelled", bookingID)
			return ErrCannotCancel
		default:
			s.logger.Error("Cancel: failed for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: Cancel - %v", ErrInternal, err)
		}
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}
