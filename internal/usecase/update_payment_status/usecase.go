package update_payment_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RBM-DashboardService/internal/domain"
	bookingRepo "github.com/m04kA/RBM-DashboardService/internal/infra/storage/booking"
)

// UseCase use case для обновления статуса оплаты депозита.
// Переход статуса оплаты может дополнительно изменить статус бронирования
// (оплата pending-брони целиком подтверждает бронь), поэтому оба статуса
// читаются и сохраняются в одной транзакции
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case обновления статуса оплаты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdatePaymentStatus: booking=%d, target=%s", req.BookingID, req.PaymentStatus)

	// 1. Валидация целевого статуса
	if !domain.IsValidPaymentStatus(req.PaymentStatus) {
		uc.logger.Warn("UpdatePaymentStatus: invalid payment status=%s", req.PaymentStatus)
		return nil, ErrInvalidStatus
	}
	target := domain.PaymentStatus(req.PaymentStatus)

	var result *domain.Booking

	// 2. Читаем, применяем доменный переход и сохраняем в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			return err
		}

		if err := booking.ApplyPaymentStatus(target); err != nil {
			return err
		}

		if err := uc.bookingRepo.UpdateStatuses(txCtx, req.BookingID, booking.Status, booking.PaymentStatus); err != nil {
			return err
		}

		result = booking
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			uc.logger.Warn("UpdatePaymentStatus: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		case errors.Is(err, domain.ErrInvalidPaymentTransition):
			uc.logger.Warn("UpdatePaymentStatus: invalid transition for booking id=%d to %s", req.BookingID, target)
			return nil, ErrInvalidTransition
		default:
			uc.logger.Error("UpdatePaymentStatus: failed for booking id=%d: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("UpdatePaymentStatus: booking id=%d now status=%s, payment=%s",
		req.BookingID, result.Status, result.PaymentStatus)

	return &Response{
		BookingID:     result.ID,
		Status:        string(result.Status),
		PaymentStatus: string(result.PaymentStatus),
	}, nil
}
