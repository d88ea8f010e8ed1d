package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RBM-DashboardService/internal/domain"
	franchiseClient "github.com/m04kA/RBM-DashboardService/internal/integrations/franchiseservice"
)

// UseCase use case для создания бронирования столика
type UseCase struct {
	bookingRepo     BookingRepository
	franchiseClient FranchiseServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	franchiseClient FranchiseServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		franchiseClient: franchiseClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию, чтобы параллельные брони
// не превысили количество столиков франшизы
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: franchise=%s, guest=%q, party=%d, date=%s, time=%s",
		req.FranchiseID, req.GuestName, req.PartySize, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и проверяем дату
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Длительность по умолчанию
	durationMinutes := req.DurationMinutes
	if durationMinutes == 0 {
		durationMinutes = domain.DefaultBookingDurationMinutes
	}

	// 4. Получаем франшизу: количество столиков и расписание работы
	franchise, err := uc.franchiseClient.GetFranchise(ctx, req.FranchiseID)
	if err != nil {
		if errors.Is(err, franchiseClient.ErrFranchiseNotFound) {
			uc.logger.Warn("CreateBooking: franchise id=%s not found", req.FranchiseID)
			return nil, ErrFranchiseNotFound
		}
		uc.logger.Error("CreateBooking: failed to get franchise id=%s: %v", req.FranchiseID, err)
		return nil, fmt.Errorf("%w: failed to get franchise: %v", ErrInternal, err)
	}

	// 5. Проверяем часы работы в выбранный день
	if err := validateOpeningHours(franchise, req.Date, req.StartTime, durationMinutes); err != nil {
		uc.logger.Warn("CreateBooking: opening hours validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем активные брони на эту дату с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetActiveByFranchiseAndDate(txCtx, req.FranchiseID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.2. Проверяем доступность столика
		overlappingCount, err := countOverlappingBookings(req.StartTime, durationMinutes, bookings)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to count overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to count overlapping bookings: %v", ErrInternal, err)
		}

		// Если у франшизы 10 столиков, допустимо overlappingCount = 0..9
		if overlappingCount >= franchise.Tables {
			uc.logger.Warn("CreateBooking: no tables available, %d/%d taken",
				overlappingCount, franchise.Tables)
			return ErrNoTablesAvailable
		}

		uc.logger.Info("CreateBooking: table available, %d/%d taken", overlappingCount, franchise.Tables)

		// 6.3. Создаем бронирование: новые брони ждут подтверждения оператором
		booking := &domain.Booking{
			FranchiseID:     req.FranchiseID,
			GuestName:       req.GuestName,
			GuestEmail:      req.GuestEmail,
			GuestPhone:      req.GuestPhone,
			PartySize:       req.PartySize,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: durationMinutes,
			Status:          domain.BookingStatusPending,
			PaymentStatus:   domain.PaymentStatusPending,
			DepositAmount:   req.DepositAmount,
			SpecialRequests: req.SpecialRequests,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		FranchiseID:     result.FranchiseID,
		GuestName:       result.GuestName,
		GuestEmail:      result.GuestEmail,
		GuestPhone:      result.GuestPhone,
		PartySize:       result.PartySize,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		PaymentStatus:   string(result.PaymentStatus),
		DepositAmount:   result.DepositAmount,
		SpecialRequests: result.SpecialRequests,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
