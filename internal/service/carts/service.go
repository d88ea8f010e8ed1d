package carts

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/RBM-DashboardService/internal/domain"
	"github.com/m04kA/RBM-DashboardService/internal/filterengine"
	cartRepo "github.com/m04kA/RBM-DashboardService/internal/infra/storage/cart"
	"github.com/m04kA/RBM-DashboardService/internal/integrations/notifyservice"
	"github.com/m04kA/RBM-DashboardService/internal/service/carts/models"
)

// Service сервис для работы с брошенными корзинами бронирования
type Service struct {
	cartRepo     CartRepository
	notifyClient NotifyServiceClient
	txManager    TransactionManager
	engine       *filterengine.Engine[*domain.AbandonedCart]
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса брошенных корзин
func NewService(
	cartRepo CartRepository,
	notifyClient NotifyServiceClient,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		cartRepo:     cartRepo,
		notifyClient: notifyClient,
		txManager:    txManager,
		engine:       newCartEngine(),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// List возвращает брошенные корзины, удовлетворяющие фильтру запроса
func (s *Service) List(ctx context.Context, req *models.ListCartsRequest) (*models.CartListResponse, error) {
	s.logger.Info("List: fetching carts franchise_id=%s, reminder_status=%s", req.FranchiseID, req.ReminderStatus)

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

	carts, err := s.cartRepo.GetAll(ctx, repoFilter, req.IncludeArchived)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	filtered := s.engine.Apply(carts, state)

	s.logger.Info("List: %d of %d carts matched", len(filtered), len(carts))
	return models.FromDomainCartList(filtered), nil
}

// SendReminder отправляет гостю напоминание о незавершенном бронировании.
// Корзина помечается sent только после успешной доставки:
// при недоступном сервисе уведомлений статус не меняется
func (s *Service) SendReminder(ctx context.Context, cartID uuid.UUID) (*models.CartResponse, error) {
	s.logger.Info("SendReminder: sending reminder for cart id=%s", cartID)

	cart, err := s.cartRepo.GetByID(ctx, cartID)
	if err != nil {
		if errors.Is(err, cartRepo.ErrCartNotFound) {
			s.logger.Warn("SendReminder: cart id=%s not found", cartID)
			return nil, ErrCartNotFound
		}
		s.logger.Error("SendReminder: repository error for cart id=%s: %v", cartID, err)
		return nil, fmt.Errorf("%w: SendReminder - repository error: %v", ErrInternal, err)
	}

	if !cart.ReminderPending() {
		s.logger.Warn("SendReminder: reminder already sent for cart id=%s, status=%s", cartID, cart.ReminderStatus)
		return nil, ErrReminderAlreadySent
	}

	request := notifyservice.ReminderRequest{
		FranchiseID: cart.FranchiseID,
		GuestName:   cart.GuestName,
		GuestEmail:  cart.GuestEmail,
		GuestPhone:  cart.GuestPhone,
		DesiredDate: cart.DesiredDate.Format(domain.DateFormat),
		DesiredTime: cart.DesiredTime.String(),
		CartValue:   cart.CartValue,
	}

	if _, err := s.notifyClient.SendCartReminderWithGracefulDegradation(ctx, request); err != nil {
		s.logger.Error("SendReminder: delivery failed for cart id=%s: %v", cartID, err)
		return nil, fmt.Errorf("%w: %v", ErrReminderNotDelivered, err)
	}

	if err := cart.MarkReminderSent(s.timeProvider.Now()); err != nil {
		return nil, fmt.Errorf("%w: SendReminder - %v", ErrInternal, err)
	}

	if err := s.cartRepo.Update(ctx, cart); err != nil {
		s.logger.Error("SendReminder: failed to persist cart id=%s: %v", cartID, err)
		return nil, fmt.Errorf("%w: SendReminder - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SendReminder: reminder sent for cart id=%s", cartID)
	return models.FromDomainCart(cart), nil
}

// Update применяет частичное обновление корзины: исход напоминания
// и независимые флаги архивации и восстановления
func (s *Service) Update(ctx context.Context, cartID uuid.UUID, req *models.UpdateCartRequest) (*models.CartResponse, error) {
	s.logger.Info("Update: updating cart id=%s", cartID)

	if req.ReminderOutcome == nil && req.IsArchived == nil && req.IsRecovered == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	var updated *domain.AbandonedCart

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		cart, err := s.cartRepo.GetByID(txCtx, cartID)
		if err != nil {
			return err
		}

		if req.ReminderOutcome != nil {
			outcome := domain.ReminderStatus(*req.ReminderOutcome)
			if err := cart.RecordReminderOutcome(outcome); err != nil {
				return err
			}
		}
		if req.IsArchived != nil {
			cart.SetArchived(*req.IsArchived)
		}
		if req.IsRecovered != nil {
			cart.SetRecovered(*req.IsRecovered)
		}

		if err := s.cartRepo.Update(txCtx, cart); err != nil {
			return err
		}

		updated = cart
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, cartRepo.ErrCartNotFound):
			s.logger.Warn("Update: cart id=%s not found", cartID)
			return nil, ErrCartNotFound
		case errors.Is(err, domain.ErrInvalidReminderTransition):
			s.logger.Warn("Update: invalid reminder transition for cart id=%s: %v", cartID, err)
			return nil, fmt.Errorf("%w: %v", ErrReminderNotSent, err)
		default:
			s.logger.Error("Update: failed for cart id=%s: %v", cartID, err)
			return nil, fmt.Errorf("%w: Update - %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: successfully updated cart id=%s", cartID)
	return models.FromDomainCart(updated), nil
}
