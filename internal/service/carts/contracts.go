package carts

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/RBM-DashboardService/internal/domain"
	"github.com/m04kA/RBM-DashboardService/internal/integrations/notifyservice"
)

// CartRepository интерфейс репозитория брошенных корзин
type CartRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AbandonedCart, error)
	GetAll(ctx context.Context, franchiseID *string, includeArchived bool) ([]*domain.AbandonedCart, error)
	Update(ctx context.Context, cart *domain.AbandonedCart) error
}

// NotifyServiceClient интерфейс клиента сервиса уведомлений
type NotifyServiceClient interface {
	SendCartReminderWithGracefulDegradation(ctx context.Context, request notifyservice.ReminderRequest) (*notifyservice.ReminderResponse, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
