package offers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/RBM-DashboardService/internal/domain"
)

// OfferRepository интерфейс репозитория промо-кампаний
type OfferRepository interface {
	GetByFranchise(ctx context.Context, franchiseID string, activeOnly bool) ([]*domain.Offer, error)
}

// GuestRepository интерфейс репозитория гостей для работы с офферами гостя
type GuestRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Guest, error)
	UpdateOfferStatus(ctx context.Context, guestID, guestOfferID uuid.UUID, status domain.OfferStatus, redeemedAt *time.Time) error
}

// StatsCache интерфейс кэша статистики для инвалидации при погашении офферов
type StatsCache interface {
	Invalidate(ctx context.Context, franchiseID string) error
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
