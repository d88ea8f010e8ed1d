package guests

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/RBM-DashboardService/internal/domain"
	"github.com/m04kA/RBM-DashboardService/internal/filterengine"
)

// GuestRepository интерфейс репозитория гостей
type GuestRepository interface {
	Create(ctx context.Context, guest *domain.Guest) (*domain.Guest, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Guest, error)
	GetAll(ctx context.Context, franchiseID *string) ([]*domain.Guest, error)
}

// StatsCache интерфейс кэша агрегированной статистики
type StatsCache interface {
	Get(ctx context.Context, franchiseID string) (*filterengine.Stats, error)
	Set(ctx context.Context, franchiseID string, stats *filterengine.Stats) error
	Invalidate(ctx context.Context, franchiseID string) error
}

// SampleDataProvider источник встроенного демонстрационного набора гостей
type SampleDataProvider func(now time.Time) []*domain.Guest

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
