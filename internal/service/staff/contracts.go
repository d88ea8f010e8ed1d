package staff

import (
	"context"

	"github.com/m04kA/RBM-DashboardService/internal/domain"
)

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	GetByFranchise(ctx context.Context, franchiseID string, activeOnly bool) ([]*domain.StaffMember, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
