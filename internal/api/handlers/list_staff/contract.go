package list_staff

import (
	"context"

	"github.com/m04kA/RBM-DashboardService/internal/service/staff/models"
)

type StaffService interface {
	List(ctx context.Context, franchiseID string, activeOnly bool) (*models.StaffListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
