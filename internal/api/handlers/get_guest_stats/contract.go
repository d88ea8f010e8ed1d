package get_guest_stats

import (
	"context"

	"github.com/m04kA/RBM-DashboardService/internal/service/guests/models"
)

type GuestService interface {
	GetStats(ctx context.Context, franchiseID string) (*models.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
