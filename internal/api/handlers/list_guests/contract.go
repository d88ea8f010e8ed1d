package list_guests

import (
	"context"

	"github.com/m04kA/RBM-DashboardService/internal/service/guests/models"
)

type GuestService interface {
	List(ctx context.Context, req *models.ListGuestsRequest) (*models.GuestListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
