package get_guest

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/RBM-DashboardService/internal/service/guests/models"
)

type GuestService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.GuestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
