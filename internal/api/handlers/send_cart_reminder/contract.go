package send_cart_reminder

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/RBM-DashboardService/internal/service/carts/models"
)

type CartService interface {
	SendReminder(ctx context.Context, cartID uuid.UUID) (*models.CartResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
