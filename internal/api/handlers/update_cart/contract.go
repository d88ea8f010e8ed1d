package update_cart

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/RBM-DashboardService/internal/service/carts/models"
)

type CartService interface {
	Update(ctx context.Context, cartID uuid.UUID, req *models.UpdateCartRequest) (*models.CartResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
