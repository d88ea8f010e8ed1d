package list_carts

import (
	"context"

	"github.com/m04kA/RBM-DashboardService/internal/service/carts/models"
)

type CartService interface {
	List(ctx context.Context, req *models.ListCartsRequest) (*models.CartListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
