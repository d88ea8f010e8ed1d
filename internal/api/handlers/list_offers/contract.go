package list_offers

import (
	"context"

	"github.com/m04kA/RBM-DashboardService/internal/service/offers/models"
)

type OfferService interface {
	List(ctx context.Context, franchiseID string, activeOnly bool) (*models.OfferListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
