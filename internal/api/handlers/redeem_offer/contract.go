package redeem_offer

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/RBM-DashboardService/internal/service/offers/models"
)

type OfferService interface {
	Redeem(ctx context.Context, guestID, guestOfferID uuid.UUID) (*models.RedeemOfferResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
