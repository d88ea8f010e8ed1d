package update_payment_status

import (
	"context"

	updatePayment "github.com/m04kA/RBM-DashboardService/internal/usecase/update_payment_status"
)

type UpdatePaymentStatusUseCase interface {
	Execute(ctx context.Context, req *updatePayment.Request) (*updatePayment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
