package update_payment_status

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_payment_status: booking not found")

	// ErrInvalidStatus возвращается при неизвестном статусе оплаты
	ErrInvalidStatus = errors.New("update_payment_status: invalid payment status")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса оплаты
	ErrInvalidTransition = errors.New("update_payment_status: invalid payment status transition")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_payment_status: internal error")
)
