package carts

import "errors"

var (
	// ErrCartNotFound возвращается, когда брошенная корзина не найдена
	ErrCartNotFound = errors.New("abandoned cart not found")

	// ErrReminderAlreadySent возвращается при повторной отправке напоминания
	ErrReminderAlreadySent = errors.New("reminder already sent")

	// ErrReminderNotSent возвращается при фиксации исхода до отправки напоминания
	ErrReminderNotSent = errors.New("reminder has not been sent yet")

	// ErrReminderNotDelivered возвращается, когда напоминание не удалось доставить
	ErrReminderNotDelivered = errors.New("reminder could not be delivered")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
