package notifyservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifyservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("notifyservice client: invalid response")

	// ErrDeliveryRejected возвращается, когда сервис уведомлений отклонил доставку
	// Например, при некорректном номере телефона получателя
	ErrDeliveryRejected = errors.New("notifyservice client: delivery rejected")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что NotifyService недоступен и напоминание не отправлено
	ErrServiceDegraded = errors.New("notifyservice unavailable: graceful degradation applied")
)
