package offers

import "errors"

var (
	// ErrGuestNotFound возвращается, когда гость не найден
	ErrGuestNotFound = errors.New("guest not found")

	// ErrOfferNotFound возвращается, когда оффер гостя не найден
	ErrOfferNotFound = errors.New("guest offer not found")

	// ErrAlreadyRedeemed возвращается при повторном погашении оффера
	ErrAlreadyRedeemed = errors.New("offer already redeemed")

	// ErrOfferExpired возвращается при попытке погасить истекший оффер
	ErrOfferExpired = errors.New("offer expired")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
