package franchiseservice

import "errors"

var (
	// ErrFranchiseNotFound возвращается, когда франшиза не найдена
	ErrFranchiseNotFound = errors.New("franchise not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("franchiseservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("franchiseservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что FranchiseService недоступен и следует использовать значения по умолчанию
	ErrServiceDegraded = errors.New("franchiseservice unavailable: graceful degradation applied")
)
