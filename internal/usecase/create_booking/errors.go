package create_booking

import "errors"

var (
	// ErrFranchiseNotFound возвращается, когда франшиза не найдена
	ErrFranchiseNotFound = errors.New("create_booking: franchise not found")

	// ErrFranchiseClosed возвращается, когда франшиза закрыта в указанную дату
	ErrFranchiseClosed = errors.New("create_booking: franchise is closed on this date")

	// ErrOutsideOpeningHours возвращается, когда время бронирования вне часов работы
	ErrOutsideOpeningHours = errors.New("create_booking: booking time is outside opening hours")

	// ErrNoTablesAvailable возвращается, когда все столики на выбранное время заняты
	ErrNoTablesAvailable = errors.New("create_booking: no tables available for this time")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
