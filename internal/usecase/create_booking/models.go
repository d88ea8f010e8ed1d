package create_booking

import (
	"time"

	"github.com/m04kA/RBM-DashboardService/pkg/types"
)

// Request модель запроса на создание бронирования столика
type Request struct {
	FranchiseID string           // ID франшизы
	GuestName   string           // Имя гостя
	GuestEmail  string           // Email гостя
	GuestPhone  string           // Телефон гостя
	PartySize   int              // Количество гостей за столиком
	Date        time.Time        // Дата бронирования (без времени)
	StartTime   types.TimeString // Время начала (например, "19:00")

	// DurationMinutes длительность брони; 0 означает длительность по умолчанию
	DurationMinutes int

	DepositAmount   float64 // Сумма депозита
	SpecialRequests *string // Пожелания гостя (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64            // ID созданного бронирования
	FranchiseID string           // ID франшизы
	GuestName   string           // Имя гостя
	GuestEmail  string           // Email гостя
	GuestPhone  string           // Телефон гостя
	PartySize   int              // Количество гостей
	BookingDate time.Time        // Дата бронирования
	StartTime   types.TimeString // Время начала

	DurationMinutes int     // Длительность в минутах
	Status          string  // Статус бронирования
	PaymentStatus   string  // Статус оплаты депозита
	DepositAmount   float64 // Сумма депозита

	SpecialRequests *string // Пожелания гостя

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
