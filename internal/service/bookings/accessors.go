package bookings

import (
	"time"

	"github.com/m04kA/RBM-DashboardService/internal/domain"
	"github.com/m04kA/RBM-DashboardService/internal/filterengine"
)

// bookingAccessors связывает generic-движок фильтрации с доменной моделью бронирования.
// Аксессоры лояльности и офферов не задаются: бронирование этих полей не имеет,
// движок трактует их как пустые значения
func bookingAccessors() filterengine.Accessors[*domain.Booking] {
	return filterengine.Accessors[*domain.Booking]{
		SearchValues: func(b *domain.Booking) []string {
			return []string{b.GuestName, b.GuestEmail, b.GuestPhone}
		},
		FranchiseID: func(b *domain.Booking) string { return b.FranchiseID },
		Category:    func(b *domain.Booking) string { return string(b.Status) },
		ActivityAt:  func(b *domain.Booking) time.Time { return b.BookingDate },
		CreatedAt:   func(b *domain.Booking) time.Time { return b.CreatedAt },
		Count:       func(b *domain.Booking) int { return b.PartySize },
	}
}

// newBookingEngine создает движок фильтрации бронирований
func newBookingEngine() *filterengine.Engine[*domain.Booking] {
	return filterengine.New(bookingAccessors(), string(domain.BookingStatusConfirmed))
}
