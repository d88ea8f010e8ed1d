package domain

import (
	"time"

	"github.com/m04kA/RBM-DashboardService/pkg/types"
)

// BookingStatus represents the status of a table booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the deposit payment status of a booking
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPartial  PaymentStatus = "partial"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Booking represents a table booking in a franchise restaurant
type Booking struct {
	ID          int64
	FranchiseID string

	// Denormalized guest contact for dashboard listing and search
	GuestName  string
	GuestEmail string
	GuestPhone string

	PartySize       int
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int

	Status        BookingStatus
	PaymentStatus PaymentStatus
	DepositAmount float64

	SpecialRequests *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies a table
func (b *Booking) IsActive() bool {
	return b.Status != BookingStatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// CanBeConfirmed returns true if the booking can be confirmed
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == BookingStatusPending
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// ValidBookingStatuses список допустимых статусов бронирования
var ValidBookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCancelled,
}

// ValidPaymentStatuses список допустимых статусов оплаты
var ValidPaymentStatuses = []PaymentStatus{
	PaymentStatusPending,
	PaymentStatusPartial,
	PaymentStatusPaid,
	PaymentStatusRefunded,
}

// IsValidBookingStatus проверяет, что строка является допустимым статусом бронирования
func IsValidBookingStatus(s string) bool {
	for _, st := range ValidBookingStatuses {
		if BookingStatus(s) == st {
			return true
		}
	}
	return false
}

// IsValidPaymentStatus проверяет, что строка является допустимым статусом оплаты
func IsValidPaymentStatus(s string) bool {
	for _, st := range ValidPaymentStatuses {
		if PaymentStatus(s) == st {
			return true
		}
	}
	return false
}
