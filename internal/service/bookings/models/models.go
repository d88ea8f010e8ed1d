package models

import (
	"errors"
	"time"

	"github.com/m04kA/RBM-DashboardService/internal/domain"
	"github.com/m04kA/RBM-DashboardService/internal/filterengine"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidDateRange возвращается при некорректном диапазоне дат
	ErrInvalidDateRange = errors.New("invalid date range")
)

// Request модели

// ListBookingsRequest запрос списка бронирований с декларативным фильтром
type ListBookingsRequest struct {
	Search      string  `json:"search,omitempty"`
	FranchiseID string  `json:"franchiseId,omitempty"`
	Status      string  `json:"status,omitempty"`
	DateFrom    *string `json:"dateFrom,omitempty"` // Формат "2006-01-02"
	DateTo      *string `json:"dateTo,omitempty"`   // Формат "2006-01-02"
	MinParty    *int    `json:"minParty,omitempty"`
	MaxParty    *int    `json:"maxParty,omitempty"`
}

// ToFilterState конвертирует запрос в состояние фильтра
func (r *ListBookingsRequest) ToFilterState() (filterengine.State, error) {
	opts := make([]filterengine.Option, 0, 5)

	if r.Search != "" {
		opts = append(opts, filterengine.WithSearch(r.Search))
	}
	if r.FranchiseID != "" {
		opts = append(opts, filterengine.WithFranchise(r.FranchiseID))
	}
	if r.Status != "" {
		if r.Status != filterengine.MatchAll && !domain.IsValidBookingStatus(r.Status) {
			return filterengine.State{}, ErrInvalidStatus
		}
		opts = append(opts, filterengine.WithCategory(r.Status))
	}

	dates, err := parseDateRange(r.DateFrom, r.DateTo)
	if err != nil {
		return filterengine.State{}, err
	}
	if dates != nil {
		opts = append(opts, filterengine.WithActivityRange(dates))
	}

	if r.MinParty != nil {
		opts = append(opts, filterengine.WithMinCount(r.MinParty))
	}
	if r.MaxParty != nil {
		opts = append(opts, filterengine.WithMaxCount(r.MaxParty))
	}

	return filterengine.DefaultState().With(opts...), nil
}

func parseDateRange(from, to *string) (*filterengine.DateRange, error) {
	if from == nil && to == nil {
		return nil, nil
	}

	r := &filterengine.DateRange{}
	if from != nil {
		t, err := time.Parse(domain.DateFormat, *from)
		if err != nil {
			return nil, ErrInvalidDateRange
		}
		r.From = &t
	}
	if to != nil {
		t, err := time.Parse(domain.DateFormat, *to)
		if err != nil {
			return nil, ErrInvalidDateRange
		}
		r.To = &t
	}
	if r.From != nil && r.To != nil && r.To.Before(*r.From) {
		return nil, ErrInvalidDateRange
	}
	return r, nil
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64  `json:"id"`
	FranchiseID string `json:"franchiseId"`

	GuestName  string `json:"guestName"`
	GuestEmail string `json:"guestEmail"`
	GuestPhone string `json:"guestPhone"`

	PartySize       int    `json:"partySize"`
	BookingDate     string `json:"bookingDate"` // "2025-10-15"
	StartTime       string `json:"startTime"`   // "19:00"
	DurationMinutes int    `json:"durationMinutes"`

	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	DepositAmount float64 `json:"depositAmount"`

	SpecialRequests *string `json:"specialRequests,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		FranchiseID:        b.FranchiseID,
		GuestName:          b.GuestName,
		GuestEmail:         b.GuestEmail,
		GuestPhone:         b.GuestPhone,
		PartySize:          b.PartySize,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		DurationMinutes:    b.DurationMinutes,
		Status:             string(b.Status),
		PaymentStatus:      string(b.PaymentStatus),
		DepositAmount:      b.DepositAmount,
		SpecialRequests:    b.SpecialRequests,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	resp.Total = len(resp.Bookings)
	return resp
}
