package models

import (
	"errors"
	"time"

	"github.com/m04kA/RBM-DashboardService/internal/domain"
	"github.com/m04kA/RBM-DashboardService/internal/filterengine"
)

var (
	// ErrInvalidReminderStatus возвращается при некорректном статусе напоминания
	ErrInvalidReminderStatus = errors.New("invalid reminder status")
)

// Request модели

// ListCartsRequest запрос списка брошенных корзин
type ListCartsRequest struct {
	Search          string `json:"search,omitempty"`
	FranchiseID     string `json:"franchiseId,omitempty"`
	ReminderStatus  string `json:"reminderStatus,omitempty"`
	IncludeArchived bool   `json:"includeArchived,omitempty"`
}

// ToFilterState конвертирует запрос в состояние фильтра
func (r *ListCartsRequest) ToFilterState() (filterengine.State, error) {
	opts := make([]filterengine.Option, 0, 3)

	if r.Search != "" {
		opts = append(opts, filterengine.WithSearch(r.Search))
	}
	if r.FranchiseID != "" {
		opts = append(opts, filterengine.WithFranchise(r.FranchiseID))
	}
	if r.ReminderStatus != "" {
		if r.ReminderStatus != filterengine.MatchAll && !isValidReminderStatus(r.ReminderStatus) {
			return filterengine.State{}, ErrInvalidReminderStatus
		}
		opts = append(opts, filterengine.WithCategory(r.ReminderStatus))
	}

	return filterengine.DefaultState().With(opts...), nil
}

func isValidReminderStatus(s string) bool {
	for _, status := range domain.ValidReminderStatuses {
		if domain.ReminderStatus(s) == status {
			return true
		}
	}
	return false
}

// UpdateCartRequest запрос на обновление брошенной корзины.
// Каждое поле опционально и применяется независимо
type UpdateCartRequest struct {
	ReminderOutcome *string `json:"reminderOutcome,omitempty"` // responded | no_response
	IsArchived      *bool   `json:"isArchived,omitempty"`
	IsRecovered     *bool   `json:"isRecovered,omitempty"`
}

// Response модели

// CartResponse ответ с данными брошенной корзины
type CartResponse struct {
	ID          string `json:"id"`
	FranchiseID string `json:"franchiseId"`

	GuestName  string `json:"guestName"`
	GuestEmail string `json:"guestEmail"`
	GuestPhone string `json:"guestPhone"`

	PartySize   int     `json:"partySize"`
	DesiredDate string  `json:"desiredDate"` // "2025-10-15"
	DesiredTime string  `json:"desiredTime"` // "19:00"
	CartValue   float64 `json:"cartValue"`

	ReminderStatus string  `json:"reminderStatus"`
	ReminderSentAt *string `json:"reminderSentAt,omitempty"` // ISO 8601 format

	IsArchived  bool `json:"isArchived"`
	IsRecovered bool `json:"isRecovered"`

	AbandonedAt time.Time `json:"abandonedAt"`
}

// CartListResponse ответ со списком брошенных корзин
type CartListResponse struct {
	Carts []CartResponse `json:"carts"`
	Total int            `json:"total"`
}

// Методы конвертации

// FromDomainCart конвертирует domain модель в DTO
func FromDomainCart(c *domain.AbandonedCart) *CartResponse {
	if c == nil {
		return nil
	}

	resp := &CartResponse{
		ID:             c.ID.String(),
		FranchiseID:    c.FranchiseID,
		GuestName:      c.GuestName,
		GuestEmail:     c.GuestEmail,
		GuestPhone:     c.GuestPhone,
		PartySize:      c.PartySize,
		DesiredDate:    c.DesiredDate.Format(domain.DateFormat),
		DesiredTime:    c.DesiredTime.String(),
		CartValue:      c.CartValue,
		ReminderStatus: string(c.ReminderStatus),
		IsArchived:     c.IsArchived,
		IsRecovered:    c.IsRecovered,
		AbandonedAt:    c.AbandonedAt,
	}

	if c.ReminderSentAt != nil {
		sentStr := c.ReminderSentAt.Format(time.RFC3339)
		resp.ReminderSentAt = &sentStr
	}

	return resp
}

// FromDomainCartList конвертирует список domain моделей в DTO
func FromDomainCartList(carts []*domain.AbandonedCart) *CartListResponse {
	resp := &CartListResponse{
		Carts: make([]CartResponse, 0, len(carts)),
	}

	for _, cart := range carts {
		if cartResp := FromDomainCart(cart); cartResp != nil {
			resp.Carts = append(resp.Carts, *cartResp)
		}
	}

	resp.Total = len(resp.Carts)
	return resp
}
