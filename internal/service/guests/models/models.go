package models

import (
	"errors"
	"time"

	"github.com/m04kA/RBM-DashboardService/internal/domain"
	"github.com/m04kA/RBM-DashboardService/internal/filterengine"
)

var (
	// ErrInvalidGuestType возвращается при некорректной категории гостя
	ErrInvalidGuestType = errors.New("invalid guest type")

	// ErrInvalidDateRange возвращается при некорректном диапазоне дат
	ErrInvalidDateRange = errors.New("invalid date range")
)

// Источники данных для ответа списка гостей
const (
	SourceLive   = "live"   // Данные из хранилища
	SourceSample = "sample" // Встроенный демонстрационный набор
)

// Request модели

// ListGuestsRequest запрос списка гостей с декларативным фильтром.
// Все поля опциональны; отсутствующее поле не накладывает ограничения
type ListGuestsRequest struct {
	Search        string   `json:"search,omitempty"`
	FranchiseID   string   `json:"franchiseId,omitempty"`
	GuestType     string   `json:"guestType,omitempty"`
	LastVisitFrom *string  `json:"lastVisitFrom,omitempty"` // Формат "2006-01-02"
	LastVisitTo   *string  `json:"lastVisitTo,omitempty"`   // Формат "2006-01-02"
	MinVisits     *int     `json:"minVisits,omitempty"`
	MaxVisits     *int     `json:"maxVisits,omitempty"`
	Preferences   []string `json:"preferences,omitempty"`
	LoyaltyMin    *int     `json:"loyaltyMin,omitempty"`
	LoyaltyMax    *int     `json:"loyaltyMax,omitempty"`
	OfferRedeemed *bool    `json:"offerRedeemed,omitempty"`
}

// ToFilterState конвертирует запрос в состояние фильтра.
// Пустые поля запроса оставляют дефолтное состояние без изменений
func (r *ListGuestsRequest) ToFilterState() (filterengine.State, error) {
	opts := make([]filterengine.Option, 0, 8)

	if r.Search != "" {
		opts = append(opts, filterengine.WithSearch(r.Search))
	}
	if r.FranchiseID != "" {
		opts = append(opts, filterengine.WithFranchise(r.FranchiseID))
	}
	if r.GuestType != "" {
		if r.GuestType != filterengine.MatchAll && !domain.IsValidGuestType(r.GuestType) {
			return filterengine.State{}, ErrInvalidGuestType
		}
		opts = append(opts, filterengine.WithCategory(r.GuestType))
	}

	activity, err := parseDateRange(r.LastVisitFrom, r.LastVisitTo)
	if err != nil {
		return filterengine.State{}, err
	}
	if activity != nil {
		opts = append(opts, filterengine.WithActivityRange(activity))
	}

	if r.MinVisits != nil {
		opts = append(opts, filterengine.WithMinCount(r.MinVisits))
	}
	if r.MaxVisits != nil {
		opts = append(opts, filterengine.WithMaxCount(r.MaxVisits))
	}
	if len(r.Preferences) > 0 {
		opts = append(opts, filterengine.WithTags(r.Preferences))
	}
	if r.LoyaltyMin != nil || r.LoyaltyMax != nil {
		opts = append(opts, filterengine.WithLoyaltyRange(&filterengine.IntRange{
			Min: r.LoyaltyMin,
			Max: r.LoyaltyMax,
		}))
	}
	if r.OfferRedeemed != nil {
		opts = append(opts, filterengine.WithOfferRedeemed(r.OfferRedeemed))
	}

	return filterengine.DefaultState().With(opts...), nil
}

// parseDateRange разбирает границы диапазона дат из строк "2006-01-02"
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

// CreateGuestRequest запрос на создание гостя
type CreateGuestRequest struct {
	FranchiseID   string   `json:"franchiseId"`
	FranchiseName string   `json:"franchiseName"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	GuestType     string   `json:"guestType"`
	Preferences   []string `json:"preferences,omitempty"`
}

// Response модели

// GuestOfferResponse оффер гостя в ответе
type GuestOfferResponse struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Status     string  `json:"status"`
	RedeemedAt *string `json:"redeemedAt,omitempty"` // ISO 8601 format
}

// GuestResponse ответ с данными гостя
type GuestResponse struct {
	ID            string `json:"id"`
	FranchiseID   string `json:"franchiseId"`
	FranchiseName string `json:"franchiseName"`

	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	GuestType   string `json:"guestType"`
	TotalVisits int    `json:"totalVisits"`
	LastVisitAt string `json:"lastVisitAt,omitempty"` // ISO 8601 format

	Preferences []string `json:"preferences"`

	LoyaltyPointsAvailable int `json:"loyaltyPointsAvailable"`
	LoyaltyPointsTotal     int `json:"loyaltyPointsTotal"`

	Offers []GuestOfferResponse `json:"offers"`

	CreatedAt time.Time `json:"createdAt"`
}

// GuestListResponse ответ со списком гостей
type GuestListResponse struct {
	Guests []GuestResponse `json:"guests"`
	Total  int             `json:"total"`

	// Source источник данных: live — хранилище, sample — демонстрационный набор
	Source string `json:"source"`
}

// StatsResponse ответ со статистикой по гостям
type StatsResponse struct {
	Stats  filterengine.Stats `json:"stats"`
	Source string             `json:"source"`
}

// Методы конвертации

// FromDomainGuest конвертирует domain модель в DTO
func FromDomainGuest(g *domain.Guest) *GuestResponse {
	if g == nil {
		return nil
	}

	resp := &GuestResponse{
		ID:                     g.ID.String(),
		FranchiseID:            g.FranchiseID,
		FranchiseName:          g.FranchiseName,
		Name:                   g.Name,
		Email:                  g.Email,
		Phone:                  g.Phone,
		GuestType:              string(g.GuestType),
		TotalVisits:            g.TotalVisits,
		Preferences:            append([]string{}, g.Preferences...),
		LoyaltyPointsAvailable: g.LoyaltyPointsAvailable,
		LoyaltyPointsTotal:     g.LoyaltyPointsTotal,
		Offers:                 make([]GuestOfferResponse, 0, len(g.Offers)),
		CreatedAt:              g.CreatedAt,
	}

	if !g.LastVisitAt.IsZero() {
		resp.LastVisitAt = g.LastVisitAt.Format(time.RFC3339)
	}

	for _, offer := range g.Offers {
		offerResp := GuestOfferResponse{
			ID:     offer.ID.String(),
			Title:  offer.Title,
			Status: string(offer.Status),
		}
		if offer.RedeemedAt != nil {
			redeemedStr := offer.RedeemedAt.Format(time.RFC3339)
			offerResp.RedeemedAt = &redeemedStr
		}
		resp.Offers = append(resp.Offers, offerResp)
	}

	return resp
}

// FromDomainGuestList конвертирует список domain моделей в DTO
func FromDomainGuestList(guests []*domain.Guest, source string) *GuestListResponse {
	resp := &GuestListResponse{
		Guests: make([]GuestResponse, 0, len(guests)),
		Total:  len(guests),
		Source: source,
	}

	for _, guest := range guests {
		if guestResp := FromDomainGuest(guest); guestResp != nil {
			resp.Guests = append(resp.Guests, *guestResp)
		}
	}

	return resp
}
