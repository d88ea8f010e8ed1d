package models

import (
	"time"

	"github.com/m04kA/RBM-DashboardService/internal/domain"
)

// OfferResponse ответ с данными промо-кампании
type OfferResponse struct {
	ID              string `json:"id"`
	FranchiseID     string `json:"franchiseId"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	DiscountPercent int    `json:"discountPercent"`
	ValidFrom       string `json:"validFrom"`  // "2025-06-01"
	ValidUntil      string `json:"validUntil"` // "2025-06-30"
	IsActive        bool   `json:"isActive"`
	IsCurrent       bool   `json:"isCurrent"`
}

// OfferListResponse ответ со списком промо-кампаний
type OfferListResponse struct {
	Offers []OfferResponse `json:"offers"`
	Total  int             `json:"total"`
}

// RedeemOfferResponse ответ на погашение оффера гостя
type RedeemOfferResponse struct {
	GuestID      string `json:"guestId"`
	GuestOfferID string `json:"guestOfferId"`
	Status       string `json:"status"`
	RedeemedAt   string `json:"redeemedAt"` // ISO 8601 format
}

// FromDomainOfferList конвертирует список domain моделей в DTO
func FromDomainOfferList(offers []*domain.Offer, now time.Time) *OfferListResponse {
	resp := &OfferListResponse{
		Offers: make([]OfferResponse, 0, len(offers)),
	}

	for _, o := range offers {
		resp.Offers = append(resp.Offers, OfferResponse{
			ID:              o.ID.String(),
			FranchiseID:     o.FranchiseID,
			Title:           o.Title,
			Description:     o.Description,
			DiscountPercent: o.DiscountPercent,
			ValidFrom:       o.ValidFrom.Format(domain.DateFormat),
			ValidUntil:      o.ValidUntil.Format(domain.DateFormat),
			IsActive:        o.IsActive,
			IsCurrent:       o.IsCurrent(now),
		})
	}

	resp.Total = len(resp.Offers)
	return resp
}
