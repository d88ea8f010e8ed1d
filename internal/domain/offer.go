package domain

import (
	"time"

	"github.com/google/uuid"
)

// Offer represents a franchise promo campaign (coupon) that can be
// assigned to guests; per-guest redemption state lives in GuestOffer
type Offer struct {
	ID          uuid.UUID
	FranchiseID string

	Title           string
	Description     string
	DiscountPercent int

	ValidFrom  time.Time
	ValidUntil time.Time
	IsActive   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCurrent returns true if the offer is active and valid at the given moment
func (o *Offer) IsCurrent(now time.Time) bool {
	return o.IsActive && !now.Before(o.ValidFrom) && now.Before(o.ValidUntil)
}
