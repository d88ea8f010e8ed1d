package domain

import (
	"time"

	"github.com/google/uuid"
)

// GuestType represents the CRM category of a guest
type GuestType string

const (
	GuestTypeVIP           GuestType = "VIP"
	GuestTypeRegular       GuestType = "Regular"
	GuestTypeNew           GuestType = "New"
	GuestTypeFirstTimer    GuestType = "First Timer"
	GuestTypeInactive      GuestType = "Inactive"
	GuestTypeHighPotential GuestType = "High Potential"
)

// OfferStatus represents the redemption status of an offer assigned to a guest
type OfferStatus string

const (
	OfferStatusSent     OfferStatus = "Sent"
	OfferStatusViewed   OfferStatus = "Viewed"
	OfferStatusRedeemed OfferStatus = "Redeemed"
	OfferStatusExpired  OfferStatus = "Expired"
)

// Guest represents a CRM guest record scoped to a franchise
type Guest struct {
	ID            uuid.UUID
	FranchiseID   string
	FranchiseName string // Denormalized for search and display

	Name  string
	Email string
	Phone string

	GuestType   GuestType
	TotalVisits int
	LastVisitAt time.Time

	// Preference tags, e.g. "Window Seat", "Vegetarian"
	Preferences []string

	// Loyalty points: Available is what's left after spending,
	// Total is everything ever accrued
	LoyaltyPointsAvailable int
	LoyaltyPointsTotal     int

	Offers []GuestOffer

	CreatedAt time.Time
	UpdatedAt time.Time
}

// GuestOffer represents an offer assigned to a guest with its redemption status
type GuestOffer struct {
	ID         uuid.UUID
	OfferID    uuid.UUID
	Title      string
	Status     OfferStatus
	RedeemedAt *time.Time
}

// IsPremium returns true if the guest belongs to the premium loyalty tier
func (g *Guest) IsPremium() bool {
	return g.GuestType == PremiumGuestType
}

// HasRedeemedOffer returns true if at least one assigned offer has been redeemed
func (g *Guest) HasRedeemedOffer() bool {
	for _, offer := range g.Offers {
		if offer.Status == OfferStatusRedeemed {
			return true
		}
	}
	return false
}

// HasSpentLoyaltyPoints returns true if some accrued points have been spent.
// Used as the engagement heuristic: available differing from total is treated
// as a proxy for offer usage, not as a measured redemption count.
func (g *Guest) HasSpentLoyaltyPoints() bool {
	return g.LoyaltyPointsAvailable != g.LoyaltyPointsTotal
}

// ValidGuestTypes список допустимых категорий гостей
var ValidGuestTypes = []GuestType{
	GuestTypeVIP,
	GuestTypeRegular,
	GuestTypeNew,
	GuestTypeFirstTimer,
	GuestTypeInactive,
	GuestTypeHighPotential,
}

// IsValidGuestType проверяет, что строка является допустимой категорией гостя
func IsValidGuestType(s string) bool {
	for _, t := range ValidGuestTypes {
		if GuestType(s) == t {
			return true
		}
	}
	return false
}
