package guests

import (
	"time"

	"github.com/m04kA/RBM-DashboardService/internal/domain"
	"github.com/m04kA/RBM-DashboardService/internal/filterengine"
)

// guestAccessors связывает generic-движок фильтрации с доменной моделью гостя
func guestAccessors() filterengine.Accessors[*domain.Guest] {
	return filterengine.Accessors[*domain.Guest]{
		SearchValues: func(g *domain.Guest) []string {
			return []string{g.Name, g.Email, g.Phone, g.FranchiseName}
		},
		FranchiseID: func(g *domain.Guest) string { return g.FranchiseID },
		Category:    func(g *domain.Guest) string { return string(g.GuestType) },
		ActivityAt:  func(g *domain.Guest) time.Time { return g.LastVisitAt },
		CreatedAt:   func(g *domain.Guest) time.Time { return g.CreatedAt },
		Count:       func(g *domain.Guest) int { return g.TotalVisits },
		Tags:        func(g *domain.Guest) []string { return g.Preferences },
		LoyaltyPoints: func(g *domain.Guest) int {
			return g.LoyaltyPointsAvailable
		},
		HasSpentLoyalty:  func(g *domain.Guest) bool { return g.HasSpentLoyaltyPoints() },
		HasRedeemedOffer: func(g *domain.Guest) bool { return g.HasRedeemedOffer() },
	}
}

// newGuestEngine создает движок фильтрации гостей с VIP как премиум-категорией
func newGuestEngine() *filterengine.Engine[*domain.Guest] {
	return filterengine.New(guestAccessors(), string(domain.PremiumGuestType))
}
