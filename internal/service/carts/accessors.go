package carts

import (
	"time"

	"github.com/m04kA/RBM-DashboardService/internal/domain"
	"github.com/m04kA/RBM-DashboardService/internal/filterengine"
)

// cartAccessors связывает generic-движок фильтрации с моделью брошенной корзины.
// Категорией служит статус напоминания
func cartAccessors() filterengine.Accessors[*domain.AbandonedCart] {
	return filterengine.Accessors[*domain.AbandonedCart]{
		SearchValues: func(c *domain.AbandonedCart) []string {
			return []string{c.GuestName, c.GuestEmail, c.GuestPhone}
		},
		FranchiseID: func(c *domain.AbandonedCart) string { return c.FranchiseID },
		Category:    func(c *domain.AbandonedCart) string { return string(c.ReminderStatus) },
		ActivityAt:  func(c *domain.AbandonedCart) time.Time { return c.AbandonedAt },
		CreatedAt:   func(c *domain.AbandonedCart) time.Time { return c.CreatedAt },
		Count:       func(c *domain.AbandonedCart) int { return c.PartySize },
	}
}

// newCartEngine создает движок фильтрации брошенных корзин
func newCartEngine() *filterengine.Engine[*domain.AbandonedCart] {
	return filterengine.New(cartAccessors(), string(domain.ReminderStatusResponded))
}
