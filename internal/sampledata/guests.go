// Package sampledata содержит встроенный демонстрационный набор гостей.
// Используется как fallback, когда хранилище недоступно или пусто,
// чтобы дашборд оставался работоспособным.
package sampledata

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/RBM-DashboardService/internal/domain"
	"github.com/m04kA/RBM-DashboardService/pkg/ptr"
)

func mustUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

func daysAgo(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, -days)
}

// Guests возвращает демонстрационный набор гостей.
// Временные поля рассчитываются относительно now, чтобы фильтры
// по активности и статистика по новым гостям оставались осмысленными
func Guests(now time.Time) []*domain.Guest {
	return []*domain.Guest{
		{
			ID:                     mustUUID("5f1c2a9e-8d34-4b6a-9c01-1a2b3c4d5e01"),
			FranchiseID:            "fr-001",
			FranchiseName:          "Downtown Bistro",
			Name:                   "Olivia Bennett",
			Email:                  "olivia.bennett@example.com",
			Phone:                  "+1-555-0101",
			GuestType:              domain.GuestTypeVIP,
			TotalVisits:            24,
			LastVisitAt:            daysAgo(now, 3),
			Preferences:            []string{"window seat", "vegetarian"},
			LoyaltyPointsAvailable: 320,
			LoyaltyPointsTotal:     780,
			Offers: []domain.GuestOffer{
				{
					ID:         mustUUID("0a1b2c3d-4e5f-4a6b-8c9d-0e1f2a3b4c01"),
					Title:      "Anniversary dinner -20%",
					Status:     domain.OfferStatusRedeemed,
					RedeemedAt: ptr.Ptr(daysAgo(now, 12)),
				},
			},
			CreatedAt: daysAgo(now, 400),
		},
		{
			ID:                     mustUUID("5f1c2a9e-8d34-4b6a-9c01-1a2b3c4d5e02"),
			FranchiseID:            "fr-001",
			FranchiseName:          "Downtown Bistro",
			Name:                   "Marcus Cole",
			Email:                  "marcus.cole@example.com",
			Phone:                  "+1-555-0102",
			GuestType:              domain.GuestTypeRegular,
			TotalVisits:            11,
			LastVisitAt:            daysAgo(now, 9),
			Preferences:            []string{"bar seating"},
			LoyaltyPointsAvailable: 140,
			LoyaltyPointsTotal:     140,
			Offers: []domain.GuestOffer{
				{
					ID:     mustUUID("0a1b2c3d-4e5f-4a6b-8c9d-0e1f2a3b4c02"),
					Title:  "Weekday lunch -10%",
					Status: domain.OfferStatusViewed,
				},
			},
			CreatedAt: daysAgo(now, 210),
		},
		{
			ID:                     mustUUID("5f1c2a9e-8d34-4b6a-9c01-1a2b3c4d5e03"),
			FranchiseID:            "fr-002",
			FranchiseName:          "Harbor Grill",
			Name:                   "Sofia Reyes",
			Email:                  "sofia.reyes@example.com",
			Phone:                  "+1-555-0103",
			GuestType:              domain.GuestTypeNew,
			TotalVisits:            2,
			LastVisitAt:            daysAgo(now, 1),
			Preferences:            []string{"outdoor", "gluten-free"},
			LoyaltyPointsAvailable: 25,
			LoyaltyPointsTotal:     25,
			Offers:                 []domain.GuestOffer{},
			CreatedAt:              daysAgo(now, 12),
		},
		{
			ID:                     mustUUID("5f1c2a9e-8d34-4b6a-9c01-1a2b3c4d5e04"),
			FranchiseID:            "fr-002",
			FranchiseName:          "Harbor Grill",
			Name:                   "James Whitfield",
			Email:                  "james.whitfield@example.com",
			Phone:                  "+1-555-0104",
			GuestType:              domain.GuestTypeHighPotential,
			TotalVisits:            6,
			LastVisitAt:            daysAgo(now, 15),
			Preferences:            []string{"wine pairing", "window seat"},
			LoyaltyPointsAvailable: 90,
			LoyaltyPointsTotal:     180,
			Offers: []domain.GuestOffer{
				{
					ID:     mustUUID("0a1b2c3d-4e5f-4a6b-8c9d-0e1f2a3b4c03"),
					Title:  "Chef's tasting invite",
					Status: domain.OfferStatusSent,
				},
			},
			CreatedAt: daysAgo(now, 95),
		},
		{
			ID:                     mustUUID("5f1c2a9e-8d34-4b6a-9c01-1a2b3c4d5e05"),
			FranchiseID:            "fr-003",
			FranchiseName:          "Garden Terrace",
			Name:                   "Amelia Hart",
			Email:                  "amelia.hart@example.com",
			Phone:                  "+1-555-0105",
			GuestType:              domain.GuestTypeInactive,
			TotalVisits:            8,
			LastVisitAt:            daysAgo(now, 120),
			Preferences:            []string{"quiet corner"},
			LoyaltyPointsAvailable: 60,
			LoyaltyPointsTotal:     60,
			Offers: []domain.GuestOffer{
				{
					ID:     mustUUID("0a1b2c3d-4e5f-4a6b-8c9d-0e1f2a3b4c04"),
					Title:  "We miss you -15%",
					Status: domain.OfferStatusExpired,
				},
			},
			CreatedAt: daysAgo(now, 300),
		},
		{
			ID:                     mustUUID("5f1c2a9e-8d34-4b6a-9c01-1a2b3c4d5e06"),
			FranchiseID:            "fr-003",
			FranchiseName:          "Garden Terrace",
			Name:                   "Daniel Okafor",
			Email:                  "daniel.okafor@example.com",
			Phone:                  "+1-555-0106",
			GuestType:              domain.GuestTypeFirstTimer,
			TotalVisits:            1,
			LastVisitAt:            daysAgo(now, 4),
			Preferences:            []string{},
			LoyaltyPointsAvailable: 10,
			LoyaltyPointsTotal:     10,
			Offers:                 []domain.GuestOffer{},
			CreatedAt:              daysAgo(now, 4),
		},
	}
}
