package filterengine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatsAt_WorkedExample(t *testing.T) {
	engine := New(guestAccessors(), "VIP")
	now := date(2024, time.March, 10)

	guests := []testGuest{
		{
			id: "g1", guestType: "VIP",
			lastVisitAt: date(2024, time.January, 5),
			createdAt:   date(2023, time.June, 1),
			visits:      10,
			tags:        []string{"Window Seat"},
		},
		{
			id: "g2", guestType: "Regular",
			lastVisitAt: date(2024, time.February, 20),
			createdAt:   date(2023, time.August, 10),
			visits:      2,
		},
	}

	stats := engine.StatsAt(guests, now)

	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.PremiumCount)
	assert.Equal(t, 50, stats.PremiumPercentage)
	assert.Equal(t, 6.0, stats.AverageCount)
	assert.Equal(t, 1, stats.TagOccurrences)
}

func TestStatsAt_EmptyCollectionIsAllZero(t *testing.T) {
	engine := New(guestAccessors(), "VIP")

	stats := engine.StatsAt(nil, time.Now())

	assert.Equal(t, Stats{}, stats)
}

func TestStatsAt_NewRecentWindow(t *testing.T) {
	engine := New(guestAccessors(), "VIP")
	now := date(2024, time.March, 31)

	guests := []testGuest{
		{id: "old", createdAt: date(2024, time.February, 1)},
		// Ровно на границе окна (now - 30 дней): строгое "после" не включает
		{id: "edge", createdAt: date(2024, time.March, 1)},
		{id: "fresh", createdAt: date(2024, time.March, 2)},
	}

	stats := engine.StatsAt(guests, now)

	assert.Equal(t, 1, stats.NewRecent)
}

func TestStatsAt_AverageCountRounding(t *testing.T) {
	engine := New(guestAccessors(), "VIP")
	now := time.Now()

	// 10 + 2 + 2 = 14 визитов на 3 гостей = 4.666... -> 4.7 (half-up до одного знака)
	guests := []testGuest{
		{id: "g1", visits: 10},
		{id: "g2", visits: 2},
		{id: "g3", visits: 2},
	}
	assert.Equal(t, 4.7, engine.StatsAt(guests, now).AverageCount)

	// 1 + 2 = 3 визита на 2 гостей = 1.5 остается 1.5
	guests = []testGuest{
		{id: "g1", visits: 1},
		{id: "g2", visits: 2},
	}
	assert.Equal(t, 1.5, engine.StatsAt(guests, now).AverageCount)
}

func TestStatsAt_EngagementHeuristic(t *testing.T) {
	engine := New(guestAccessors(), "VIP")
	now := time.Now()

	guests := []testGuest{
		// Баллы частично списаны — гость считается вовлеченным
		{id: "g1", loyaltyAvail: 150, loyaltyTotal: 300},
		// Баллы не тронуты — не вовлечен
		{id: "g2", loyaltyAvail: 50, loyaltyTotal: 50},
		// Нулевые баллы: available == total, не вовлечен
		{id: "g3"},
	}

	stats := engine.StatsAt(guests, now)

	assert.Equal(t, 33, stats.EngagementPercentage)
}

func TestStatsAt_ConservationInvariants(t *testing.T) {
	engine := New(guestAccessors(), "VIP")
	now := time.Now()

	collections := [][]testGuest{
		nil,
		sampleGuests(),
		{{id: "solo", guestType: "VIP", visits: 3}},
	}

	for _, guests := range collections {
		stats := engine.StatsAt(guests, now)

		assert.Equal(t, len(guests), stats.Total)
		assert.LessOrEqual(t, stats.PremiumCount, stats.Total)
		assert.GreaterOrEqual(t, stats.PremiumPercentage, 0)
		assert.LessOrEqual(t, stats.PremiumPercentage, 100)
		assert.GreaterOrEqual(t, stats.EngagementPercentage, 0)
		assert.LessOrEqual(t, stats.EngagementPercentage, 100)
	}
}

func TestStats_UsesInjectedTimeProvider(t *testing.T) {
	engine := New(guestAccessors(), "VIP")
	fixed := date(2024, time.March, 31)
	engine.timeProvider = &fixedTimeProvider{now: fixed}

	guests := []testGuest{
		{id: "fresh", createdAt: date(2024, time.March, 20)},
		{id: "old", createdAt: date(2023, time.March, 20)},
	}

	stats := engine.Stats(guests)

	assert.Equal(t, 1, stats.NewRecent)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}
