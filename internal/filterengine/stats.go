package filterengine

import (
	"math"
	"time"
)

// recentWindowDays окно "недавно добавленных" записей для статистики
const recentWindowDays = 30

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Stats агрегированная статистика по нефильтрованной коллекции.
// Производные значения без собственной идентичности: пересчитываются
// при каждом изменении коллекции и никогда не мутируются напрямую
type Stats struct {
	// Total общее количество записей
	Total int `json:"total"`

	// NewRecent записи, созданные за последние 30 дней
	NewRecent int `json:"newRecent"`

	// PremiumCount записи премиум-категории (VIP)
	PremiumCount int `json:"premiumCount"`

	// PremiumPercentage доля премиум-записей, округленная до целого процента
	PremiumPercentage int `json:"premiumPercentage"`

	// AverageCount среднее значение счетчика, округленное до одного знака
	AverageCount float64 `json:"averageCount"`

	// TagOccurrences суммарное количество тегов предпочтений по всем записям
	TagOccurrences int `json:"tagOccurrences"`

	// EngagementPercentage доля записей с частично списанными баллами лояльности.
	// Эвристика вовлеченности: "доступные баллы != накопленные" считается
	// косвенным признаком использования офферов, а не точным счетчиком погашений
	EngagementPercentage int `json:"engagementPercentage"`
}

// Stats считает статистику по коллекции, используя текущее wall-clock время.
// Время берется заново при каждом вызове, не кешируется
func (e *Engine[T]) Stats(records []T) Stats {
	return e.StatsAt(records, e.timeProvider.Now())
}

// StatsAt считает статистику по коллекции на заданный момент времени.
// Никогда не возвращает ошибку: деление на ноль разрешается в 0
func (e *Engine[T]) StatsAt(records []T, now time.Time) Stats {
	stats := Stats{
		Total: len(records),
	}

	recentBoundary := now.AddDate(0, 0, -recentWindowDays)
	countSum := 0
	engaged := 0

	for _, record := range records {
		if e.acc.CreatedAt != nil && e.acc.CreatedAt(record).After(recentBoundary) {
			stats.NewRecent++
		}

		if e.acc.Category != nil && e.acc.Category(record) == e.premiumCategory {
			stats.PremiumCount++
		}

		if e.acc.Count != nil {
			countSum += e.acc.Count(record)
		}

		if e.acc.Tags != nil {
			stats.TagOccurrences += len(e.acc.Tags(record))
		}

		if e.acc.HasSpentLoyalty != nil && e.acc.HasSpentLoyalty(record) {
			engaged++
		}
	}

	if stats.Total > 0 {
		stats.PremiumPercentage = roundPercent(stats.PremiumCount, stats.Total)
		stats.AverageCount = round1(float64(countSum) / float64(stats.Total))
		stats.EngagementPercentage = roundPercent(engaged, stats.Total)
	}

	return stats
}

// roundPercent округляет долю part/total до целого процента
func roundPercent(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}

// round1 округляет до одного знака после запятой (half-up)
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
