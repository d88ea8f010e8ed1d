package filterengine

import (
	"strings"
	"time"
)

// Accessors конфигурация доступа к полям записи.
// Один generic-движок обслуживает гостей, бронирования и брошенные корзины:
// каждый вид записи задает только те аксессоры, которые к нему применимы.
// Нулевой (nil) аксессор трактуется как "пустое" значение поля: пустой список,
// нулевой счетчик, нулевые баллы — запись при этом не исключается с ошибкой
type Accessors[T any] struct {
	// SearchValues значения для подстрочного поиска (имя, email, телефон, название франшизы)
	SearchValues func(T) []string

	// FranchiseID принадлежность записи франшизе
	FranchiseID func(T) string

	// Category категориальный атрибут записи (тип гостя, статус бронирования)
	Category func(T) string

	// ActivityAt таймстемп последней активности
	ActivityAt func(T) time.Time

	// CreatedAt таймстемп создания записи (для статистики по новым записям)
	CreatedAt func(T) time.Time

	// Count числовой счетчик записи (визиты, количество броней)
	Count func(T) int

	// Tags теги предпочтений записи
	Tags func(T) []string

	// LoyaltyPoints доступные баллы лояльности
	LoyaltyPoints func(T) int

	// HasSpentLoyalty признак частичного списания баллов (эвристика вовлеченности)
	HasSpentLoyalty func(T) bool

	// HasRedeemedOffer признак наличия хотя бы одного погашенного оффера
	HasRedeemedOffer func(T) bool
}

// Engine применяет декларативный фильтр к коллекции записей и считает
// агрегированную статистику. Чистые вычисления над данными в памяти:
// исходная коллекция никогда не мутируется, порядок записей сохраняется
type Engine[T any] struct {
	acc             Accessors[T]
	premiumCategory string
	timeProvider    TimeProvider
}

// New создает движок фильтрации для вида записей, описанного аксессорами.
// premiumCategory — категория премиум-уровня для статистики (например, "VIP")
func New[T any](acc Accessors[T], premiumCategory string) *Engine[T] {
	return &Engine[T]{
		acc:             acc,
		premiumCategory: premiumCategory,
		timeProvider:    &RealTimeProvider{},
	}
}

// Apply возвращает подмножество records, удовлетворяющее каждому активному
// ограничению state. Порядок записей сохраняется, исходный срез не изменяется
func (e *Engine[T]) Apply(records []T, state State) []T {
	filtered := make([]T, 0, len(records))
	for _, record := range records {
		if e.matches(record, state) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// matches проверяет запись против всех активных ограничений (AND по полям)
func (e *Engine[T]) matches(record T, state State) bool {
	return e.matchesSearch(record, state.Search) &&
		e.matchesFranchise(record, state.FranchiseID) &&
		e.matchesCategory(record, state.Category) &&
		e.matchesActivity(record, state.Activity) &&
		e.matchesCount(record, state.MinCount, state.MaxCount) &&
		e.matchesTags(record, state.Tags) &&
		e.matchesLoyalty(record, state.Loyalty) &&
		e.matchesOfferRedeemed(record, state.OfferRedeemed)
}

// matchesSearch регистронезависимый поиск подстроки по поисковым полям записи
func (e *Engine[T]) matchesSearch(record T, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	if e.acc.SearchValues == nil {
		return false
	}

	query = strings.ToLower(query)
	for _, value := range e.acc.SearchValues(record) {
		if strings.Contains(strings.ToLower(value), query) {
			return true
		}
	}
	return false
}

// matchesFranchise точное (регистрозависимое) совпадение франшизы, MatchAll пропускает всё
func (e *Engine[T]) matchesFranchise(record T, franchiseID string) bool {
	if franchiseID == "" || franchiseID == MatchAll {
		return true
	}
	if e.acc.FranchiseID == nil {
		return false
	}
	return e.acc.FranchiseID(record) == franchiseID
}

// matchesCategory точное совпадение категории, MatchAll пропускает всё
func (e *Engine[T]) matchesCategory(record T, category string) bool {
	if category == "" || category == MatchAll {
		return true
	}
	if e.acc.Category == nil {
		return false
	}
	return e.acc.Category(record) == category
}

// matchesActivity включительный диапазон по таймстемпу активности.
// Граница To включает весь календарный день: к дате To прибавляется день,
// и таймстемп должен быть строго меньше полученной полуночи
func (e *Engine[T]) matchesActivity(record T, r *DateRange) bool {
	if r.IsEmpty() {
		return true
	}

	var ts time.Time
	if e.acc.ActivityAt != nil {
		ts = e.acc.ActivityAt(record)
	}

	if r.From != nil && ts.Before(*r.From) {
		return false
	}
	if r.To != nil {
		boundary := endOfDayBoundary(*r.To)
		if !ts.Before(boundary) {
			return false
		}
	}
	return true
}

// matchesCount включительные границы счетчика, каждая активна независимо
func (e *Engine[T]) matchesCount(record T, min, max *int) bool {
	if min == nil && max == nil {
		return true
	}

	count := 0
	if e.acc.Count != nil {
		count = e.acc.Count(record)
	}

	if min != nil && count < *min {
		return false
	}
	if max != nil && count > *max {
		return false
	}
	return true
}

// matchesTags запись должна иметь хотя бы один из запрошенных тегов
// (OR внутри набора, точное регистрозависимое сравнение)
func (e *Engine[T]) matchesTags(record T, requested []string) bool {
	if len(requested) == 0 {
		return true
	}
	if e.acc.Tags == nil {
		return false
	}

	tags := e.acc.Tags(record)
	for _, want := range requested {
		for _, tag := range tags {
			if tag == want {
				return true
			}
		}
	}
	return false
}

// matchesLoyalty включительные границы баллов лояльности, отсутствующие баллы = 0
func (e *Engine[T]) matchesLoyalty(record T, r *IntRange) bool {
	if r.IsEmpty() {
		return true
	}

	points := 0
	if e.acc.LoyaltyPoints != nil {
		points = e.acc.LoyaltyPoints(record)
	}

	if r.Min != nil && points < *r.Min {
		return false
	}
	if r.Max != nil && points > *r.Max {
		return false
	}
	return true
}

// matchesOfferRedeemed true — требуется хотя бы один погашенный оффер,
// false — требуется отсутствие погашенных офферов (именно отрицание,
// а не "есть непогашенный оффер")
func (e *Engine[T]) matchesOfferRedeemed(record T, redeemed *bool) bool {
	if redeemed == nil {
		return true
	}

	has := false
	if e.acc.HasRedeemedOffer != nil {
		has = e.acc.HasRedeemedOffer(record)
	}
	return has == *redeemed
}

// endOfDayBoundary возвращает полночь дня, следующего за днем t
func endOfDayBoundary(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1)
}
