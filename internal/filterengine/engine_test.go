package filterengine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RBM-DashboardService/pkg/ptr"
)

// testGuest минимальная запись гостя для тестов движка
type testGuest struct {
	id            string
	name          string
	email         string
	phone         string
	franchiseID   string
	franchiseName string
	guestType     string
	lastVisitAt   time.Time
	createdAt     time.Time
	visits        int
	tags          []string
	loyaltyAvail  int
	loyaltyTotal  int
	hasRedeemed   bool
}

func guestAccessors() Accessors[testGuest] {
	return Accessors[testGuest]{
		SearchValues: func(g testGuest) []string {
			return []string{g.name, g.email, g.phone, g.franchiseName}
		},
		FranchiseID:      func(g testGuest) string { return g.franchiseID },
		Category:         func(g testGuest) string { return g.guestType },
		ActivityAt:       func(g testGuest) time.Time { return g.lastVisitAt },
		CreatedAt:        func(g testGuest) time.Time { return g.createdAt },
		Count:            func(g testGuest) int { return g.visits },
		Tags:             func(g testGuest) []string { return g.tags },
		LoyaltyPoints:    func(g testGuest) int { return g.loyaltyAvail },
		HasSpentLoyalty:  func(g testGuest) bool { return g.loyaltyAvail != g.loyaltyTotal },
		HasRedeemedOffer: func(g testGuest) bool { return g.hasRedeemed },
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleGuests() []testGuest {
	return []testGuest{
		{
			id: "g1", name: "Anna Petrova", email: "anna@example.com", phone: "+7 900 111-11-11",
			franchiseID: "fr-001", franchiseName: "Central", guestType: "VIP",
			lastVisitAt: date(2024, time.January, 5), createdAt: date(2023, time.June, 1),
			visits: 10, tags: []string{"Window Seat"}, loyaltyAvail: 150, loyaltyTotal: 300,
			hasRedeemed: true,
		},
		{
			id: "g2", name: "Boris Ivanov", email: "boris@example.com", phone: "+7 900 222-22-22",
			franchiseID: "fr-002", franchiseName: "Riverside", guestType: "Regular",
			lastVisitAt: date(2024, time.February, 20), createdAt: date(2023, time.August, 10),
			visits: 2, loyaltyAvail: 50, loyaltyTotal: 50,
		},
		{
			id: "g3", name: "Clara Schmidt", email: "clara@mail.dev", phone: "+7 900 333-33-33",
			franchiseID: "fr-001", franchiseName: "Central", guestType: "New",
			lastVisitAt: date(2024, time.March, 1), createdAt: date(2024, time.February, 25),
			visits: 1, tags: []string{"Vegetarian", "Quiet Corner"}, loyaltyAvail: 0, loyaltyTotal: 0,
		},
	}
}

func ids(guests []testGuest) []string {
	result := make([]string, 0, len(guests))
	for _, g := range guests {
		result = append(result, g.id)
	}
	return result
}

func TestApply_DefaultStateIsIdentity(t *testing.T) {
	engine := New(guestAccessors(), "VIP")
	guests := sampleGuests()

	filtered := engine.Apply(guests, DefaultState())

	assert.Equal(t, ids(guests), ids(filtered), "default filter must return all records in original order")
}

func TestApply_DoesNotMutateSource(t *testing.T) {
	engine := New(guestAccessors(), "VIP")
	guests := sampleGuests()

	engine.Apply(guests, DefaultState().With(WithCategory("VIP")))

	assert.Equal(t, sampleGuests(), guests)
}

func TestApply_Search(t *testing.T) {
	engine := New(guestAccessors(), "VIP")
	guests := sampleGuests()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query matches everything", "", []string{"g1", "g2", "g3"}},
		{"whitespace-only query matches everything", "   ", []string{"g1", "g2", "g3"}},
		{"case-insensitive name match", "ANNA", []string{"g1"}},
		{"email substring", "mail.dev", []string{"g3"}},
		{"phone substring", "222-22", []string{"g2"}},
		{"franchise name substring", "central", []string{"g1", "g3"}},
		{"no match", "nobody", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := engine.Apply(guests, DefaultState().With(WithSearch(tt.query)))
			assert.Equal(t, tt.want, ids(filtered))
		})
	}
}

func TestApply_FranchiseAndCategory(t *testing.T) {
	engine := New(guestAccessors(), "VIP")
	guests := sampleGuests()

	filtered := engine.Apply(guests, DefaultState().With(WithFranchise("fr-001")))
	assert.Equal(t, []string{"g1", "g3"}, ids(filtered))

	filtered = engine.Apply(guests, DefaultState().With(WithCategory("VIP")))
	assert.Equal(t, []string{"g1"}, ids(filtered))

	// Сентинел "all" снимает ограничение
	filtered = engine.Apply(guests, DefaultState().With(WithFranchise(MatchAll), WithCategory(MatchAll)))
	assert.Len(t, filtered, 3)

	// Сравнение франшизы регистрозависимое
	filtered = engine.Apply(guests, DefaultState().With(WithFranchise("FR-001")))
	assert.Empty(t, filtered)
}

func TestApply_ActivityRange(t *testing.T) {
	engine := New(guestAccessors(), "VIP")
	guests := sampleGuests()

	from := date(2024, time.February, 1)
	filtered := engine.Apply(guests, DefaultState().With(WithActivityRange(&DateRange{From: &from})))
	assert.Equal(t, []string{"g2", "g3"}, ids(filtered))

	to := date(2024, time.February, 20)
	filtered = engine.Apply(guests, DefaultState().With(WithActivityRange(&DateRange{To: &to})))
	assert.Equal(t, []string{"g1", "g2"}, ids(filtered))

	// Обе границы одновременно
	filtered = engine.Apply(guests, DefaultState().With(WithActivityRange(&DateRange{From: &from, To: &to})))
	assert.Equal(t, []string{"g2"}, ids(filtered))
}

func TestApply_ActivityToBoundaryIsInclusive(t *testing.T) {
	engine := New(guestAccessors(), "VIP")

	// Визит ровно в полночь даты To должен попадать в выборку
	guests := []testGuest{{
		id:          "g1",
		lastVisitAt: time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC),
	}}
	to := date(2024, time.February, 20)

	filtered := engine.Apply(guests, DefaultState().With(WithActivityRange(&DateRange{To: &to})))
	assert.Equal(t, []string{"g1"}, ids(filtered))

	// Визит поздно вечером того же дня тоже включается
	guests[0].lastVisitAt = time.Date(2024, time.February, 20, 23, 59, 59, 0, time.UTC)
	filtered = engine.Apply(guests, DefaultState().With(WithActivityRange(&DateRange{To: &to})))
	assert.Equal(t, []string{"g1"}, ids(filtered))

	// А полночь следующего дня — уже нет
	guests[0].lastVisitAt = time.Date(2024, time.February, 21, 0, 0, 0, 0, time.UTC)
	filtered = engine.Apply(guests, DefaultState().With(WithActivityRange(&DateRange{To: &to})))
	assert.Empty(t, filtered)
}

func TestApply_CountBounds(t *testing.T) {
	engine := New(guestAccessors(), "VIP")
	guests := sampleGuests()

	filtered := engine.Apply(guests, DefaultState().With(WithMinCount(ptr.Ptr(2))))
	assert.Equal(t, []string{"g1", "g2"}, ids(filtered))

	filtered = engine.Apply(guests, DefaultState().With(WithMaxCount(ptr.Ptr(2))))
	assert.Equal(t, []string{"g2", "g3"}, ids(filtered))

	// Границы включительные и работают одновременно
	filtered = engine.Apply(guests, DefaultState().With(WithMinCount(ptr.Ptr(2)), WithMaxCount(ptr.Ptr(2))))
	assert.Equal(t, []string{"g2"}, ids(filtered))
}

func TestApply_TagsOrSemantics(t *testing.T) {
	engine := New(guestAccessors(), "VIP")
	guests := sampleGuests()

	// Достаточно одного совпавшего тега из набора
	filtered := engine.Apply(guests, DefaultState().With(WithTags([]string{"Vegetarian", "Window Seat"})))
	assert.Equal(t, []string{"g1", "g3"}, ids(filtered))

	// Сравнение тегов регистрозависимое
	filtered = engine.Apply(guests, DefaultState().With(WithTags([]string{"vegetarian"})))
	assert.Empty(t, filtered)

	// Пустой набор снимает ограничение
	filtered = engine.Apply(guests, DefaultState().With(WithTags(nil)))
	assert.Len(t, filtered, 3)
}

func TestApply_LoyaltyRange(t *testing.T) {
	engine := New(guestAccessors(), "VIP")
	guests := sampleGuests()

	filtered := engine.Apply(guests, DefaultState().With(WithLoyaltyRange(&IntRange{Min: ptr.Ptr(50)})))
	assert.Equal(t, []string{"g1", "g2"}, ids(filtered))

	filtered = engine.Apply(guests, DefaultState().With(WithLoyaltyRange(&IntRange{Max: ptr.Ptr(50)})))
	assert.Equal(t, []string{"g2", "g3"}, ids(filtered))

	// Границы включительные
	filtered = engine.Apply(guests, DefaultState().With(WithLoyaltyRange(&IntRange{Min: ptr.Ptr(50), Max: ptr.Ptr(50)})))
	assert.Equal(t, []string{"g2"}, ids(filtered))
}

func TestApply_OfferRedeemed(t *testing.T) {
	engine := New(guestAccessors(), "VIP")
	guests := sampleGuests()

	filtered := engine.Apply(guests, DefaultState().With(WithOfferRedeemed(ptr.Ptr(true))))
	assert.Equal(t, []string{"g1"}, ids(filtered))

	// false — отрицание: записи без единого погашенного оффера,
	// в том числе записи вообще без офферов
	filtered = engine.Apply(guests, DefaultState().With(WithOfferRedeemed(ptr.Ptr(false))))
	assert.Equal(t, []string{"g2", "g3"}, ids(filtered))
}

func TestApply_AndComposition(t *testing.T) {
	engine := New(guestAccessors(), "VIP")
	guests := sampleGuests()

	stateA := DefaultState().With(WithFranchise("fr-001"))
	stateB := DefaultState().With(WithMinCount(ptr.Ptr(5)))
	merged := stateA.With(WithMinCount(ptr.Ptr(5)))

	onlyA := engine.Apply(guests, stateA)
	onlyB := engine.Apply(guests, stateB)
	both := engine.Apply(guests, merged)

	// Результат объединенного фильтра равен пересечению независимых фильтров
	intersection := make([]string, 0)
	inB := make(map[string]bool)
	for _, g := range onlyB {
		inB[g.id] = true
	}
	for _, g := range onlyA {
		if inB[g.id] {
			intersection = append(intersection, g.id)
		}
	}

	assert.Equal(t, intersection, ids(both))
	assert.Equal(t, []string{"g1"}, ids(both))
}

func TestApply_NilAccessorsNormalizeToEmpty(t *testing.T) {
	// Движок с пустой конфигурацией аксессоров: отсутствующие поля
	// трактуются как пустые значения, а не как ошибка
	engine := New(Accessors[testGuest]{}, "VIP")
	guests := sampleGuests()

	// Без активных ограничений проходят все записи
	filtered := engine.Apply(guests, DefaultState())
	assert.Len(t, filtered, 3)

	// Отсутствующие баллы лояльности = 0: нижняя граница 0 проходит, 1 — нет
	filtered = engine.Apply(guests, DefaultState().With(WithLoyaltyRange(&IntRange{Min: ptr.Ptr(0)})))
	assert.Len(t, filtered, 3)

	filtered = engine.Apply(guests, DefaultState().With(WithLoyaltyRange(&IntRange{Min: ptr.Ptr(1)})))
	assert.Empty(t, filtered)

	// Отсутствующие офферы удовлетворяют offerRedeemed=false и не проходят true
	filtered = engine.Apply(guests, DefaultState().With(WithOfferRedeemed(ptr.Ptr(false))))
	assert.Len(t, filtered, 3)

	filtered = engine.Apply(guests, DefaultState().With(WithOfferRedeemed(ptr.Ptr(true))))
	assert.Empty(t, filtered)
}

func TestApply_EmptyCollection(t *testing.T) {
	engine := New(guestAccessors(), "VIP")

	filtered := engine.Apply(nil, DefaultState().With(WithSearch("anna")))

	require.NotNil(t, filtered)
	assert.Empty(t, filtered)
}
