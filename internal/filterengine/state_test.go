package filterengine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RBM-DashboardService/pkg/ptr"
)

func TestDefaultState_Values(t *testing.T) {
	state := DefaultState()

	assert.Empty(t, state.Search)
	assert.Equal(t, MatchAll, state.FranchiseID)
	assert.Equal(t, MatchAll, state.Category)
	assert.Nil(t, state.Activity)
	assert.Nil(t, state.MinCount)
	assert.Nil(t, state.MaxCount)
	assert.Nil(t, state.Tags)
	assert.Nil(t, state.Loyalty)
	assert.Nil(t, state.OfferRedeemed)
}

func TestDefaultState_ReferentiallyDistinct(t *testing.T) {
	first := DefaultState()
	second := DefaultState()

	require.Equal(t, first, second)

	// Мутация одного состояния не должна затрагивать другое
	first.Search = "corrupted"
	first.Tags = []string{"corrupted"}

	assert.Empty(t, second.Search)
	assert.Nil(t, second.Tags)
	assert.Equal(t, DefaultState(), second)
}

func TestWith_PartialUpdatePreservesOtherFields(t *testing.T) {
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	base := DefaultState().With(
		WithSearch("anna"),
		WithFranchise("fr-001"),
		WithActivityRange(&DateRange{From: &from}),
	)

	next := base.With(WithCategory("VIP"))

	assert.Equal(t, "anna", next.Search)
	assert.Equal(t, "fr-001", next.FranchiseID)
	assert.Equal(t, "VIP", next.Category)
	require.NotNil(t, next.Activity)
	assert.Equal(t, from, *next.Activity.From)

	// Исходник не изменился
	assert.Equal(t, MatchAll, base.Category)
}

func TestWith_CopyOnWriteForNestedStructures(t *testing.T) {
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	sourceRange := &DateRange{From: &from}
	sourceTags := []string{"Vegetarian"}

	state := DefaultState().With(
		WithActivityRange(sourceRange),
		WithTags(sourceTags),
		WithLoyaltyRange(&IntRange{Min: ptr.Ptr(10)}),
	)
	next := state.With(WithSearch("x"))

	// Мутация исходных структур не протекает в состояние
	*sourceRange.From = sourceRange.From.AddDate(1, 0, 0)
	sourceTags[0] = "corrupted"

	require.NotNil(t, state.Activity)
	assert.Equal(t, from, *state.Activity.From)
	assert.Equal(t, []string{"Vegetarian"}, state.Tags)

	// Состояния не делят вложенные структуры между собой
	assert.NotSame(t, state.Activity, next.Activity)
	assert.NotSame(t, state.Loyalty, next.Loyalty)

	*next.Activity.From = next.Activity.From.AddDate(5, 0, 0)
	next.Tags[0] = "mutated"
	assert.Equal(t, from, *state.Activity.From)
	assert.Equal(t, []string{"Vegetarian"}, state.Tags)
}

func TestWith_ClearingOptionalConstraints(t *testing.T) {
	state := DefaultState().With(
		WithActivityRange(&DateRange{From: ptr.Ptr(time.Now())}),
		WithMinCount(ptr.Ptr(5)),
		WithTags([]string{"Vegetarian"}),
		WithOfferRedeemed(ptr.Ptr(true)),
	)

	cleared := state.With(
		WithActivityRange(nil),
		WithMinCount(nil),
		WithTags(nil),
		WithOfferRedeemed(nil),
	)

	assert.Nil(t, cleared.Activity)
	assert.Nil(t, cleared.MinCount)
	assert.Nil(t, cleared.Tags)
	assert.Nil(t, cleared.OfferRedeemed)
}
