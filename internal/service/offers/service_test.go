package offers

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RBM-DashboardService/internal/domain"
	guestRepo "github.com/m04kA/RBM-DashboardService/internal/infra/storage/guest"
)

// Фейки зависимостей

type fakeOfferRepo struct {
	offers []*domain.Offer
}

func (f *fakeOfferRepo) GetByFranchise(_ context.Context, franchiseID string, activeOnly bool) ([]*domain.Offer, error) {
	result := make([]*domain.Offer, 0)
	for _, o := range f.offers {
		if o.FranchiseID != franchiseID {
			continue
		}
		if activeOnly && !o.IsActive {
			continue
		}
		result = append(result, o)
	}
	return result, nil
}

type fakeGuestRepo struct {
	guest   *domain.Guest
	updates []domain.OfferStatus
}

func (f *fakeGuestRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Guest, error) {
	if f.guest != nil && f.guest.ID == id {
		return f.guest, nil
	}
	return nil, guestRepo.ErrGuestNotFound
}

func (f *fakeGuestRepo) UpdateOfferStatus(_ context.Context, guestID, guestOfferID uuid.UUID, status domain.OfferStatus, _ *time.Time) error {
	if f.guest == nil || f.guest.ID != guestID {
		return guestRepo.ErrGuestNotFound
	}
	for i := range f.guest.Offers {
		if f.guest.Offers[i].ID == guestOfferID {
			f.guest.Offers[i].Status = status
			f.updates = append(f.updates, status)
			return nil
		}
	}
	return guestRepo.ErrGuestOfferNotFound
}

type fakeStatsCache struct {
	invalidated []string
}

func (f *fakeStatsCache) Invalidate(_ context.Context, franchiseID string) error {
	f.invalidated = append(f.invalidated, franchiseID)
	return nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// Тестовые данные

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func testGuestWithOffer(status domain.OfferStatus) (*domain.Guest, uuid.UUID) {
	offerID := uuid.New()
	guest := &domain.Guest{
		ID:          uuid.New(),
		FranchiseID: "fr-001",
		Name:        "Alice Morgan",
		Offers: []domain.GuestOffer{
			{ID: offerID, Title: "Dinner -20%", Status: status},
		},
	}
	return guest, offerID
}

func newTestService(offerRepo *fakeOfferRepo, gRepo *fakeGuestRepo, cache *fakeStatsCache) *Service {
	var sc StatsCache
	if cache != nil {
		sc = cache
	}
	return NewService(offerRepo, gRepo, sc, &fixedTimeProvider{now: testNow}, noopLogger{})
}

// List

func TestService_List(t *testing.T) {
	repo := &fakeOfferRepo{offers: []*domain.Offer{
		{
			ID:          uuid.New(),
			FranchiseID: "fr-001",
			Title:       "Summer menu -15%",
			ValidFrom:   testNow.AddDate(0, 0, -5),
			ValidUntil:  testNow.AddDate(0, 0, 5),
			IsActive:    true,
		},
		{
			ID:          uuid.New(),
			FranchiseID: "fr-001",
			Title:       "Expired promo",
			ValidFrom:   testNow.AddDate(0, -2, 0),
			ValidUntil:  testNow.AddDate(0, -1, 0),
			IsActive:    true,
		},
	}}
	svc := newTestService(repo, &fakeGuestRepo{}, nil)

	resp, err := svc.List(context.Background(), "fr-001", true)
	require.NoError(t, err)

	require.Equal(t, 2, resp.Total)
	assert.True(t, resp.Offers[0].IsCurrent)
	assert.False(t, resp.Offers[1].IsCurrent)
}

func TestService_List_RequiresFranchise(t *testing.T) {
	svc := newTestService(&fakeOfferRepo{}, &fakeGuestRepo{}, nil)

	_, err := svc.List(context.Background(), "", false)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(context.Background(), domain.FranchiseAll, false)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// Redeem

func TestService_Redeem(t *testing.T) {
	guest, offerID := testGuestWithOffer(domain.OfferStatusViewed)
	gRepo := &fakeGuestRepo{guest: guest}
	cache := &fakeStatsCache{}
	svc := newTestService(&fakeOfferRepo{}, gRepo, cache)

	resp, err := svc.Redeem(context.Background(), guest.ID, offerID)
	require.NoError(t, err)

	assert.Equal(t, string(domain.OfferStatusRedeemed), resp.Status)
	assert.Equal(t, domain.OfferStatusRedeemed, guest.Offers[0].Status)

	// Погашение оффера сбрасывает кэш статистики франшизы
	assert.Contains(t, cache.invalidated, "fr-001")
}

func TestService_Redeem_AlreadyRedeemed(t *testing.T) {
	guest, offerID := testGuestWithOffer(domain.OfferStatusRedeemed)
	svc := newTestService(&fakeOfferRepo{}, &fakeGuestRepo{guest: guest}, nil)

	_, err := svc.Redeem(context.Background(), guest.ID, offerID)
	assert.ErrorIs(t, err, ErrAlreadyRedeemed)
}

func TestService_Redeem_Expired(t *testing.T) {
	guest, offerID := testGuestWithOffer(domain.OfferStatusExpired)
	svc := newTestService(&fakeOfferRepo{}, &fakeGuestRepo{guest: guest}, nil)

	_, err := svc.Redeem(context.Background(), guest.ID, offerID)
	assert.ErrorIs(t, err, ErrOfferExpired)
}

func TestService_Redeem_OfferNotFound(t *testing.T) {
	guest, _ := testGuestWithOffer(domain.OfferStatusSent)
	svc := newTestService(&fakeOfferRepo{}, &fakeGuestRepo{guest: guest}, nil)

	_, err := svc.Redeem(context.Background(), guest.ID, uuid.New())
	assert.ErrorIs(t, err, ErrOfferNotFound)
}

func TestService_Redeem_GuestNotFound(t *testing.T) {
	svc := newTestService(&fakeOfferRepo{}, &fakeGuestRepo{}, nil)

	_, err := svc.Redeem(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrGuestNotFound)
}
