package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RBM-DashboardService/internal/domain"
	"github.com/m04kA/RBM-DashboardService/internal/integrations/franchiseservice"
	"github.com/m04kA/RBM-DashboardService/pkg/types"
)

type fakeBookingRepo struct {
	active  []*domain.Booking
	created []*domain.Booking
	nextID  int64
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	copied := *booking
	copied.ID = f.nextID
	f.created = append(f.created, &copied)
	return &copied, nil
}

func (f *fakeBookingRepo) GetActiveByFranchiseAndDate(_ context.Context, _ string, _ time.Time) ([]*domain.Booking, error) {
	return f.active, nil
}

type fakeFranchiseClient struct {
	franchise *franchiseservice.Franchise
	err       error
}

func (f *fakeFranchiseClient) GetFranchise(_ context.Context, _ string) (*franchiseservice.Franchise, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.franchise, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) // воскресенье

func mustTime(s string) types.TimeString {
	ts, err := types.NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

func openAllWeek(open, close string) []franchiseservice.Schedule {
	schedule := make([]franchiseservice.Schedule, 0, 7)
	for day := 0; day < 7; day++ {
		schedule = append(schedule, franchiseservice.Schedule{
			DayOfWeek: day,
			OpenTime:  mustTime(open),
			CloseTime: mustTime(close),
		})
	}
	return schedule
}

func testFranchise(tables int) *franchiseservice.Franchise {
	return &franchiseservice.Franchise{
		ID:       "fr-001",
		Name:     "Downtown Bistro",
		Tables:   tables,
		Schedule: openAllWeek("10:00", "23:00"),
		IsActive: true,
	}
}

func validRequest() *Request {
	return &Request{
		FranchiseID: "fr-001",
		GuestName:   "Alice Morgan",
		GuestEmail:  "alice@example.com",
		PartySize:   4,
		Date:        testNow.AddDate(0, 0, 2),
		StartTime:   mustTime("19:00"),
	}
}

func activeBooking(start string, durationMinutes int) *domain.Booking {
	return &domain.Booking{
		ID:              100,
		FranchiseID:     "fr-001",
		StartTime:       mustTime(start),
		DurationMinutes: durationMinutes,
		Status:          domain.BookingStatusConfirmed,
	}
}

func newTestUseCase(repo *fakeBookingRepo, client *fakeFranchiseClient) *UseCase {
	uc := NewUseCase(repo, client, fakeTxManager{}, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestUseCase_CreatesPendingBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeFranchiseClient{franchise: testFranchise(5)})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.BookingStatusPending), resp.Status)
	assert.Equal(t, string(domain.PaymentStatusPending), resp.PaymentStatus)
	assert.Equal(t, domain.DefaultBookingDurationMinutes, resp.DurationMinutes)
	require.Len(t, repo.created, 1)
}

func TestUseCase_NoTablesAvailable(t *testing.T) {
	repo := &fakeBookingRepo{active: []*domain.Booking{
		activeBooking("19:00", 90),
		activeBooking("18:30", 120),
	}}
	uc := newTestUseCase(repo, &fakeFranchiseClient{franchise: testFranchise(2)})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNoTablesAvailable)
}

func TestUseCase_NonOverlappingBookingsDoNotCount(t *testing.T) {
	// Смежные брони (конец одной = начало другой) не пересекаются
	repo := &fakeBookingRepo{active: []*domain.Booking{
		activeBooking("17:30", 90), // заканчивается ровно в 19:00
	}}
	uc := newTestUseCase(repo, &fakeFranchiseClient{franchise: testFranchise(1)})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestUseCase_CancelledBookingsDoNotCount(t *testing.T) {
	cancelled := activeBooking("19:00", 90)
	cancelled.Status = domain.BookingStatusCancelled
	repo := &fakeBookingRepo{active: []*domain.Booking{cancelled}}
	uc := newTestUseCase(repo, &fakeFranchiseClient{franchise: testFranchise(1)})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestUseCase_FranchiseClosed(t *testing.T) {
	franchise := testFranchise(5)
	for i := range franchise.Schedule {
		franchise.Schedule[i].IsClosed = true
	}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeFranchiseClient{franchise: franchise})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrFranchiseClosed)
}

func TestUseCase_OutsideOpeningHours(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeFranchiseClient{franchise: testFranchise(5)})

	req := validRequest()
	req.StartTime = mustTime("22:30") // 90 минут не укладываются до 23:00

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideOpeningHours)
}

func TestUseCase_DateInPast(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeFranchiseClient{franchise: testFranchise(5)})

	req := validRequest()
	req.Date = testNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestUseCase_FranchiseNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeFranchiseClient{err: franchiseservice.ErrFranchiseNotFound})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrFranchiseNotFound)
}

func TestUseCase_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeFranchiseClient{franchise: testFranchise(5)})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing franchise", func(r *Request) { r.FranchiseID = "" }},
		{"franchise sentinel", func(r *Request) { r.FranchiseID = domain.FranchiseAll }},
		{"missing guest name", func(r *Request) { r.GuestName = "" }},
		{"missing contact", func(r *Request) { r.GuestEmail = ""; r.GuestPhone = "" }},
		{"party too small", func(r *Request) { r.PartySize = 0 }},
		{"party too large", func(r *Request) { r.PartySize = domain.MaxPartySize + 1 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"negative deposit", func(r *Request) { r.DepositAmount = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
