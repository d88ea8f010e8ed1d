package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RBM-DashboardService/internal/domain"
	bookingRepo "github.com/m04kA/RBM-DashboardService/internal/infra/storage/booking"
	"github.com/m04kA/RBM-DashboardService/internal/service/bookings/models"
	"github.com/m04kA/RBM-DashboardService/pkg/types"
)

// Фейки зависимостей

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
	updated  []int64
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if b, ok := f.bookings[id]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeBookingRepo) GetAll(_ context.Context, franchiseID *string) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		if franchiseID != nil && b.FranchiseID != *franchiseID {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatuses(_ context.Context, id int64, status domain.BookingStatus, paymentStatus domain.PaymentStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	b.PaymentStatus = paymentStatus
	f.updated = append(f.updated, id)
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string, cancelledAt time.Time) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = domain.BookingStatusCancelled
	b.CancellationReason = &reason
	b.CancelledAt = &cancelledAt
	return nil
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
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

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func testBooking(id int64, status domain.BookingStatus) *domain.Booking {
	start, _ := types.NewTimeStringFromString("19:00")
	return &domain.Booking{
		ID:              id,
		FranchiseID:     "fr-001",
		GuestName:       "Alice Morgan",
		GuestEmail:      "alice@example.com",
		GuestPhone:      "+1-555-0001",
		PartySize:       4,
		BookingDate:     testNow.AddDate(0, 0, 2),
		StartTime:       start,
		DurationMinutes: 90,
		Status:          status,
		PaymentStatus:   domain.PaymentStatusPending,
		CreatedAt:       testNow,
	}
}

func newTestService(repo *fakeBookingRepo) *Service {
	return NewService(repo, fakeTxManager{}, &fixedTimeProvider{now: testNow}, noopLogger{})
}

// List

func TestService_List_FilterByStatus(t *testing.T) {
	repo := newFakeBookingRepo(
		testBooking(1, domain.BookingStatusPending),
		testBooking(2, domain.BookingStatusConfirmed),
	)
	svc := newTestService(repo)

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Status: string(domain.BookingStatusConfirmed),
	})
	require.NoError(t, err)

	require.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(2), resp.Bookings[0].ID)
}

func TestService_List_InvalidStatus(t *testing.T) {
	svc := newTestService(newFakeBookingRepo())

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: "done"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_List_SearchByGuest(t *testing.T) {
	b1 := testBooking(1, domain.BookingStatusPending)
	b2 := testBooking(2, domain.BookingStatusPending)
	b2.GuestName = "Bob Chen"
	b2.GuestEmail = "bob@example.com"
	repo := newFakeBookingRepo(b1, b2)
	svc := newTestService(repo)

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{Search: "bob"})
	require.NoError(t, err)

	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Bob Chen", resp.Bookings[0].GuestName)
}

// UpdateStatus

func TestService_UpdateStatus_ConfirmPending(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(1, domain.BookingStatusPending))
	svc := newTestService(repo)

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		Status: string(domain.BookingStatusConfirmed),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.BookingStatusConfirmed, repo.bookings[1].Status)
}

func TestService_UpdateStatus_Idempotent(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(1, domain.BookingStatusConfirmed))
	svc := newTestService(repo)

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		Status: string(domain.BookingStatusConfirmed),
	})
	assert.NoError(t, err)
}

func TestService_UpdateStatus_CancelledIsTerminal(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(1, domain.BookingStatusCancelled))
	svc := newTestService(repo)

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		Status: string(domain.BookingStatusConfirmed),
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_UpdateStatus_CancelViaUpdateRejected(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(1, domain.BookingStatusPending))
	svc := newTestService(repo)

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		Status: string(domain.BookingStatusCancelled),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_UpdateStatus_NotFound(t *testing.T) {
	svc := newTestService(newFakeBookingRepo())

	err := svc.UpdateStatus(context.Background(), 99, &models.UpdateStatusRequest{
		Status: string(domain.BookingStatusConfirmed),
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

// Cancel

func TestService_Cancel(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(1, domain.BookingStatusConfirmed))
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		CancellationReason: "guest request",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.BookingStatusCancelled, repo.bookings[1].Status)
	require.NotNil(t, repo.bookings[1].CancelledAt)
	assert.Equal(t, testNow, *repo.bookings[1].CancelledAt)
}

func TestService_Cancel_AlreadyCancelled(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(1, domain.BookingStatusCancelled))
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestService_Cancel_NotFound(t *testing.T) {
	svc := newTestService(newFakeBookingRepo())

	err := svc.Cancel(context.Background(), 99, &models.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
