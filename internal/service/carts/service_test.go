package carts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RBM-DashboardService/internal/domain"
	cartRepo "github.com/m04kA/RBM-DashboardService/internal/infra/storage/cart"
	"github.com/m04kA/RBM-DashboardService/internal/integrations/notifyservice"
	"github.com/m04kA/RBM-DashboardService/internal/service/carts/models"
	"github.com/m04kA/RBM-DashboardService/pkg/ptr"
	"github.com/m04kA/RBM-DashboardService/pkg/types"
)

// Фейки зависимостей

type fakeCartRepo struct {
	carts map[uuid.UUID]*domain.AbandonedCart
}

func newFakeCartRepo(carts ...*domain.AbandonedCart) *fakeCartRepo {
	repo := &fakeCartRepo{carts: make(map[uuid.UUID]*domain.AbandonedCart)}
	for _, c := range carts {
		repo.carts[c.ID] = c
	}
	return repo
}

func (f *fakeCartRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.AbandonedCart, error) {
	if c, ok := f.carts[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, cartRepo.ErrCartNotFound
}

func (f *fakeCartRepo) GetAll(_ context.Context, franchiseID *string, includeArchived bool) ([]*domain.AbandonedCart, error) {
	result := make([]*domain.AbandonedCart, 0, len(f.carts))
	for _, c := range f.carts {
		if franchiseID != nil && c.FranchiseID != *franchiseID {
			continue
		}
		if !includeArchived && c.IsArchived {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

func (f *fakeCartRepo) Update(_ context.Context, cart *domain.AbandonedCart) error {
	if _, ok := f.carts[cart.ID]; !ok {
		return cartRepo.ErrCartNotFound
	}
	copied := *cart
	f.carts[cart.ID] = &copied
	return nil
}

type fakeNotifyClient struct {
	err      error
	requests []notifyservice.ReminderRequest
}

func (f *fakeNotifyClient) SendCartReminderWithGracefulDegradation(_ context.Context, request notifyservice.ReminderRequest) (*notifyservice.ReminderResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.requests = append(f.requests, request)
	return &notifyservice.ReminderResponse{MessageID: "msg-1", Channel: "email"}, nil
}

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

func testCart(status domain.ReminderStatus) *domain.AbandonedCart {
	desired, _ := types.NewTimeStringFromString("19:30")
	return &domain.AbandonedCart{
		ID:             uuid.New(),
		FranchiseID:    "fr-001",
		GuestName:      "Alice Morgan",
		GuestEmail:     "alice@example.com",
		GuestPhone:     "+1-555-0001",
		PartySize:      2,
		DesiredDate:    testNow.AddDate(0, 0, 3),
		DesiredTime:    desired,
		CartValue:      85.50,
		ReminderStatus: status,
		AbandonedAt:    testNow.AddDate(0, 0, -1),
		CreatedAt:      testNow.AddDate(0, 0, -1),
	}
}

func newTestService(repo *fakeCartRepo, notify *fakeNotifyClient) *Service {
	return NewService(repo, notify, fakeTxManager{}, &fixedTimeProvider{now: testNow}, noopLogger{})
}

// List

func TestService_List_ExcludesArchivedByDefault(t *testing.T) {
	active := testCart(domain.ReminderStatusNotSent)
	archived := testCart(domain.ReminderStatusSent)
	archived.IsArchived = true
	repo := newFakeCartRepo(active, archived)
	svc := newTestService(repo, &fakeNotifyClient{})

	resp, err := svc.List(context.Background(), &models.ListCartsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	resp, err = svc.List(context.Background(), &models.ListCartsRequest{IncludeArchived: true})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}

func TestService_List_FilterByReminderStatus(t *testing.T) {
	repo := newFakeCartRepo(
		testCart(domain.ReminderStatusNotSent),
		testCart(domain.ReminderStatusSent),
	)
	svc := newTestService(repo, &fakeNotifyClient{})

	resp, err := svc.List(context.Background(), &models.ListCartsRequest{
		ReminderStatus: string(domain.ReminderStatusSent),
	})
	require.NoError(t, err)

	require.Equal(t, 1, resp.Total)
	assert.Equal(t, string(domain.ReminderStatusSent), resp.Carts[0].ReminderStatus)
}

func TestService_List_InvalidReminderStatus(t *testing.T) {
	svc := newTestService(newFakeCartRepo(), &fakeNotifyClient{})

	_, err := svc.List(context.Background(), &models.ListCartsRequest{ReminderStatus: "pinged"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// SendReminder

func TestService_SendReminder(t *testing.T) {
	cart := testCart(domain.ReminderStatusNotSent)
	repo := newFakeCartRepo(cart)
	notify := &fakeNotifyClient{}
	svc := newTestService(repo, notify)

	resp, err := svc.SendReminder(context.Background(), cart.ID)
	require.NoError(t, err)

	assert.Equal(t, string(domain.ReminderStatusSent), resp.ReminderStatus)
	require.NotNil(t, resp.ReminderSentAt)

	require.Len(t, notify.requests, 1)
	assert.Equal(t, "alice@example.com", notify.requests[0].GuestEmail)

	stored := repo.carts[cart.ID]
	assert.Equal(t, domain.ReminderStatusSent, stored.ReminderStatus)
}

func TestService_SendReminder_AlreadySent(t *testing.T) {
	cart := testCart(domain.ReminderStatusSent)
	svc := newTestService(newFakeCartRepo(cart), &fakeNotifyClient{})

	_, err := svc.SendReminder(context.Background(), cart.ID)
	assert.ErrorIs(t, err, ErrReminderAlreadySent)
}

func TestService_SendReminder_DeliveryFailureKeepsStatus(t *testing.T) {
	cart := testCart(domain.ReminderStatusNotSent)
	repo := newFakeCartRepo(cart)
	notify := &fakeNotifyClient{err: errors.New("service unavailable")}
	svc := newTestService(repo, notify)

	_, err := svc.SendReminder(context.Background(), cart.ID)
	assert.ErrorIs(t, err, ErrReminderNotDelivered)

	// Статус не меняется, пока доставка не подтверждена
	assert.Equal(t, domain.ReminderStatusNotSent, repo.carts[cart.ID].ReminderStatus)
}

func TestService_SendReminder_NotFound(t *testing.T) {
	svc := newTestService(newFakeCartRepo(), &fakeNotifyClient{})

	_, err := svc.SendReminder(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrCartNotFound)
}

// Update

func TestService_Update_RecordOutcome(t *testing.T) {
	cart := testCart(domain.ReminderStatusSent)
	repo := newFakeCartRepo(cart)
	svc := newTestService(repo, &fakeNotifyClient{})

	resp, err := svc.Update(context.Background(), cart.ID, &models.UpdateCartRequest{
		ReminderOutcome: ptr.Ptr(string(domain.ReminderStatusResponded)),
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.ReminderStatusResponded), resp.ReminderStatus)
}

func TestService_Update_OutcomeBeforeSend(t *testing.T) {
	cart := testCart(domain.ReminderStatusNotSent)
	svc := newTestService(newFakeCartRepo(cart), &fakeNotifyClient{})

	_, err := svc.Update(context.Background(), cart.ID, &models.UpdateCartRequest{
		ReminderOutcome: ptr.Ptr(string(domain.ReminderStatusResponded)),
	})
	assert.ErrorIs(t, err, ErrReminderNotSent)
}

func TestService_Update_FlagsIndependentOfStatus(t *testing.T) {
	cart := testCart(domain.ReminderStatusNotSent)
	repo := newFakeCartRepo(cart)
	svc := newTestService(repo, &fakeNotifyClient{})

	resp, err := svc.Update(context.Background(), cart.ID, &models.UpdateCartRequest{
		IsArchived:  ptr.Ptr(true),
		IsRecovered: ptr.Ptr(true),
	})
	require.NoError(t, err)

	// Флаги выставляются независимо от статуса напоминания
	assert.True(t, resp.IsArchived)
	assert.True(t, resp.IsRecovered)
	assert.Equal(t, string(domain.ReminderStatusNotSent), resp.ReminderStatus)
}

func TestService_Update_NothingToUpdate(t *testing.T) {
	cart := testCart(domain.ReminderStatusNotSent)
	svc := newTestService(newFakeCartRepo(cart), &fakeNotifyClient{})

	_, err := svc.Update(context.Background(), cart.ID, &models.UpdateCartRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
