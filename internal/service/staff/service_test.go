package staff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RBM-DashboardService/internal/domain"
)

type fakeStaffRepo struct {
	members []*domain.StaffMember

	lastFranchiseID string
	lastActiveOnly  bool
}

func (f *fakeStaffRepo) GetByFranchise(_ context.Context, franchiseID string, activeOnly bool) ([]*domain.StaffMember, error) {
	f.lastFranchiseID = franchiseID
	f.lastActiveOnly = activeOnly
	return f.members, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testMember(id int64, name string, active bool) *domain.StaffMember {
	return &domain.StaffMember{
		ID:          id,
		FranchiseID: "fr-001",
		Name:        name,
		Email:       "staff@example.com",
		Role:        domain.StaffRoleHost,
		IsActive:    active,
		HiredAt:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestService_List(t *testing.T) {
	repo := &fakeStaffRepo{members: []*domain.StaffMember{
		testMember(1, "Anna", true),
		testMember(2, "Boris", true),
	}}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.List(context.Background(), "fr-001", true)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "fr-001", repo.lastFranchiseID)
	assert.True(t, repo.lastActiveOnly)
	assert.Equal(t, "Anna", resp.Staff[0].Name)
	assert.Equal(t, "2024-03-01", resp.Staff[0].HiredAt)
}

func TestService_List_RequiresFranchise(t *testing.T) {
	svc := NewService(&fakeStaffRepo{}, noopLogger{})

	_, err := svc.List(context.Background(), "", true)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(context.Background(), domain.FranchiseAll, true)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
