package staff

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/RBM-DashboardService/internal/domain"
	"github.com/m04kA/RBM-DashboardService/internal/service/staff/models"
)

// Service сервис справочника сотрудников франшиз
type Service struct {
	staffRepo StaffRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса сотрудников
func NewService(staffRepo StaffRepository, logger Logger) *Service {
	return &Service{
		staffRepo: staffRepo,
		logger:    logger,
	}
}

// List возвращает сотрудников франшизы
func (s *Service) List(ctx context.Context, franchiseID string, activeOnly bool) (*models.StaffListResponse, error) {
	s.logger.Info("List: fetching staff franchise_id=%s, active_only=%t", franchiseID, activeOnly)

	if strings.TrimSpace(franchiseID) == "" || franchiseID == domain.FranchiseAll {
		s.logger.Warn("List: franchise id is required")
		return nil, fmt.Errorf("%w: franchise id is required", ErrInvalidInput)
	}

	members, err := s.staffRepo.GetByFranchise(ctx, franchiseID, activeOnly)
	if err != nil {
		s.logger.Error("List: repository error for franchise_id=%s: %v", franchiseID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d staff members for franchise_id=%s", len(members), franchiseID)
	return models.FromDomainStaffList(members), nil
}
