package models

import (
	"github.com/m04kA/RBM-DashboardService/internal/domain"
)

// StaffMemberResponse ответ с данными сотрудника
type StaffMemberResponse struct {
	ID          int64  `json:"id"`
	FranchiseID string `json:"franchiseId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Role        string `json:"role"`
	IsActive    bool   `json:"isActive"`
	HiredAt     string `json:"hiredAt"` // "2024-03-01"
}

// StaffListResponse ответ со списком сотрудников
type StaffListResponse struct {
	Staff []StaffMemberResponse `json:"staff"`
	Total int                   `json:"total"`
}

// FromDomainStaffList конвертирует список domain моделей в DTO
func FromDomainStaffList(members []*domain.StaffMember) *StaffListResponse {
	resp := &StaffListResponse{
		Staff: make([]StaffMemberResponse, 0, len(members)),
	}

	for _, m := range members {
		resp.Staff = append(resp.Staff, StaffMemberResponse{
			ID:          m.ID,
			FranchiseID: m.FranchiseID,
			Name:        m.Name,
			Email:       m.Email,
			Phone:       m.Phone,
			Role:        string(m.Role),
			IsActive:    m.IsActive,
			HiredAt:     m.HiredAt.Format(domain.DateFormat),
		})
	}

	resp.Total = len(resp.Staff)
	return resp
}
