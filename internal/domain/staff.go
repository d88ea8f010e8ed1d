package domain

import "time"

// StaffRole represents the role of a staff member within a franchise
type StaffRole string

const (
	StaffRoleManager StaffRole = "manager"
	StaffRoleHost    StaffRole = "host"
	StaffRoleServer  StaffRole = "server"
	StaffRoleChef    StaffRole = "chef"
)

// StaffMember represents an employee in the franchise staff directory
type StaffMember struct {
	ID          int64
	FranchiseID string

	Name  string
	Email string
	Phone string

	Role     StaffRole
	IsActive bool
	HiredAt  time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidStaffRoles список допустимых ролей сотрудников
var ValidStaffRoles = []StaffRole{
	StaffRoleManager,
	StaffRoleHost,
	StaffRoleServer,
	StaffRoleChef,
}

// IsValidStaffRole проверяет, что строка является допустимой ролью
func IsValidStaffRole(s string) bool {
	for _, r := range ValidStaffRoles {
		if StaffRole(s) == r {
			return true
		}
	}
	return false
}
