package staff

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/RBM-DashboardService/internal/domain"
	"github.com/m04kA/RBM-DashboardService/pkg/dbmetrics"
	"github.com/m04kA/RBM-DashboardService/pkg/psqlbuilder"
)

// Repository репозиторий справочника сотрудников франшиз
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByFranchise получает сотрудников франшизы
// activeOnly ограничивает выборку действующими сотрудниками
func (r *Repository) GetByFranchise(ctx context.Context, franchiseID string, activeOnly bool) ([]*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"franchise_id",
		"name",
		"email",
		"phone",
		"role",
		"is_active",
		"hired_at",
		"created_at",
		"updated_at",
	).
		From("staff_members").
		Where(squirrel.Eq{"franchise_id": franchiseID}).
		OrderBy("name ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFranchise - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFranchise - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	members := make([]*domain.StaffMember, 0)

	for rows.Next() {
		var member domain.StaffMember
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&member.ID,
			&member.FranchiseID,
			&member.Name,
			&member.Email,
			&member.Phone,
			&member.Role,
			&member.IsActive,
			&member.HiredAt,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByFranchise - scan row: %v", ErrScanRow, err)
		}

		member.CreatedAt = createdAt.Time
		member.UpdatedAt = updatedAt.Time

		members = append(members, &member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByFranchise - rows error: %v", ErrScanRow, err)
	}

	return members, nil
}
