package offer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/RBM-DashboardService/internal/domain"
	"github.com/m04kA/RBM-DashboardService/pkg/dbmetrics"
	"github.com/m04kA/RBM-DashboardService/pkg/psqlbuilder"
)

// Repository репозиторий промо-кампаний (офферов) франшиз
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория офферов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByFranchise получает офферы франшизы
// activeOnly ограничивает выборку активными кампаниями
func (r *Repository) GetByFranchise(ctx context.Context, franchiseID string, activeOnly bool) ([]*domain.Offer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"franchise_id",
		"title",
		"description",
		"discount_percent",
		"valid_from",
		"valid_until",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("offers").
		Where(squirrel.Eq{"franchise_id": franchiseID}).
		OrderBy("valid_from DESC")

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

	offers := make([]*domain.Offer, 0)

	for rows.Next() {
		var o domain.Offer
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&o.ID,
			&o.FranchiseID,
			&o.Title,
			&o.Description,
			&o.DiscountPercent,
			&o.ValidFrom,
			&o.ValidUntil,
			&o.IsActive,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByFranchise - scan row: %v", ErrScanRow, err)
		}

		o.CreatedAt = createdAt.Time
		o.UpdatedAt = updatedAt.Time

		offers = append(offers, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByFranchise - rows error: %v", ErrScanRow, err)
	}

	return offers, nil
}
