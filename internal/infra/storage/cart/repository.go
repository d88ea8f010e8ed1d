package cart

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/RBM-DashboardService/internal/domain"
	"github.com/m04kA/RBM-DashboardService/pkg/dbmetrics"
	"github.com/m04kA/RBM-DashboardService/pkg/psqlbuilder"
)

// cartColumns колонки таблицы abandoned_carts в порядке сканирования
var cartColumns = []string{
	"id",
	"franchise_id",
	"guest_name",
	"guest_email",
	"guest_phone",
	"party_size",
	"desired_date",
	"desired_time",
	"cart_value",
	"reminder_status",
	"reminder_sent_at",
	"is_archived",
	"is_recovered",
	"abandoned_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с брошенными корзинами бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория брошенных корзин
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает брошенную корзину по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AbandonedCart, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(cartColumns...).
		From("abandoned_carts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var cart domain.AbandonedCart
	var reminderSentAt, createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cart.ID,
		&cart.FranchiseID,
		&cart.GuestName,
		&cart.GuestEmail,
		&cart.GuestPhone,
		&cart.PartySize,
		&cart.DesiredDate,
		&cart.DesiredTime,
		&cart.CartValue,
		&cart.ReminderStatus,
		&reminderSentAt,
		&cart.IsArchived,
		&cart.IsRecovered,
		&cart.AbandonedAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan cart: %v", ErrScanRow, err)
	}

	if reminderSentAt.Valid {
		cart.ReminderSentAt = &reminderSentAt.Time
	}
	cart.CreatedAt = createdAt.Time
	cart.UpdatedAt = updatedAt.Time

	return &cart, nil
}

// GetAll получает брошенные корзины, опционально ограничивая франшизой.
// Архивные корзины по умолчанию исключаются
func (r *Repository) GetAll(ctx context.Context, franchiseID *string, includeArchived bool) ([]*domain.AbandonedCart, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(cartColumns...).
		From("abandoned_carts").
		OrderBy("abandoned_at DESC")

	if franchiseID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"franchise_id": *franchiseID})
	}
	if !includeArchived {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_archived": false})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanCarts(rows)
}

// Update сохраняет статус напоминания и флаги корзины после доменных переходов
func (r *Repository) Update(ctx context.Context, cart *domain.AbandonedCart) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("abandoned_carts").
		Set("reminder_status", cart.ReminderStatus).
		Set("reminder_sent_at", cart.ReminderSentAt).
		Set("is_archived", cart.IsArchived).
		Set("is_recovered", cart.IsRecovered).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": cart.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCartNotFound
	}

	return nil
}

// scanCarts сканирует результаты запроса в слайс корзин
func (r *Repository) scanCarts(rows *sql.Rows) ([]*domain.AbandonedCart, error) {
	carts := make([]*domain.AbandonedCart, 0)

	for rows.Next() {
		var cart domain.AbandonedCart
		var reminderSentAt, createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&cart.ID,
			&cart.FranchiseID,
			&cart.GuestName,
			&cart.GuestEmail,
			&cart.GuestPhone,
			&cart.PartySize,
			&cart.DesiredDate,
			&cart.DesiredTime,
			&cart.CartValue,
			&cart.ReminderStatus,
			&reminderSentAt,
			&cart.IsArchived,
			&cart.IsRecovered,
			&cart.AbandonedAt,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanCarts - scan row: %v", ErrScanRow, err)
		}

		if reminderSentAt.Valid {
			cart.ReminderSentAt = &reminderSentAt.Time
		}
		cart.CreatedAt = createdAt.Time
		cart.UpdatedAt = updatedAt.Time

		carts = append(carts, &cart)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanCarts - rows error: %v", ErrScanRow, err)
	}

	return carts, nil
}
