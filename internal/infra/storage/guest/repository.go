package guest

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/RBM-DashboardService/internal/domain"
	"github.com/m04kA/RBM-DashboardService/pkg/dbmetrics"
	"github.com/m04kA/RBM-DashboardService/pkg/psqlbuilder"
)

// guestColumns колонки таблицы guests в порядке сканирования
var guestColumns = []string{
	"id",
	"franchise_id",
	"franchise_name",
	"name",
	"email",
	"phone",
	"guest_type",
	"total_visits",
	"last_visit_at",
	"preferences",
	"loyalty_points_available",
	"loyalty_points_total",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с гостями CRM
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория гостей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового гостя
func (r *Repository) Create(ctx context.Context, guest *domain.Guest) (*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("guests").
		Columns(
			"id",
			"franchise_id",
			"franchise_name",
			"name",
			"email",
			"phone",
			"guest_type",
			"total_visits",
			"last_visit_at",
			"preferences",
			"loyalty_points_available",
			"loyalty_points_total",
		).
		Values(
			guest.ID,
			guest.FranchiseID,
			guest.FranchiseName,
			guest.Name,
			guest.Email,
			guest.Phone,
			guest.GuestType,
			guest.TotalVisits,
			guest.LastVisitAt,
			pq.Array(guest.Preferences),
			guest.LoyaltyPointsAvailable,
			guest.LoyaltyPointsTotal,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	guest.CreatedAt = createdAt.Time
	guest.UpdatedAt = updatedAt.Time

	return guest, nil
}

// GetByID получает гостя по ID вместе с его офферами
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(guestColumns...).
		From("guests").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	guest, err := r.scanGuest(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	if err := r.attachOffers(ctx, executor, []*domain.Guest{guest}); err != nil {
		return nil, err
	}

	return guest, nil
}

// GetAll получает всех гостей, опционально ограничивая франшизой.
// Фильтрация по остальным критериям выполняется в памяти движком фильтров —
// репозиторий отдает полную коллекцию для статистики
func (r *Repository) GetAll(ctx context.Context, franchiseID *string) ([]*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(guestColumns...).
		From("guests").
		OrderBy("created_at DESC")

	if franchiseID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"franchise_id": *franchiseID})
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

	guests, err := r.scanGuests(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachOffers(ctx, executor, guests); err != nil {
		return nil, err
	}

	return guests, nil
}

// UpdateOfferStatus обновляет статус оффера гостя (например, погашение)
func (r *Repository) UpdateOfferStatus(
	ctx context.Context,
	guestID uuid.UUID,
	guestOfferID uuid.UUID,
	status domain.OfferStatus,
	redeemedAt *time.Time,
) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("guest_offers").
		Set("status", status).
		Set("redeemed_at", redeemedAt).
		Where(squirrel.Eq{"id": guestOfferID, "guest_id": guestID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateOfferStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateOfferStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateOfferStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrGuestOfferNotFound
	}

	return nil
}

// scanGuest сканирует одного гостя из QueryRow
func (r *Repository) scanGuest(row *sql.Row) (*domain.Guest, error) {
	var guest domain.Guest
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&guest.ID,
		&guest.FranchiseID,
		&guest.FranchiseName,
		&guest.Name,
		&guest.Email,
		&guest.Phone,
		&guest.GuestType,
		&guest.TotalVisits,
		&guest.LastVisitAt,
		pq.Array(&guest.Preferences),
		&guest.LoyaltyPointsAvailable,
		&guest.LoyaltyPointsTotal,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrGuestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanGuest - scan guest: %v", ErrScanRow, err)
	}

	guest.CreatedAt = createdAt.Time
	guest.UpdatedAt = updatedAt.Time

	return &guest, nil
}

// scanGuests сканирует результаты запроса в слайс гостей
func (r *Repository) scanGuests(rows *sql.Rows) ([]*domain.Guest, error) {
	guests := make([]*domain.Guest, 0)

	for rows.Next() {
		var guest domain.Guest
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&guest.ID,
			&guest.FranchiseID,
			&guest.FranchiseName,
			&guest.Name,
			&guest.Email,
			&guest.Phone,
			&guest.GuestType,
			&guest.TotalVisits,
			&guest.LastVisitAt,
			pq.Array(&guest.Preferences),
			&guest.LoyaltyPointsAvailable,
			&guest.LoyaltyPointsTotal,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanGuests - scan row: %v", ErrScanRow, err)
		}

		guest.CreatedAt = createdAt.Time
		guest.UpdatedAt = updatedAt.Time

		guests = append(guests, &guest)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanGuests - rows error: %v", ErrScanRow, err)
	}

	return guests, nil
}

// attachOffers загружает офферы для переданных гостей одним запросом
func (r *Repository) attachOffers(ctx context.Context, executor DBExecutor, guests []*domain.Guest) error {
	if len(guests) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*domain.Guest, len(guests))
	ids := make([]uuid.UUID, 0, len(guests))
	for _, guest := range guests {
		byID[guest.ID] = guest
		ids = append(ids, guest.ID)
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"guest_id",
		"offer_id",
		"title",
		"status",
		"redeemed_at",
	).
		From("guest_offers").
		Where(squirrel.Eq{"guest_id": ids}).
		OrderBy("guest_id, id").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: attachOffers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachOffers - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var offer domain.GuestOffer
		var guestID uuid.UUID
		var redeemedAt sql.NullTime

		err := rows.Scan(
			&offer.ID,
			&guestID,
			&offer.OfferID,
			&offer.Title,
			&offer.Status,
			&redeemedAt,
		)
		if err != nil {
			return fmt.Errorf("%w: attachOffers - scan row: %v", ErrScanRow, err)
		}

		if redeemedAt.Valid {
			offer.RedeemedAt = &redeemedAt.Time
		}

		if guest, ok := byID[guestID]; ok {
			guest.Offers = append(guest.Offers, offer)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachOffers - rows error: %v", ErrScanRow, err)
	}

	return nil
}
