package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/frozz/storefront/internal/models"
	"github.com/frozz/storefront/internal/utils"
	"github.com/google/uuid"
)

type RentalRepository interface {
	CreateRental(ctx context.Context, rental *models.Rental) error
	GetRental(ctx context.Context, id int64) (*models.Rental, error)
	ListRentals(ctx context.Context, userID *uuid.UUID) ([]models.Rental, error)
	UpdateRentalStatus(ctx context.Context, id int64, status models.RentalStatus) error
}

type rentalRepository struct {
	DB *sql.DB
}

func NewRentalRepo(db *sql.DB) RentalRepository {
	return &rentalRepository{DB: db}
}

const rentalColumns = `
	r.id, r.user_id, r.product_id, p.name, r.status, r.duration_type, r.duration_quantity,
	r.start_date, r.end_date, r.daily_price, r.total_price, r.contact_name, r.contact_phone,
	r.delivery_address, r.delivery_city, r.special_requirements, r.created_at, r.updated_at,
	r.confirmed_at, r.completed_at`

func scanRental(row rowScanner) (*models.Rental, error) {
	var r models.Rental
	var confirmedAt, completedAt sql.NullTime

	err := row.Scan(&r.ID, &r.UserID, &r.ProductID, &r.ProductName, &r.Status, &r.DurationType, &r.DurationQuantity,
		&r.StartDate, &r.EndDate, &r.DailyPrice, &r.TotalPrice, &r.ContactName, &r.ContactPhone,
		&r.DeliveryAddress, &r.DeliveryCity, &r.SpecialRequirements, &r.CreatedAt, &r.UpdatedAt,
		&confirmedAt, &completedAt)
	if err != nil {
		return nil, err
	}

	if confirmedAt.Valid {
		r.ConfirmedAt = &confirmedAt.Time
	}
	if completedAt.Valid {
		r.CompletedAt = &completedAt.Time
	}

	return &r, nil
}

func (r *rentalRepository) CreateRental(ctx context.Context, rental *models.Rental) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO rentals (user_id, product_id, status, duration_type, duration_quantity, start_date, end_date,
			daily_price, total_price, contact_name, contact_phone, delivery_address, delivery_city, special_requirements)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		rental.UserID, rental.ProductID, rental.Status, rental.DurationType, rental.DurationQuantity, rental.StartDate, rental.EndDate,
		rental.DailyPrice, rental.TotalPrice, rental.ContactName, rental.ContactPhone, rental.DeliveryAddress, rental.DeliveryCity, rental.SpecialRequirements,
	).Scan(&rental.ID, &rental.CreatedAt, &rental.UpdatedAt)
}

func (r *rentalRepository) GetRental(ctx context.Context, id int64) (*models.Rental, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return scanRental(r.DB.QueryRowContext(dbCtx, `SELECT`+rentalColumns+` FROM rentals r JOIN products p ON p.id = r.product_id WHERE r.id = $1`, id))
}

// ListRentals returns every rental when userID is nil, otherwise only that user's.
func (r *rentalRepository) ListRentals(ctx context.Context, userID *uuid.UUID) ([]models.Rental, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT` + rentalColumns + ` FROM rentals r JOIN products p ON p.id = r.product_id`
	args := []any{}

	if userID != nil {
		query += ` WHERE r.user_id = $1`
		args = append(args, *userID)
	}

	rows, err := r.DB.QueryContext(dbCtx, query+` ORDER BY r.created_at DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("listing rentals: %w", err)
	}
	defer rows.Close()

	var rentals []models.Rental

	for rows.Next() {
		rental, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rental)
	}

	return rentals, rows.Err()
}

// UpdateRentalStatus also stamps confirmed_at and completed_at the first time
// those statuses are reached.
func (r *rentalRepository) UpdateRentalStatus(ctx context.Context, id int64, status models.RentalStatus) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE rentals SET
			status = $1,
			confirmed_at = CASE WHEN $1 = 'confirmed' AND confirmed_at IS NULL THEN NOW() ELSE confirmed_at END,
			completed_at = CASE WHEN $1 = 'completed' AND completed_at IS NULL THEN NOW() ELSE completed_at END,
			updated_at = NOW()
		WHERE id = $2
	`

	result, err := r.DB.ExecContext(dbCtx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update rental status: %w", err)
	}

	return expectOneRow(result)
}
