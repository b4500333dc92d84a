package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/frozz/storefront/internal/models"
	"github.com/frozz/storefront/internal/utils"
	"github.com/google/uuid"
)

type AddressRepository interface {
	CreateAddress(ctx context.Context, address *models.ShippingAddress) error
	GetAddress(ctx context.Context, userID uuid.UUID, id int64) (*models.ShippingAddress, error)
	GetDefaultAddress(ctx context.Context, userID uuid.UUID) (*models.ShippingAddress, error)
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]models.ShippingAddress, error)
	SetDefaultAddress(ctx context.Context, userID uuid.UUID, id int64) error
	DeleteAddress(ctx context.Context, userID uuid.UUID, id int64) error
}

type addressRepository struct {
	DB *sql.DB
}

func NewAddressRepo(db *sql.DB) AddressRepository {
	return &addressRepository{DB: db}
}

const addressColumns = `id, user_id, departamento, city, address, reference, map_url, phone, is_default, created_at, updated_at`

func scanAddress(row rowScanner) (*models.ShippingAddress, error) {
	a := &models.ShippingAddress{}

	err := row.Scan(&a.ID, &a.UserID, &a.Departamento, &a.City, &a.Address, &a.Reference, &a.MapURL, &a.Phone, &a.IsDefault, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return a, nil
}

// CreateAddress inserts the address. A user's first address, or one flagged
// as default, becomes the only default.
func (r *addressRepository) CreateAddress(ctx context.Context, a *models.ShippingAddress) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var count int

	if err := tx.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM shipping_addresses WHERE user_id = $1`, a.UserID).Scan(&count); err != nil {
		return fmt.Errorf("counting addresses: %w", err)
	}

	if count == 0 {
		a.IsDefault = true
	}

	if a.IsDefault && count > 0 {
		if _, err := tx.ExecContext(dbCtx, `UPDATE shipping_addresses SET is_default = FALSE WHERE user_id = $1`, a.UserID); err != nil {
			return fmt.Errorf("clearing default address: %w", err)
		}
	}

	query := `
		INSERT INTO shipping_addresses (user_id, departamento, city, address, reference, map_url, phone, is_default)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err = tx.QueryRowContext(dbCtx, query, a.UserID, a.Departamento, a.City, a.Address, a.Reference, a.MapURL, a.Phone, a.IsDefault).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert address: %w", err)
	}

	return tx.Commit()
}

func (r *addressRepository) GetAddress(ctx context.Context, userID uuid.UUID, id int64) (*models.ShippingAddress, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return scanAddress(r.DB.QueryRowContext(dbCtx, `SELECT `+addressColumns+` FROM shipping_addresses WHERE id = $1 AND user_id = $2`, id, userID))
}

func (r *addressRepository) GetDefaultAddress(ctx context.Context, userID uuid.UUID) (*models.ShippingAddress, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return scanAddress(r.DB.QueryRowContext(dbCtx, `SELECT `+addressColumns+` FROM shipping_addresses WHERE user_id = $1 AND is_default LIMIT 1`, userID))
}

func (r *addressRepository) ListAddresses(ctx context.Context, userID uuid.UUID) ([]models.ShippingAddress, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, `SELECT `+addressColumns+` FROM shipping_addresses WHERE user_id = $1 ORDER BY is_default DESC, created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing addresses: %w", err)
	}
	defer rows.Close()

	var addresses []models.ShippingAddress

	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, *a)
	}

	return addresses, rows.Err()
}

// SetDefaultAddress flips every address of the user in one statement so at
// most one row is ever the default.
func (r *addressRepository) SetDefaultAddress(ctx context.Context, userID uuid.UUID, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var exists bool

	if err := r.DB.QueryRowContext(dbCtx, `SELECT EXISTS(SELECT 1 FROM shipping_addresses WHERE id = $1 AND user_id = $2)`, id, userID).Scan(&exists); err != nil {
		return fmt.Errorf("checking address: %w", err)
	}

	if !exists {
		return sql.ErrNoRows
	}

	_, err := r.DB.ExecContext(dbCtx, `UPDATE shipping_addresses SET is_default = (id = $2), updated_at = NOW() WHERE user_id = $1`, userID, id)
	if err != nil {
		return fmt.Errorf("setting default address: %w", err)
	}

	return nil
}

func (r *addressRepository) DeleteAddress(ctx context.Context, userID uuid.UUID, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM shipping_addresses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}

	return expectOneRow(result)
}
