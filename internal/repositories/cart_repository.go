package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/frozz/storefront/internal/models"
	"github.com/frozz/storefront/internal/utils"
	"github.com/google/uuid"
)

// CartRepository persists registered users' carts, one row per user, with
// the items kept as a JSONB product-to-quantity object.
type CartRepository interface {
	CreateCart(ctx context.Context, cart *models.Cart) error
	GetCartByUserID(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	UpdateCart(ctx context.Context, cart *models.Cart) error
}

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

// CreateCart is safe to race: a concurrent insert for the same user returns
// the row that won, items included.
func (r *cartRepository) CreateCart(ctx context.Context, cart *models.Cart) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO carts (id, user_id, items, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, items, created_at, updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, cart.ID, cart.UserID, cart.Items).
		Scan(&cart.ID, &cart.Items, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating cart: %w", err)
	}

	return nil
}

func (r *cartRepository) GetCartByUserID(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	cart := &models.Cart{}

	err := r.DB.QueryRowContext(dbCtx, `SELECT id, user_id, items, created_at, updated_at FROM carts WHERE user_id = $1`, userID).
		Scan(&cart.ID, &cart.UserID, &cart.Items, &cart.CreatedAt, &cart.UpdatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, err
	case err != nil:
		return nil, fmt.Errorf("loading cart: %w", err)
	}

	return cart, nil
}

func (r *cartRepository) UpdateCart(ctx context.Context, cart *models.Cart) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	err := r.DB.QueryRowContext(dbCtx, `UPDATE carts SET items = $1, updated_at = NOW() WHERE id = $2 RETURNING updated_at`, cart.Items, cart.ID).
		Scan(&cart.UpdatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return err
	case err != nil:
		return fmt.Errorf("updating cart: %w", err)
	}

	return nil
}
