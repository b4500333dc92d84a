package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/frozz/storefront/internal/models"
	"github.com/frozz/storefront/internal/utils"
	"github.com/google/uuid"
)

type FavoriteRepository interface {
	AddFavorite(ctx context.Context, userID uuid.UUID, productID int64) error
	RemoveFavorite(ctx context.Context, userID uuid.UUID, productID int64) (bool, error)
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.FavoriteProduct, error)
}

type favoriteRepository struct {
	DB *sql.DB
}

func NewFavoriteRepo(db *sql.DB) FavoriteRepository {
	return &favoriteRepository{DB: db}
}

func (r *favoriteRepository) AddFavorite(ctx context.Context, userID uuid.UUID, productID int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	_, err := r.DB.ExecContext(dbCtx, `
		INSERT INTO favorite_products (user_id, product_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, product_id) DO NOTHING
	`, userID, productID)
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	return nil
}

// RemoveFavorite reports whether a row was actually removed.
func (r *favoriteRepository) RemoveFavorite(ctx context.Context, userID uuid.UUID, productID int64) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM favorite_products WHERE user_id = $1 AND product_id = $2`, userID, productID)
	if err != nil {
		return false, fmt.Errorf("failed to remove favorite: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected > 0, nil
}

func (r *favoriteRepository) ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.FavoriteProduct, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT f.user_id, f.created_at,` + productColumns + `
		FROM favorite_products f
		JOIN products p ON p.id = f.product_id
		JOIN categories c ON p.category_id = c.id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}
	defer rows.Close()

	var favorites []models.FavoriteProduct

	for rows.Next() {
		var fav models.FavoriteProduct

		product, err := scanProduct(prefixScanner{row: rows, prefix: []any{&fav.UserID, &fav.CreatedAt}})
		if err != nil {
			return nil, err
		}

		fav.ProductID = product.ID
		fav.Product = product
		favorites = append(favorites, fav)
	}

	return favorites, rows.Err()
}

// prefixScanner lets scanProduct read rows that carry extra leading columns.
type prefixScanner struct {
	row    rowScanner
	prefix []any
}

func (s prefixScanner) Scan(dest ...any) error {
	return s.row.Scan(append(s.prefix, dest...)...)
}
