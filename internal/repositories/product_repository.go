package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/frozz/storefront/internal/models"
	"github.com/frozz/storefront/internal/utils"
	"github.com/lib/pq"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	GetProductsByIDs(ctx context.Context, ids []int64) (map[int64]*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	InventoryStats(ctx context.Context, lowStockThreshold int) (*models.InventoryDashboard, error)

	CreateVariation(ctx context.Context, variation *models.ProductVariation) error
	ListVariations(ctx context.Context, productID int64) ([]models.ProductVariation, error)
	DeleteVariation(ctx context.Context, productID, variationID int64) error

	CreateAttribute(ctx context.Context, attribute *models.ProductAttribute) error
	ListAttributes(ctx context.Context, productID int64) ([]models.ProductAttribute, error)
	DeleteAttribute(ctx context.Context, productID, attributeID int64) error
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `
	p.id, p.category_id, p.name, p.slug, p.description, p.product_type,
	p.price, p.promotional_price, p.purchase_cost, p.stock, p.available,
	p.keywords, p.image_url, p.created_at, p.updated_at,
	c.id, c.name, c.slug`

func scanProduct(row rowScanner) (*models.Product, error) {
	product := &models.Product{}
	category := &models.Category{}

	err := row.Scan(&product.ID, &product.CategoryID, &product.Name, &product.Slug, &product.Description, &product.ProductType,
		&product.Price, &product.PromotionalPrice, &product.PurchaseCost, &product.Stock, &product.Available,
		&product.Keywords, &product.ImageURL, &product.CreatedAt, &product.UpdatedAt,
		&category.ID, &category.Name, &category.Slug)
	if err != nil {
		return nil, err
	}

	product.Category = category

	return product, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO products (category_id, name, slug, description, product_type, price, promotional_price, purchase_cost, stock, available, keywords, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		product.CategoryID, product.Name, product.Slug, product.Description, product.ProductType,
		product.Price, product.PromotionalPrice, product.PurchaseCost, product.Stock, product.Available,
		product.Keywords, product.ImageURL,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT` + productColumns + `
		FROM products p
		JOIN categories c ON p.category_id = c.id
		WHERE p.id = $1`

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return product, nil
}

// GetProductsByIDs loads every existing product in ids with one query.
// Missing ids are simply absent from the result.
func (r *productRepository) GetProductsByIDs(ctx context.Context, ids []int64) (map[int64]*models.Product, error) {
	products := make(map[int64]*models.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT` + productColumns + `
		FROM products p
		JOIN categories c ON p.category_id = c.id
		WHERE p.id = ANY($1)`

	rows, err := r.DB.QueryContext(dbCtx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products[product.ID] = product
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products SET category_id = $1, name = $2, description = $3, product_type = $4, price = $5,
			promotional_price = $6, purchase_cost = $7, stock = $8, available = $9, keywords = $10, image_url = $11, updated_at = NOW()
		WHERE id = $12
		RETURNING updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		product.CategoryID, product.Name, product.Description, product.ProductType, product.Price,
		product.PromotionalPrice, product.PurchaseCost, product.Stock, product.Available, product.Keywords, product.ImageURL,
		product.ID,
	).Scan(&product.UpdatedAt)
}

func (r *productRepository) ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var (
		conditions []string
		args       []any
	)

	if filter.CategoryID > 0 {
		args = append(args, filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("p.category_id = $%d", len(args)))
	}

	if filter.ProductType != "" {
		args = append(args, filter.ProductType)
		conditions = append(conditions, fmt.Sprintf("p.product_type = $%d", len(args)))
	}

	if filter.AvailableOnly {
		conditions = append(conditions, "p.available = TRUE")
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+search+"%")
		conditions = append(conditions, fmt.Sprintf("(p.name ILIKE $%d OR p.keywords ILIKE $%d)", len(args), len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int

	countQuery := `SELECT COUNT(*) FROM products p` + where

	if err := r.DB.QueryRowContext(dbCtx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting products: %w", err)
	}

	// Offset
	offset := (filter.Page - 1) * filter.PageSize

	listArgs := append(args, filter.PageSize, offset)

	query := `SELECT` + productColumns + `
		FROM products p
		JOIN categories c ON p.category_id = c.id` + where +
		fmt.Sprintf(" ORDER BY p.created_at DESC, p.id DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)

	rows, err := r.DB.QueryContext(dbCtx, query, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing products: %w", err)
	}

	defer rows.Close()

	var products []*models.Product

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *productRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var exists bool

	err := r.DB.QueryRowContext(dbCtx, `SELECT EXISTS(SELECT 1 FROM products WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking slug: %w", err)
	}

	return exists, nil
}

func (r *productRepository) InventoryStats(ctx context.Context, lowStockThreshold int) (*models.InventoryDashboard, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	stats := &models.InventoryDashboard{}

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE available),
			COUNT(*) FILTER (WHERE stock > 0 AND stock < $1),
			COUNT(*) FILTER (WHERE stock = 0)
		FROM products
	`

	err := r.DB.QueryRowContext(dbCtx, query, lowStockThreshold).Scan(&stats.TotalProducts, &stats.AvailableProducts, &stats.LowStock, &stats.OutOfStock)
	if err != nil {
		return nil, fmt.Errorf("querying inventory stats: %w", err)
	}

	lowQuery := `SELECT` + productColumns + `
		FROM products p
		JOIN categories c ON p.category_id = c.id
		WHERE p.stock > 0 AND p.stock < $1
		ORDER BY p.stock ASC, p.name ASC
		LIMIT 10`

	rows, err := r.DB.QueryContext(dbCtx, lowQuery, lowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("querying low stock products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		stats.LowStockProducts = append(stats.LowStockProducts, *product)
	}

	return stats, rows.Err()
}

func (r *productRepository) CreateVariation(ctx context.Context, v *models.ProductVariation) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO product_variations (product_id, variation_type, name, value, price_modifier, stock, available, sku)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''))
		RETURNING id, created_at
	`

	return r.DB.QueryRowContext(dbCtx, query, v.ProductID, v.VariationType, v.Name, v.Value, v.PriceModifier, v.Stock, v.Available, v.SKU).
		Scan(&v.ID, &v.CreatedAt)
}

func (r *productRepository) ListVariations(ctx context.Context, productID int64) ([]models.ProductVariation, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT v.id, v.product_id, v.variation_type, v.name, v.value, v.price_modifier, v.stock, v.available, COALESCE(v.sku, ''), v.created_at, p.price
		FROM product_variations v
		JOIN products p ON p.id = v.product_id
		WHERE v.product_id = $1
		ORDER BY v.variation_type, v.value
	`

	rows, err := r.DB.QueryContext(dbCtx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("listing variations: %w", err)
	}
	defer rows.Close()

	var variations []models.ProductVariation

	for rows.Next() {
		var v models.ProductVariation
		var base models.Product

		if err := rows.Scan(&v.ID, &v.ProductID, &v.VariationType, &v.Name, &v.Value, &v.PriceModifier, &v.Stock, &v.Available, &v.SKU, &v.CreatedAt, &base.Price); err != nil {
			return nil, err
		}

		variations = append(variations, *v.WithFinalPrice(base.Price))
	}

	return variations, rows.Err()
}

func (r *productRepository) DeleteVariation(ctx context.Context, productID, variationID int64) error {
	return r.deleteChild(ctx, `DELETE FROM product_variations WHERE id = $1 AND product_id = $2`, variationID, productID)
}

func (r *productRepository) CreateAttribute(ctx context.Context, a *models.ProductAttribute) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO product_attributes (product_id, name, value, sort_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	return r.DB.QueryRowContext(dbCtx, query, a.ProductID, a.Name, a.Value, a.Order).Scan(&a.ID)
}

func (r *productRepository) ListAttributes(ctx context.Context, productID int64) ([]models.ProductAttribute, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, `
		SELECT id, product_id, name, value, sort_order
		FROM product_attributes
		WHERE product_id = $1
		ORDER BY sort_order, name
	`, productID)
	if err != nil {
		return nil, fmt.Errorf("listing attributes: %w", err)
	}
	defer rows.Close()

	var attributes []models.ProductAttribute

	for rows.Next() {
		var a models.ProductAttribute
		if err := rows.Scan(&a.ID, &a.ProductID, &a.Name, &a.Value, &a.Order); err != nil {
			return nil, err
		}
		attributes = append(attributes, a)
	}

	return attributes, rows.Err()
}

func (r *productRepository) DeleteAttribute(ctx context.Context, productID, attributeID int64) error {
	return r.deleteChild(ctx, `DELETE FROM product_attributes WHERE id = $1 AND product_id = $2`, attributeID, productID)
}

func (r *productRepository) deleteChild(ctx context.Context, query string, id, productID int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, query, id, productID)
	if err != nil {
		return fmt.Errorf("deleting row: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
