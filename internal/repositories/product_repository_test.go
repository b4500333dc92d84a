package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/frozz/storefront/internal/models"
	repository "github.com/frozz/storefront/internal/repositories"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productRowColumns = []string{
	"p.id", "p.category_id", "p.name", "p.slug", "p.description", "p.product_type",
	"p.price", "p.promotional_price", "p.purchase_cost", "p.stock", "p.available",
	"p.keywords", "p.image_url", "p.created_at", "p.updated_at",
	"c.id", "c.name", "c.slug",
}

func addProductRow(rows *sqlmock.Rows, id int64, name string, price string, promo any, stock int, now time.Time) *sqlmock.Rows {
	return rows.AddRow(id, int64(1), name, "slug-"+name, "", "sale",
		price, promo, "1000", stock, true,
		"", "", now, now,
		int64(1), "Desechables", "desechables")
}

func TestNewProductRepo(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewProductRepo(db)
	assert.NotNil(t, repo, "NewProductRepo should return a non-nil repository")
}

func TestProductRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewProductRepo(db)
	ctx := t.Context()
	now := time.Now()

	t.Run("CreateProduct", func(t *testing.T) {
		insertSQL := regexp.QuoteMeta(`INSERT INTO products (category_id, name, slug, description, product_type, price, promotional_price, purchase_cost, stock, available, keywords, image_url)`)

		t.Run("Success", func(t *testing.T) {
			product := &models.Product{
				CategoryID:  1,
				Name:        "Vaso 12oz",
				Slug:        "vaso-12oz",
				ProductType: models.ProductTypeDisposable,
				Price:       decimal.NewFromInt(1000),
				Stock:       50,
				Available:   true,
			}

			mock.ExpectQuery(insertSQL).
				WithArgs(product.CategoryID, product.Name, product.Slug, product.Description, product.ProductType,
					product.Price, product.PromotionalPrice, product.PurchaseCost, product.Stock, product.Available,
					product.Keywords, product.ImageURL).
				WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(7), now, now))

			err := repo.CreateProduct(ctx, product)

			require.NoError(t, err)
			assert.Equal(t, int64(7), product.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Error", func(t *testing.T) {
			dbError := errors.New("insert failed")

			mock.ExpectQuery(insertSQL).WillReturnError(dbError)

			err := repo.CreateProduct(ctx, &models.Product{Name: "x"})

			require.Error(t, err)
			assert.ErrorIs(t, err, dbError)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetProductByID", func(t *testing.T) {
		selectSQL := regexp.QuoteMeta(`FROM products p JOIN categories c ON p.category_id = c.id WHERE p.id = $1`)

		t.Run("Success", func(t *testing.T) {
			rows := addProductRow(sqlmock.NewRows(productRowColumns), 3, "Mesa", "50000", "45000", 4, now)

			mock.ExpectQuery(selectSQL).WithArgs(int64(3)).WillReturnRows(rows)

			product, err := repo.GetProductByID(ctx, 3)

			require.NoError(t, err)
			assert.Equal(t, "Mesa", product.Name)
			assert.True(t, product.Price.Equal(decimal.NewFromInt(50000)))
			assert.True(t, product.PromotionalPrice.Valid)
			assert.True(t, product.SellingPrice().Equal(decimal.NewFromInt(45000)))
			assert.Equal(t, "Desechables", product.CategoryName())
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Not Found", func(t *testing.T) {
			mock.ExpectQuery(selectSQL).WithArgs(int64(99)).WillReturnError(sql.ErrNoRows)

			product, err := repo.GetProductByID(ctx, 99)

			assert.Nil(t, product)
			assert.ErrorIs(t, err, sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetProductsByIDs", func(t *testing.T) {
		t.Run("Success - Missing ids are absent", func(t *testing.T) {
			ids := []int64{1, 2, 3}
			rows := sqlmock.NewRows(productRowColumns)
			addProductRow(rows, 1, "Vaso", "1000", nil, 10, now)
			addProductRow(rows, 3, "Plato", "2000", nil, 0, now)

			mock.ExpectQuery(regexp.QuoteMeta(`WHERE p.id = ANY($1)`)).
				WithArgs(pq.Array(ids)).
				WillReturnRows(rows)

			products, err := repo.GetProductsByIDs(ctx, ids)

			require.NoError(t, err)
			assert.Len(t, products, 2)
			assert.Contains(t, products, int64(1))
			assert.NotContains(t, products, int64(2))
			assert.False(t, products[3].PromotionalPrice.Valid)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Success - Empty input skips the query", func(t *testing.T) {
			products, err := repo.GetProductsByIDs(ctx, nil)

			require.NoError(t, err)
			assert.Empty(t, products)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("ListProducts", func(t *testing.T) {
		t.Run("Success - Filters build a parameterised query", func(t *testing.T) {
			filter := models.ProductFilter{CategoryID: 2, Search: "vaso", AvailableOnly: true, Page: 2, PageSize: 10}

			mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM products p WHERE p.category_id = $1 AND p.available = TRUE AND (p.name ILIKE $2 OR p.keywords ILIKE $2)`)).
				WithArgs(int64(2), "%vaso%").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))

			rows := addProductRow(sqlmock.NewRows(productRowColumns), 11, "Vaso", "1000", nil, 5, now)

			mock.ExpectQuery(regexp.QuoteMeta(`LIMIT $3 OFFSET $4`)).
				WithArgs(int64(2), "%vaso%", 10, 10).
				WillReturnRows(rows)

			products, total, err := repo.ListProducts(ctx, filter)

			require.NoError(t, err)
			assert.Equal(t, 11, total)
			assert.Len(t, products, 1)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Error - Count fails", func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM products p`)).WillReturnError(sql.ErrConnDone)

			products, total, err := repo.ListProducts(ctx, models.ProductFilter{Page: 1, PageSize: 10})

			require.Error(t, err)
			assert.Nil(t, products)
			assert.Zero(t, total)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("SlugExists", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM products WHERE slug = $1)`)).
			WithArgs("vaso-12oz").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		exists, err := repo.SlugExists(ctx, "vaso-12oz")

		require.NoError(t, err)
		assert.True(t, exists)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InventoryStats", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`COUNT(*) FILTER (WHERE available)`)).
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows([]string{"total", "available", "low", "out"}).AddRow(20, 18, 2, 1))

		rows := addProductRow(sqlmock.NewRows(productRowColumns), 4, "Servilleta", "300", nil, 2, now)

		mock.ExpectQuery(regexp.QuoteMeta(`WHERE p.stock > 0 AND p.stock < $1`)).
			WithArgs(5).
			WillReturnRows(rows)

		stats, err := repo.InventoryStats(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, 20, stats.TotalProducts)
		assert.Equal(t, 1, stats.OutOfStock)
		assert.Len(t, stats.LowStockProducts, 1)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DeleteVariation", func(t *testing.T) {
		deleteSQL := regexp.QuoteMeta(`DELETE FROM product_variations WHERE id = $1 AND product_id = $2`)

		t.Run("Success", func(t *testing.T) {
			mock.ExpectExec(deleteSQL).WithArgs(int64(9), int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))

			require.NoError(t, repo.DeleteVariation(ctx, 3, 9))
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Not Found", func(t *testing.T) {
			mock.ExpectExec(deleteSQL).WithArgs(int64(9), int64(4)).WillReturnResult(sqlmock.NewResult(0, 0))

			assert.ErrorIs(t, repo.DeleteVariation(ctx, 4, 9), sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})
}
