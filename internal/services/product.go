package service

import (
	"context"
	"database/sql"
	goErrors "errors"
	"fmt"
	"log/slog"

	"github.com/frozz/storefront/internal/api/middleware"
	"github.com/frozz/storefront/internal/errors"
	"github.com/frozz/storefront/internal/models"
	repository "github.com/frozz/storefront/internal/repositories"
	"github.com/frozz/storefront/internal/utils"
	"github.com/shopspring/decimal"
)

const maxSlugAttempts = 100

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	GetProductDetail(ctx context.Context, id int64, publicOnly bool) (*models.ProductDetail, error)
	UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error)
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int, error)
	ToggleAvailability(ctx context.Context, id int64) (*models.Product, error)
	DuplicateProduct(ctx context.Context, id int64) (*models.Product, error)
	Dashboard(ctx context.Context) (*models.InventoryDashboard, error)

	AddVariation(ctx context.Context, productID int64, req *models.CreateVariationRequest) (*models.ProductVariation, error)
	ListVariations(ctx context.Context, productID int64) ([]models.ProductVariation, error)
	DeleteVariation(ctx context.Context, productID, variationID int64) error

	AddAttribute(ctx context.Context, productID int64, req *models.CreateAttributeRequest) (*models.ProductAttribute, error)
	ListAttributes(ctx context.Context, productID int64) ([]models.ProductAttribute, error)
	DeleteAttribute(ctx context.Context, productID, attributeID int64) error
}

type productService struct {
	repo              repository.ProductRepository
	categories        repository.CategoryRepository
	lowStockThreshold int
}

func NewProductService(repo repository.ProductRepository, categories repository.CategoryRepository, lowStockThreshold int) ProductService {
	return &productService{repo: repo, categories: categories, lowStockThreshold: lowStockThreshold}
}

// validatePricing rejects negative amounts and a promotional price that is
// not strictly below the list price.
func validatePricing(price decimal.Decimal, promo decimal.NullDecimal, cost decimal.Decimal) error {
	if !price.IsPositive() {
		return errors.AddValidationError("price", "must be greater than zero")
	}

	if cost.IsNegative() {
		return errors.AddValidationError("purchase_cost", "cannot be negative")
	}

	if promo.Valid {
		if !promo.Decimal.IsPositive() {
			return errors.AddValidationError("promotional_price", "must be greater than zero")
		}
		if !promo.Decimal.LessThan(price) {
			return errors.AddValidationError("promotional_price", "must be lower than the price")
		}
	}

	return nil
}

// uniqueSlug returns base, or base-2, base-3... for the first free slug.
func (s *productService) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := utils.Slugify(name)
	if base == "" {
		return "", errors.AddValidationError("name", "must contain letters or digits")
	}

	slug := base
	for i := 2; i <= maxSlugAttempts+1; i++ {
		exists, err := s.repo.SlugExists(ctx, slug)
		if err != nil {
			return "", errors.DatabaseError("Failed to check product slug").WithError(err)
		}

		if !exists {
			return slug, nil
		}

		slug = fmt.Sprintf("%s-%d", base, i)
	}

	return "", errors.DuplicateEntryError("Could not find a free slug for this product name")
}

func (s *productService) ensureCategory(ctx context.Context, id int64) error {
	if _, err := s.categories.GetCategoryByID(ctx, id); err != nil {
		if goErrors.Is(err, sql.ErrNoRows) {
			return errors.AddValidationError("category_id", "category does not exist")
		}
		return errors.DatabaseError("Failed to fetch category").WithError(err)
	}

	return nil
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	logger := middleware.LoggerFromContext(ctx)

	promo := decimal.NullDecimal{}
	if req.PromotionalPrice != nil {
		promo = decimal.NewNullDecimal(*req.PromotionalPrice)
	}

	if err := validatePricing(req.Price, promo, req.PurchaseCost); err != nil {
		return nil, err
	}

	if err := s.ensureCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	name := utils.SanitizeText(req.Name)

	slug, err := s.uniqueSlug(ctx, name)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		CategoryID:       req.CategoryID,
		Name:             name,
		Slug:             slug,
		Description:      utils.SanitizeHTML(req.Description),
		ProductType:      req.ProductType,
		Price:            req.Price,
		PromotionalPrice: promo,
		PurchaseCost:     req.PurchaseCost,
		Stock:            req.Stock,
		Available:        req.Available,
		Keywords:         utils.SanitizeText(req.Keywords),
		ImageURL:         req.ImageURL,
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, errors.DuplicateEntryError("A product with this slug already exists").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to create product").WithError(err)
	}

	logger.Info("Product created", slog.Int64("productId", product.ID), slog.String("slug", product.Slug))

	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if goErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	return product, nil
}

// GetProductDetail hides unavailable products when publicOnly is set.
func (s *productService) GetProductDetail(ctx context.Context, id int64, publicOnly bool) (*models.ProductDetail, error) {
	product, err := s.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if publicOnly && !product.Available {
		return nil, errors.NotFoundError("Product not found")
	}

	variations, err := s.ListVariations(ctx, id)
	if err != nil {
		return nil, err
	}

	attributes, err := s.repo.ListAttributes(ctx, id)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch attributes").WithError(err)
	}

	return &models.ProductDetail{
		Product:            product,
		DiscountPercentage: product.DiscountPercentage(),
		Variations:         variations,
		Attributes:         attributes,
	}, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil && *req.CategoryID != product.CategoryID {
		if err := s.ensureCategory(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		product.Name = utils.SanitizeText(*req.Name)
	}
	if req.Description != nil {
		product.Description = utils.SanitizeHTML(*req.Description)
	}
	if req.ProductType != nil {
		product.ProductType = *req.ProductType
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.PromotionalPrice != nil {
		product.PromotionalPrice = decimal.NewNullDecimal(*req.PromotionalPrice)
	}
	if req.ClearPromotion {
		product.PromotionalPrice = decimal.NullDecimal{}
	}
	if req.PurchaseCost != nil {
		product.PurchaseCost = *req.PurchaseCost
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Available != nil {
		product.Available = *req.Available
	}
	if req.Keywords != nil {
		product.Keywords = utils.SanitizeText(*req.Keywords)
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}

	if err := validatePricing(product.Price, product.PromotionalPrice, product.PurchaseCost); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to update product").WithError(err)
	}

	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int, error) {
	products, total, err := s.repo.ListProducts(ctx, filter)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, total, nil
}

func (s *productService) ToggleAvailability(ctx context.Context, id int64) (*models.Product, error) {
	product, err := s.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Available = !product.Available

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to update product").WithError(err)
	}

	middleware.LoggerFromContext(ctx).Info("Product availability toggled",
		slog.Int64("productId", id),
		slog.Bool("available", product.Available),
	)

	return product, nil
}

// DuplicateProduct copies a product as an unavailable draft with no stock,
// together with its attributes and variations.
func (s *productService) DuplicateProduct(ctx context.Context, id int64) (*models.Product, error) {
	logger := middleware.LoggerFromContext(ctx)

	source, err := s.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := source.Name + " (Copia)"

	slug, err := s.uniqueSlug(ctx, name)
	if err != nil {
		return nil, err
	}

	copied := *source
	copied.ID = 0
	copied.Name = name
	copied.Slug = slug
	copied.Stock = 0
	copied.Available = false
	copied.Category = nil

	if err := s.repo.CreateProduct(ctx, &copied); err != nil {
		return nil, errors.DatabaseError("Failed to duplicate product").WithError(err)
	}

	attributes, err := s.repo.ListAttributes(ctx, id)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch attributes").WithError(err)
	}

	for _, attr := range attributes {
		attr.ID = 0
		attr.ProductID = copied.ID
		if err := s.repo.CreateAttribute(ctx, &attr); err != nil {
			return nil, errors.DatabaseError("Failed to copy attribute").WithError(err)
		}
	}

	variations, err := s.repo.ListVariations(ctx, id)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch variations").WithError(err)
	}

	for _, v := range variations {
		v.ID = 0
		v.ProductID = copied.ID
		v.Stock = 0
		v.SKU = ""
		if err := s.repo.CreateVariation(ctx, &v); err != nil {
			return nil, errors.DatabaseError("Failed to copy variation").WithError(err)
		}
	}

	logger.Info("Product duplicated", slog.Int64("sourceId", id), slog.Int64("productId", copied.ID))

	return &copied, nil
}

func (s *productService) Dashboard(ctx context.Context) (*models.InventoryDashboard, error) {
	stats, err := s.repo.InventoryStats(ctx, s.lowStockThreshold)
	if err != nil {
		return nil, errors.DatabaseError("Failed to compute inventory stats").WithError(err)
	}

	return stats, nil
}

func (s *productService) AddVariation(ctx context.Context, productID int64, req *models.CreateVariationRequest) (*models.ProductVariation, error) {
	product, err := s.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	variation := &models.ProductVariation{
		ProductID:     productID,
		VariationType: req.VariationType,
		Name:          utils.SanitizeText(req.Name),
		Value:         utils.SanitizeText(req.Value),
		PriceModifier: req.PriceModifier,
		Stock:         req.Stock,
		Available:     req.Available,
		SKU:           req.SKU,
	}

	if err := s.repo.CreateVariation(ctx, variation); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, errors.DuplicateEntryError("Variation SKU already in use").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to create variation").WithError(err)
	}

	return variation.WithFinalPrice(product.Price), nil
}

func (s *productService) ListVariations(ctx context.Context, productID int64) ([]models.ProductVariation, error) {
	product, err := s.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	variations, err := s.repo.ListVariations(ctx, productID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch variations").WithError(err)
	}

	for i := range variations {
		variations[i].WithFinalPrice(product.Price)
	}

	return variations, nil
}

func (s *productService) DeleteVariation(ctx context.Context, productID, variationID int64) error {
	if err := s.repo.DeleteVariation(ctx, productID, variationID); err != nil {
		if goErrors.Is(err, sql.ErrNoRows) {
			return errors.NotFoundError("Variation not found").WithError(err)
		}
		return errors.DatabaseError("Failed to delete variation").WithError(err)
	}

	return nil
}

func (s *productService) AddAttribute(ctx context.Context, productID int64, req *models.CreateAttributeRequest) (*models.ProductAttribute, error) {
	if _, err := s.GetProductByID(ctx, productID); err != nil {
		return nil, err
	}

	attribute := &models.ProductAttribute{
		ProductID: productID,
		Name:      utils.SanitizeText(req.Name),
		Value:     utils.SanitizeText(req.Value),
		Order:     req.Order,
	}

	if err := s.repo.CreateAttribute(ctx, attribute); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, errors.DuplicateEntryError("The product already has this attribute").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to create attribute").WithError(err)
	}

	return attribute, nil
}

func (s *productService) ListAttributes(ctx context.Context, productID int64) ([]models.ProductAttribute, error) {
	attributes, err := s.repo.ListAttributes(ctx, productID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch attributes").WithError(err)
	}

	return attributes, nil
}

func (s *productService) DeleteAttribute(ctx context.Context, productID, attributeID int64) error {
	if err := s.repo.DeleteAttribute(ctx, productID, attributeID); err != nil {
		if goErrors.Is(err, sql.ErrNoRows) {
			return errors.NotFoundError("Attribute not found").WithError(err)
		}
		return errors.DatabaseError("Failed to delete attribute").WithError(err)
	}

	return nil
}
