package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductType string

const (
	ProductTypeSale       ProductType = "sale"
	ProductTypeRental     ProductType = "rental"
	ProductTypeSupply     ProductType = "supply"
	ProductTypeDisposable ProductType = "disposable"
)

type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Product struct {
	ID               int64               `json:"id"`
	CategoryID       int64               `json:"category_id"`
	Name             string              `json:"name"`
	Slug             string              `json:"slug"`
	Description      string              `json:"description"`
	ProductType      ProductType         `json:"product_type"`
	Price            decimal.Decimal     `json:"price"`
	PromotionalPrice decimal.NullDecimal `json:"promotional_price"`
	PurchaseCost     decimal.Decimal     `json:"purchase_cost"`
	Stock            int                 `json:"stock"`
	Available        bool                `json:"available"`
	Keywords         string              `json:"keywords,omitempty"`
	ImageURL         string              `json:"image_url,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
	Category         *Category           `json:"category,omitempty"`
}

// HasDiscount reports whether a promotional price is set and below the list price.
func (p *Product) HasDiscount() bool {
	return p.PromotionalPrice.Valid && p.PromotionalPrice.Decimal.LessThan(p.Price)
}

// SellingPrice is the price a customer pays right now.
func (p *Product) SellingPrice() decimal.Decimal {
	if p.HasDiscount() {
		return p.PromotionalPrice.Decimal
	}

	return p.Price
}

func (p *Product) DiscountPercentage() int {
	if !p.HasDiscount() || !p.Price.IsPositive() {
		return 0
	}

	return int(p.Price.Sub(p.PromotionalPrice.Decimal).Div(p.Price).Mul(decimal.NewFromInt(100)).IntPart())
}

func (p *Product) ProfitMargin() decimal.Decimal {
	if !p.PurchaseCost.IsPositive() {
		return decimal.Zero
	}

	return p.Price.Sub(p.PurchaseCost).Div(p.PurchaseCost).Mul(decimal.NewFromInt(100)).Round(2)
}

func (p *Product) InStock() bool {
	return p.Stock > 0
}

// Purchasable is true when the product may be added to a cart or quotation.
func (p *Product) Purchasable() bool {
	return p.Available && p.InStock()
}

func (p *Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}

	return p.Category.Name
}

type VariationType string

const (
	VariationFlavor       VariationType = "flavor"
	VariationSize         VariationType = "size"
	VariationPresentation VariationType = "presentation"
	VariationOther        VariationType = "other"
)

type ProductVariation struct {
	ID            int64           `json:"id"`
	ProductID     int64           `json:"product_id"`
	VariationType VariationType   `json:"variation_type"`
	Name          string          `json:"name"`
	Value         string          `json:"value"`
	PriceModifier decimal.Decimal `json:"price_modifier"`
	Stock         int             `json:"stock"`
	Available     bool            `json:"available"`
	SKU           string          `json:"sku,omitempty"`
	FinalPrice    decimal.Decimal `json:"final_price"`
	CreatedAt     time.Time       `json:"created_at"`
}

// WithFinalPrice fills FinalPrice from the parent product's list price.
func (v *ProductVariation) WithFinalPrice(base decimal.Decimal) *ProductVariation {
	v.FinalPrice = base.Add(v.PriceModifier)

	return v
}

type ProductAttribute struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Value     string `json:"value"`
	Order     int    `json:"order"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description,omitempty"`
}

type CreateProductRequest struct {
	CategoryID       int64            `json:"category_id" validate:"required"`
	Name             string           `json:"name" validate:"required,min=3,max=200"`
	Description      string           `json:"description,omitempty"`
	ProductType      ProductType      `json:"product_type" validate:"required,oneof=sale rental supply disposable"`
	Price            decimal.Decimal  `json:"price"`
	PromotionalPrice *decimal.Decimal `json:"promotional_price,omitempty"`
	PurchaseCost     decimal.Decimal  `json:"purchase_cost"`
	Stock            int              `json:"stock" validate:"gte=0"`
	Available        bool             `json:"available"`
	Keywords         string           `json:"keywords,omitempty" validate:"max=500"`
	ImageURL         string           `json:"image_url,omitempty" validate:"omitempty,url"`
}

type UpdateProductRequest struct {
	CategoryID       *int64           `json:"category_id,omitempty"`
	Name             *string          `json:"name,omitempty" validate:"omitempty,min=3,max=200"`
	Description      *string          `json:"description,omitempty"`
	ProductType      *ProductType     `json:"product_type,omitempty" validate:"omitempty,oneof=sale rental supply disposable"`
	Price            *decimal.Decimal `json:"price,omitempty"`
	PromotionalPrice *decimal.Decimal `json:"promotional_price,omitempty"`
	ClearPromotion   bool             `json:"clear_promotion,omitempty"`
	PurchaseCost     *decimal.Decimal `json:"purchase_cost,omitempty"`
	Stock            *int             `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Available        *bool            `json:"available,omitempty"`
	Keywords         *string          `json:"keywords,omitempty"`
	ImageURL         *string          `json:"image_url,omitempty" validate:"omitempty,url"`
}

type CreateVariationRequest struct {
	VariationType VariationType   `json:"variation_type" validate:"required,oneof=flavor size presentation other"`
	Name          string          `json:"name" validate:"required,max=100"`
	Value         string          `json:"value" validate:"required,max=100"`
	PriceModifier decimal.Decimal `json:"price_modifier"`
	Stock         int             `json:"stock" validate:"gte=0"`
	Available     bool            `json:"available"`
	SKU           string          `json:"sku,omitempty" validate:"max=50"`
}

type CreateAttributeRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Value string `json:"value" validate:"required,max=200"`
	Order int    `json:"order" validate:"gte=0"`
}

type ProductFilter struct {
	CategoryID    int64
	Search        string
	ProductType   ProductType
	AvailableOnly bool
	Page          int
	PageSize      int
}

type InventoryDashboard struct {
	TotalProducts     int       `json:"total_products"`
	AvailableProducts int       `json:"available_products"`
	LowStock          int       `json:"low_stock"`
	OutOfStock        int       `json:"out_of_stock"`
	LowStockProducts  []Product `json:"low_stock_products"`
}

// ProductDetail is the public product page: the product with its options.
type ProductDetail struct {
	*Product
	DiscountPercentage int                `json:"discount_percentage"`
	Variations         []ProductVariation `json:"variations"`
	Attributes         []ProductAttribute `json:"attributes"`
}
