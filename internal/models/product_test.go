package models_test

import (
	"testing"

	"github.com/frozz/storefront/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func promo(v int64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.NewFromInt(v), Valid: true}
}

func TestProduct_SellingPrice(t *testing.T) {
	tests := []struct {
		name         string
		product      models.Product
		wantPrice    decimal.Decimal
		wantDiscount bool
		wantPercent  int
	}{
		{
			name:         "Promotion below list price",
			product:      models.Product{Price: decimal.NewFromInt(100), PromotionalPrice: promo(80)},
			wantPrice:    decimal.NewFromInt(80),
			wantDiscount: true,
			wantPercent:  20,
		},
		{
			name:         "Promotion equal to list price is ignored",
			product:      models.Product{Price: decimal.NewFromInt(100), PromotionalPrice: promo(100)},
			wantPrice:    decimal.NewFromInt(100),
			wantDiscount: false,
		},
		{
			name:         "Promotion above list price is ignored",
			product:      models.Product{Price: decimal.NewFromInt(100), PromotionalPrice: promo(120)},
			wantPrice:    decimal.NewFromInt(100),
			wantDiscount: false,
		},
		{
			name:         "No promotion",
			product:      models.Product{Price: decimal.NewFromInt(100)},
			wantPrice:    decimal.NewFromInt(100),
			wantDiscount: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.wantPrice.Equal(tc.product.SellingPrice()), "got %s", tc.product.SellingPrice())
			assert.Equal(t, tc.wantDiscount, tc.product.HasDiscount())
			assert.Equal(t, tc.wantPercent, tc.product.DiscountPercentage())
		})
	}
}

func TestProduct_ProfitMargin(t *testing.T) {
	p := models.Product{Price: decimal.NewFromInt(150), PurchaseCost: decimal.NewFromInt(100)}
	assert.True(t, decimal.NewFromInt(50).Equal(p.ProfitMargin()))

	p.PurchaseCost = decimal.Zero
	assert.True(t, p.ProfitMargin().IsZero())
}

func TestProduct_Purchasable(t *testing.T) {
	assert.True(t, (&models.Product{Available: true, Stock: 1}).Purchasable())
	assert.False(t, (&models.Product{Available: false, Stock: 10}).Purchasable())
	assert.False(t, (&models.Product{Available: true, Stock: 0}).Purchasable())
}

func TestVariation_FinalPrice(t *testing.T) {
	v := &models.ProductVariation{PriceModifier: decimal.NewFromInt(-500)}
	v.WithFinalPrice(decimal.NewFromInt(3000))

	assert.True(t, decimal.NewFromInt(2500).Equal(v.FinalPrice))
}

func TestSplitTax(t *testing.T) {
	split := models.SplitTax(decimal.NewFromInt(119))

	assert.True(t, decimal.NewFromInt(100).Equal(split.Base), "base %s", split.Base)
	assert.True(t, decimal.NewFromInt(19).Equal(split.IVA), "iva %s", split.IVA)

	odd := models.SplitTax(decimal.NewFromInt(1000))
	assert.True(t, odd.Base.Add(odd.IVA).Equal(decimal.NewFromInt(1000)))
	assert.True(t, decimal.RequireFromString("840.34").Equal(odd.Base), "base %s", odd.Base)
}

func TestCartItems(t *testing.T) {
	items := models.CartItems{"1": 2, "abc": 4, "7": 1}

	assert.ElementsMatch(t, []int64{1, 7}, items.ProductIDs())
	assert.Equal(t, 2, items.Quantity(1))
	assert.Equal(t, 0, items.Quantity(99))

	clone := items.Clone()
	clone["1"] = 10
	assert.Equal(t, 2, items["1"])
}
