package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteBuilderLine is one row of the staff quotation builder, priced live.
type QuoteBuilderLine struct {
	ProductID         int64           `json:"product_id"`
	Name              string          `json:"name"`
	CategoryName      string          `json:"category_name,omitempty"`
	Quantity          int             `json:"quantity"`
	OriginalUnitPrice decimal.Decimal `json:"original_unit_price"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	UnitDiscount      decimal.Decimal `json:"unit_discount"`
	UnitTax           TaxSplit        `json:"unit_tax"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	SubtotalTax       TaxSplit        `json:"subtotal_tax"`
}

type QuoteBuilderPayload struct {
	Lines     []QuoteBuilderLine `json:"lines"`
	Total     decimal.Decimal    `json:"total"`
	Tax       TaxSplit           `json:"tax"`
	ItemCount int                `json:"item_count"`
}

type QuoteBuilderAddRequest struct {
	ProductIDs []int64 `json:"product_ids" validate:"required,min=1,dive,gt=0"`
}

type QuoteBuilderUpdateRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity"`
}

type QuoteBuilderGenerateRequest struct {
	ClientKind       ClientKind `json:"client_kind" validate:"required,oneof=existing natural empresa"`
	ExistingClientID *uuid.UUID `json:"existing_client_id,omitempty"`
	Name             string     `json:"name,omitempty" validate:"max=200"`
	Email            string     `json:"email,omitempty" validate:"omitempty,email"`
	Phone            string     `json:"phone,omitempty" validate:"max=30"`
	Departamento     string     `json:"departamento,omitempty" validate:"max=100"`
	City             string     `json:"city,omitempty" validate:"max=100"`
	Notes            string     `json:"notes,omitempty" validate:"max=2000"`
}
