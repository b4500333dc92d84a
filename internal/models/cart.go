package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItems maps a stringified product id to the requested quantity.
// It is the single representation for both persisted and session carts.
type CartItems map[string]int

func CartKey(productID int64) string {
	return strconv.FormatInt(productID, 10)
}

// ProductIDs returns the numeric ids present in the map, skipping malformed keys.
func (c CartItems) ProductIDs() []int64 {
	ids := make([]int64, 0, len(c))

	for key := range c {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	return ids
}

func (c CartItems) Quantity(productID int64) int {
	return c[CartKey(productID)]
}

func (c CartItems) Clone() CartItems {
	out := make(CartItems, len(c))
	for k, v := range c {
		out[k] = v
	}

	return out
}

// Value stores the map as a JSONB object; nil is stored as {}.
func (c CartItems) Value() (driver.Value, error) {
	if c == nil {
		return []byte(`{}`), nil
	}

	return json.Marshal(map[string]int(c))
}

// Scan accepts JSONB bytes. SQL NULL and JSON null both become an empty map.
func (c *CartItems) Scan(src any) error {
	var data []byte

	switch v := src.(type) {
	case nil:
		*c = CartItems{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cart items: unsupported column type %T", src)
	}

	var items map[string]int
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("cart items: %w", err)
	}

	if items == nil {
		items = map[string]int{}
	}

	*c = items
	return nil
}

type Cart struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Items     CartItems `json:"items"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SessionCart is the anonymous visitor's cart, held by the session store.
type SessionCart struct {
	SessionID string    `json:"session_id"`
	Items     CartItems `json:"items"`
}

type CartLine struct {
	ProductID    int64           `json:"product_id"`
	Name         string          `json:"name"`
	CategoryName string          `json:"category_name,omitempty"`
	ImageURL     string          `json:"image_url,omitempty"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Stock        int             `json:"stock"`
}

// CartSummary is always computed from live product prices.
type CartSummary struct {
	Lines     []CartLine      `json:"lines"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
	Tax       TaxSplit        `json:"tax"`
}

type AddItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,min=1"`
}

type UpdateQuantityRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity"`
}
