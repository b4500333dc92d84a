package models

import (
	"time"

	"github.com/google/uuid"
)

type FavoriteProduct struct {
	UserID    uuid.UUID `json:"user_id"`
	ProductID int64     `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
	Product   *Product  `json:"product,omitempty"`
}

type FavoriteToggleResponse struct {
	ProductID int64 `json:"product_id"`
	Favorite  bool  `json:"favorite"`
}
