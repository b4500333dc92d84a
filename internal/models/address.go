package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type ShippingAddress struct {
	ID           int64     `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Departamento string    `json:"departamento"`
	City         string    `json:"city"`
	Address      string    `json:"address"`
	Reference    string    `json:"reference,omitempty"`
	MapURL       string    `json:"map_url,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	IsDefault    bool      `json:"is_default"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AsText renders the address on one line for quotation notes.
func (a *ShippingAddress) AsText() string {
	parts := []string{a.Departamento, a.City, a.Address}
	if a.Reference != "" {
		parts = append(parts, "Ref: "+a.Reference)
	}

	return strings.Join(parts, " | ")
}

type CreateAddressRequest struct {
	Departamento string `json:"departamento" validate:"required,max=100"`
	City         string `json:"city" validate:"required,max=100"`
	Address      string `json:"address" validate:"required,max=500"`
	Reference    string `json:"reference,omitempty" validate:"max=255"`
	MapURL       string `json:"map_url,omitempty" validate:"omitempty,url,max=500"`
	Phone        string `json:"phone,omitempty" validate:"max=20"`
	IsDefault    bool   `json:"is_default"`
}
