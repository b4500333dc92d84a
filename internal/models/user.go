package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name" validate:"required"`
	Email       string     `json:"email" validate:"required"`
	Phone       string     `json:"phone,omitempty"`
	ClientType  ClientKind `json:"client_type,omitempty"`
	Password    string     `json:"-"`
	IsStaff     bool       `json:"is_staff"`
	IsSuperuser bool       `json:"is_superuser"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// for registration
type RegisterRequest struct {
	Email      string     `json:"email" validate:"required,email"`
	Password   string     `json:"password" validate:"required,min=6"`
	Name       string     `json:"name" validate:"required"`
	Phone      string     `json:"phone,omitempty" validate:"max=30"`
	ClientType ClientKind `json:"client_type,omitempty" validate:"omitempty,oneof=natural empresa"`
}

// for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// for login response
type LoginResponse struct {
	Success        bool   `json:"success"`
	Token          string `json:"token,omitempty"`
	ExpiresIn      int    `json:"expires_in,omitempty"`
	RemainingTries int    `json:"remaining_tries,omitempty"`
	RetryAfter     int    `json:"retry_after,omitempty"`
	Message        string `json:"message,omitempty"`
	MergedItems    int    `json:"merged_items,omitempty"`
}

// staff client manager
type CreateClientRequest struct {
	Name       string     `json:"name" validate:"required,max=200"`
	Email      string     `json:"email" validate:"required,email"`
	Phone      string     `json:"phone,omitempty" validate:"max=30"`
	ClientType ClientKind `json:"client_type" validate:"required,oneof=natural empresa"`
	Password   string     `json:"password,omitempty" validate:"omitempty,min=8"`
}

// CreatedClient carries the plain password once so staff can hand it over.
type CreatedClient struct {
	User     *User  `json:"user"`
	Password string `json:"password"`
}

// JWT claims structure
type Claims struct {
	UserID      uuid.UUID `json:"user_id"`
	Email       string    `json:"email"`
	IsStaff     bool      `json:"is_staff,omitempty"`
	IsSuperuser bool      `json:"is_superuser,omitempty"`
	jwt.RegisteredClaims
}
