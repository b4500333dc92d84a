package models

import (
	"strings"

	"github.com/google/uuid"
)

type ClientKind string

const (
	ClientKindExisting ClientKind = "existing"
	ClientKindNatural  ClientKind = "natural"
	ClientKindEmpresa  ClientKind = "empresa"
)

type ClientContact struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Departamento string `json:"departamento"`
	City         string `json:"city"`
}

// Client is who a quotation is addressed to: either a registered user
// or a guest identified only by the contact data they typed.
type Client interface {
	Kind() ClientKind
	Contact() ClientContact
	UserID() *uuid.UUID
}

type RegisteredClient struct {
	ID uuid.UUID `json:"user_id"`
	ClientContact
}

func (c RegisteredClient) Kind() ClientKind       { return ClientKindExisting }
func (c RegisteredClient) Contact() ClientContact { return c.ClientContact }
func (c RegisteredClient) UserID() *uuid.UUID     { return &c.ID }

type GuestClient struct {
	ClientKind ClientKind `json:"client_kind"`
	Address    string     `json:"address"`
	ClientContact
}

func (c GuestClient) Kind() ClientKind       { return c.ClientKind }
func (c GuestClient) Contact() ClientContact { return c.ClientContact }
func (c GuestClient) UserID() *uuid.UUID     { return nil }

// MissingFields lists every required guest contact field left blank, in form order.
// The delivery address is checked separately since staff-built quotations omit it.
func (c GuestClient) MissingFields() []string {
	var missing []string

	if c.ClientKind != ClientKindNatural && c.ClientKind != ClientKindEmpresa {
		missing = append(missing, "client_kind")
	}

	required := []struct {
		field string
		value string
	}{
		{"name", c.Name},
		{"email", c.Email},
		{"phone", c.Phone},
		{"departamento", c.Departamento},
		{"city", c.City},
	}

	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.field)
		}
	}

	return missing
}

// ClientTypeLabel is the short label used in staff notifications.
func ClientTypeLabel(c Client) string {
	if c.UserID() != nil {
		return "Registrado"
	}

	return "Invitado / Anónimo"
}
