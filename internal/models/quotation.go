package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Quotation struct {
	ID                 int64           `json:"id"`
	CreatedBy          *uuid.UUID      `json:"created_by,omitempty"`
	ClientUserID       *uuid.UUID      `json:"client_user_id,omitempty"`
	ClientKind         ClientKind      `json:"client_kind"`
	ClientName         string          `json:"client_name"`
	ClientEmail        string          `json:"client_email"`
	ClientPhone        string          `json:"client_phone"`
	ClientDepartamento string          `json:"client_departamento"`
	ClientCity         string          `json:"client_city"`
	Notes              string          `json:"notes"`
	Total              decimal.Decimal `json:"total"`
	QuotationStatus    QuotationStatus `json:"quotation_status"`
	OrderStatus        OrderStatus     `json:"order_status"`
	PaymentProof       string          `json:"payment_proof,omitempty"`
	StockCommittedAt   *time.Time      `json:"stock_committed_at,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
	Items              []QuotationItem `json:"items,omitempty"`
}

type QuotationItem struct {
	ID           int64           `json:"id"`
	QuotationID  int64           `json:"quotation_id"`
	ProductID    int64           `json:"product_id"`
	ProductName  string          `json:"product_name"`
	CategoryName string          `json:"category_name,omitempty"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// NewQuotationItem snapshots the product's current selling price.
func NewQuotationItem(p *Product, quantity int) QuotationItem {
	item := QuotationItem{
		ProductID:    p.ID,
		ProductName:  p.Name,
		CategoryName: p.CategoryName(),
		Quantity:     quantity,
		UnitPrice:    p.SellingPrice(),
	}
	item.Recompute()

	return item
}

func (i *QuotationItem) Recompute() {
	i.Subtotal = i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// NewQuotation builds an unsaved quotation with initial statuses and a
// total derived from its items.
func NewQuotation(client Client, items []QuotationItem, notes string, createdBy *uuid.UUID) *Quotation {
	q := &Quotation{
		CreatedBy:       createdBy,
		Notes:           notes,
		QuotationStatus: QuotationStatusGenerated,
		OrderStatus:     OrderStatusNoResponse,
		Items:           items,
	}
	q.SetClient(client)
	q.RecomputeTotal()

	return q
}

func (q *Quotation) RecomputeTotal() {
	total := decimal.Zero
	for _, item := range q.Items {
		total = total.Add(item.Subtotal)
	}

	q.Total = total
}

func (q *Quotation) SetClient(c Client) {
	contact := c.Contact()

	q.ClientKind = c.Kind()
	q.ClientUserID = c.UserID()
	q.ClientName = contact.Name
	q.ClientEmail = contact.Email
	q.ClientPhone = contact.Phone
	q.ClientDepartamento = contact.Departamento
	q.ClientCity = contact.City
}

// Client rebuilds the tagged client from the flattened columns.
func (q *Quotation) Client() Client {
	contact := ClientContact{
		Name:         q.ClientName,
		Email:        q.ClientEmail,
		Phone:        q.ClientPhone,
		Departamento: q.ClientDepartamento,
		City:         q.ClientCity,
	}

	if q.ClientUserID != nil {
		return RegisteredClient{ID: *q.ClientUserID, ClientContact: contact}
	}

	return GuestClient{ClientKind: q.ClientKind, ClientContact: contact}
}

func (q *Quotation) ExpiresAt(validity time.Duration) time.Time {
	return q.CreatedAt.Add(validity)
}

// VisibleTo reports whether claims may read q: staff, the client it was
// issued to, or whoever created it. Guest quotations are staff-only.
func (q *Quotation) VisibleTo(claims *Claims) bool {
	if claims == nil {
		return false
	}
	if claims.IsStaff {
		return true
	}

	owns := func(id *uuid.UUID) bool { return id != nil && *id == claims.UserID }

	return owns(q.ClientUserID) || owns(q.CreatedBy)
}

func (q *Quotation) HasPaymentProof() bool {
	return q.PaymentProof != ""
}

func (q *Quotation) TaxSplit() TaxSplit {
	return SplitTax(q.Total)
}

type QuotationFilter struct {
	ClientSearch    string
	CreatedBy       *uuid.UUID
	ClientUserID    *uuid.UUID
	QuotationStatus QuotationStatus
	OrderStatus     OrderStatus
	Page            int
	PageSize        int
}

type UpdateStatusRequest struct {
	QuotationStatus QuotationStatus `json:"quotation_status,omitempty" validate:"omitempty,oneof=generada enviada vencida cancelada"`
	OrderStatus     OrderStatus     `json:"order_status,omitempty" validate:"omitempty,oneof=sin_respuesta aceptado esperando_pago pago_recibido enviado recibido rechazado modificado_y_enviado"`
}

type RegisteredCheckoutRequest struct {
	AddressID      *int64 `json:"address_id,omitempty"`
	Departamento   string `json:"departamento,omitempty" validate:"max=100"`
	City           string `json:"city,omitempty" validate:"max=100"`
	Address        string `json:"address,omitempty" validate:"max=255"`
	Phone          string `json:"phone,omitempty" validate:"max=30"`
	Reference      string `json:"reference,omitempty" validate:"max=255"`
	MapLink        string `json:"map_link,omitempty" validate:"omitempty,url"`
	AdditionalNote string `json:"additional_notes,omitempty" validate:"max=1000"`
}

type GuestCheckoutRequest struct {
	ClientKind     ClientKind `json:"client_kind"`
	Name           string     `json:"name" validate:"max=200"`
	Email          string     `json:"email" validate:"omitempty,email"`
	Phone          string     `json:"phone" validate:"max=30"`
	Departamento   string     `json:"departamento" validate:"max=100"`
	City           string     `json:"city" validate:"max=100"`
	Address        string     `json:"address" validate:"max=255"`
	Reference      string     `json:"reference,omitempty" validate:"max=255"`
	MapLink        string     `json:"map_link,omitempty" validate:"omitempty,url"`
	AdditionalNote string     `json:"additional_notes,omitempty" validate:"max=1000"`
}

func (r *GuestCheckoutRequest) Client() GuestClient {
	return GuestClient{
		ClientKind: r.ClientKind,
		Address:    r.Address,
		ClientContact: ClientContact{
			Name:         r.Name,
			Email:        r.Email,
			Phone:        r.Phone,
			Departamento: r.Departamento,
			City:         r.City,
		},
	}
}

type CheckoutResult struct {
	Quotation *Quotation `json:"quotation"`
	PDFURL    string     `json:"pdf_url"`
}
