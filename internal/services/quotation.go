package service

import (
	"context"
	"database/sql"
	goErrors "errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/frozz/storefront/internal/api/middleware"
	"github.com/frozz/storefront/internal/cache"
	"github.com/frozz/storefront/internal/errors"
	"github.com/frozz/storefront/internal/metrics"
	"github.com/frozz/storefront/internal/models"
	repository "github.com/frozz/storefront/internal/repositories"
	"github.com/frozz/storefront/internal/storage"
	"github.com/frozz/storefront/internal/utils"
	"github.com/frozz/storefront/pkg/pdf"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	OriginCheckout      = "checkout"
	OriginGuestCheckout = "guest_checkout"
	OriginBuilder       = "builder"

	paymentProofDir = "payment_proofs"
)

// NewQuotationInput describes a snapshot to take. Items are priced from the
// live catalog at creation time and never repriced afterwards.
type NewQuotationInput struct {
	Client    models.Client
	Items     models.CartItems
	Notes     string
	CreatedBy *uuid.UUID
	// ClearCartOf empties that user's persisted cart in the same transaction.
	ClearCartOf *uuid.UUID
	Origin      string
	Notify      bool
}

type QuotationService interface {
	CheckoutRegistered(ctx context.Context, userID uuid.UUID, req *models.RegisteredCheckoutRequest) (*models.Quotation, error)
	CheckoutGuest(ctx context.Context, sessionID string, req *models.GuestCheckoutRequest) (*models.Quotation, error)
	CreateQuotation(ctx context.Context, in NewQuotationInput) (*models.Quotation, error)

	GetQuotation(ctx context.Context, id int64) (*models.Quotation, error)
	ListQuotations(ctx context.Context, filter models.QuotationFilter) ([]*models.Quotation, int, error)
	ListSales(ctx context.Context, page, pageSize int) ([]*models.Quotation, int, error)
	ListClientQuotations(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*models.Quotation, int, error)

	UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.Quotation, error)
	AttachPaymentProof(ctx context.Context, id int64, contentType string, file io.Reader) (*models.Quotation, error)
	DeleteQuotation(ctx context.Context, id int64, isSuperuser bool) error

	RenderDocument(ctx context.Context, q *models.Quotation) (*QuotationDocument, error)
}

// DocumentRenderer draws a quotation; pdf.Renderer is the production one.
type DocumentRenderer interface {
	Render(q *models.Quotation, listPrices map[int64]decimal.Decimal) ([]byte, error)
}

type QuotationDeps struct {
	Quotations   repository.QuotationRepository
	Carts        repository.CartRepository
	Products     repository.ProductRepository
	Users        repository.UserRepository
	Addresses    repository.AddressRepository
	Sessions     repository.SessionRepository
	Notifier     NotificationService
	Renderer     DocumentRenderer
	Media        storage.Storage
	MaxProofSize int64
}

type quotationService struct {
	QuotationDeps
}

func NewQuotationService(deps QuotationDeps) QuotationService {
	return &quotationService{QuotationDeps: deps}
}

func (s *quotationService) CheckoutRegistered(ctx context.Context, userID uuid.UUID, req *models.RegisteredCheckoutRequest) (*models.Quotation, error) {
	logger := middleware.LoggerFromContext(ctx)

	cart, err := s.cartOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	user, err := s.Users.GetUserById(ctx, userID)
	switch {
	case goErrors.Is(err, sql.ErrNoRows):
		return nil, errors.NotFoundError("User not found").WithError(err)
	case err != nil:
		return nil, errors.DatabaseError("Failed to load user").WithError(err)
	}

	delivery := deliveryDetails{
		Departamento: strings.TrimSpace(req.Departamento),
		City:         strings.TrimSpace(req.City),
		Address:      strings.TrimSpace(req.Address),
		Phone:        strings.TrimSpace(req.Phone),
		Reference:    strings.TrimSpace(req.Reference),
		MapURL:       strings.TrimSpace(req.MapLink),
	}

	fromSaved := false
	if req.AddressID != nil {
		address, err := s.Addresses.GetAddress(ctx, userID, *req.AddressID)
		switch {
		case err == nil:
			delivery = deliveryDetails{
				Departamento: address.Departamento,
				City:         address.City,
				Address:      address.Address,
				Phone:        address.Phone,
				Reference:    address.Reference,
				MapURL:       address.MapURL,
			}
			fromSaved = true
		case goErrors.Is(err, sql.ErrNoRows):
			logger.Warn("Saved address not found, using typed address", slog.Int64("addressId", *req.AddressID))
		default:
			return nil, errors.DatabaseError("Failed to load address").WithError(err)
		}
	}

	if !fromSaved {
		if missing := delivery.missingFields(); len(missing) > 0 {
			return nil, errors.MissingFieldsError(missing)
		}
	}

	if delivery.Phone == "" {
		delivery.Phone = user.Phone
	}

	client := models.RegisteredClient{
		ID: user.ID,
		ClientContact: models.ClientContact{
			Name:         user.Name,
			Email:        user.Email,
			Phone:        delivery.Phone,
			Departamento: delivery.Departamento,
			City:         delivery.City,
		},
	}

	return s.CreateQuotation(ctx, NewQuotationInput{
		Client:      client,
		Items:       cart.Items,
		Notes:       delivery.notes(req.AdditionalNote),
		CreatedBy:   &userID,
		ClearCartOf: &userID,
		Origin:      OriginCheckout,
		Notify:      true,
	})
}

func (s *quotationService) cartOf(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	cart, err := s.Carts.GetCartByUserID(ctx, userID)
	if err != nil {
		if goErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.EmptyCartError()
		}
		return nil, errors.InternalError("Failed to retrieve cart").WithError(err)
	}

	if len(cart.Items) == 0 {
		return nil, errors.EmptyCartError()
	}

	return cart, nil
}

func (s *quotationService) CheckoutGuest(ctx context.Context, sessionID string, req *models.GuestCheckoutRequest) (*models.Quotation, error) {
	logger := middleware.LoggerFromContext(ctx)

	items, err := s.Sessions.GetItems(ctx, sessionID, cache.SessionCartPart)
	if err != nil {
		return nil, errors.ThirdPartyError("Failed to load session cart").WithError(err)
	}

	if len(items) == 0 {
		return nil, errors.EmptyCartError()
	}

	if req.ClientKind == "" {
		req.ClientKind = models.ClientKindNatural
	}

	client := req.Client()
	client.Name = utils.SanitizeText(client.Name)
	client.Address = utils.SanitizeText(client.Address)

	missing := client.MissingFields()
	if client.Address == "" {
		missing = append(missing, "address")
	}

	if len(missing) > 0 {
		return nil, errors.MissingFieldsError(missing)
	}

	delivery := deliveryDetails{
		Address:   client.Address,
		Reference: strings.TrimSpace(req.Reference),
		MapURL:    strings.TrimSpace(req.MapLink),
	}

	q, err := s.CreateQuotation(ctx, NewQuotationInput{
		Client: client,
		Items:  items,
		Notes:  delivery.notes(req.AdditionalNote),
		Origin: OriginGuestCheckout,
		Notify: true,
	})
	if err != nil {
		return nil, err
	}

	if err := s.Sessions.Clear(ctx, sessionID, cache.SessionCartPart); err != nil {
		logger.Error("Failed to clear session cart after checkout", slog.Any("error", err))
	}

	return q, nil
}

// CreateQuotation snapshots the selection and persists header and items in
// one transaction. Notification happens after commit and never fails the call.
func (s *quotationService) CreateQuotation(ctx context.Context, in NewQuotationInput) (*models.Quotation, error) {
	logger := middleware.LoggerFromContext(ctx)

	lines, err := s.snapshot(ctx, in.Items)
	if err != nil {
		return nil, err
	}

	q := models.NewQuotation(in.Client, lines, utils.SanitizeText(in.Notes), in.CreatedBy)

	if err := s.Quotations.CreateQuotation(ctx, q, in.ClearCartOf); err != nil {
		logger.Error("Failed to create quotation", slog.Any("error", err))
		return nil, errors.DatabaseError("Failed to create quotation").WithError(err)
	}

	metrics.QuotationCreated(in.Origin)
	logger.Info("Quotation created",
		slog.Int64("quotationId", q.ID),
		slog.String("origin", in.Origin),
		slog.String("total", q.Total.StringFixed(2)),
	)

	if in.Notify && s.Notifier != nil {
		doc, err := s.RenderDocument(ctx, q)
		if err != nil {
			logger.Error("Failed to render quotation document", slog.Any("error", err))
		}
		s.Notifier.NotifyNewQuotation(ctx, q, q.ClientUserID != nil, doc)
	}

	return q, nil
}

// snapshot prices each available product at its current selling price,
// ordered by product id. Unknown or unavailable products are dropped.
func (s *quotationService) snapshot(ctx context.Context, items models.CartItems) ([]models.QuotationItem, error) {
	ids := items.ProductIDs()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	products, err := s.Products.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	lines := make([]models.QuotationItem, 0, len(ids))

	for _, id := range ids {
		product, ok := products[id]
		qty := items.Quantity(id)

		if !ok || !product.Available || qty <= 0 {
			continue
		}

		lines = append(lines, models.NewQuotationItem(product, qty))
	}

	if len(lines) == 0 {
		return nil, errors.EmptyCartError()
	}

	return lines, nil
}

func (s *quotationService) GetQuotation(ctx context.Context, id int64) (*models.Quotation, error) {
	q, err := s.Quotations.GetQuotationByID(ctx, id)
	if err != nil {
		if goErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Quotation not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to fetch quotation").WithError(err)
	}

	return q, nil
}

func (s *quotationService) ListQuotations(ctx context.Context, filter models.QuotationFilter) ([]*models.Quotation, int, error) {
	if filter.QuotationStatus != "" && !filter.QuotationStatus.Valid() {
		return nil, 0, errors.AddValidationError("estado", "unknown quotation status")
	}

	quotations, total, err := s.Quotations.ListQuotations(ctx, filter)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list quotations").WithError(err)
	}

	return quotations, total, nil
}

func (s *quotationService) ListSales(ctx context.Context, page, pageSize int) ([]*models.Quotation, int, error) {
	return s.ListQuotations(ctx, models.QuotationFilter{
		OrderStatus: models.OrderStatusPaymentReceived,
		Page:        page,
		PageSize:    pageSize,
	})
}

func (s *quotationService) ListClientQuotations(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*models.Quotation, int, error) {
	return s.ListQuotations(ctx, models.QuotationFilter{
		ClientUserID: &userID,
		Page:         page,
		PageSize:     pageSize,
	})
}

// UpdateStatus applies the order status first, through the payment ratchet,
// then the document status, which staff may set freely.
func (s *quotationService) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.Quotation, error) {
	logger := middleware.LoggerFromContext(ctx).With(slog.Int64("quotationId", id))

	if req.QuotationStatus == "" && req.OrderStatus == "" {
		return nil, errors.ValidationError("Nothing to update")
	}

	q, err := s.GetQuotation(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.OrderStatus != "" {
		transition, err := models.PlanOrderTransition(q.OrderStatus, req.OrderStatus, q.HasPaymentProof())
		if err != nil {
			logger.Warn("Order status change rejected",
				slog.String("from", string(q.OrderStatus)),
				slog.String("to", string(req.OrderStatus)),
				slog.Any("error", err),
			)
			return nil, transitionError(transition, err)
		}

		if !transition.Noop {
			if err := s.Quotations.TransitionOrderStatus(ctx, id, transition); err != nil {
				switch {
				case goErrors.Is(err, repository.ErrStatusChanged):
					return nil, errors.ConflictError("The order status was changed by someone else, reload and try again").WithError(err)
				case goErrors.Is(err, sql.ErrNoRows):
					return nil, errors.NotFoundError("Quotation not found").WithError(err)
				}
				return nil, errors.DatabaseError("Failed to update order status").WithError(err)
			}

			if transition.CommitStock {
				metrics.StockCommitted()
				logger.Info("Stock committed for quotation", slog.Int("lines", len(q.Items)))
			}
		}
	}

	if req.QuotationStatus != "" && req.QuotationStatus != q.QuotationStatus {
		if err := s.Quotations.UpdateQuotationStatus(ctx, id, req.QuotationStatus); err != nil {
			return nil, errors.DatabaseError("Failed to update quotation status").WithError(err)
		}
	}

	return s.GetQuotation(ctx, id)
}

func transitionError(t models.OrderTransition, err error) error {
	switch {
	case goErrors.Is(err, models.ErrPaymentProofRequired):
		return errors.PaymentProofRequiredError().WithError(err)
	case goErrors.Is(err, models.ErrIrreversibleState):
		return errors.IrreversibleStateError(string(t.From), string(t.To)).WithError(err)
	case goErrors.Is(err, models.ErrUnknownStatus):
		return errors.AddValidationError("order_status", "unknown order status").WithError(err)
	}

	return errors.InternalError("Failed to plan status change").WithError(err)
}

func (s *quotationService) AttachPaymentProof(ctx context.Context, id int64, contentType string, file io.Reader) (*models.Quotation, error) {
	logger := middleware.LoggerFromContext(ctx).With(slog.Int64("quotationId", id))

	ext, ok := models.AllowedProofTypes[contentType]
	if !ok {
		return nil, errors.AddValidationError("payment_proof", "must be a JPEG, PNG, WEBP image or a PDF")
	}

	q, err := s.GetQuotation(ctx, id)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/COT%d-%d%s", paymentProofDir, id, time.Now().UnixNano(), ext)

	size, err := s.Media.Save(ctx, path, file, s.MaxProofSize)
	if err != nil {
		logger.Warn("Failed to store payment proof", slog.Any("error", err))
		return nil, errors.BadRequestError("Failed to store payment proof").WithDetail(err.Error()).WithError(err)
	}

	if err := s.Quotations.AttachPaymentProof(ctx, id, path); err != nil {
		_ = s.Media.Remove(path)
		if goErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Quotation not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to attach payment proof").WithError(err)
	}

	if q.PaymentProof != "" && q.PaymentProof != path {
		if err := s.Media.Remove(q.PaymentProof); err != nil {
			logger.Warn("Failed to remove previous payment proof", slog.String("path", q.PaymentProof), slog.Any("error", err))
		}
	}

	logger.Info("Payment proof attached", slog.String("path", path), slog.Int64("size", size))

	q.PaymentProof = path

	return q, nil
}

// DeleteQuotation refuses to remove paid orders unless the caller is a superuser.
func (s *quotationService) DeleteQuotation(ctx context.Context, id int64, isSuperuser bool) error {
	logger := middleware.LoggerFromContext(ctx).With(slog.Int64("quotationId", id))

	q, err := s.GetQuotation(ctx, id)
	if err != nil {
		return err
	}

	if q.OrderStatus.IsPostPayment() && !isSuperuser {
		return errors.ProtectedRecordError("Only a superuser can delete a quotation whose payment was received")
	}

	if err := s.Quotations.DeleteQuotation(ctx, id, isSuperuser); err != nil {
		switch {
		case goErrors.Is(err, repository.ErrPaidQuotation):
			return errors.ProtectedRecordError("Only a superuser can delete a quotation whose payment was received").WithError(err)
		case goErrors.Is(err, sql.ErrNoRows):
			return errors.NotFoundError("Quotation not found").WithError(err)
		}
		return errors.DatabaseError("Failed to delete quotation").WithError(err)
	}

	if q.PaymentProof != "" {
		if err := s.Media.Remove(q.PaymentProof); err != nil {
			logger.Warn("Failed to remove payment proof", slog.Any("error", err))
		}
	}

	logger.Info("Quotation deleted", slog.String("orderStatus", string(q.OrderStatus)))

	return nil
}

// RenderDocument draws the PDF. Discounted lines show the current list price
// when the product still exists.
func (s *quotationService) RenderDocument(ctx context.Context, q *models.Quotation) (*QuotationDocument, error) {
	logger := middleware.LoggerFromContext(ctx)

	ids := make([]int64, 0, len(q.Items))
	for _, item := range q.Items {
		ids = append(ids, item.ProductID)
	}

	listPrices := map[int64]decimal.Decimal{}

	products, err := s.Products.GetProductsByIDs(ctx, ids)
	if err != nil {
		logger.Warn("Rendering quotation without list prices", slog.Any("error", err))
	}

	for id, product := range products {
		if product.HasDiscount() {
			listPrices[id] = product.Price
		}
	}

	data, err := s.Renderer.Render(q, listPrices)
	if err != nil {
		return nil, errors.InternalError("Failed to render quotation").WithError(err)
	}

	return &QuotationDocument{
		Filename:    pdf.Filename(q),
		ContentType: pdf.ContentType,
		Data:        data,
	}, nil
}

// deliveryDetails is the shipping data typed at checkout or copied from a
// saved address. It ends up in the quotation notes.
type deliveryDetails struct {
	Departamento string
	City         string
	Address      string
	Phone        string
	Reference    string
	MapURL       string
}

func (d deliveryDetails) missingFields() []string {
	var missing []string

	for _, f := range []struct {
		name  string
		value string
	}{
		{"departamento", d.Departamento},
		{"city", d.City},
		{"address", d.Address},
		{"phone", d.Phone},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}

	return missing
}

// notes renders "address | Punto de referencia: … | Ubicación (mapa): … | Notas adicionales: …".
func (d deliveryDetails) notes(additional string) string {
	var parts []string

	if d.Address != "" {
		parts = append(parts, d.Address)
	}
	if d.Reference != "" {
		parts = append(parts, "Punto de referencia: "+d.Reference)
	}
	if d.MapURL != "" {
		parts = append(parts, "Ubicación (mapa): "+d.MapURL)
	}
	if extra := strings.TrimSpace(additional); extra != "" {
		parts = append(parts, "Notas adicionales: "+extra)
	}

	return strings.Join(parts, " | ")
}
