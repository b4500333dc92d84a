package service

import (
	"context"
	"database/sql"
	goErrors "errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/frozz/storefront/internal/api/middleware"
	"github.com/frozz/storefront/internal/cache"
	"github.com/frozz/storefront/internal/errors"
	"github.com/frozz/storefront/internal/models"
	repository "github.com/frozz/storefront/internal/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteBuilderService is the staff-side selection used to quote on behalf
// of a client. It lives in the staff member's session next to the cart.
type QuoteBuilderService interface {
	Payload(ctx context.Context, sessionID string) (*models.QuoteBuilderPayload, error)
	AddProducts(ctx context.Context, sessionID string, productIDs []int64) (*models.QuoteBuilderPayload, error)
	UpdateQuantity(ctx context.Context, sessionID string, req *models.QuoteBuilderUpdateRequest) (*models.QuoteBuilderPayload, error)
	RemoveProduct(ctx context.Context, sessionID string, productID int64) (*models.QuoteBuilderPayload, error)
	Generate(ctx context.Context, sessionID string, staffID uuid.UUID, req *models.QuoteBuilderGenerateRequest) (*models.Quotation, error)
}

type quoteBuilderService struct {
	sessionRepo repository.SessionRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	quotations  QuotationService
}

func NewQuoteBuilderService(sessionRepo repository.SessionRepository, productRepo repository.ProductRepository, userRepo repository.UserRepository, quotations QuotationService) QuoteBuilderService {
	return &quoteBuilderService{
		sessionRepo: sessionRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		quotations:  quotations,
	}
}

func (s *quoteBuilderService) load(ctx context.Context, sessionID string) (models.CartItems, error) {
	items, err := s.sessionRepo.GetItems(ctx, sessionID, cache.SessionQuotePart)
	if err != nil {
		return nil, errors.ThirdPartyError("Failed to load quote builder").WithError(err)
	}

	return items, nil
}

func (s *quoteBuilderService) save(ctx context.Context, sessionID string, items models.CartItems) error {
	if err := s.sessionRepo.SaveItems(ctx, sessionID, cache.SessionQuotePart, items); err != nil {
		return errors.ThirdPartyError("Failed to save quote builder").WithError(err)
	}

	return nil
}

func (s *quoteBuilderService) Payload(ctx context.Context, sessionID string) (*models.QuoteBuilderPayload, error) {
	items, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return s.price(ctx, items)
}

// AddProducts puts each product in the builder with quantity one. Products
// already present keep their quantity.
func (s *quoteBuilderService) AddProducts(ctx context.Context, sessionID string, productIDs []int64) (*models.QuoteBuilderPayload, error) {
	logger := middleware.LoggerFromContext(ctx)

	items, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.GetProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	out := items.Clone()
	added := 0

	for _, id := range productIDs {
		product, ok := products[id]
		if !ok || !product.Available {
			logger.Debug("Skipping product for quote builder", slog.Int64("productId", id))
			continue
		}

		if _, exists := out[models.CartKey(id)]; exists {
			continue
		}

		out[models.CartKey(id)] = 1
		added++
	}

	if added > 0 {
		if err := s.save(ctx, sessionID, out); err != nil {
			return nil, err
		}
	}

	return s.price(ctx, out)
}

func (s *quoteBuilderService) UpdateQuantity(ctx context.Context, sessionID string, req *models.QuoteBuilderUpdateRequest) (*models.QuoteBuilderPayload, error) {
	items, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	key := models.CartKey(req.ProductID)
	if _, exists := items[key]; !exists {
		return nil, errors.NotFoundError("Product is not in the quote builder")
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	out := items.Clone()
	out[key] = quantity

	if err := s.save(ctx, sessionID, out); err != nil {
		return nil, err
	}

	return s.price(ctx, out)
}

func (s *quoteBuilderService) RemoveProduct(ctx context.Context, sessionID string, productID int64) (*models.QuoteBuilderPayload, error) {
	items, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if _, exists := items[models.CartKey(productID)]; !exists {
		return s.price(ctx, items)
	}

	out := removeFromCart(items, productID)

	if err := s.save(ctx, sessionID, out); err != nil {
		return nil, err
	}

	return s.price(ctx, out)
}

// price builds the live breakdown shown while staff edit the selection.
func (s *quoteBuilderService) price(ctx context.Context, items models.CartItems) (*models.QuoteBuilderPayload, error) {
	payload := &models.QuoteBuilderPayload{Lines: []models.QuoteBuilderLine{}, Total: decimal.Zero}

	if len(items) == 0 {
		payload.Tax = models.SplitTax(decimal.Zero)
		return payload, nil
	}

	ids := items.ProductIDs()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	products, err := s.productRepo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	for _, id := range ids {
		product, ok := products[id]
		if !ok || !product.Available {
			continue
		}

		qty := items.Quantity(id)
		unit := product.SellingPrice()
		subtotal := unit.Mul(decimal.NewFromInt(int64(qty)))

		line := models.QuoteBuilderLine{
			ProductID:         id,
			Name:              product.Name,
			CategoryName:      product.CategoryName(),
			Quantity:          qty,
			OriginalUnitPrice: product.Price,
			UnitPrice:         unit,
			UnitDiscount:      decimal.Zero,
			UnitTax:           models.SplitTax(unit),
			Subtotal:          subtotal,
			SubtotalTax:       models.SplitTax(subtotal),
		}

		if product.HasDiscount() {
			line.UnitDiscount = product.Price.Sub(unit)
		}

		payload.Lines = append(payload.Lines, line)
		payload.Total = payload.Total.Add(subtotal)
		payload.ItemCount += qty
	}

	payload.Tax = models.SplitTax(payload.Total)

	return payload, nil
}

// Generate turns the builder selection into a quotation for an existing
// client or typed contact data. Builder quotations are not pushed to staff chat.
func (s *quoteBuilderService) Generate(ctx context.Context, sessionID string, staffID uuid.UUID, req *models.QuoteBuilderGenerateRequest) (*models.Quotation, error) {
	logger := middleware.LoggerFromContext(ctx)

	items, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, errors.EmptyCartError()
	}

	client, err := s.resolveClient(ctx, req)
	if err != nil {
		return nil, err
	}

	q, err := s.quotations.CreateQuotation(ctx, NewQuotationInput{
		Client:    client,
		Items:     items,
		Notes:     req.Notes,
		CreatedBy: &staffID,
		Origin:    OriginBuilder,
	})
	if err != nil {
		return nil, err
	}

	if err := s.sessionRepo.Clear(ctx, sessionID, cache.SessionQuotePart); err != nil {
		logger.Warn("Failed to clear quote builder", slog.Any("error", err))
	}

	return q, nil
}

func (s *quoteBuilderService) resolveClient(ctx context.Context, req *models.QuoteBuilderGenerateRequest) (models.Client, error) {
	if req.ClientKind == models.ClientKindExisting {
		if req.ExistingClientID == nil {
			return nil, errors.MissingFieldsError([]string{"existing_client_id"})
		}

		user, err := s.userRepo.GetUserById(ctx, *req.ExistingClientID)
		if err != nil {
			if goErrors.Is(err, sql.ErrNoRows) {
				return nil, errors.NotFoundError("Client not found").WithError(err)
			}
			return nil, errors.DatabaseError("Failed to fetch client").WithError(err)
		}

		return models.RegisteredClient{
			ID: user.ID,
			ClientContact: models.ClientContact{
				Name:  user.Name,
				Email: user.Email,
				Phone: user.Phone,
			},
		}, nil
	}

	guest := models.GuestClient{
		ClientKind: req.ClientKind,
		ClientContact: models.ClientContact{
			Name:         strings.TrimSpace(req.Name),
			Email:        strings.TrimSpace(req.Email),
			Phone:        strings.TrimSpace(req.Phone),
			Departamento: strings.TrimSpace(req.Departamento),
			City:         strings.TrimSpace(req.City),
		},
	}

	if missing := guest.MissingFields(); len(missing) > 0 {
		return nil, errors.MissingFieldsError(missing)
	}

	return guest, nil
}
