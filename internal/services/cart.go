package service

import (
	"context"
	"database/sql"
	goErrors "errors"
	"log/slog"
	"sort"

	"github.com/frozz/storefront/internal/api/middleware"
	"github.com/frozz/storefront/internal/cache"
	"github.com/frozz/storefront/internal/errors"
	"github.com/frozz/storefront/internal/models"
	repository "github.com/frozz/storefront/internal/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartService drives one accumulator from two entry points: the persisted
// cart of a registered user and the session cart of an anonymous visitor.
// Session methods take the cart value and return the new value; the caller
// decides when to save it.
type CartService interface {
	GetUserCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	AddUserItem(ctx context.Context, userID uuid.UUID, req *models.AddItemRequest) (*models.Cart, error)
	UpdateUserItem(ctx context.Context, userID uuid.UUID, req *models.UpdateQuantityRequest) (*models.Cart, error)
	RemoveUserItem(ctx context.Context, userID uuid.UUID, productID int64) (*models.Cart, error)

	LoadSessionCart(ctx context.Context, sessionID string) (models.SessionCart, error)
	SaveSessionCart(ctx context.Context, cart models.SessionCart) error
	AddSessionItem(ctx context.Context, cart models.SessionCart, req *models.AddItemRequest) (models.SessionCart, error)
	UpdateSessionItem(ctx context.Context, cart models.SessionCart, req *models.UpdateQuantityRequest) (models.SessionCart, error)
	RemoveSessionItem(cart models.SessionCart, productID int64) models.SessionCart

	MergeSessionCart(ctx context.Context, userID uuid.UUID, sessionID string) (int, error)
	Summarize(ctx context.Context, items models.CartItems) (*models.CartSummary, error)
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	sessionRepo repository.SessionRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, sessionRepo repository.SessionRepository) CartService {
	return &cartService{cartRepo: cartRepo, productRepo: productRepo, sessionRepo: sessionRepo}
}

// addToCart increments the line, bounded by stock.
func addToCart(items models.CartItems, product *models.Product, quantity int) (models.CartItems, error) {
	if quantity < 1 {
		return nil, errors.AddValidationError("quantity", "must be at least 1")
	}

	if !product.Available {
		return nil, errors.BadRequestError("Product is not available")
	}

	existing := items.Quantity(product.ID)
	if existing+quantity > product.Stock {
		return nil, errors.InsufficientStockError(product.Name, product.Stock).
			WithMeta("product_id", product.ID).
			WithMeta("cart_quantity", existing)
	}

	out := items.Clone()
	out[models.CartKey(product.ID)] = existing + quantity

	return out, nil
}

// setCartQuantity overwrites the line with a positive quantity.
func setCartQuantity(items models.CartItems, product *models.Product, quantity int) (models.CartItems, error) {
	if !product.Available {
		return nil, errors.BadRequestError("Product is not available")
	}

	if quantity > product.Stock {
		return nil, errors.InsufficientStockError(product.Name, product.Stock).WithMeta("product_id", product.ID)
	}

	out := items.Clone()
	out[models.CartKey(product.ID)] = quantity

	return out, nil
}

func removeFromCart(items models.CartItems, productID int64) models.CartItems {
	out := items.Clone()
	delete(out, models.CartKey(productID))

	return out
}

// mergeCarts sums src into dst, dropping products that are gone or unavailable.
func mergeCarts(dst, src models.CartItems, products map[int64]*models.Product) (models.CartItems, int) {
	out := dst.Clone()
	merged := 0

	for _, id := range src.ProductIDs() {
		product, ok := products[id]
		if !ok || !product.Available {
			continue
		}

		qty := src.Quantity(id)
		if qty < 1 {
			continue
		}

		out[models.CartKey(id)] += qty
		merged++
	}

	return out, merged
}

// updateItems applies the same rule to user and session carts: only lines
// already in the cart can be updated, and removal skips the product lookup.
func (s *cartService) updateItems(ctx context.Context, items models.CartItems, req *models.UpdateQuantityRequest) (models.CartItems, error) {
	if _, exists := items[models.CartKey(req.ProductID)]; !exists {
		return nil, errors.NotFoundError("Item not found in the cart")
	}

	if req.Quantity <= 0 {
		return removeFromCart(items, req.ProductID), nil
	}

	product, err := s.loadProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	return setCartQuantity(items, product, req.Quantity)
}

func (s *cartService) loadProduct(ctx context.Context, id int64) (*models.Product, error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		if goErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	return product, nil
}

func (s *cartService) GetUserCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	cart, err := s.cartRepo.GetCartByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}

	if !goErrors.Is(err, sql.ErrNoRows) {
		return nil, errors.InternalError("Failed to retrieve cart").WithError(err)
	}

	cart = &models.Cart{ID: uuid.New(), UserID: userID, Items: models.CartItems{}}

	if err := s.cartRepo.CreateCart(ctx, cart); err != nil {
		return nil, errors.DatabaseError("Failed to create cart").WithError(err)
	}

	return cart, nil
}

func (s *cartService) saveUserCart(ctx context.Context, cart *models.Cart, items models.CartItems) (*models.Cart, error) {
	cart.Items = items

	if err := s.cartRepo.UpdateCart(ctx, cart); err != nil {
		return nil, errors.DatabaseError("Failed to update cart").WithError(err)
	}

	return cart, nil
}

func (s *cartService) AddUserItem(ctx context.Context, userID uuid.UUID, req *models.AddItemRequest) (*models.Cart, error) {
	cart, err := s.GetUserCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	product, err := s.loadProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	items, err := addToCart(cart.Items, product, req.Quantity)
	if err != nil {
		return nil, err
	}

	return s.saveUserCart(ctx, cart, items)
}

func (s *cartService) UpdateUserItem(ctx context.Context, userID uuid.UUID, req *models.UpdateQuantityRequest) (*models.Cart, error) {
	cart, err := s.GetUserCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.updateItems(ctx, cart.Items, req)
	if err != nil {
		return nil, err
	}

	return s.saveUserCart(ctx, cart, items)
}

func (s *cartService) RemoveUserItem(ctx context.Context, userID uuid.UUID, productID int64) (*models.Cart, error) {
	cart, err := s.GetUserCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, exists := cart.Items[models.CartKey(productID)]; !exists {
		return cart, nil
	}

	return s.saveUserCart(ctx, cart, removeFromCart(cart.Items, productID))
}

func (s *cartService) LoadSessionCart(ctx context.Context, sessionID string) (models.SessionCart, error) {
	items, err := s.sessionRepo.GetItems(ctx, sessionID, cache.SessionCartPart)
	if err != nil {
		return models.SessionCart{}, errors.ThirdPartyError("Failed to load session cart").WithError(err)
	}

	return models.SessionCart{SessionID: sessionID, Items: items}, nil
}

func (s *cartService) SaveSessionCart(ctx context.Context, cart models.SessionCart) error {
	if err := s.sessionRepo.SaveItems(ctx, cart.SessionID, cache.SessionCartPart, cart.Items); err != nil {
		return errors.ThirdPartyError("Failed to save session cart").WithError(err)
	}

	return nil
}

func (s *cartService) AddSessionItem(ctx context.Context, cart models.SessionCart, req *models.AddItemRequest) (models.SessionCart, error) {
	product, err := s.loadProduct(ctx, req.ProductID)
	if err != nil {
		return cart, err
	}

	items, err := addToCart(cart.Items, product, req.Quantity)
	if err != nil {
		return cart, err
	}

	return models.SessionCart{SessionID: cart.SessionID, Items: items}, nil
}

func (s *cartService) UpdateSessionItem(ctx context.Context, cart models.SessionCart, req *models.UpdateQuantityRequest) (models.SessionCart, error) {
	items, err := s.updateItems(ctx, cart.Items, req)
	if err != nil {
		return cart, err
	}

	return models.SessionCart{SessionID: cart.SessionID, Items: items}, nil
}

func (s *cartService) RemoveSessionItem(cart models.SessionCart, productID int64) models.SessionCart {
	return models.SessionCart{SessionID: cart.SessionID, Items: removeFromCart(cart.Items, productID)}
}

// MergeSessionCart folds the anonymous cart into the user's persisted cart
// after login and clears the session copy. It returns how many lines merged.
func (s *cartService) MergeSessionCart(ctx context.Context, userID uuid.UUID, sessionID string) (int, error) {
	logger := middleware.LoggerFromContext(ctx)

	session, err := s.LoadSessionCart(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	if len(session.Items) == 0 {
		return 0, nil
	}

	cart, err := s.GetUserCart(ctx, userID)
	if err != nil {
		return 0, err
	}

	products, err := s.productRepo.GetProductsByIDs(ctx, session.Items.ProductIDs())
	if err != nil {
		return 0, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	items, merged := mergeCarts(cart.Items, session.Items, products)

	if _, err := s.saveUserCart(ctx, cart, items); err != nil {
		return 0, err
	}

	if err := s.sessionRepo.Clear(ctx, sessionID, cache.SessionCartPart); err != nil {
		logger.Warn("Failed to clear merged session cart", slog.Any("error", err))
	}

	logger.Info("Session cart merged", slog.Int("lines", merged))

	return merged, nil
}

// Summarize prices every line from live product data. Products that were
// deleted or made unavailable are left out of lines and totals.
func (s *cartService) Summarize(ctx context.Context, items models.CartItems) (*models.CartSummary, error) {
	summary := &models.CartSummary{Lines: []models.CartLine{}, Total: decimal.Zero}

	products, err := s.productRepo.GetProductsByIDs(ctx, items.ProductIDs())
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	ids := items.ProductIDs()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		product, ok := products[id]
		if !ok || !product.Available {
			continue
		}

		qty := items.Quantity(id)
		unit := product.SellingPrice()
		subtotal := unit.Mul(decimal.NewFromInt(int64(qty)))

		summary.Lines = append(summary.Lines, models.CartLine{
			ProductID:    id,
			Name:         product.Name,
			CategoryName: product.CategoryName(),
			ImageURL:     product.ImageURL,
			Quantity:     qty,
			UnitPrice:    unit,
			Subtotal:     subtotal,
			Stock:        product.Stock,
		})

		summary.Total = summary.Total.Add(subtotal)
		summary.ItemCount += qty
	}

	summary.Tax = models.SplitTax(summary.Total)

	return summary, nil
}
