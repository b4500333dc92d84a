package handlers

import (
	"log/slog"
	"net/http"

	"github.com/frozz/storefront/internal/api/middleware"
	"github.com/frozz/storefront/internal/models"
	service "github.com/frozz/storefront/internal/services"
	"github.com/frozz/storefront/internal/utils"
	"github.com/frozz/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// CartHandler serves the same routes to logged-in users and anonymous
// visitors: claims select the persisted cart, otherwise the session cart.
type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validator.New(),
	}
}

// respond prices the items and writes the summary.
func (h *CartHandler) respond(w http.ResponseWriter, r *http.Request, status int, items models.CartItems) {
	logger := middleware.LoggerFromContext(r.Context())

	summary, err := h.cartService.Summarize(r.Context(), items)
	if err != nil {
		logger.Error("Failed to summarize cart", slog.Any("error", err))
		response.Error(w, err)
		return
	}

	response.Success(w, status, summary)
}

// GetCart godoc
//
//	@Summary		Get the current cart
//	@Description	Returns the priced cart of the authenticated user, or of the anonymous session when no token is sent.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartSummary		"Cart priced from live product data"
//	@Failure		400	{object}	response.ErrorResponse	"Missing session"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			cart, err := h.cartService.GetUserCart(r.Context(), claims.UserID)
			if err != nil {
				logger.Error("Failed to get cart", slog.Any("error", err))
				response.Error(w, err)
				return
			}

			h.respond(w, r, http.StatusOK, cart.Items)
			return
		}

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.LoadSessionCart(r.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to load session cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		h.respond(w, r, http.StatusOK, cart.Items)
	}
}

// AddItem godoc
//
//	@Summary		Add an item to the cart
//	@Description	Increments the product line. The resulting quantity may not exceed the product stock.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddItemRequest	true	"Product and quantity"
//	@Success		200		{object}	models.CartSummary		"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error or unavailable product"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Failure		409		{object}	response.ErrorResponse	"Insufficient stock"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Router			/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add to cart input")
			return
		}

		logger = logger.With(slog.Int64("productId", req.ProductID), slog.Int("quantity", req.Quantity))

		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			cart, err := h.cartService.AddUserItem(r.Context(), claims.UserID, &req)
			if err != nil {
				logger.Warn("Failed to add item to cart", slog.Any("error", err))
				response.Error(w, err)
				return
			}

			logger.Info("Item added to cart")
			h.respond(w, r, http.StatusOK, cart.Items)
			return
		}

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.LoadSessionCart(r.Context(), sessionID)
		if err != nil {
			response.Error(w, err)
			return
		}

		cart, err = h.cartService.AddSessionItem(r.Context(), cart, &req)
		if err != nil {
			logger.Warn("Failed to add item to session cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		if err := h.cartService.SaveSessionCart(r.Context(), cart); err != nil {
			logger.Error("Failed to save session cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to session cart")
		h.respond(w, r, http.StatusOK, cart.Items)
	}
}

// UpdateQuantity godoc
//
//	@Summary		Set the quantity of a cart line
//	@Description	Overwrites the quantity. Zero or less removes the line.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.UpdateQuantityRequest	true	"Product and new quantity"
//	@Success		200		{object}	models.CartSummary				"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse			"Validation error"
//	@Failure		404		{object}	response.ErrorResponse			"Item not in cart"
//	@Failure		409		{object}	response.ErrorResponse			"Insufficient stock"
//	@Router			/cart/items [put]
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update quantity input")
			return
		}

		logger = logger.With(slog.Int64("productId", req.ProductID), slog.Int("quantity", req.Quantity))

		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			cart, err := h.cartService.UpdateUserItem(r.Context(), claims.UserID, &req)
			if err != nil {
				logger.Warn("Failed to update cart quantity", slog.Any("error", err))
				response.Error(w, err)
				return
			}

			h.respond(w, r, http.StatusOK, cart.Items)
			return
		}

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.LoadSessionCart(r.Context(), sessionID)
		if err != nil {
			response.Error(w, err)
			return
		}

		cart, err = h.cartService.UpdateSessionItem(r.Context(), cart, &req)
		if err != nil {
			logger.Warn("Failed to update session cart quantity", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		if err := h.cartService.SaveSessionCart(r.Context(), cart); err != nil {
			response.Error(w, err)
			return
		}

		h.respond(w, r, http.StatusOK, cart.Items)
	}
}

// RemoveItem godoc
//
//	@Summary		Remove a product from the cart
//	@Tags			Cart
//	@Produce		json
//	@Param			productId	path		int						true	"Product ID"
//	@Success		200			{object}	models.CartSummary		"Updated cart"
//	@Failure		400			{object}	response.ErrorResponse	"Invalid product id"
//	@Router			/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		productID, err := utils.ParseInt64(r, "productId")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			cart, err := h.cartService.RemoveUserItem(r.Context(), claims.UserID, productID)
			if err != nil {
				logger.Error("Failed to remove cart item", slog.Any("error", err))
				response.Error(w, err)
				return
			}

			h.respond(w, r, http.StatusOK, cart.Items)
			return
		}

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.LoadSessionCart(r.Context(), sessionID)
		if err != nil {
			response.Error(w, err)
			return
		}

		cart = h.cartService.RemoveSessionItem(cart, productID)

		if err := h.cartService.SaveSessionCart(r.Context(), cart); err != nil {
			response.Error(w, err)
			return
		}

		h.respond(w, r, http.StatusOK, cart.Items)
	}
}
