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

// QuoteBuilderHandler exposes the staff quote builder. The working list
// lives in the staff member's session, apart from their shopping cart.
type QuoteBuilderHandler struct {
	builderService service.QuoteBuilderService
	validator      *validator.Validate
}

func NewQuoteBuilderHandler(builderService service.QuoteBuilderService) *QuoteBuilderHandler {
	return &QuoteBuilderHandler{builderService: builderService, validator: validator.New()}
}

// GetBuilder godoc
//
//	@Summary		Get the quote builder list (staff)
//	@Tags			QuoteBuilder
//	@Produce		json
//	@Success		200	{object}	models.QuoteBuilderPayload	"Priced lines"
//	@Security		BearerAuth
//	@Router			/quote-builder [get]
func (h *QuoteBuilderHandler) GetBuilder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		payload, err := h.builderService.Payload(r.Context(), sessionID)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to load quote builder", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, payload)
	}
}

// AddProducts godoc
//
//	@Summary		Add products to the quote builder (staff)
//	@Description	Each product id adds one unit. Unknown or unavailable products are skipped.
//	@Tags			QuoteBuilder
//	@Accept			json
//	@Produce		json
//	@Param			products	body		models.QuoteBuilderAddRequest	true	"Product ids"
//	@Success		200			{object}	models.QuoteBuilderPayload		"Priced lines"
//	@Failure		400			{object}	response.ErrorResponse			"Validation error"
//	@Security		BearerAuth
//	@Router			/quote-builder/items [post]
func (h *QuoteBuilderHandler) AddProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.QuoteBuilderAddRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid quote builder input")
			return
		}

		payload, err := h.builderService.AddProducts(r.Context(), sessionID, req.ProductIDs)
		if err != nil {
			logger.Error("Failed to add products to quote builder", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, payload)
	}
}

// UpdateQuantity godoc
//
//	@Summary		Set a quote builder quantity (staff)
//	@Description	Quantities below one are raised to one.
//	@Tags			QuoteBuilder
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.QuoteBuilderUpdateRequest	true	"Product and quantity"
//	@Success		200		{object}	models.QuoteBuilderPayload			"Priced lines"
//	@Failure		404		{object}	response.ErrorResponse				"Product not in the builder"
//	@Security		BearerAuth
//	@Router			/quote-builder/items [put]
func (h *QuoteBuilderHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.QuoteBuilderUpdateRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid quote builder quantity input")
			return
		}

		payload, err := h.builderService.UpdateQuantity(r.Context(), sessionID, &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, payload)
	}
}

// RemoveProduct godoc
//
//	@Summary		Remove a product from the quote builder (staff)
//	@Tags			QuoteBuilder
//	@Produce		json
//	@Param			productId	path		int							true	"Product ID"
//	@Success		200			{object}	models.QuoteBuilderPayload	"Priced lines"
//	@Security		BearerAuth
//	@Router			/quote-builder/items/{productId} [delete]
func (h *QuoteBuilderHandler) RemoveProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		productID, err := utils.ParseInt64(r, "productId")
		if err != nil {
			response.Error(w, err)
			return
		}

		payload, err := h.builderService.RemoveProduct(r.Context(), sessionID, productID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, payload)
	}
}

// Generate godoc
//
//	@Summary		Generate a quotation from the builder (staff)
//	@Description	Creates the quotation for an existing client or a new natural person or company, then empties the builder.
//	@Tags			QuoteBuilder
//	@Accept			json
//	@Produce		json
//	@Param			client	body		models.QuoteBuilderGenerateRequest	true	"Client details"
//	@Success		201		{object}	models.CheckoutResult				"Created quotation and its PDF link"
//	@Failure		400		{object}	response.ErrorResponse				"Empty builder or missing client fields"
//	@Failure		404		{object}	response.ErrorResponse				"Existing client not found"
//	@Security		BearerAuth
//	@Router			/quote-builder/generate [post]
func (h *QuoteBuilderHandler) Generate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r, "generate quotation")
		if !ok {
			return
		}

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.QuoteBuilderGenerateRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid quote builder client input")
			return
		}

		q, err := h.builderService.Generate(r.Context(), sessionID, claims.UserID, &req)
		if err != nil {
			logger.Warn("Failed to generate quotation", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Quotation generated from builder", slog.Int64("quotationId", q.ID))
		response.Success(w, http.StatusCreated, models.CheckoutResult{Quotation: q, PDFURL: pdfURL(q.ID)})
	}
}
