package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/frozz/storefront/internal/api/middleware"
	models "github.com/frozz/storefront/internal/models"
	service "github.com/frozz/storefront/internal/services"
	"github.com/frozz/storefront/internal/utils"
	"github.com/frozz/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService, validator: validator.New()}
}

func isStaff(r *http.Request) bool {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	return ok && (claims.IsStaff || claims.IsSuperuser)
}

// ListProducts godoc
//
//	@Summary		List products
//	@Description	Paginated catalog. Anonymous callers and customers only see available products.
//	@Tags			Products
//	@Produce		json
//	@Param			category	query		int													false	"Category ID"
//	@Param			q			query		string												false	"Search in name, description and keywords"
//	@Param			type		query		string												false	"Product type"	Enums(sale, rental, supply, disposable)
//	@Param			page		query		int													false	"Page number (default: 1)"
//	@Param			pageSize	query		int													false	"Items per page (default: 10, max: 100)"
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Product}	"Products"
//	@Failure		500			{object}	response.ErrorResponse								"Internal server error"
//	@Router			/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		query := r.URL.Query()

		page, pageSize := utils.Pagination(r)
		categoryID, _ := strconv.ParseInt(query.Get("category"), 10, 64)

		filter := models.ProductFilter{
			CategoryID:    categoryID,
			Search:        strings.TrimSpace(query.Get("q")),
			ProductType:   models.ProductType(query.Get("type")),
			AvailableOnly: !isStaff(r) || query.Get("available") == "true",
			Page:          page,
			PageSize:      pageSize,
		}

		products, total, err := h.productService.ListProducts(r.Context(), filter)
		if err != nil {
			logger.Error("Failed to fetch products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Products listed", slog.Int("count", len(products)), slog.Int("total", total))
		response.Success(w, http.StatusOK, paginated(products, total, page, pageSize))
	}
}

// GetProduct godoc
//
//	@Summary		Get a product
//	@Description	Product detail with variations and attributes. Unavailable products are hidden from non-staff callers.
//	@Tags			Products
//	@Produce		json
//	@Param			id	path		int						true	"Product ID"
//	@Success		200	{object}	models.ProductDetail	"Product detail"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid product id"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Router			/products/{id} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseInt64(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		detail, err := h.productService.GetProductDetail(r.Context(), id, !isStaff(r))
		if err != nil {
			logger.Warn("Failed to get product", slog.Int64("productId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, detail)
	}
}

// CreateProduct godoc
//
//	@Summary		Create a product (staff)
//	@Tags			Inventory
//	@Accept			json
//	@Produce		json
//	@Param			product	body		models.CreateProductRequest	true	"Product"
//	@Success		201		{object}	models.Product				"Created product"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error or invalid pricing"
//	@Failure		403		{object}	response.ErrorResponse		"Staff access required"
//	@Failure		404		{object}	response.ErrorResponse		"Category not found"
//	@Security		BearerAuth
//	@Router			/inventory/products [post]
func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create product input")
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), &req)
		if err != nil {
			logger.Error("Error during product creation", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product created successfully", slog.Int64("productId", product.ID), slog.String("slug", product.Slug))
		response.Success(w, http.StatusCreated, product)
	}
}

// UpdateProduct godoc
//
//	@Summary		Update a product (staff)
//	@Description	Partial update. Send clear_promotion=true to remove the promotional price.
//	@Tags			Inventory
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Product ID"
//	@Param			product	body		models.UpdateProductRequest	true	"Fields to change"
//	@Success		200		{object}	models.Product				"Updated product"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error or invalid pricing"
//	@Failure		404		{object}	response.ErrorResponse		"Product not found"
//	@Security		BearerAuth
//	@Router			/inventory/products/{id} [put]
func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseInt64(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update product input")
			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), id, &req)
		if err != nil {
			logger.Error("Error during product update", slog.Int64("productId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product updated successfully", slog.Int64("productId", product.ID))
		response.Success(w, http.StatusOK, product)
	}
}

// ToggleAvailability godoc
//
//	@Summary		Flip product availability (staff)
//	@Tags			Inventory
//	@Produce		json
//	@Param			id	path		int						true	"Product ID"
//	@Success		200	{object}	models.Product			"Updated product"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Security		BearerAuth
//	@Router			/inventory/products/{id}/toggle [post]
func (h *ProductHandler) ToggleAvailability() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseInt64(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		product, err := h.productService.ToggleAvailability(r.Context(), id)
		if err != nil {
			logger.Error("Failed to toggle availability", slog.Int64("productId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product availability toggled", slog.Int64("productId", id), slog.Bool("available", product.Available))
		response.Success(w, http.StatusOK, product)
	}
}

// DuplicateProduct godoc
//
//	@Summary		Duplicate a product (staff)
//	@Description	Copies the product, its attributes and variations. The copy starts unavailable with zero stock.
//	@Tags			Inventory
//	@Produce		json
//	@Param			id	path		int						true	"Product ID"
//	@Success		201	{object}	models.Product			"The copy"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Security		BearerAuth
//	@Router			/inventory/products/{id}/duplicate [post]
func (h *ProductHandler) DuplicateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseInt64(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		product, err := h.productService.DuplicateProduct(r.Context(), id)
		if err != nil {
			logger.Error("Failed to duplicate product", slog.Int64("productId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product duplicated", slog.Int64("sourceId", id), slog.Int64("productId", product.ID))
		response.Success(w, http.StatusCreated, product)
	}
}

// Dashboard godoc
//
//	@Summary		Inventory dashboard (staff)
//	@Tags			Inventory
//	@Produce		json
//	@Success		200	{object}	models.InventoryDashboard	"Stock and catalog figures"
//	@Security		BearerAuth
//	@Router			/inventory/dashboard [get]
func (h *ProductHandler) Dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		dashboard, err := h.productService.Dashboard(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to build dashboard", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, dashboard)
	}
}

// AddVariation godoc
//
//	@Summary		Add a variation (staff)
//	@Tags			Inventory
//	@Accept			json
//	@Produce		json
//	@Param			id			path		int								true	"Product ID"
//	@Param			variation	body		models.CreateVariationRequest	true	"Variation"
//	@Success		201			{object}	models.ProductVariation			"Created variation"
//	@Failure		400			{object}	response.ErrorResponse			"Validation error"
//	@Failure		404			{object}	response.ErrorResponse			"Product not found"
//	@Security		BearerAuth
//	@Router			/inventory/products/{id}/variations [post]
func (h *ProductHandler) AddVariation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseInt64(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.CreateVariationRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid variation input")
			return
		}

		variation, err := h.productService.AddVariation(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to add variation", slog.Int64("productId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, variation)
	}
}

// ListVariations godoc
//
//	@Summary		List variations (staff)
//	@Tags			Inventory
//	@Produce		json
//	@Param			id	path		int							true	"Product ID"
//	@Success		200	{array}		models.ProductVariation		"Variations"
//	@Security		BearerAuth
//	@Router			/inventory/products/{id}/variations [get]
func (h *ProductHandler) ListVariations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseInt64(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		variations, err := h.productService.ListVariations(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, variations)
	}
}

// DeleteVariation godoc
//
//	@Summary		Delete a variation (staff)
//	@Tags			Inventory
//	@Param			id			path	int	true	"Product ID"
//	@Param			variationId	path	int	true	"Variation ID"
//	@Success		204
//	@Failure		404	{object}	response.ErrorResponse	"Variation not found"
//	@Security		BearerAuth
//	@Router			/inventory/products/{id}/variations/{variationId} [delete]
func (h *ProductHandler) DeleteVariation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseInt64(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		variationID, err := utils.ParseInt64(r, "variationId")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.productService.DeleteVariation(r.Context(), id, variationID); err != nil {
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// AddAttribute godoc
//
//	@Summary		Add an attribute (staff)
//	@Tags			Inventory
//	@Accept			json
//	@Produce		json
//	@Param			id			path		int								true	"Product ID"
//	@Param			attribute	body		models.CreateAttributeRequest	true	"Attribute"
//	@Success		201			{object}	models.ProductAttribute			"Created attribute"
//	@Failure		400			{object}	response.ErrorResponse			"Validation error"
//	@Failure		404			{object}	response.ErrorResponse			"Product not found"
//	@Security		BearerAuth
//	@Router			/inventory/products/{id}/attributes [post]
func (h *ProductHandler) AddAttribute() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseInt64(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.CreateAttributeRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid attribute input")
			return
		}

		attribute, err := h.productService.AddAttribute(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to add attribute", slog.Int64("productId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, attribute)
	}
}

// ListAttributes godoc
//
//	@Summary		List attributes (staff)
//	@Tags			Inventory
//	@Produce		json
//	@Param			id	path	int	true	"Product ID"
//	@Success		200	{array}	models.ProductAttribute	"Attributes"
//	@Security		BearerAuth
//	@Router			/inventory/products/{id}/attributes [get]
func (h *ProductHandler) ListAttributes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseInt64(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		attributes, err := h.productService.ListAttributes(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, attributes)
	}
}

// DeleteAttribute godoc
//
//	@Summary		Delete an attribute (staff)
//	@Tags			Inventory
//	@Param			id			path	int	true	"Product ID"
//	@Param			attributeId	path	int	true	"Attribute ID"
//	@Success		204
//	@Failure		404	{object}	response.ErrorResponse	"Attribute not found"
//	@Security		BearerAuth
//	@Router			/inventory/products/{id}/attributes/{attributeId} [delete]
func (h *ProductHandler) DeleteAttribute() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseInt64(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		attributeID, err := utils.ParseInt64(r, "attributeId")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.productService.DeleteAttribute(r.Context(), id, attributeID); err != nil {
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
