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

type CategoryHandler struct {
	categoryService service.CategoryService
	validator       *validator.Validate
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, validator: validator.New()}
}

// ListCategories godoc
//
//	@Summary		List categories
//	@Tags			Categories
//	@Produce		json
//	@Success		200	{array}		models.Category			"Categories ordered by name"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Router			/categories [get]
func (h *CategoryHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		categories, err := h.categoryService.ListCategories(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list categories", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, categories)
	}
}

// CreateCategory godoc
//
//	@Summary		Create a category (staff)
//	@Tags			Categories
//	@Accept			json
//	@Produce		json
//	@Param			category	body		models.CreateCategoryRequest	true	"Category"
//	@Success		201			{object}	models.Category					"Created category"
//	@Failure		400			{object}	response.ErrorResponse			"Validation error"
//	@Failure		409			{object}	response.ErrorResponse			"Category already exists"
//	@Security		BearerAuth
//	@Router			/categories [post]
func (h *CategoryHandler) CreateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateCategoryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid category input")
			return
		}

		category, err := h.categoryService.CreateCategory(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create category", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Category created", slog.Int64("categoryId", category.ID), slog.String("slug", category.Slug))
		response.Success(w, http.StatusCreated, category)
	}
}
