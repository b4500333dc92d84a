package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/frozz/storefront/internal/api/middleware"
	"github.com/frozz/storefront/internal/errors"
	"github.com/frozz/storefront/internal/models"
	service "github.com/frozz/storefront/internal/services"
	"github.com/frozz/storefront/internal/utils"
	"github.com/frozz/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type RentalHandler struct {
	rentalService service.RentalService
	validator     *validator.Validate
}

func NewRentalHandler(rentalService service.RentalService) *RentalHandler {
	return &RentalHandler{rentalService: rentalService, validator: validator.New()}
}

// QuoteRental godoc
//
//	@Summary		Price a rental period
//	@Description	Daily, weekly (15% off) or monthly (25% off) pricing depending on the length of the period.
//	@Tags			Rentals
//	@Produce		json
//	@Param			product_id	query		int						true	"Rental product ID"
//	@Param			start_date	query		string					true	"Start date (YYYY-MM-DD)"
//	@Param			end_date	query		string					true	"End date (YYYY-MM-DD)"
//	@Success		200			{object}	models.RentalPricing	"Pricing"
//	@Failure		400			{object}	response.ErrorResponse	"Invalid dates or not a rental product"
//	@Router			/rentals/quote [get]
func (h *RentalHandler) QuoteRental() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		query := r.URL.Query()

		productID, err := strconv.ParseInt(query.Get("product_id"), 10, 64)
		if err != nil || productID <= 0 {
			response.Error(w, errors.AddValidationError("product_id", "must be a positive integer"))
			return
		}

		pricing, err := h.rentalService.Quote(r.Context(), productID, query.Get("start_date"), query.Get("end_date"))
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, pricing)
	}
}

// CreateRental godoc
//
//	@Summary		Request a rental
//	@Tags			Rentals
//	@Accept			json
//	@Produce		json
//	@Param			rental	body		models.CreateRentalRequest	true	"Rental request"
//	@Success		201		{object}	models.Rental				"Pending rental"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Security		BearerAuth
//	@Router			/rentals [post]
func (h *RentalHandler) CreateRental() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r, "create rental")
		if !ok {
			return
		}

		var req models.CreateRentalRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid rental input")
			return
		}

		rental, err := h.rentalService.CreateRental(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Warn("Failed to create rental", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Rental requested", slog.Int64("rentalId", rental.ID))
		response.Success(w, http.StatusCreated, rental)
	}
}

// ListRentals godoc
//
//	@Summary		List rentals
//	@Description	Staff see every rental, customers only their own.
//	@Tags			Rentals
//	@Produce		json
//	@Success		200	{array}		models.Rental			"Rentals"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/rentals [get]
func (h *RentalHandler) ListRentals() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r, "list rentals")
		if !ok {
			return
		}

		var owner *uuid.UUID
		if !claims.IsStaff && !claims.IsSuperuser {
			owner = &claims.UserID
		}

		rentals, err := h.rentalService.ListRentals(r.Context(), owner)
		if err != nil {
			logger.Error("Failed to list rentals", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, rentals)
	}
}

// UpdateRentalStatus godoc
//
//	@Summary		Update a rental status (staff)
//	@Tags			Rentals
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int									true	"Rental ID"
//	@Param			status	body		models.UpdateRentalStatusRequest	true	"New status"
//	@Success		200		{object}	models.Rental						"Updated rental"
//	@Failure		404		{object}	response.ErrorResponse				"Rental not found"
//	@Security		BearerAuth
//	@Router			/rentals/{id}/status [patch]
func (h *RentalHandler) UpdateRentalStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseInt64(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateRentalStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid rental status input")
			return
		}

		rental, err := h.rentalService.UpdateStatus(r.Context(), id, req.Status)
		if err != nil {
			logger.Warn("Failed to update rental status", slog.Int64("rentalId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Rental status updated", slog.Int64("rentalId", id), slog.String("status", string(rental.Status)))
		response.Success(w, http.StatusOK, rental)
	}
}
