package handlers

import (
	"log/slog"
	"net/http"

	"github.com/frozz/storefront/internal/models"
	service "github.com/frozz/storefront/internal/services"
	"github.com/frozz/storefront/internal/utils"
	"github.com/frozz/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type AddressHandler struct {
	addressService service.AddressService
	validator      *validator.Validate
}

func NewAddressHandler(addressService service.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService, validator: validator.New()}
}

// ListAddresses godoc
//
//	@Summary		List saved shipping addresses
//	@Tags			Addresses
//	@Produce		json
//	@Success		200	{array}		models.ShippingAddress	"Addresses, default first"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/addresses [get]
func (h *AddressHandler) ListAddresses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r, "list addresses")
		if !ok {
			return
		}

		addresses, err := h.addressService.ListAddresses(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to list addresses", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, addresses)
	}
}

// CreateAddress godoc
//
//	@Summary		Save a shipping address
//	@Tags			Addresses
//	@Accept			json
//	@Produce		json
//	@Param			address	body		models.CreateAddressRequest	true	"Address"
//	@Success		201		{object}	models.ShippingAddress		"Saved address"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Security		BearerAuth
//	@Router			/addresses [post]
func (h *AddressHandler) CreateAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r, "create address")
		if !ok {
			return
		}

		var req models.CreateAddressRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid address input")
			return
		}

		address, err := h.addressService.CreateAddress(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to save address", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Address saved", slog.Int64("addressId", address.ID))
		response.Success(w, http.StatusCreated, address)
	}
}

// SetDefaultAddress godoc
//
//	@Summary		Mark an address as default
//	@Tags			Addresses
//	@Param			id	path	int	true	"Address ID"
//	@Success		204
//	@Failure		404	{object}	response.ErrorResponse	"Address not found"
//	@Security		BearerAuth
//	@Router			/addresses/{id}/default [post]
func (h *AddressHandler) SetDefaultAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r, "set default address")
		if !ok {
			return
		}

		id, err := utils.ParseInt64(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.addressService.SetDefault(r.Context(), claims.UserID, id); err != nil {
			logger.Warn("Failed to set default address", slog.Int64("addressId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// DeleteAddress godoc
//
//	@Summary		Delete a saved address
//	@Tags			Addresses
//	@Param			id	path	int	true	"Address ID"
//	@Success		204
//	@Failure		404	{object}	response.ErrorResponse	"Address not found"
//	@Security		BearerAuth
//	@Router			/addresses/{id} [delete]
func (h *AddressHandler) DeleteAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r, "delete address")
		if !ok {
			return
		}

		id, err := utils.ParseInt64(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.addressService.DeleteAddress(r.Context(), claims.UserID, id); err != nil {
			logger.Warn("Failed to delete address", slog.Int64("addressId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
