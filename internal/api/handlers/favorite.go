package handlers

import (
	"log/slog"
	"net/http"

	service "github.com/frozz/storefront/internal/services"
	"github.com/frozz/storefront/internal/utils"
	"github.com/frozz/storefront/internal/utils/response"
)

type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// ToggleFavorite godoc
//
//	@Summary		Add or remove a favorite
//	@Description	Removes the product from the user's favorites when present, otherwise adds it.
//	@Tags			Favorites
//	@Produce		json
//	@Param			productId	path		int								true	"Product ID"
//	@Success		200			{object}	models.FavoriteToggleResponse	"New favorite state"
//	@Failure		401			{object}	response.ErrorResponse			"Authentication required"
//	@Failure		404			{object}	response.ErrorResponse			"Product not found"
//	@Security		BearerAuth
//	@Router			/favorites/{productId} [post]
func (h *FavoriteHandler) ToggleFavorite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r, "toggle favorite")
		if !ok {
			return
		}

		productID, err := utils.ParseInt64(r, "productId")
		if err != nil {
			response.Error(w, err)
			return
		}

		resp, err := h.favoriteService.ToggleFavorite(r.Context(), claims.UserID, productID)
		if err != nil {
			logger.Warn("Failed to toggle favorite", slog.Int64("productId", productID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Favorite toggled", slog.Int64("productId", productID), slog.Bool("favorite", resp.Favorite))
		response.Success(w, http.StatusOK, resp)
	}
}

// ListFavorites godoc
//
//	@Summary		List favorites
//	@Tags			Favorites
//	@Produce		json
//	@Success		200	{array}		models.FavoriteProduct	"Favorites, newest first"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/favorites [get]
func (h *FavoriteHandler) ListFavorites() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r, "list favorites")
		if !ok {
			return
		}

		favorites, err := h.favoriteService.ListFavorites(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to list favorites", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, favorites)
	}
}
