package service

import (
	"context"
	"log/slog"

	"github.com/frozz/storefront/internal/api/middleware"
	"github.com/frozz/storefront/internal/errors"
	"github.com/frozz/storefront/internal/models"
	repository "github.com/frozz/storefront/internal/repositories"
	"github.com/google/uuid"
)

type FavoriteService interface {
	ToggleFavorite(ctx context.Context, userID uuid.UUID, productID int64) (*models.FavoriteToggleResponse, error)
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.FavoriteProduct, error)
}

type favoriteService struct {
	repo     repository.FavoriteRepository
	products ProductService
}

func NewFavoriteService(repo repository.FavoriteRepository, products ProductService) FavoriteService {
	return &favoriteService{repo: repo, products: products}
}

// ToggleFavorite removes the product when it is already a favorite and adds it otherwise.
func (s *favoriteService) ToggleFavorite(ctx context.Context, userID uuid.UUID, productID int64) (*models.FavoriteToggleResponse, error) {
	logger := middleware.LoggerFromContext(ctx)

	removed, err := s.repo.RemoveFavorite(ctx, userID, productID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to update favorites").WithError(err)
	}

	if removed {
		logger.Info("Favorite removed", slog.Int64("productId", productID))
		return &models.FavoriteToggleResponse{ProductID: productID, Favorite: false}, nil
	}

	if _, err := s.products.GetProductByID(ctx, productID); err != nil {
		return nil, err
	}

	if err := s.repo.AddFavorite(ctx, userID, productID); err != nil {
		return nil, errors.DatabaseError("Failed to update favorites").WithError(err)
	}

	logger.Info("Favorite added", slog.Int64("productId", productID))

	return &models.FavoriteToggleResponse{ProductID: productID, Favorite: true}, nil
}

func (s *favoriteService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.FavoriteProduct, error) {
	favorites, err := s.repo.ListFavorites(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list favorites").WithError(err)
	}

	return favorites, nil
}
