package service

import (
	"context"
	"database/sql"
	goErrors "errors"
	"log/slog"

	"github.com/frozz/storefront/internal/api/middleware"
	"github.com/frozz/storefront/internal/cache"
	"github.com/frozz/storefront/internal/errors"
	"github.com/frozz/storefront/internal/models"
	repository "github.com/frozz/storefront/internal/repositories"
	"github.com/frozz/storefront/internal/utils"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
	GetCategory(ctx context.Context, id int64) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

type categoryService struct {
	repo  repository.CategoryRepository
	cache cache.Cache
}

// NewCategoryService caches the category list; cache may be nil.
func NewCategoryService(repo repository.CategoryRepository, c cache.Cache) CategoryService {
	return &categoryService{repo: repo, cache: c}
}

func (s *categoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	logger := middleware.LoggerFromContext(ctx)

	category := &models.Category{
		Name:        utils.SanitizeText(req.Name),
		Description: utils.SanitizeText(req.Description),
	}
	category.Slug = utils.Slugify(category.Name)

	if category.Slug == "" {
		return nil, errors.AddValidationError("name", "must contain letters or digits")
	}

	if err := s.repo.CreateCategory(ctx, category); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, errors.DuplicateEntryError("A category with this name already exists").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to create category").WithError(err)
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, cache.CategoryListKey); err != nil {
			logger.Warn("Failed to invalidate category cache", slog.Any("error", err))
		}
	}

	logger.Info("Category created", slog.Int64("categoryId", category.ID), slog.String("slug", category.Slug))

	return category, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	category, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		if goErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Category not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to fetch category").WithError(err)
	}

	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	load := func(ctx context.Context) ([]models.Category, error) {
		categories, err := s.repo.ListCategories(ctx)
		if err != nil {
			return nil, errors.DatabaseError("Failed to list categories").WithError(err)
		}
		return categories, nil
	}

	if s.cache == nil {
		return load(ctx)
	}

	return cache.Remember(ctx, s.cache, middleware.LoggerFromContext(ctx), cache.CategoryListKey, 0, load)
}
