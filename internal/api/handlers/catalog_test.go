package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frozz/storefront/internal/api/handlers"
	appErrors "github.com/frozz/storefront/internal/errors"
	"github.com/frozz/storefront/internal/models"
	"github.com/frozz/storefront/internal/services/mocks"
	"github.com/frozz/storefront/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCategories(t *testing.T) {
	t.Run("List", func(t *testing.T) {
		mockCategoryService := mocks.NewCategoryService(t)
		categoryHandler := handlers.NewCategoryHandler(mockCategoryService)

		mockCategoryService.On("ListCategories", mock.Anything).
			Return([]models.Category{{ID: 1, Name: "Desechables", Slug: "desechables"}, {ID: 2, Name: "Vasos", Slug: "vasos"}}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/categories", nil, nil)
		rr := httptest.NewRecorder()

		categoryHandler.ListCategories().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var categories []models.Category
		decodeData(t, rr, &categories)
		assert.Len(t, categories, 2)
	})

	t.Run("Create Duplicate", func(t *testing.T) {
		mockCategoryService := mocks.NewCategoryService(t)
		categoryHandler := handlers.NewCategoryHandler(mockCategoryService)

		mockCategoryService.On("CreateCategory", mock.Anything, &models.CreateCategoryRequest{Name: "Vasos"}).
			Return(nil, appErrors.DuplicateEntryError("Category already exists")).Once()

		req := testutils.CreateStaffRequest(http.MethodPost, "/categories", bytes.NewReader([]byte(`{"name":"Vasos"}`)), uuid.New(), false, nil)
		rr := httptest.NewRecorder()

		categoryHandler.CreateCategory().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestFavorites(t *testing.T) {
	t.Run("Toggle On", func(t *testing.T) {
		mockFavoriteService := mocks.NewFavoriteService(t)
		favoriteHandler := handlers.NewFavoriteHandler(mockFavoriteService)
		userID := uuid.New()

		mockFavoriteService.On("ToggleFavorite", mock.Anything, userID, int64(11)).
			Return(&models.FavoriteToggleResponse{ProductID: 11, Favorite: true}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/favorites/11", nil, userID, map[string]string{"productId": "11"})
		rr := httptest.NewRecorder()

		favoriteHandler.ToggleFavorite().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp models.FavoriteToggleResponse
		decodeData(t, rr, &resp)
		assert.True(t, resp.Favorite)
	})

	t.Run("Toggle Requires Login", func(t *testing.T) {
		mockFavoriteService := mocks.NewFavoriteService(t)
		favoriteHandler := handlers.NewFavoriteHandler(mockFavoriteService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/favorites/11", nil, map[string]string{"productId": "11"})
		rr := httptest.NewRecorder()

		favoriteHandler.ToggleFavorite().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("List", func(t *testing.T) {
		mockFavoriteService := mocks.NewFavoriteService(t)
		favoriteHandler := handlers.NewFavoriteHandler(mockFavoriteService)
		userID := uuid.New()

		mockFavoriteService.On("ListFavorites", mock.Anything, userID).
			Return([]models.FavoriteProduct{{UserID: userID, ProductID: 11}}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/favorites", nil, userID, nil)
		rr := httptest.NewRecorder()

		favoriteHandler.ListFavorites().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestAddresses(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		mockAddressService := mocks.NewAddressService(t)
		addressHandler := handlers.NewAddressHandler(mockAddressService)
		userID := uuid.New()

		reqBody := models.CreateAddressRequest{Departamento: "Antioquia", City: "Medellín", Address: "Calle 10 # 20-30", IsDefault: true}
		mockAddressService.On("CreateAddress", mock.Anything, userID, &reqBody).
			Return(&models.ShippingAddress{ID: 3, UserID: userID, City: "Medellín", IsDefault: true}, nil).Once()

		body, _ := json.Marshal(reqBody)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/addresses", bytes.NewReader(body), userID, nil)
		rr := httptest.NewRecorder()

		addressHandler.CreateAddress().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Create Missing City", func(t *testing.T) {
		mockAddressService := mocks.NewAddressService(t)
		addressHandler := handlers.NewAddressHandler(mockAddressService)

		body := []byte(`{"departamento":"Antioquia","address":"Calle 10"}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/addresses", bytes.NewReader(body), uuid.New(), nil)
		rr := httptest.NewRecorder()

		addressHandler.CreateAddress().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("List", func(t *testing.T) {
		mockAddressService := mocks.NewAddressService(t)
		addressHandler := handlers.NewAddressHandler(mockAddressService)
		userID := uuid.New()

		mockAddressService.On("ListAddresses", mock.Anything, userID).Return([]models.ShippingAddress{}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/addresses", nil, userID, nil)
		rr := httptest.NewRecorder()

		addressHandler.ListAddresses().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Set Default Of Another User", func(t *testing.T) {
		mockAddressService := mocks.NewAddressService(t)
		addressHandler := handlers.NewAddressHandler(mockAddressService)
		userID := uuid.New()

		mockAddressService.On("SetDefault", mock.Anything, userID, int64(9)).Return(appErrors.NotFoundError("Address not found")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/addresses/9/default", nil, userID, map[string]string{"id": "9"})
		rr := httptest.NewRecorder()

		addressHandler.SetDefaultAddress().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		mockAddressService := mocks.NewAddressService(t)
		addressHandler := handlers.NewAddressHandler(mockAddressService)
		userID := uuid.New()

		mockAddressService.On("DeleteAddress", mock.Anything, userID, int64(3)).Return(nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/addresses/3", nil, userID, map[string]string{"id": "3"})
		rr := httptest.NewRecorder()

		addressHandler.DeleteAddress().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}
