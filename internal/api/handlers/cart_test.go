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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// setupCartTest -> creates common test dependencies
func setupCartTest(t *testing.T) (*mocks.CartService, *handlers.CartHandler) {
	mockCartService := mocks.NewCartService(t)
	return mockCartService, handlers.NewCartHandler(mockCartService)
}

func sampleSummary() *models.CartSummary {
	return &models.CartSummary{
		Lines: []models.CartLine{
			{ProductID: 3, Name: "Vaso 12oz", Quantity: 2, UnitPrice: decimal.NewFromInt(500), Subtotal: decimal.NewFromInt(1000), Stock: 40},
		},
		Total:     decimal.NewFromInt(1000),
		ItemCount: 2,
	}
}

func TestGetCart(t *testing.T) {
	t.Run("Success - User Cart", func(t *testing.T) {
		mockCartService, cartHandler := setupCartTest(t)
		userID := uuid.New()
		items := models.CartItems{"3": 2}

		mockCartService.On("GetUserCart", mock.Anything, userID).Return(&models.Cart{UserID: userID, Items: items}, nil).Once()
		mockCartService.On("Summarize", mock.Anything, items).Return(sampleSummary(), nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/cart", nil, userID, nil)
		rr := httptest.NewRecorder()

		cartHandler.GetCart().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var summary models.CartSummary
		decodeData(t, rr, &summary)
		assert.Equal(t, 2, summary.ItemCount)
		assert.True(t, summary.Total.Equal(decimal.NewFromInt(1000)))
		mockCartService.AssertNotCalled(t, "LoadSessionCart", mock.Anything, mock.Anything)
	})

	t.Run("Success - Session Cart", func(t *testing.T) {
		mockCartService, cartHandler := setupCartTest(t)
		items := models.CartItems{"3": 2}

		mockCartService.On("LoadSessionCart", mock.Anything, "sess-1").Return(models.SessionCart{SessionID: "sess-1", Items: items}, nil).Once()
		mockCartService.On("Summarize", mock.Anything, items).Return(sampleSummary(), nil).Once()

		req := testutils.CreateSessionRequest(http.MethodGet, "/cart", nil, "sess-1", nil)
		rr := httptest.NewRecorder()

		cartHandler.GetCart().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - No Session", func(t *testing.T) {
		mockCartService, cartHandler := setupCartTest(t)

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/cart", nil, nil)
		rr := httptest.NewRecorder()

		cartHandler.GetCart().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, appErrors.ErrCodeBadRequest, decodeError(t, rr).Code)
		mockCartService.AssertNotCalled(t, "LoadSessionCart", mock.Anything, mock.Anything)
	})
}

func TestAddItem(t *testing.T) {
	t.Run("Success - User Cart", func(t *testing.T) {
		mockCartService, cartHandler := setupCartTest(t)
		userID := uuid.New()
		items := models.CartItems{"3": 2}

		mockCartService.On("AddUserItem", mock.Anything, userID, &models.AddItemRequest{ProductID: 3, Quantity: 2}).
			Return(&models.Cart{UserID: userID, Items: items}, nil).Once()
		mockCartService.On("Summarize", mock.Anything, items).Return(sampleSummary(), nil).Once()

		body, _ := json.Marshal(models.AddItemRequest{ProductID: 3, Quantity: 2})
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/cart/items", bytes.NewReader(body), userID, nil)
		rr := httptest.NewRecorder()

		cartHandler.AddItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Success - Session Cart Saved", func(t *testing.T) {
		mockCartService, cartHandler := setupCartTest(t)
		empty := models.SessionCart{SessionID: "sess-1", Items: models.CartItems{}}
		filled := models.SessionCart{SessionID: "sess-1", Items: models.CartItems{"3": 1}}

		mockCartService.On("LoadSessionCart", mock.Anything, "sess-1").Return(empty, nil).Once()
		mockCartService.On("AddSessionItem", mock.Anything, empty, mock.AnythingOfType("*models.AddItemRequest")).Return(filled, nil).Once()
		mockCartService.On("SaveSessionCart", mock.Anything, filled).Return(nil).Once()
		mockCartService.On("Summarize", mock.Anything, filled.Items).Return(sampleSummary(), nil).Once()

		body, _ := json.Marshal(models.AddItemRequest{ProductID: 3, Quantity: 1})
		req := testutils.CreateSessionRequest(http.MethodPost, "/cart/items", bytes.NewReader(body), "sess-1", nil)
		rr := httptest.NewRecorder()

		cartHandler.AddItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Insufficient Stock", func(t *testing.T) {
		mockCartService, cartHandler := setupCartTest(t)
		userID := uuid.New()

		mockCartService.On("AddUserItem", mock.Anything, userID, mock.AnythingOfType("*models.AddItemRequest")).
			Return(nil, appErrors.InsufficientStockError("Vaso 12oz", 4)).Once()

		body, _ := json.Marshal(models.AddItemRequest{ProductID: 3, Quantity: 9})
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/cart/items", bytes.NewReader(body), userID, nil)
		rr := httptest.NewRecorder()

		cartHandler.AddItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, appErrors.ErrCodeInsufficientStock, decodeError(t, rr).Code)
		mockCartService.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Invalid Quantity", func(t *testing.T) {
		mockCartService, cartHandler := setupCartTest(t)

		body, _ := json.Marshal(models.AddItemRequest{ProductID: 3, Quantity: 0})
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/cart/items", bytes.NewReader(body), uuid.New(), nil)
		rr := httptest.NewRecorder()

		cartHandler.AddItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, appErrors.ErrCodeValidation, decodeError(t, rr).Code)
		mockCartService.AssertNotCalled(t, "AddUserItem", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdateQuantity(t *testing.T) {
	t.Run("Success - Zero Removes Line", func(t *testing.T) {
		mockCartService, cartHandler := setupCartTest(t)
		userID := uuid.New()

		mockCartService.On("UpdateUserItem", mock.Anything, userID, &models.UpdateQuantityRequest{ProductID: 3, Quantity: 0}).
			Return(&models.Cart{UserID: userID, Items: models.CartItems{}}, nil).Once()
		mockCartService.On("Summarize", mock.Anything, models.CartItems{}).Return(&models.CartSummary{}, nil).Once()

		body, _ := json.Marshal(models.UpdateQuantityRequest{ProductID: 3, Quantity: 0})
		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/cart/items", bytes.NewReader(body), userID, nil)
		rr := httptest.NewRecorder()

		cartHandler.UpdateQuantity().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Session Item Missing", func(t *testing.T) {
		mockCartService, cartHandler := setupCartTest(t)
		cart := models.SessionCart{SessionID: "sess-1", Items: models.CartItems{}}

		mockCartService.On("LoadSessionCart", mock.Anything, "sess-1").Return(cart, nil).Once()
		mockCartService.On("UpdateSessionItem", mock.Anything, cart, mock.AnythingOfType("*models.UpdateQuantityRequest")).
			Return(cart, appErrors.NotFoundError("Item not found in cart")).Once()

		body, _ := json.Marshal(models.UpdateQuantityRequest{ProductID: 3, Quantity: 2})
		req := testutils.CreateSessionRequest(http.MethodPut, "/cart/items", bytes.NewReader(body), "sess-1", nil)
		rr := httptest.NewRecorder()

		cartHandler.UpdateQuantity().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockCartService.AssertNotCalled(t, "SaveSessionCart", mock.Anything, mock.Anything)
	})
}

func TestRemoveItem(t *testing.T) {
	t.Run("Success - Session Cart", func(t *testing.T) {
		mockCartService, cartHandler := setupCartTest(t)
		cart := models.SessionCart{SessionID: "sess-1", Items: models.CartItems{"3": 1}}
		emptied := models.SessionCart{SessionID: "sess-1", Items: models.CartItems{}}

		mockCartService.On("LoadSessionCart", mock.Anything, "sess-1").Return(cart, nil).Once()
		mockCartService.On("RemoveSessionItem", cart, int64(3)).Return(emptied).Once()
		mockCartService.On("SaveSessionCart", mock.Anything, emptied).Return(nil).Once()
		mockCartService.On("Summarize", mock.Anything, emptied.Items).Return(&models.CartSummary{}, nil).Once()

		req := testutils.CreateSessionRequest(http.MethodDelete, "/cart/items/3", nil, "sess-1", map[string]string{"productId": "3"})
		rr := httptest.NewRecorder()

		cartHandler.RemoveItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Invalid Product ID", func(t *testing.T) {
		mockCartService, cartHandler := setupCartTest(t)

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/cart/items/abc", nil, uuid.New(), map[string]string{"productId": "abc"})
		rr := httptest.NewRecorder()

		cartHandler.RemoveItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockCartService.AssertNotCalled(t, "RemoveUserItem", mock.Anything, mock.Anything, mock.Anything)
	})
}
