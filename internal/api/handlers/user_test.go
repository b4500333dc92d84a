package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frozz/storefront/internal/api/handlers"
	"github.com/frozz/storefront/internal/api/middleware"
	appErrors "github.com/frozz/storefront/internal/errors"
	"github.com/frozz/storefront/internal/models"
	"github.com/frozz/storefront/internal/services/mocks"
	"github.com/frozz/storefront/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Run("Success - User Registered", func(t *testing.T) {
		mockUserService := mocks.NewUserService(t)
		userHandler := handlers.NewUserHandler(mockUserService)

		reqBody := models.RegisterRequest{Email: "ana@example.com", Password: "secret123", Name: "Ana"}
		expected := &models.User{ID: uuid.New(), Email: reqBody.Email, Name: reqBody.Name}

		mockUserService.On("Register", mock.Anything, &reqBody).Return(expected, nil).Once()

		body, _ := json.Marshal(reqBody)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/users/register", bytes.NewReader(body), nil)
		rr := httptest.NewRecorder()

		userHandler.Register().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var user models.User
		decodeData(t, rr, &user)
		assert.Equal(t, expected.ID, user.ID)
		assert.NotContains(t, rr.Body.String(), "secret123")
	})

	t.Run("Failure - Duplicate Email", func(t *testing.T) {
		mockUserService := mocks.NewUserService(t)
		userHandler := handlers.NewUserHandler(mockUserService)

		mockUserService.On("Register", mock.Anything, mock.AnythingOfType("*models.RegisterRequest")).
			Return(nil, appErrors.DuplicateEntryError("Email already registered")).Once()

		body, _ := json.Marshal(models.RegisterRequest{Email: "ana@example.com", Password: "secret123", Name: "Ana"})
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/users/register", bytes.NewReader(body), nil)
		rr := httptest.NewRecorder()

		userHandler.Register().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, appErrors.ErrCodeDuplicateEntry, decodeError(t, rr).Code)
	})

	t.Run("Failure - Invalid Email", func(t *testing.T) {
		mockUserService := mocks.NewUserService(t)
		userHandler := handlers.NewUserHandler(mockUserService)

		body, _ := json.Marshal(models.RegisterRequest{Email: "not-an-email", Password: "secret123", Name: "Ana"})
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/users/register", bytes.NewReader(body), nil)
		rr := httptest.NewRecorder()

		userHandler.Register().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUserService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	credentials := models.LoginRequest{Email: "ana@example.com", Password: "secret123"}

	t.Run("Success - Session Cart Merged", func(t *testing.T) {
		mockUserService := mocks.NewUserService(t)
		userHandler := handlers.NewUserHandler(mockUserService)

		mockUserService.On("Login", mock.Anything, &credentials, "sess-1").
			Return(&models.LoginResponse{Success: true, Token: "jwt", ExpiresIn: 3600, MergedItems: 2}, nil).Once()

		body, _ := json.Marshal(credentials)
		req := testutils.CreateSessionRequest(http.MethodPost, "/users/login", bytes.NewReader(body), "sess-1", nil)
		rr := httptest.NewRecorder()

		userHandler.Login().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp models.LoginResponse
		decodeData(t, rr, &resp)
		assert.Equal(t, "jwt", resp.Token)
		assert.Equal(t, 2, resp.MergedItems)
	})

	t.Run("Failure - Invalid Credentials", func(t *testing.T) {
		mockUserService := mocks.NewUserService(t)
		userHandler := handlers.NewUserHandler(mockUserService)

		mockUserService.On("Login", mock.Anything, &credentials, "").
			Return(&models.LoginResponse{Success: false, RemainingTries: 4, Message: "Invalid credentials"}, nil).Once()

		body, _ := json.Marshal(credentials)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/users/login", bytes.NewReader(body), nil)
		rr := httptest.NewRecorder()

		userHandler.Login().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)

		var resp models.LoginResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, 4, resp.RemainingTries)
	})

	t.Run("Failure - Rate Limited", func(t *testing.T) {
		mockUserService := mocks.NewUserService(t)
		userHandler := handlers.NewUserHandler(mockUserService)

		mockUserService.On("Login", mock.Anything, &credentials, "").
			Return(&models.LoginResponse{Success: false, RetryAfter: 900}, nil).Once()

		body, _ := json.Marshal(credentials)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/users/login", bytes.NewReader(body), nil)
		rr := httptest.NewRecorder()

		userHandler.Login().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	})

	t.Run("Failure - Service Error", func(t *testing.T) {
		mockUserService := mocks.NewUserService(t)
		userHandler := handlers.NewUserHandler(mockUserService)

		mockUserService.On("Login", mock.Anything, &credentials, "").Return(nil, errors.New("redis down")).Once()

		body, _ := json.Marshal(credentials)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/users/login", bytes.NewReader(body), nil)
		rr := httptest.NewRecorder()

		userHandler.Login().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, appErrors.ErrCodeInternal, decodeError(t, rr).Code)
	})
}

func TestProfile(t *testing.T) {
	t.Run("Success - Profile Returned", func(t *testing.T) {
		mockUserService := mocks.NewUserService(t)
		userHandler := handlers.NewUserHandler(mockUserService)
		userID := uuid.New()

		mockUserService.On("GetUserByID", mock.Anything, userID).Return(&models.User{ID: userID, Name: "Ana"}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/users/profile", nil, userID, nil)
		rr := httptest.NewRecorder()

		userHandler.Profile().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var user models.User
		decodeData(t, rr, &user)
		assert.Equal(t, "Ana", user.Name)
	})

	t.Run("Failure - Anonymous", func(t *testing.T) {
		mockUserService := mocks.NewUserService(t)
		userHandler := handlers.NewUserHandler(mockUserService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/users/profile", nil, nil)
		rr := httptest.NewRecorder()

		userHandler.Profile().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Empty(t, middleware.SessionIDFromContext(req.Context()))
	})
}
