package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/frozz/storefront/internal/api/middleware"
	"github.com/frozz/storefront/internal/models"
	"github.com/google/uuid"
)

func newRequest(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	return req
}

func withLogger(ctx context.Context) context.Context {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return middleware.WithLogger(ctx, logger)
}

func CreateTestRequestWithContext(method, target string, body io.Reader, userID uuid.UUID, pathParams map[string]string) *http.Request {
	req := newRequest(method, target, body, pathParams)

	claims := &models.Claims{UserID: userID, Email: "test@example.com"}
	ctx := middleware.WithClaims(withLogger(req.Context()), claims)

	return req.WithContext(ctx)
}

// CreateStaffRequest authenticates the request as a staff member.
func CreateStaffRequest(method, target string, body io.Reader, userID uuid.UUID, superuser bool, pathParams map[string]string) *http.Request {
	req := newRequest(method, target, body, pathParams)

	claims := &models.Claims{UserID: userID, Email: "staff@example.com", IsStaff: true, IsSuperuser: superuser}
	ctx := middleware.WithClaims(withLogger(req.Context()), claims)

	return req.WithContext(ctx)
}

func CreateTestRequestWithoutContext(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := newRequest(method, target, body, pathParams)
	return req.WithContext(withLogger(req.Context()))
}

// CreateSessionRequest is an anonymous request carrying a resolved session id.
func CreateSessionRequest(method, target string, body io.Reader, sessionID string, pathParams map[string]string) *http.Request {
	req := newRequest(method, target, body, pathParams)
	ctx := middleware.WithSessionID(withLogger(req.Context()), sessionID)

	return req.WithContext(ctx)
}
