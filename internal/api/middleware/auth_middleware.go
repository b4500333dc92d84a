package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/frozz/storefront/internal/errors"
	models "github.com/frozz/storefront/internal/models"
	"github.com/frozz/storefront/internal/utils/response"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey uuid.UUID

var UserContextKey = contextKey(uuid.New())

type AuthMiddleware struct {
	jwtKey []byte
}

func NewAuthMiddleware(jwtKey []byte) *AuthMiddleware {

	return &AuthMiddleware{jwtKey: jwtKey}

}

// ClaimsFromContext returns the authenticated user's claims, if any.
func ClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*models.Claims)
	return claims, ok && claims != nil
}

func WithClaims(ctx context.Context, claims *models.Claims) context.Context {
	return context.WithValue(ctx, UserContextKey, claims)
}

func (m *AuthMiddleware) parse(r *http.Request) (*models.Claims, error) {
	logger := LoggerFromContext(r.Context())

	// Token is of format : "Bearer <token>"
	tokenParts := strings.Split(r.Header.Get("Authorization"), " ")

	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		logger.Warn("Invalid authorization header format")
		return nil, errors.UnauthorizedError("Invalid authorization format")
	}

	claims := &models.Claims{}

	token, err := jwt.ParseWithClaims(tokenParts[1], claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok || t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			logger.Error("Unexpected signing method used in JWT", slog.Any("alg", t.Header["alg"]))
			return nil, errors.BadRequestError("unexpected signing method")
		}
		return m.jwtKey, nil
	})

	if err != nil {
		if appErr, ok := errors.IsAppError(err); ok {
			return nil, appErr
		}
		logger.Warn("JWT parsing failed", slog.String("error", err.Error()))
		return nil, errors.UnauthorizedError("Invalid or expired token")
	}

	if !token.Valid {
		logger.Warn("Invalid token")
		return nil, errors.UnauthorizedError("Invalid token")
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(time.Now()) {
		logger.Warn("Expired token", slog.String("userId", claims.UserID.String()))
		return nil, errors.UnauthorizedError("Token expired")
	}

	return claims, nil
}

func (m *AuthMiddleware) withUser(r *http.Request, claims *models.Claims) *http.Request {
	ctx := WithClaims(r.Context(), claims)

	requestScopedLogger := LoggerFromContext(ctx).With(slog.String("userId", claims.UserID.String()))
	ctx = WithLogger(ctx, requestScopedLogger)

	return r.WithContext(ctx)
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		if r.Header.Get("Authorization") == "" {
			logger.Warn("Missing authorization header")
			response.Error(w, errors.UnauthorizedError("Authorization header is required"))
			return
		}

		claims, err := m.parse(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		r = m.withUser(r, claims)
		LoggerFromContext(r.Context()).Info("User authenticated")

		next.ServeHTTP(w, r)
	}
}

// OptionalAuthenticate lets anonymous visitors through and only attaches
// claims when a valid token is presented. A bad token is still rejected.
func (m *AuthMiddleware) OptionalAuthenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.parse(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		next.ServeHTTP(w, m.withUser(r, claims))
	}
}

// RequireStaff must run after Authenticate.
func RequireStaff(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		if !claims.IsStaff && !claims.IsSuperuser {
			LoggerFromContext(r.Context()).Warn("Staff access denied")
			response.Error(w, errors.ForbiddenError("Staff access required"))
			return
		}

		next.ServeHTTP(w, r)
	}
}
