package handlers

import (
	"log/slog"
	"net/http"

	"github.com/frozz/storefront/internal/api/middleware"
	"github.com/frozz/storefront/internal/errors"
	"github.com/frozz/storefront/internal/models"
	"github.com/frozz/storefront/internal/utils/response"
)

// requireClaims writes a 401 and returns false when the request is anonymous.
func requireClaims(w http.ResponseWriter, r *http.Request, action string) (*models.Claims, *slog.Logger, bool) {
	logger := middleware.LoggerFromContext(r.Context())

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		logger.Warn("Unauthorized attempt", slog.String("action", action))
		response.Error(w, errors.UnauthorizedError("Authentication required"))
		return nil, logger, false
	}

	return claims, logger.With(slog.String("userID", claims.UserID.String())), true
}

// requireSession returns the visitor's session id, set by middleware.Session.
func requireSession(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		middleware.LoggerFromContext(r.Context()).Warn("Request without a session")
		response.Error(w, errors.BadRequestError("Session is required"))
		return "", false
	}

	return sessionID, true
}

func paginated(data any, total, page, pageSize int) models.PaginatedResponse {
	return models.NewPage(data, total, page, pageSize)
}
