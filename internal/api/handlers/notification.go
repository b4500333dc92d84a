package handlers

import (
	"log/slog"
	"net/http"

	"github.com/frozz/storefront/internal/api/middleware"
	service "github.com/frozz/storefront/internal/services"
	"github.com/frozz/storefront/internal/utils"
	"github.com/frozz/storefront/internal/utils/response"
)

// NotificationHandler lets staff audit delivery attempts.
type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// ListNotifications godoc
//
//	@Summary		List delivery attempts for a quotation (staff)
//	@Tags			Notifications
//	@Produce		json
//	@Param			id	path		int						true	"Quotation ID"
//	@Success		200	{array}		models.Notification		"Attempts, newest first"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid quotation id"
//	@Security		BearerAuth
//	@Router			/quotations/{id}/notifications [get]
func (h *NotificationHandler) ListNotifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseInt64(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		notifications, err := h.notificationService.ListNotifications(r.Context(), id)
		if err != nil {
			logger.Error("Failed to list notifications", slog.Int64("quotationId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Notifications listed", slog.Int("count", len(notifications)))
		response.Success(w, http.StatusOK, notifications)
	}
}

// GetNotification godoc
//
//	@Summary		Get a delivery attempt (staff)
//	@Tags			Notifications
//	@Produce		json
//	@Param			id	path		string					true	"Notification ID"	Format(uuid)
//	@Success		200	{object}	models.Notification		"Attempt"
//	@Failure		404	{object}	response.ErrorResponse	"Notification not found"
//	@Security		BearerAuth
//	@Router			/notifications/{id} [get]
func (h *NotificationHandler) GetNotification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseUUID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		notification, err := h.notificationService.GetNotification(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, notification)
	}
}
