package service

import (
	"context"
	"database/sql"
	goErrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/frozz/storefront/internal/api/middleware"
	"github.com/frozz/storefront/internal/errors"
	"github.com/frozz/storefront/internal/metrics"
	"github.com/frozz/storefront/internal/models"
	repository "github.com/frozz/storefront/internal/repositories"
	"github.com/frozz/storefront/pkg/sendgrid"
	"github.com/frozz/storefront/pkg/telegram"
	"github.com/google/uuid"
)

const (
	telegramTextTimeout     = 5 * time.Second
	telegramDocumentTimeout = 10 * time.Second
	emailTimeout            = 10 * time.Second
)

// QuotationDocument is a rendered quotation ready to be attached.
type QuotationDocument struct {
	Filename    string
	ContentType string
	Data        []byte
}

// NotificationService pushes new quotations to the staff chat and, when
// configured, emails the client a copy. Delivery is best effort: failures are
// logged and recorded, never returned.
type NotificationService interface {
	NotifyNewQuotation(ctx context.Context, q *models.Quotation, registered bool, doc *QuotationDocument)
	GetNotification(ctx context.Context, id uuid.UUID) (*models.Notification, error)
	ListNotifications(ctx context.Context, quotationID int64) ([]*models.Notification, error)
}

type notificationService struct {
	repo         repository.NotificationRepository
	telegram     telegram.Client
	emailService sendgrid.EmailService
	chatID       string
	storeName    string
	currency     string
}

// NewNotificationService accepts a nil emailService when email is not configured.
func NewNotificationService(repo repository.NotificationRepository, tg telegram.Client, emailService sendgrid.EmailService, chatID string, store StoreInfo) NotificationService {
	return &notificationService{
		repo:         repo,
		telegram:     tg,
		emailService: emailService,
		chatID:       chatID,
		storeName:    store.Name,
		currency:     store.Currency,
	}
}

// StoreInfo carries the store identity used in outgoing messages.
type StoreInfo struct {
	Name     string
	Currency string
}

// QuotationSummary is the plain text alert staff receive for a new quotation.
func QuotationSummary(q *models.Quotation, registered bool, currency string) string {
	kind := "Invitado / Anónimo"
	if registered && q.ClientUserID != nil {
		kind = "Registrado"
	}

	lines := []string{
		fmt.Sprintf("🧊 Nueva cotización / pedido #%d", q.ID),
		"Tipo de cliente: " + kind,
		"Nombre: " + dash(q.ClientName),
		"Correo: " + dash(q.ClientEmail),
		"Teléfono (WhatsApp): " + dash(q.ClientPhone),
		"Ubicación: " + dash(q.ClientDepartamento) + " - " + dash(q.ClientCity),
		fmt.Sprintf("Total: %s %s", q.Total.StringFixed(2), currency),
	}

	if q.Notes != "" {
		lines = append(lines, "Notas: "+q.Notes)
	}

	return strings.Join(lines, "\n")
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}

	return s
}

func (n *notificationService) NotifyNewQuotation(ctx context.Context, q *models.Quotation, registered bool, doc *QuotationDocument) {
	logger := middleware.LoggerFromContext(ctx).With(slog.Int64("quotationId", q.ID))

	// the request may finish before delivery does
	ctx = middleware.WithLogger(context.WithoutCancel(ctx), logger)

	n.notifyTelegram(ctx, q, registered, doc)
	n.emailClient(ctx, q, doc)
}

func (n *notificationService) notifyTelegram(ctx context.Context, q *models.Quotation, registered bool, doc *QuotationDocument) {
	logger := middleware.LoggerFromContext(ctx)

	if n.telegram == nil || !n.telegram.Enabled() {
		logger.Warn("Telegram bot token or chat id missing, skipping notification")
		metrics.NotificationAttempt(string(models.NotificationChannelTelegram), string(models.StatusSkipped))
		return
	}

	text := QuotationSummary(q, registered, n.currency)

	// the document is still attempted when the text fails
	n.deliver(ctx, &models.Notification{
		QuotationID: q.ID,
		Channel:     models.NotificationChannelTelegram,
		Recipient:   n.chatID,
		Content:     text,
	}, telegramTextTimeout, func(ctx context.Context) error {
		return n.telegram.SendMessage(ctx, text)
	})

	if doc == nil {
		return
	}

	caption := fmt.Sprintf("📄 PDF de la cotización COT%d", q.ID)

	n.deliver(ctx, &models.Notification{
		QuotationID: q.ID,
		Channel:     models.NotificationChannelTelegram,
		Recipient:   n.chatID,
		Subject:     doc.Filename,
		Content:     caption,
	}, telegramDocumentTimeout, func(ctx context.Context) error {
		return n.telegram.SendDocument(ctx, telegram.Document{
			Filename:    doc.Filename,
			ContentType: doc.ContentType,
			Caption:     caption,
			Data:        doc.Data,
		})
	})
}

func (n *notificationService) emailClient(ctx context.Context, q *models.Quotation, doc *QuotationDocument) {
	if n.emailService == nil || q.ClientEmail == "" {
		return
	}

	req := &models.EmailNotificationRequest{
		To:      q.ClientEmail,
		Subject: fmt.Sprintf("%s - Cotización COT%d", n.storeName, q.ID),
		Content: fmt.Sprintf("Hola %s,\n\nAdjuntamos tu cotización COT%d por un total de %s %s.\nEs válida por 24 horas.\n\n%s",
			dash(q.ClientName), q.ID, q.Total.StringFixed(2), n.currency, n.storeName),
	}

	if doc != nil {
		req.Attachments = []models.Attachment{{Filename: doc.Filename, ContentType: doc.ContentType, Content: doc.Data}}
	}

	n.deliver(ctx, &models.Notification{
		QuotationID: q.ID,
		Channel:     models.NotificationChannelEmail,
		Recipient:   req.To,
		Subject:     req.Subject,
		Content:     req.Content,
	}, emailTimeout, func(ctx context.Context) error {
		return n.emailService.Send(ctx, req)
	})
}

// deliver records the attempt as pending, runs send under its own timeout
// and stores the outcome. Nothing here can fail the caller.
func (n *notificationService) deliver(ctx context.Context, notification *models.Notification, timeout time.Duration, send func(ctx context.Context) error) {
	logger := middleware.LoggerFromContext(ctx).With(slog.String("channel", string(notification.Channel)))

	notification.ID = uuid.New()
	notification.Status = models.StatusPending

	recorded := true
	if err := n.repo.CreateNotification(ctx, notification); err != nil {
		logger.Error("Failed to record notification", slog.Any("error", err))
		recorded = false
	}

	sendCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	status, errMsg := models.StatusSent, ""
	if err := send(sendCtx); err != nil {
		status, errMsg = models.StatusFailed, err.Error()
		logger.Error("Notification delivery failed", slog.Any("error", err))
	} else {
		logger.Info("Notification delivered")
	}

	notification.Status = status
	notification.Error = errMsg
	metrics.NotificationAttempt(string(notification.Channel), string(status))

	if !recorded {
		return
	}

	if err := n.repo.UpdateNotificationStatus(ctx, notification.ID, status, errMsg); err != nil {
		logger.Error("Failed to update notification status", slog.Any("error", err))
	}
}

func (n *notificationService) GetNotification(ctx context.Context, id uuid.UUID) (*models.Notification, error) {
	notification, err := n.repo.GetNotificationById(ctx, id)
	if goErrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFoundError("Notification not found").WithError(err)
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get notification").WithError(err)
	}

	return notification, nil
}

func (n *notificationService) ListNotifications(ctx context.Context, quotationID int64) ([]*models.Notification, error) {
	notifications, err := n.repo.ListNotifications(ctx, quotationID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list notifications").WithError(err)
	}

	return notifications, nil
}
