package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/frozz/storefront/internal/models"
	"github.com/frozz/storefront/internal/utils"
	"github.com/google/uuid"
)

// NotificationRepository keeps the delivery log of Telegram and email sends.
type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *models.Notification) error
	GetNotificationById(ctx context.Context, id uuid.UUID) (*models.Notification, error)
	UpdateNotificationStatus(ctx context.Context, id uuid.UUID, status models.NotificationStatus, errorMsg string) error
	ListNotifications(ctx context.Context, quotationID int64) ([]*models.Notification, error)
}

type notificationRepository struct {
	DB *sql.DB
}

func NewNotificationRepo(db *sql.DB) NotificationRepository {
	return &notificationRepository{DB: db}
}

const (
	notificationColumns = `id, quotation_id, channel, recipient, subject, content, status, error_message, created_at, updated_at, sent_at`

	insertNotificationSQL = `
		INSERT INTO notifications (id, quotation_id, channel, recipient, subject, content, status, error_message, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at`

	// sent_at is stamped once, on the first transition to sent.
	updateNotificationSQL = `
		UPDATE notifications SET status = $1, error_message = $2, updated_at = NOW(),
			sent_at = CASE WHEN $1 = 'sent' THEN COALESCE(sent_at, NOW()) ELSE sent_at END
		WHERE id = $3`
)

func (r *notificationRepository) CreateNotification(ctx context.Context, n *models.Notification) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	err := r.DB.QueryRowContext(dbCtx, insertNotificationSQL,
		n.ID, n.QuotationID, n.Channel, n.Recipient, n.Subject, n.Content, n.Status, n.Error,
	).Scan(&n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert notification %s: %w", n.ID, err)
	}

	return nil
}

func scanNotification(row rowScanner) (*models.Notification, error) {
	var (
		n      models.Notification
		sentAt sql.NullTime
	)

	if err := row.Scan(&n.ID, &n.QuotationID, &n.Channel, &n.Recipient, &n.Subject, &n.Content,
		&n.Status, &n.Error, &n.CreatedAt, &n.UpdatedAt, &sentAt); err != nil {
		return nil, err
	}

	if sentAt.Valid {
		n.SentAt = &sentAt.Time
	}

	return &n, nil
}

func (r *notificationRepository) GetNotificationById(ctx context.Context, id uuid.UUID) (*models.Notification, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	n, err := scanNotification(r.DB.QueryRowContext(dbCtx, `SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, err
	case err != nil:
		return nil, fmt.Errorf("select notification %s: %w", id, err)
	}

	return n, nil
}

// UpdateNotificationStatus returns sql.ErrNoRows when id is unknown.
func (r *notificationRepository) UpdateNotificationStatus(ctx context.Context, id uuid.UUID, status models.NotificationStatus, errorMsg string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, updateNotificationSQL, status, errorMsg, id)
	if err != nil {
		return fmt.Errorf("update notification %s: %w", id, err)
	}

	if err := expectOneRow(result); err != nil {
		return fmt.Errorf("update notification %s: %w", id, err)
	}

	return nil
}

// ListNotifications returns the delivery log of a quotation, newest first.
func (r *notificationRepository) ListNotifications(ctx context.Context, quotationID int64) ([]*models.Notification, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx,
		`SELECT `+notificationColumns+` FROM notifications WHERE quotation_id = $1 ORDER BY created_at DESC`, quotationID)
	if err != nil {
		return nil, fmt.Errorf("list notifications of quotation %d: %w", quotationID, err)
	}
	defer rows.Close()

	notifications := []*models.Notification{}
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}
