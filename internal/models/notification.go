package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationChannel string

const (
	NotificationChannelTelegram NotificationChannel = "telegram"
	NotificationChannelEmail    NotificationChannel = "email"
)

type NotificationStatus string

const (
	StatusPending NotificationStatus = "pending"
	StatusSent    NotificationStatus = "sent"
	StatusFailed  NotificationStatus = "failed"
	StatusSkipped NotificationStatus = "skipped"
)

// Notification records one delivery attempt for a quotation.
type Notification struct {
	ID          uuid.UUID           `json:"id"`
	QuotationID int64               `json:"quotation_id"`
	Channel     NotificationChannel `json:"channel"`
	Recipient   string              `json:"recipient"`
	Subject     string              `json:"subject,omitempty"`
	Content     string              `json:"content"`
	Status      NotificationStatus  `json:"status"`
	Error       string              `json:"error,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	SentAt      *time.Time          `json:"sent_at,omitempty"`
}

type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

type EmailNotificationRequest struct {
	To          string       `json:"to" validate:"required,email"`
	Subject     string       `json:"subject" validate:"required"`
	Content     string       `json:"content" validate:"required"`
	HTMLContent string       `json:"html_content,omitempty"`
	CC          []string     `json:"cc,omitempty" validate:"omitempty,dive,email"`
	BCC         []string     `json:"bcc,omitempty" validate:"omitempty,dive,email"`
	Attachments []Attachment `json:"-"`
}
