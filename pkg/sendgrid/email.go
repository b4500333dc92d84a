// Package sendgrid delivers transactional email through the SendGrid v3 API.
package sendgrid

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/frozz/storefront/internal/models"
	sg "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendEndpoint = "/v3/mail/send"

type EmailService interface {
	Send(ctx context.Context, req *models.EmailNotificationRequest) error
}

type Option func(*emailService)

// WithHost points the client at another API host, e.g. a sandbox or a test server.
func WithHost(host string) Option {
	return func(e *emailService) { e.host = host }
}

type emailService struct {
	apiKey    string
	host      string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string, opts ...Option) EmailService {
	e := &emailService{apiKey: apiKey, fromEmail: fromEmail, fromName: fromName}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *emailService) message(req *models.EmailNotificationRequest) *mail.SGMailV3 {
	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail(e.fromName, e.fromEmail))

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail("", req.To))
	for _, cc := range req.CC {
		p.AddCCs(mail.NewEmail("", cc))
	}
	for _, bcc := range req.BCC {
		p.AddBCCs(mail.NewEmail("", bcc))
	}
	p.Subject = req.Subject
	m.AddPersonalizations(p)

	m.AddContent(mail.NewContent("text/plain", req.Content))
	if req.HTMLContent != "" {
		m.AddContent(mail.NewContent("text/html", req.HTMLContent))
	}

	for _, a := range req.Attachments {
		att := mail.NewAttachment().
			SetContent(base64.StdEncoding.EncodeToString(a.Content)).
			SetType(a.ContentType).
			SetFilename(a.Filename).
			SetDisposition("attachment")
		m.AddAttachment(att)
	}

	return m
}

func (e *emailService) Send(ctx context.Context, req *models.EmailNotificationRequest) error {
	request := sg.GetRequest(e.apiKey, sendEndpoint, e.host)
	request.Method = "POST"
	request.Body = mail.GetRequestBody(e.message(req))

	resp, err := sg.MakeRequestWithContext(ctx, request)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}

	return nil
}
