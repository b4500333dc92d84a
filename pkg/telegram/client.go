package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/frozz/storefront/internal/config"
)

// ErrDisabled is returned when the bot token or chat id is missing.
var ErrDisabled = errors.New("telegram notifications are not configured")

type Client interface {
	Enabled() bool
	SendMessage(ctx context.Context, text string) error
	SendDocument(ctx context.Context, doc Document) error
}

type Document struct {
	Filename    string
	ContentType string
	Caption     string
	Data        []byte
}

type botClient struct {
	baseURL  string
	botToken string
	chatID   string
	client   *http.Client
}

func NewClient(cfg *config.Telegram) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	return &botClient{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		botToken: strings.TrimSpace(cfg.BotToken),
		chatID:   strings.TrimSpace(cfg.ChatID),
		client:   &http.Client{Timeout: timeout},
	}
}

func (c *botClient) Enabled() bool {
	return c.botToken != "" && c.chatID != ""
}

func (c *botClient) endpoint(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.botToken, method)
}

func (c *botClient) SendMessage(ctx context.Context, text string) error {
	if !c.Enabled() {
		return ErrDisabled
	}

	payload, err := json.Marshal(map[string]string{
		"chat_id": c.chatID,
		"text":    text,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("sendMessage"), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *botClient) SendDocument(ctx context.Context, doc Document) error {
	if !c.Enabled() {
		return ErrDisabled
	}

	body, contentType, err := c.buildDocumentMultipart(doc)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("sendDocument"), body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	return c.do(req)
}

func (c *botClient) buildDocumentMultipart(doc Document) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("chat_id", c.chatID); err != nil {
		return nil, "", err
	}

	if doc.Caption != "" {
		if err := writer.WriteField("caption", doc.Caption); err != nil {
			return nil, "", err
		}
	}

	contentType := doc.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="document"; filename="%s"`, escapeQuotes(doc.Filename)))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", err
	}

	if _, err := part.Write(doc.Data); err != nil {
		return nil, "", err
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return &buf, writer.FormDataContentType(), nil
}

func (c *botClient) do(req *http.Request) error {
	resp, err := c.client.Do(req)
	if err != nil {
		// url.Error embeds the request URL, and the URL embeds the bot token.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return fmt.Errorf("telegram %s request failed: %w", strings.ToLower(urlErr.Op), urlErr.Err)
		}
		return fmt.Errorf("telegram request failed: %s", c.redact(err.Error()))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("telegram api returned %d: %s", resp.StatusCode, c.redact(strings.TrimSpace(string(detail))))
	}

	return nil
}

func (c *botClient) redact(s string) string {
	if c.botToken == "" {
		return s
	}
	return strings.ReplaceAll(s, c.botToken, "<redacted>")
}

func escapeQuotes(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
