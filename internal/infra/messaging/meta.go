// Package messaging contains the outbound WhatsApp Messenger implementations.
package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"khojo/config"
	"khojo/internal/domain/service"
	"khojo/internal/errors"
	"khojo/internal/phone"
)

const (
	defaultGraphAPIBaseURL = "https://graph.facebook.com"
	defaultGraphAPIVersion = "v21.0"
	defaultSendTimeout     = 10 * time.Second
)

// metaMessenger sends messages through the Meta WhatsApp Business Cloud API.
type metaMessenger struct {
	client        *http.Client
	baseURL       string
	version       string
	accessToken   string
	phoneNumberID string
	logger        *slog.Logger
}

// NewMetaMessenger creates the Graph API Messenger. A nil client gets a
// timeout-bounded default; sends run inside fire-and-forget webhook
// continuations and must never block indefinitely.
func NewMetaMessenger(cfg *config.MetaConfig, client *http.Client, logger *slog.Logger) (service.Messenger, error) {
	if strings.TrimSpace(cfg.AccessToken) == "" {
		return nil, errors.New("meta access token is required")
	}
	if strings.TrimSpace(cfg.PhoneNumberID) == "" {
		return nil, errors.New("meta phone number id is required")
	}

	if client == nil {
		client = &http.Client{Timeout: defaultSendTimeout}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.APIBaseURL), "/")
	if baseURL == "" {
		baseURL = defaultGraphAPIBaseURL
	}
	version := strings.Trim(strings.TrimSpace(cfg.APIVersion), "/")
	if version == "" {
		version = defaultGraphAPIVersion
	}

	return &metaMessenger{
		client:        client,
		baseURL:       baseURL,
		version:       version,
		accessToken:   strings.TrimSpace(cfg.AccessToken),
		phoneNumberID: strings.TrimSpace(cfg.PhoneNumberID),
		logger:        logger,
	}, nil
}

// SendText sends a free-form text message.
func (m *metaMessenger) SendText(ctx context.Context, to, body string) error {
	return m.call(ctx, map[string]any{
		"to":   to,
		"type": "text",
		"text": map[string]any{
			"body":        body,
			"preview_url": false,
		},
	})
}

// SendTemplate sends a pre-approved template message.
func (m *metaMessenger) SendTemplate(ctx context.Context, to, templateName, languageCode string, components []service.TemplateComponent) error {
	if languageCode == "" {
		languageCode = "en"
	}

	return m.call(ctx, map[string]any{
		"to":   to,
		"type": "template",
		"template": map[string]any{
			"name":       templateName,
			"language":   map[string]any{"code": languageCode},
			"components": components,
		},
	})
}

func (m *metaMessenger) call(ctx context.Context, payload map[string]any) error {
	to, _ := payload["to"].(string)
	formatted := phone.International(to)
	if formatted == "" {
		return errors.Errorf("invalid recipient phone number: %q", to)
	}
	payload["to"] = formatted
	payload["messaging_product"] = "whatsapp"

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "marshal message payload")
	}

	endpoint := m.baseURL + "/" + m.version + "/" + url.PathEscape(m.phoneNumberID) + "/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build graph api request")
	}
	req.Header.Set("Authorization", "Bearer "+m.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "send graph api request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))

		return errors.Errorf("graph api returned %d: %s", resp.StatusCode, string(respBody))
	}

	m.logger.Debug("WhatsApp message sent",
		slog.String("to", formatted),
		slog.Any("type", payload["type"]),
	)

	return nil
}
