package messaging

import (
	"context"
	"log/slog"
	"strings"

	"khojo/config"
	"khojo/internal/domain/service"
	"khojo/internal/errors"
	"khojo/internal/phone"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// ErrTemplatesUnsupported is returned by the Twilio provider for template
// sends; callers fall back to a plain-text rendering.
var ErrTemplatesUnsupported = errors.New("twilio provider does not support template messages")

// twilioMessenger is the fallback provider, kept from the integration's
// pre-Meta era. It addresses recipients via Twilio's whatsapp: scheme.
type twilioMessenger struct {
	client *twilio.RestClient
	from   string
	logger *slog.Logger
}

// NewTwilioMessenger creates the Twilio-backed Messenger.
func NewTwilioMessenger(cfg *config.TwilioConfig, logger *slog.Logger) (service.Messenger, error) {
	if cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.FromNumber == "" {
		return nil, errors.New("missing twilio configuration")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	return &twilioMessenger{
		client: client,
		from:   cfg.FromNumber,
		logger: logger,
	}, nil
}

// SendText sends a free-form WhatsApp text message via Twilio.
func (m *twilioMessenger) SendText(ctx context.Context, to, body string) error {
	formatted := phone.International(to)
	if formatted == "" {
		return errors.Errorf("invalid recipient phone number: %q", to)
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetTo("whatsapp:" + formatted)
	params.SetFrom(whatsappAddress(m.from))
	params.SetBody(body)

	if _, err := m.client.Api.CreateMessage(params); err != nil {
		return errors.Wrap(err, "twilio create message")
	}

	m.logger.Debug("WhatsApp message sent via twilio", slog.String("to", formatted))

	return nil
}

// SendTemplate is unsupported on the Twilio path.
func (m *twilioMessenger) SendTemplate(_ context.Context, _, _, _ string, _ []service.TemplateComponent) error {
	return errors.WithStack(ErrTemplatesUnsupported)
}

func whatsappAddress(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}

	return "whatsapp:" + number
}
