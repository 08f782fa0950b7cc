package messaging

import (
	"log/slog"

	"khojo/config"
	"khojo/internal/domain/service"

	"github.com/pkg/errors"
)

// Provider identifiers accepted in messaging.provider.
const (
	ProviderMeta   = "meta"
	ProviderTwilio = "twilio"
)

// NewMessenger builds the outbound messenger selected by configuration.
// Meta is the default; Twilio remains available for accounts that never
// migrated off it.
func NewMessenger(cfg *config.Config, logger *slog.Logger) (service.Messenger, error) {
	if cfg.Messaging == nil {
		return nil, errors.New("messaging config is required")
	}

	switch cfg.Messaging.Provider {
	case ProviderMeta, "":
		if cfg.Messaging.Meta == nil {
			return nil, errors.New("messaging.meta config is required")
		}

		return NewMetaMessenger(cfg.Messaging.Meta, nil, logger)
	case ProviderTwilio:
		if cfg.Messaging.Twilio == nil {
			return nil, errors.New("messaging.twilio config is required")
		}

		return NewTwilioMessenger(cfg.Messaging.Twilio, logger)
	default:
		return nil, errors.Errorf("unknown messaging provider: %s", cfg.Messaging.Provider)
	}
}
