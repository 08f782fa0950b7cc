package impl

import (
	"io"
	"log/slog"

	"khojo/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Webhook: &config.WebhookConfig{
			VerifyToken: "verify-token",
		},
		Messaging: &config.MessagingConfig{
			Provider: "meta",
			Meta: &config.MetaConfig{
				AccessToken:   "token",
				PhoneNumberID: "12345",
			},
		},
		Frontend: &config.FrontendConfig{
			BaseURL: "https://laarikhojo.in",
		},
	}
}
