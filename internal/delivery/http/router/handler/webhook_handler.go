package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"khojo/config"
	"khojo/internal/infra/signature"
	"khojo/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultProcessTimeout = 30 * time.Second

// Dispatcher runs the webhook continuation after the ACK has been written.
// The production dispatcher detaches onto a new goroutine; tests substitute a
// synchronous one.
type Dispatcher func(timeout time.Duration, task func(ctx context.Context))

// AsyncDispatcher runs task on its own goroutine under a detached,
// timeout-bounded context. The request context cannot be used: it is canceled
// the moment the ACK response is written.
func AsyncDispatcher(timeout time.Duration, task func(ctx context.Context)) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		task(ctx)
	}()
}

// WebhookHandlerParams holds dependencies for WebhookHandler, injected by Fx.
type WebhookHandlerParams struct {
	fx.In

	WebhookUC usecase.WebhookUsecase
	Verifier  *signature.Verifier
	Config    *config.Config
	Logger    *slog.Logger
}

// WebhookHandler receives the Meta WhatsApp webhook traffic.
type WebhookHandler struct {
	webhookUC      usecase.WebhookUsecase
	verifier       *signature.Verifier
	processTimeout time.Duration
	logger         *slog.Logger
	dispatch       Dispatcher
}

// NewWebhookHandler is the constructor for WebhookHandler.
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	processTimeout := defaultProcessTimeout
	if params.Config.Webhook != nil && params.Config.Webhook.ProcessTimeout > 0 {
		processTimeout = params.Config.Webhook.ProcessTimeout
	}

	return &WebhookHandler{
		webhookUC:      params.WebhookUC,
		verifier:       params.Verifier,
		processTimeout: processTimeout,
		logger:         params.Logger,
		dispatch:       AsyncDispatcher,
	}
}

// Verify handles the GET subscription handshake. Meta expects the literal
// challenge back as plain text on success and a bare 403 otherwise.
func (h *WebhookHandler) Verify(c echo.Context) error {
	challenge, ok := h.webhookUC.VerifyHandshake(
		c.QueryParam("hub.mode"),
		c.QueryParam("hub.verify_token"),
		c.QueryParam("hub.challenge"),
	)
	if !ok {
		h.logger.Warn("Webhook handshake rejected", slog.String("mode", c.QueryParam("hub.mode")))

		return c.NoContent(http.StatusForbidden)
	}

	h.logger.Info("Webhook subscription verified")

	return c.String(http.StatusOK, challenge)
}

// Receive handles POST deliveries: verify the signature over the exact wire
// bytes, ACK immediately, then process on a detached context. Verification
// failures return a bare 403 with no detail for the forger.
func (h *WebhookHandler) Receive(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	strategy, err := h.verifier.Verify(c.Request().Header, body)
	if err != nil {
		h.logger.Warn("Webhook signature rejected", slog.String("error", err.Error()))

		return c.NoContent(http.StatusForbidden)
	}

	h.logger.Info("Webhook delivery accepted", slog.String("trustPath", strategy))

	h.dispatch(h.processTimeout, func(ctx context.Context) {
		if err := h.webhookUC.ProcessPayload(ctx, body); err != nil {
			h.logger.Error("Failed to process webhook payload", slog.String("error", err.Error()))
		}
	})

	return c.NoContent(http.StatusOK)
}
