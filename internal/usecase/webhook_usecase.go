package usecase

import (
	"context"
)

// WebhookUsecase handles the WhatsApp webhook lifecycle: the one-time GET
// subscription handshake and the processing of verified POST payloads.
type WebhookUsecase interface {
	// VerifyHandshake checks the hub.mode / hub.verify_token pair from the
	// subscription handshake and returns the challenge to echo back.
	VerifyHandshake(mode, verifyToken, challenge string) (string, bool)

	// ProcessPayload decodes a verified raw webhook body and walks every
	// entry and change in it. A failure on one message never aborts the
	// processing of its siblings.
	ProcessPayload(ctx context.Context, body []byte) error
}
