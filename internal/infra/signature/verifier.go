// Package signature validates webhook authenticity via HMAC-SHA256 over the
// raw request body. Two independent trust paths exist: Meta delivering
// directly (app secret, X-Hub-Signature-256) and the relay forwarding on our
// behalf (shared secret, X-Relay-Signature). Each is a strategy; a request is
// accepted when the strategy matching its header verifies.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	"khojo/config"
	"khojo/internal/errors"
)

// Header names for the two supported trust paths.
const (
	HeaderMeta  = "X-Hub-Signature-256"
	HeaderRelay = "X-Relay-Signature"
)

const signaturePrefix = "sha256="

var (
	// ErrMissingSignature means no supported signature header was present.
	ErrMissingSignature = errors.New("signature header is required")
	// ErrMalformedSignature means the header value lacks the sha256= prefix.
	ErrMalformedSignature = errors.New("malformed signature header")
	// ErrInvalidSignature means the digest did not match the body.
	ErrInvalidSignature = errors.New("invalid signature")
	// ErrNoSecretConfigured means the path's secret is absent; fail closed.
	ErrNoSecretConfigured = errors.New("no signing secret configured")
)

// Strategy is one named verification path: a header to look for and the
// secret its digest is computed with.
type Strategy struct {
	Name   string
	Header string
	secret []byte
}

// NewStrategy builds a verification strategy. An empty secret produces a
// strategy that always fails closed.
func NewStrategy(name, header, secret string) Strategy {
	return Strategy{Name: name, Header: header, secret: []byte(secret)}
}

// Verifier tries an ordered list of strategies against a request.
type Verifier struct {
	strategies []Strategy
}

// NewVerifier creates a verifier over the given strategies. Strategies with
// empty secrets are dropped so an unconfigured path rejects instead of
// verifying against an empty key.
func NewVerifier(strategies ...Strategy) *Verifier {
	enabled := make([]Strategy, 0, len(strategies))
	for _, s := range strategies {
		if len(s.secret) > 0 {
			enabled = append(enabled, s)
		}
	}

	return &Verifier{strategies: enabled}
}

// Verify checks the request headers against the configured strategies and
// returns the name of the strategy that matched. body must be the exact bytes
// read from the wire; a re-serialized JSON object can differ in key order and
// whitespace and will never verify.
func (v *Verifier) Verify(header http.Header, body []byte) (string, error) {
	if len(v.strategies) == 0 {
		return "", errors.WithStack(ErrNoSecretConfigured)
	}

	presented := false
	for _, s := range v.strategies {
		value := header.Get(s.Header)
		if value == "" {
			continue
		}
		presented = true

		if !strings.HasPrefix(value, signaturePrefix) {
			return "", errors.Wrap(ErrMalformedSignature, s.Name)
		}

		if verifyHMAC(s.secret, body, value) {
			return s.Name, nil
		}
	}

	if !presented {
		return "", errors.WithStack(ErrMissingSignature)
	}

	return "", errors.WithStack(ErrInvalidSignature)
}

// Strategy names reported on accepted deliveries.
const (
	StrategyMeta  = "meta"
	StrategyRelay = "relay"
)

// NewFromConfig builds the production verifier from the configured webhook
// secrets. Meta's app secret is tried first, then the relay's shared secret.
func NewFromConfig(cfg *config.Config) *Verifier {
	var appSecret, relaySecret string
	if cfg.Webhook != nil {
		appSecret = cfg.Webhook.AppSecret
		relaySecret = cfg.Webhook.RelaySecret
	}

	return NewVerifier(
		NewStrategy(StrategyMeta, HeaderMeta, appSecret),
		NewStrategy(StrategyRelay, HeaderRelay, relaySecret),
	)
}

func verifyHMAC(secret, body []byte, presented string) bool {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	expected := signaturePrefix + hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(presented))
}
