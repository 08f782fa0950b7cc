// Package service defines interfaces for external collaborators the use cases
// depend on.
package service

import "context"

// TemplateComponent mirrors the messaging platform's template component
// structure (body parameters etc.).
type TemplateComponent struct {
	Type       string              `json:"type"`
	Parameters []TemplateParameter `json:"parameters"`
}

// TemplateParameter is a single template variable.
type TemplateParameter struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Messenger sends outbound WhatsApp messages to a vendor. Implementations
// must bound every call with a timeout; sends happen inside fire-and-forget
// webhook continuations and an unbounded call would leak goroutines.
// The "to" number must be pre-normalized by the caller.
type Messenger interface {
	// SendText sends a free-form text message (24h customer-care window).
	SendText(ctx context.Context, to, body string) error

	// SendTemplate sends a pre-approved template message, usable outside
	// the 24h window.
	SendTemplate(ctx context.Context, to, templateName, languageCode string, components []TemplateComponent) error
}
