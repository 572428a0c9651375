// Package whatsapp provides the outbound message transport over the Meta
// Graph API. Delivery is fire-and-forget from the engine's perspective.
package whatsapp

import (
	"context"
	"log/slog"
)

// Sender delivers a text message to a WhatsApp number.
type Sender interface {
	Send(ctx context.Context, to, text string) error
}

// PlaceholderSender logs outbound messages instead of delivering them. It is
// used whenever no Graph API token is configured, so the engine can run
// end-to-end in development.
type PlaceholderSender struct {
	Logger *slog.Logger
}

func (p *PlaceholderSender) Send(ctx context.Context, to, text string) error {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "outbound_placeholder", "to", to, "text", text)
	return nil
}
