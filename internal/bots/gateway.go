package bots

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// maxWebhookBody caps the size of a platform webhook payload.
const maxWebhookBody = 1 << 20

// MessageHandler processes incoming messages and produces responses.
type MessageHandler interface {
	HandleMessage(ctx context.Context, msg IncomingMessage) (*OutgoingMessage, error)
}

// Gateway is the platform-agnostic bot gateway that routes messages from
// the Slack and Teams webhooks to a handler.
type Gateway struct {
	handler MessageHandler
}

// NewGateway creates a new Gateway with the given message handler.
func NewGateway(handler MessageHandler) *Gateway {
	return &Gateway{handler: handler}
}

// Process routes an incoming message through the handler.
func (g *Gateway) Process(ctx context.Context, msg IncomingMessage) (*OutgoingMessage, error) {
	resp, err := g.handler.HandleMessage(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("handling %s message: %w", msg.Platform, err)
	}
	if resp == nil {
		return nil, fmt.Errorf("handling %s message: no response", msg.Platform)
	}
	return resp, nil
}

// readWebhookBody reads at most maxWebhookBody bytes of the request body.
func readWebhookBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
}
