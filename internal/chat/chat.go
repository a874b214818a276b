// Package chat serves the browser chat page, the JSON respond API and the
// /ws/chat WebSocket over a campus responder.
package chat

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/campusbot/internal/responder"
	"github.com/ziadkadry99/campusbot/internal/session"
)

// Chat holds the responder and the session defaults applied to every
// WebSocket conversation.
type Chat struct {
	// AllowAllOrigins lets any browser origin open /ws/chat. Otherwise only
	// same-host and localhost pages may connect.
	AllowAllOrigins bool

	resp   *responder.Responder
	opts   session.Options
	logger *log.Logger
}

// New creates a Chat. opts supplies default names and exit phrases; an
// empty agent name picks a random one per conversation.
func New(resp *responder.Responder, opts session.Options, logger *log.Logger) *Chat {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	opts.Logger = logger
	return &Chat{resp: resp, opts: opts, logger: logger}
}

// RegisterRoutes mounts the chat page, API and WebSocket onto r.
func (c *Chat) RegisterRoutes(r chi.Router) {
	r.Get("/", c.ServeIndex)
	r.Post("/api/respond", c.handleRespond)
	r.Get("/api/agent-name", c.handleAgentName)
	r.Get("/api/facilities", c.handleFacilities)
	r.Get("/ws/chat", c.handleWebSocket)
}
