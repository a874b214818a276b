package chat

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/campusbot/internal/responder"
	"github.com/ziadkadry99/campusbot/internal/session"
)


const closeGracePeriod = time.Second

// chatRequest is the incoming WebSocket message format.
type chatRequest struct {
	Type      string `json:"type"` // "start" or "message"
	Content   string `json:"content"`
	UserName  string `json:"user_name,omitempty"`
	AgentName string `json:"agent_name,omitempty"`
}

// chatResponse is the outgoing WebSocket message format.
type chatResponse struct {
	Type      string             `json:"type"` // "welcome", "response", "goodbye" or "error"
	SessionID string             `json:"session_id"`
	Content   string             `json:"content"`
	AgentName string             `json:"agent_name,omitempty"`
	Category  responder.Category `json:"category,omitempty"`
	Facility  string             `json:"facility,omitempty"`
}

// conversation is the per-connection state: an id and, once started or
// first spoken to, a session.
type conversation struct {
	id   string
	conn *websocket.Conn
	sess *session.Session
}

func (c *Chat) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: c.checkOrigin}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		c.logger.Warn("websocket upgrade", "err", err)
		return
	}
	defer conn.Close()

	conv := &conversation{id: uuid.NewString(), conn: conn}
	c.logger.Debug("websocket connected", "session", conv.id, "remote", r.RemoteAddr)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("websocket read", "session", conv.id, "err", err)
			}
			return
		}

		var req chatRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			c.sendError(conv, "invalid message format")
			continue
		}

		switch req.Type {
		case "start":
			c.handleStart(conv, req)
		case "message":
			if req.Content == "" {
				c.sendError(conv, "content is required")
				continue
			}
			if done := c.handleChatMessage(conv, req); done {
				c.closeNormally(conv)
				return
			}
		default:
			c.sendError(conv, "unknown message type: "+req.Type)
		}
	}
}

// handleStart begins (or restarts) the conversation with the given names
// and sends the welcome line.
func (c *Chat) handleStart(conv *conversation, req chatRequest) {
	opts := c.opts
	if req.UserName != "" {
		opts.UserName = req.UserName
	}
	if req.AgentName != "" {
		opts.AgentName = req.AgentName
	}
	conv.sess = session.New(c.resp, opts)

	c.send(conv, chatResponse{
		Type:      "welcome",
		SessionID: conv.id,
		Content:   conv.sess.Welcome(),
		AgentName: conv.sess.AgentName,
	})
}

// handleChatMessage answers one message and reports whether the user said
// goodbye.
func (c *Chat) handleChatMessage(conv *conversation, req chatRequest) bool {
	if conv.sess == nil {
		conv.sess = session.New(c.resp, c.opts)
	}

	turn := conv.sess.Handle(req.Content)
	resp := chatResponse{
		Type:      "response",
		SessionID: conv.id,
		Content:   turn.Reply,
		AgentName: conv.sess.AgentName,
		Category:  turn.Category,
		Facility:  turn.Facility,
	}
	if turn.Done {
		resp.Type = "goodbye"
	}
	c.send(conv, resp)
	return turn.Done
}

func (c *Chat) closeNormally(conv *conversation) {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "goodbye")
	if err := conv.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeGracePeriod)); err != nil {
		c.logger.Debug("websocket close", "session", conv.id, "err", err)
	}
	c.logger.Debug("websocket finished", "session", conv.id)
}

func (c *Chat) send(conv *conversation, resp chatResponse) {
	if err := conv.conn.WriteJSON(resp); err != nil {
		c.logger.Warn("websocket write", "session", conv.id, "err", err)
	}
}

func (c *Chat) sendError(conv *conversation, message string) {
	c.send(conv, chatResponse{
		Type:      "error",
		SessionID: conv.id,
		Content:   message,
	})
}

// checkOrigin applies the server's CORS policy to WebSocket upgrades.
// Requests without an Origin header come from non-browser clients.
func (c *Chat) checkOrigin(r *http.Request) bool {
	if c.AllowAllOrigins {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if strings.EqualFold(u.Host, r.Host) {
		return true
	}
	switch u.Hostname() {
	case "localhost", "127.0.0.1", "::1":
		return true
	}
	return false
}
