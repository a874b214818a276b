package bots

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"html"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// maxRequestAge is how far a Slack request timestamp may drift from now.
const maxRequestAge = 5 * time.Minute

// slackMention matches user and bot mentions such as <@U024BE7LH> or
// <@U024BE7LH|campusbot>.
var slackMention = regexp.MustCompile(`<@[A-Z0-9]+(?:\|[^>]*)?>`)

// SlackHandler handles incoming Slack webhook events.
type SlackHandler struct {
	gateway       *Gateway
	signingSecret string
	now           func() time.Time
}

// NewSlackHandler creates a new Slack event handler. An empty signing
// secret disables request verification.
func NewSlackHandler(gateway *Gateway, signingSecret string) *SlackHandler {
	return &SlackHandler{
		gateway:       gateway,
		signingSecret: signingSecret,
		now:           time.Now,
	}
}

type slackEvent struct {
	Type      string          `json:"type"`
	Challenge string          `json:"challenge"`
	Event     slackInnerEvent `json:"event"`
}

type slackInnerEvent struct {
	Type     string `json:"type"`
	Subtype  string `json:"subtype"`
	User     string `json:"user"`
	Text     string `json:"text"`
	Channel  string `json:"channel"`
	TS       string `json:"ts"`
	ThreadTS string `json:"thread_ts"`
	BotID    string `json:"bot_id"`
}

// HandleEvent handles incoming Slack events (HTTP POST).
func (h *SlackHandler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	body, err := readWebhookBody(w, r)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	if h.signingSecret != "" && !validSlackSignature(h.signingSecret, r.Header, body, h.now()) {
		http.Error(w, "invalid signature", http.StatusUnauthorized)
		return
	}

	var event slackEvent
	if err := json.Unmarshal(body, &event); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	switch event.Type {
	case "url_verification":
		writeBotJSON(w, map[string]string{"challenge": event.Challenge})
	case "event_callback":
		msg, ok := slackIncoming(event.Event)
		if !ok {
			w.WriteHeader(http.StatusOK)
			return
		}
		resp, err := h.gateway.Process(r.Context(), msg)
		if err != nil {
			http.Error(w, "processing error", http.StatusInternalServerError)
			return
		}
		writeBotJSON(w, formatSlackMessage(resp))
	default:
		w.WriteHeader(http.StatusOK)
	}
}

// slackIncoming converts an inner event to a gateway message. Bot posts,
// edits and other message subtypes are ignored so the assistant never
// answers itself.
func slackIncoming(ev slackInnerEvent) (IncomingMessage, bool) {
	msg := IncomingMessage{
		Platform:  PlatformSlack,
		ChannelID: ev.Channel,
		UserID:    ev.User,
		ThreadID:  ev.ThreadTS,
		Timestamp: ev.TS,
	}
	if ev.BotID != "" {
		return msg, false
	}

	switch ev.Type {
	case "message":
		if ev.Subtype != "" {
			return msg, false
		}
	case "app_mention":
		// Mentions in a channel are answered in a thread under the mention.
		if msg.ThreadID == "" {
			msg.ThreadID = ev.TS
		}
	case "member_joined_channel":
		msg.Kind = KindJoin
		return msg, true
	default:
		return msg, false
	}

	msg.Text = cleanSlackText(ev.Text)
	return msg, true
}

// cleanSlackText removes mentions and decodes the entities Slack escapes.
func cleanSlackText(s string) string {
	s = slackMention.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(html.UnescapeString(s)), " ")
}

// validSlackSignature checks the v0 HMAC-SHA256 request signature and
// rejects requests whose timestamp is older than maxRequestAge.
func validSlackSignature(secret string, header http.Header, body []byte, now time.Time) bool {
	timestamp := header.Get("X-Slack-Request-Timestamp")
	signature := header.Get("X-Slack-Signature")
	if timestamp == "" || signature == "" {
		return false
	}
	if !timestampFresh(timestamp, now) {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte("v0:" + timestamp + ":"))
	mac.Write(body)
	expected := "v0=" + hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

func timestampFresh(timestamp string, now time.Time) bool {
	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return false
	}
	diff := now.Sub(time.Unix(ts, 0))
	if diff < 0 {
		diff = -diff
	}
	return diff <= maxRequestAge
}

type slackResponse struct {
	Channel  string         `json:"channel"`
	Text     string         `json:"text"`
	ThreadTS string         `json:"thread_ts,omitempty"`
	Metadata *slackMetadata `json:"metadata,omitempty"`
}

// slackMetadata carries the matched intent so workflows can route on it.
type slackMetadata struct {
	EventType    string            `json:"event_type"`
	EventPayload map[string]string `json:"event_payload"`
}

// formatSlackMessage creates a Slack-formatted response payload.
func formatSlackMessage(msg *OutgoingMessage) *slackResponse {
	resp := &slackResponse{
		Channel:  msg.ChannelID,
		Text:     msg.Text,
		ThreadTS: msg.ThreadID,
	}
	if msg.Category == "" {
		return resp
	}

	payload := map[string]string{"category": msg.Category}
	if msg.Facility != "" {
		payload["facility"] = msg.Facility
	}
	if msg.Done {
		payload["done"] = "true"
	}
	resp.Metadata = &slackMetadata{
		EventType:    "campusbot_reply",
		EventPayload: payload,
	}
	return resp
}

func writeBotJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
