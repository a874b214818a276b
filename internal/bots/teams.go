package bots

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
)

// teamsMention matches the <at>Name</at> markup Teams puts around mentions.
var teamsMention = regexp.MustCompile(`(?s)<at>.*?</at>`)

// TeamsHandler handles incoming Microsoft Teams bot activities.
type TeamsHandler struct {
	gateway *Gateway
}

// NewTeamsHandler creates a new Teams activity handler.
func NewTeamsHandler(gateway *Gateway) *TeamsHandler {
	return &TeamsHandler{gateway: gateway}
}

type teamsActivity struct {
	Type         string            `json:"type"`
	ID           string            `json:"id"`
	Timestamp    string            `json:"timestamp"`
	Text         string            `json:"text"`
	From         teamsAccount      `json:"from"`
	Recipient    teamsAccount      `json:"recipient"`
	Conversation teamsConversation `json:"conversation"`
	MembersAdded []teamsAccount    `json:"membersAdded"`
	ReplyToID    string            `json:"replyToId"`
}

type teamsAccount struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type teamsConversation struct {
	ID string `json:"id"`
}

// teamsReply is the message activity sent back to the Bot Framework.
type teamsReply struct {
	Type         string            `json:"type"`
	Text         string            `json:"text"`
	ReplyToID    string            `json:"replyToId,omitempty"`
	Conversation teamsConversation `json:"conversation"`
	Value        replyValue        `json:"value"`
}

// replyValue carries the matched intent alongside the reply text.
type replyValue struct {
	Category string `json:"category,omitempty"`
	Facility string `json:"facility,omitempty"`
	Done     bool   `json:"done,omitempty"`
}

// HandleActivity handles incoming Teams bot activities (HTTP POST).
// Message activities are answered; a conversationUpdate that adds a user
// other than the bot is answered with a welcome for that user.
func (h *TeamsHandler) HandleActivity(w http.ResponseWriter, r *http.Request) {
	body, err := readWebhookBody(w, r)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	var activity teamsActivity
	if err := json.Unmarshal(body, &activity); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	msg, ok := teamsIncoming(activity)
	if !ok {
		w.WriteHeader(http.StatusOK)
		return
	}

	resp, err := h.gateway.Process(r.Context(), msg)
	if err != nil {
		http.Error(w, "processing error", http.StatusInternalServerError)
		return
	}

	writeBotJSON(w, teamsReply{
		Type:         "message",
		Text:         resp.Text,
		ReplyToID:    activity.ID,
		Conversation: activity.Conversation,
		Value:        replyValue{Category: resp.Category, Facility: resp.Facility, Done: resp.Done},
	})
}

func teamsIncoming(a teamsActivity) (IncomingMessage, bool) {
	msg := IncomingMessage{
		Platform:  PlatformTeams,
		ChannelID: a.Conversation.ID,
		UserID:    a.From.ID,
		UserName:  firstName(a.From.Name),
		ThreadID:  a.ReplyToID,
		Timestamp: a.Timestamp,
	}

	switch a.Type {
	case "message":
		msg.Text = strings.Join(strings.Fields(teamsMention.ReplaceAllString(a.Text, " ")), " ")
		return msg, true
	case "conversationUpdate":
		for _, m := range a.MembersAdded {
			if m.ID == a.Recipient.ID {
				continue
			}
			msg.Kind = KindJoin
			msg.UserID = m.ID
			msg.UserName = firstName(m.Name)
			return msg, true
		}
	}
	return msg, false
}

// firstName returns the first word of a Teams display name, so
// "Alice Smith" is greeted as "Alice".
func firstName(displayName string) string {
	if fields := strings.Fields(displayName); len(fields) > 0 {
		return fields[0]
	}
	return ""
}
