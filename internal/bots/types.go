package bots

// Platform identifies the messaging platform.
type Platform string

const (
	PlatformSlack Platform = "slack"
	PlatformTeams Platform = "teams"
)

// MessageKind distinguishes a user utterance from a membership event.
type MessageKind int

const (
	// KindText is a message typed by a user.
	KindText MessageKind = iota
	// KindJoin is sent when a user joins a channel the assistant is in.
	KindJoin
)

// CategoryWelcome tags replies to KindJoin messages.
const CategoryWelcome = "welcome"

// IncomingMessage represents a message received from any platform.
type IncomingMessage struct {
	Platform  Platform
	Kind      MessageKind
	ChannelID string
	UserID    string
	UserName  string
	// Text has platform mention markup removed.
	Text      string
	ThreadID  string
	Timestamp string
}

// OutgoingMessage represents a response to send back.
type OutgoingMessage struct {
	ChannelID string `json:"channel_id"`
	Text      string `json:"text"`
	ThreadID  string `json:"thread_id,omitempty"`
	// Category is the intent the reply was chosen for.
	Category string `json:"category,omitempty"`
	Facility string `json:"facility,omitempty"`
	// Done is set when the user said goodbye.
	Done bool `json:"done,omitempty"`
}
