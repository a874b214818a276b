package bots

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ziadkadry99/campusbot/internal/responder"
	"github.com/ziadkadry99/campusbot/internal/session"
)

// emptyMessageReply answers messages with no text, such as file uploads.
const emptyMessageReply = "I received an empty message. Ask me about a campus facility, like \"where is the library?\""

// Processor answers bot messages with the campus responder. Each message
// is handled as a one-turn session for the sender, so exit phrases get a
// personal goodbye.
type Processor struct {
	resp   *responder.Responder
	opts   session.Options
	logger *log.Logger
}

// NewProcessor creates a message processor. The agent name is fixed for the
// processor's lifetime; an empty name picks one at random.
func NewProcessor(resp *responder.Responder, opts session.Options, logger *log.Logger) *Processor {
	if opts.AgentName == "" {
		opts.AgentName = resp.AgentName()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	opts.Logger = logger
	return &Processor{resp: resp, opts: opts, logger: logger}
}

// AgentName is the name the processor answers as.
func (p *Processor) AgentName() string { return p.opts.AgentName }

// HandleMessage answers an incoming message, or welcomes a user who just
// joined. It never fails.
func (p *Processor) HandleMessage(_ context.Context, msg IncomingMessage) (*OutgoingMessage, error) {
	out := &OutgoingMessage{
		ChannelID: msg.ChannelID,
		ThreadID:  msg.ThreadID,
	}

	opts := p.opts
	opts.UserName = msg.UserName
	sess := session.New(p.resp, opts)

	if msg.Kind == KindJoin {
		out.Text = sess.Welcome()
		out.Category = CategoryWelcome
		p.logger.Info("bot welcome", "platform", msg.Platform, "channel", msg.ChannelID, "user", sess.UserName)
		return out, nil
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		out.Text = emptyMessageReply
		return out, nil
	}

	turn := sess.Handle(text)

	p.logger.Info("bot message",
		"platform", msg.Platform,
		"channel", msg.ChannelID,
		"category", turn.Category,
		"done", turn.Done)

	out.Text = turn.Reply
	out.Category = string(turn.Category)
	out.Facility = turn.Facility
	out.Done = turn.Done
	return out, nil
}
