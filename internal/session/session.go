// Package session wraps the responder in a conversation loop: greeting the
// user by name, detecting exit phrases and saying goodbye. Turns are
// independent; a session remembers only the two names.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ziadkadry99/campusbot/internal/responder"
)

// DefaultUserName is used when the user does not give a name.
const DefaultUserName = "Friend"

// DefaultExitPhrases end a session when typed as the whole line.
var DefaultExitPhrases = []string{
	"bye", "quit", "exit", "shutdown", "good bye", "goodbye",
	"you can go", "sleep", "close", "ok bye", "okay bye",
}

// Options configures a Session.
type Options struct {
	UserName    string
	AgentName   string
	ExitPhrases []string
	Logger      *log.Logger
}

// Session is one conversation between a user and the assistant.
type Session struct {
	UserName  string
	AgentName string

	resp   *responder.Responder
	exits  map[string]bool
	logger *log.Logger
}

// Turn is the assistant's side of one exchange.
type Turn struct {
	Reply    string
	Category responder.Category
	Facility string
	// Done is set when the user asked to leave.
	Done bool
}

// New starts a session. Empty names fall back to DefaultUserName and a
// random agent name; nil exit phrases fall back to DefaultExitPhrases.
func New(resp *responder.Responder, opts Options) *Session {
	s := &Session{
		UserName:  strings.TrimSpace(opts.UserName),
		AgentName: strings.TrimSpace(opts.AgentName),
		resp:      resp,
		logger:    opts.Logger,
	}
	if s.UserName == "" {
		s.UserName = DefaultUserName
	}
	if s.AgentName == "" {
		s.AgentName = resp.AgentName()
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	phrases := opts.ExitPhrases
	if phrases == nil {
		phrases = DefaultExitPhrases
	}
	s.exits = make(map[string]bool, len(phrases))
	for _, p := range phrases {
		s.exits[normalizeLine(p)] = true
	}
	return s
}

// IsExit reports whether line is one of the default exit phrases.
func IsExit(line string) bool {
	n := normalizeLine(line)
	for _, p := range DefaultExitPhrases {
		if n == p {
			return true
		}
	}
	return false
}

// IsExit reports whether line is one of this session's exit phrases.
func (s *Session) IsExit(line string) bool {
	return s.exits[normalizeLine(line)]
}

// Welcome is the first thing the assistant says.
func (s *Session) Welcome() string {
	return fmt.Sprintf("Welcome %s! I'm %s, your personal assistant. How can I help you today?", s.UserName, s.AgentName)
}

// Goodbye is the last thing the assistant says.
func (s *Session) Goodbye() string {
	return fmt.Sprintf("Goodbye %s! Have a great day!", s.UserName)
}

// Handle answers one line of user input.
func (s *Session) Handle(line string) Turn {
	if s.IsExit(line) {
		s.logger.Debug("exit phrase", "user", s.UserName, "line", line)
		return Turn{Reply: s.Goodbye(), Done: true}
	}
	m := s.resp.Match(line)
	s.logger.Debug("matched", "category", m.Category, "facility", m.Facility)
	return Turn{Reply: m.Reply, Category: m.Category, Facility: m.Facility}
}

// Run reads lines from in and writes the conversation to out until an
// exit phrase, end of input or ctx is cancelled. Blank lines are skipped.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if _, err := fmt.Fprintf(out, "%s: %s\n", s.AgentName, s.Welcome()); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "%s: ", s.UserName); err != nil {
			return err
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		turn := s.Handle(line)
		if _, err := fmt.Fprintf(out, "%s: %s\n", s.AgentName, turn.Reply); err != nil {
			return err
		}
		if turn.Done {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	_, err := fmt.Fprintf(out, "\n%s: %s\n", s.AgentName, s.Goodbye())
	return err
}

func normalizeLine(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
