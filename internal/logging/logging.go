// Package logging builds the structured logger shared by the commands,
// the HTTP server and the bot gateway.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Levels lists the accepted log_level values.
var Levels = []string{"debug", "info", "warn", "error"}

// ParseLevel maps a log_level value to a charmbracelet level. An empty
// string means info.
func ParseLevel(s string) (log.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return log.InfoLevel, nil
	}
	for _, l := range Levels {
		if s == l {
			return log.ParseLevel(s)
		}
	}
	return log.InfoLevel, fmt.Errorf("unknown log level %q: must be one of %s", s, strings.Join(Levels, ", "))
}

// New returns a logger writing to w at the given level. Unknown levels
// fall back to info.
func New(w io.Writer, level string) *log.Logger {
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           lvl,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
