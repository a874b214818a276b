package config

import "github.com/ziadkadry99/campusbot/internal/session"

// DefaultPath is where init writes the configuration and where commands
// look for it unless --config is given.
const DefaultPath = ".campusbot.yml"

// DefaultPort is the HTTP port used by `campusbot server`.
const DefaultPort = 8080

// DefaultConfig returns a Config with sensible defaults. Empty names are
// filled in per session; nil knowledge files mean the built-in directory.
func DefaultConfig() *Config {
	return &Config{
		ExitPhrases: append([]string(nil), session.DefaultExitPhrases...),
		LogLevel:    "info",
		Server: ServerConfig{
			Port: DefaultPort,
		},
	}
}
