package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/ziadkadry99/campusbot/internal/config"
	"github.com/ziadkadry99/campusbot/internal/knowledge"
	"github.com/ziadkadry99/campusbot/internal/logging"
	"github.com/ziadkadry99/campusbot/internal/responder"
	"github.com/ziadkadry99/campusbot/internal/session"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `campusbot init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the command logger; --verbose forces debug.
func newLogger(w io.Writer, cfg *config.Config) *log.Logger {
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	return logging.New(w, level)
}

// buildResponder loads the configured knowledge files and compiles the
// responder. A non-zero seed makes replies reproducible.
func buildResponder(cfg *config.Config) (*responder.Responder, error) {
	var kb *knowledge.Base
	if len(cfg.KnowledgeFiles) > 0 {
		var err error
		kb, err = knowledge.Load(cfg.KnowledgeFiles)
		if err != nil {
			return nil, fmt.Errorf("loading knowledge files: %w", err)
		}
	}

	var opts []responder.Option
	if cfg.Seed != 0 {
		opts = append(opts, responder.WithChooser(responder.NewSeededChooser(cfg.Seed)))
	}

	resp, err := responder.New(kb, opts...)
	if err != nil {
		return nil, fmt.Errorf("building responder: %w", err)
	}
	return resp, nil
}

// sessionOptions maps config onto session defaults.
func sessionOptions(cfg *config.Config, logger *log.Logger) session.Options {
	return session.Options{
		UserName:    cfg.UserName,
		AgentName:   cfg.AgentName,
		ExitPhrases: cfg.ExitPhrases,
		Logger:      logger,
	}
}
