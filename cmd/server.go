package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/campusbot/internal/bots"
	"github.com/ziadkadry99/campusbot/internal/chat"
	"github.com/ziadkadry99/campusbot/internal/help"
	"github.com/ziadkadry99/campusbot/internal/responder"
	"github.com/ziadkadry99/campusbot/internal/server"
	"github.com/ziadkadry99/campusbot/internal/session"
)

const shutdownTimeout = 10 * time.Second

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP, WebSocket and bot webhook server",
	Long:  `Starts the campusbot server with the browser chat page, the /api/respond API, the /ws/chat WebSocket, the /help page and the Slack and Teams webhooks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(os.Stderr, cfg)

		resp, err := buildResponder(cfg)
		if err != nil {
			return err
		}

		port := cfg.Server.Port
		if serverPort != 0 {
			port = serverPort
		}

		srv := server.New(server.Config{
			Port:     port,
			AllowAll: cfg.Server.AllowAllOrigins,
		}, logger)

		if err := registerAllRoutes(srv, resp, sessionOptions(cfg, logger), cfg.Slack.SigningSecret, logger); err != nil {
			return err
		}

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("shutdown", "err", err)
			}
		}()

		logger.Info("campusbot server starting",
			"version", Version,
			"port", port,
			"facilities", resp.Knowledge().Len(),
			"slack_verification", cfg.Slack.SigningSecret != "")

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	},
}

// registerAllRoutes wires up the chat, help and bot routes.
func registerAllRoutes(srv *server.Server, resp *responder.Responder, opts session.Options, slackSecret string, logger *log.Logger) error {
	r := srv.Router()

	// Chat page, respond API and WebSocket
	chatHandler := chat.New(resp, opts, logger)
	chatHandler.AllowAllOrigins = srv.ServerConfig().AllowAll
	chatHandler.RegisterRoutes(r)

	// Help page
	helpHandler, err := help.Handler(resp)
	if err != nil {
		return fmt.Errorf("building help page: %w", err)
	}
	r.Get("/help", helpHandler)

	// Bots (Slack & Teams)
	botProcessor := bots.NewProcessor(resp, opts, logger)
	botGateway := bots.NewGateway(botProcessor)
	bots.RegisterRoutes(r, botGateway, slackSecret)

	return nil
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 0, "port to listen on (overrides server.port)")
	rootCmd.AddCommand(serverCmd)
}
