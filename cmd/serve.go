package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/campusbot/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for AI agent integration",
	Long: `Starts a Model Context Protocol (MCP) server on stdio, exposing the campus
assistant as tools: respond, converse, list_facilities, facility_info and
agent_name. Logs go to stderr; run with -v to log every tool call.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Stdout carries the protocol.
	logger := newLogger(os.Stderr, cfg)

	resp, err := buildResponder(cfg)
	if err != nil {
		return err
	}

	mcpserver.Version = Version
	srv := mcpserver.NewServer(resp, sessionOptions(cfg, logger))

	logger.Info("campusbot MCP server started on stdio",
		"facilities", resp.Knowledge().Len(),
		"agent", cfg.AgentName)

	if err := srv.Serve(); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
