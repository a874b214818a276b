package mcp

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/campusbot/internal/responder"
	"github.com/ziadkadry99/campusbot/internal/session"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server exposes the campus assistant to AI agents as MCP tools.
type Server struct {
	resp   *responder.Responder
	opts   session.Options
	logger *log.Logger
	mcp    *server.MCPServer
}

// NewServer creates an MCP server answering through resp. opts supplies the
// persona and exit phrases used by the converse and agent_name tools; its
// Logger receives one debug line per tool call and must not write to stdout.
func NewServer(resp *responder.Responder, opts session.Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{resp: resp, opts: opts, logger: logger}

	s.mcp = server.NewMCPServer(
		"campusbot",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	s.mcp.AddTool(respondTool, s.logged(respondTool.Name, s.handleRespond))
	s.mcp.AddTool(converseTool, s.logged(converseTool.Name, s.handleConverse))
	s.mcp.AddTool(listFacilitiesTool, s.logged(listFacilitiesTool.Name, s.handleListFacilities))
	s.mcp.AddTool(facilityInfoTool, s.logged(facilityInfoTool.Name, s.handleFacilityInfo))
	s.mcp.AddTool(agentNameTool, s.logged(agentNameTool.Name, s.handleAgentName))
}

// logged wraps a tool handler with a debug log of the call.
func (s *Server) logged(name string, h server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		result, err := h(ctx, request)
		s.logger.Debug("mcp tool call",
			"tool", name,
			"error", result != nil && result.IsError,
			"duration", time.Since(start))
		return result, err
	}
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
