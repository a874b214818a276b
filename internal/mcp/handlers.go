package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/campusbot/internal/knowledge"
	"github.com/ziadkadry99/campusbot/internal/session"
)

// handleRespond runs an utterance through the responder.
func (s *Server) handleRespond(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	utterance, err := request.RequireString("utterance")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: utterance"), nil
	}

	m := s.resp.Match(utterance)
	if !request.GetBool("explain", false) {
		return mcp.NewToolResultText(m.Reply), nil
	}

	var sb strings.Builder
	sb.WriteString(m.Reply)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Category: %s\n", m.Category)
	if m.Facility != "" {
		fmt.Fprintf(&sb, "Facility: %s\n", m.Facility)
	}
	fmt.Fprintf(&sb, "Candidates: %d\n", len(m.Pool))
	return mcp.NewToolResultText(sb.String()), nil
}

// handleConverse runs one session turn so exit phrases end the
// conversation with a goodbye.
func (s *Server) handleConverse(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	utterance, err := request.RequireString("utterance")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: utterance"), nil
	}

	opts := s.opts
	opts.UserName = request.GetString("user_name", "")
	turn := session.New(s.resp, opts).Handle(utterance)

	if turn.Done {
		return mcp.NewToolResultText(turn.Reply + "\n\n[conversation ended]"), nil
	}
	return mcp.NewToolResultText(turn.Reply), nil
}

// handleListFacilities lists the knowledge base.
func (s *Server) handleListFacilities(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(formatFacilities(s.resp.Knowledge().Facilities())), nil
}

// handleFacilityInfo resolves a name the same way "where is the X" does.
func (s *Server) handleFacilityInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: name"), nil
	}

	f, ok := s.resp.Knowledge().Resolve(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf(
			"No facility matches %q. Use list_facilities to see what the assistant knows about.",
			name,
		)), nil
	}

	return mcp.NewToolResultText(formatFacility(f)), nil
}

// handleAgentName returns the configured persona name, or a random one.
func (s *Server) handleAgentName(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.opts.AgentName != "" {
		return mcp.NewToolResultText(s.opts.AgentName), nil
	}
	return mcp.NewToolResultText(s.resp.AgentName()), nil
}

// formatFacilities renders the directory as a plain-text list for AI agent
// consumption.
func formatFacilities(facilities []knowledge.Facility) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d campus facilities:\n", len(facilities))
	for _, f := range facilities {
		fmt.Fprintf(&sb, "\n- %s (%s)", f.DisplayName(), f.Key)
		if f.Location != "" {
			fmt.Fprintf(&sb, "\n  Location: %s", f.Location)
		}
		if f.Hours != "" {
			fmt.Fprintf(&sb, "\n  Hours: %s", f.Hours)
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

func formatFacility(f knowledge.Facility) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", f.DisplayName())
	if len(f.Aliases) > 0 {
		fmt.Fprintf(&sb, "Also known as: %s\n", strings.Join(f.Aliases, ", "))
	}
	if f.Location != "" {
		fmt.Fprintf(&sb, "Location: %s\n", f.Location)
	}
	if f.Hours != "" {
		fmt.Fprintf(&sb, "Hours: %s\n", f.Hours)
	}
	if f.Details != "" {
		fmt.Fprintf(&sb, "Details: %s\n", f.Details)
	}
	return sb.String()
}
