package mcp

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/campusbot/internal/knowledge"
	"github.com/ziadkadry99/campusbot/internal/responder"
	"github.com/ziadkadry99/campusbot/internal/session"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	resp, err := responder.New(nil, responder.WithChooser(responder.NewSequenceChooser(0)))
	if err != nil {
		t.Fatalf("creating responder: %v", err)
	}
	return NewServer(resp, session.Options{})
}

// extractText gets the text content from a CallToolResult.
func extractText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestToolDefinitions(t *testing.T) {
	// Verify tool names and required properties.
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
		required []string
	}{
		{"respond", respondTool, "respond", []string{"utterance"}},
		{"converse", converseTool, "converse", []string{"utterance"}},
		{"list_facilities", listFacilitiesTool, "list_facilities", nil},
		{"facility_info", facilityInfoTool, "facility_info", []string{"name"}},
		{"agent_name", agentNameTool, "agent_name", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
			if len(tt.tool.InputSchema.Required) != len(tt.required) {
				t.Errorf("required = %v, want %v", tt.tool.InputSchema.Required, tt.required)
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv := newTestServer(t)

	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.resp == nil {
		t.Error("responder not set")
	}
}

func TestHandleRespond(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	t.Run("hours question", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"utterance": "When does the bookstore close?",
		}

		result, err := srv.handleRespond(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		if got := extractText(result); got != "The bookstore is open from 9:00 AM to 5:00 PM." {
			t.Errorf("unexpected reply %q", got)
		}
	})

	t.Run("explain", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"utterance": "where's the coffee shop",
			"explain":   true,
		}

		result, err := srv.handleRespond(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text := extractText(result)
		if !strings.Contains(text, "Category: facility_location") {
			t.Errorf("expected category line, got %q", text)
		}
		if !strings.Contains(text, "Facility: coffee") {
			t.Errorf("expected facility line, got %q", text)
		}
	})

	t.Run("small talk has no facility", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"utterance": "thank you",
			"explain":   true,
		}

		result, _ := srv.handleRespond(ctx, req)
		text := extractText(result)
		if !strings.Contains(text, "Category: gratitude") || strings.Contains(text, "Facility:") {
			t.Errorf("unexpected explanation %q", text)
		}
	})

	t.Run("missing utterance", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleRespond(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing utterance")
		}
	})
}

func TestHandleListFacilities(t *testing.T) {
	srv := newTestServer(t)

	result, err := srv.handleListFacilities(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := extractText(result)
	if !strings.HasPrefix(text, "7 campus facilities:") {
		t.Errorf("unexpected header in %q", text)
	}
	for _, want := range []string{"- library (library)", "- coffee shop (coffee)", "Hours: Open 24/7"} {
		if !strings.Contains(text, want) {
			t.Errorf("listing missing %q", want)
		}
	}
}

func TestHandleFacilityInfo(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		arg      string
		wantErr  bool
		contains string
	}{
		{"exact key", "gym", false, "Hours: 6:00 AM to 10:00 PM"},
		{"alias", "registrar", false, "administration office"},
		{"partial", "librar", false, "Building A"},
		{"unknown", "swimming pool", true, "No facility matches"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mcp.CallToolRequest{}
			req.Params.Arguments = map[string]any{"name": tt.arg}

			result, err := srv.handleFacilityInfo(ctx, req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.IsError != tt.wantErr {
				t.Fatalf("IsError = %v, want %v (%q)", result.IsError, tt.wantErr, extractText(result))
			}
			if text := extractText(result); !strings.Contains(text, tt.contains) {
				t.Errorf("expected %q in %q", tt.contains, text)
			}
		})
	}

	t.Run("missing name", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}
		result, _ := srv.handleFacilityInfo(ctx, req)
		if !result.IsError {
			t.Error("expected error for missing name")
		}
	})
}

func TestHandleAgentName(t *testing.T) {
	srv := newTestServer(t)

	result, err := srv.handleAgentName(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := extractText(result); got != responder.AgentNames[0] {
		t.Errorf("agent name = %q, want %q", got, responder.AgentNames[0])
	}
}

func TestHandleAgentNameConfigured(t *testing.T) {
	resp := responder.MustNew(nil)
	srv := NewServer(resp, session.Options{AgentName: "Casey"})

	result, _ := srv.handleAgentName(context.Background(), mcp.CallToolRequest{})
	if got := extractText(result); got != "Casey" {
		t.Errorf("agent name = %q, want Casey", got)
	}
}

func TestHandleConverse(t *testing.T) {
	srv := NewServer(responder.MustNew(nil), session.Options{ExitPhrases: []string{"later"}})
	ctx := context.Background()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"utterance": "when does the gym close", "user_name": "Sam"}
	result, err := srv.handleConverse(ctx, req)
	if err != nil {
		t.Fatal(err)
	}
	if got := extractText(result); got != "The gym is open from 6:00 AM to 10:00 PM." {
		t.Errorf("unexpected reply %q", got)
	}

	req.Params.Arguments = map[string]any{"utterance": "Later", "user_name": "Sam"}
	result, _ = srv.handleConverse(ctx, req)
	if got := extractText(result); got != "Goodbye Sam! Have a great day!\n\n[conversation ended]" {
		t.Errorf("unexpected goodbye %q", got)
	}

	req.Params.Arguments = map[string]any{}
	result, _ = srv.handleConverse(ctx, req)
	if !result.IsError {
		t.Error("expected error for missing utterance")
	}
}

func TestLoggedWrapsHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)
	srv := NewServer(responder.MustNew(nil), session.Options{Logger: logger})

	h := srv.logged("list_facilities", srv.handleListFacilities)
	result, err := h(context.Background(), mcp.CallToolRequest{})
	if err != nil || result.IsError {
		t.Fatalf("unexpected failure: %v %v", err, result)
	}
	if !strings.Contains(buf.String(), "tool=list_facilities") {
		t.Errorf("expected tool call log, got %q", buf.String())
	}
}

func TestFormatFacility(t *testing.T) {
	text := formatFacility(knowledge.Facility{
		Key:      "pool",
		Name:     "swimming pool",
		Aliases:  []string{"aquatics"},
		Location: "the Aquatic Center",
	})
	for _, want := range []string{"swimming pool\n", "Also known as: aquatics\n", "Location: the Aquatic Center\n"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in %q", want, text)
		}
	}
	if strings.Contains(text, "Hours:") || strings.Contains(text, "Details:") {
		t.Errorf("empty fields should be omitted: %q", text)
	}
}
