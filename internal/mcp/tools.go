package mcp

import "github.com/mark3labs/mcp-go/mcp"

// respondTool defines the respond MCP tool.
var respondTool = mcp.NewTool("respond",
	mcp.WithDescription("Reply to a student's message the way the campus assistant would. Handles facility locations, opening hours, greetings and small talk."),
	mcp.WithString("utterance",
		mcp.Required(),
		mcp.Description("What the student said, e.g. \"where is the library?\""),
	),
	mcp.WithBoolean("explain",
		mcp.Description("Also report the matched category and facility (default false)"),
	),
)

// converseTool defines the converse MCP tool.
var converseTool = mcp.NewTool("converse",
	mcp.WithDescription("Handle one chat turn for a named student. Like respond, but exit phrases such as \"bye\" return a personal goodbye and report that the conversation is over."),
	mcp.WithString("utterance",
		mcp.Required(),
		mcp.Description("What the student said"),
	),
	mcp.WithString("user_name",
		mcp.Description("Student's name used in goodbyes (default \"Friend\")"),
	),
)

// listFacilitiesTool defines the list_facilities MCP tool.
var listFacilitiesTool = mcp.NewTool("list_facilities",
	mcp.WithDescription("List every campus facility the assistant knows, with location and opening hours."),
)

// facilityInfoTool defines the facility_info MCP tool.
var facilityInfoTool = mcp.NewTool("facility_info",
	mcp.WithDescription("Get the location, hours and details of one campus facility. Partial names and aliases are accepted."),
	mcp.WithString("name",
		mcp.Required(),
		mcp.Description("Facility name or alias, e.g. \"coffee shop\" or \"registrar\""),
	),
)

// agentNameTool defines the agent_name MCP tool.
var agentNameTool = mcp.NewTool("agent_name",
	mcp.WithDescription("Name of the assistant persona: the configured name, or a random pick from the built-in list."),
)
