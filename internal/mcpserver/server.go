// Package mcpserver exposes the OmniFocus bridge as a Model Context
// Protocol server on stdio, one tool per bridge operation.
package mcpserver

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/nhle/omnifocus-cli/internal/bridge"
)

const serverVersion = "1.0.0"

// toolInfo is the registry row search_tools matches against.
type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

var toolRegistry = []toolInfo{
	{"list_tasks", "List tasks with optional filtering"},
	{"get_task", "Get a specific task by ID or name"},
	{"create_task", "Create a new task"},
	{"update_task", "Update an existing task"},
	{"delete_task", "Delete a task"},
	{"search_tasks", "Search tasks by name or note content"},
	{"get_task_stats", "Get task statistics"},
	{"list_inbox", "List all inbox tasks"},
	{"get_inbox_count", "Get the number of inbox tasks"},
	{"list_projects", "List projects with optional filtering"},
	{"get_project", "Get a specific project by ID or name"},
	{"create_project", "Create a new project"},
	{"update_project", "Update an existing project"},
	{"delete_project", "Delete a project"},
	{"get_project_stats", "Get project statistics"},
	{"list_perspectives", "List all available perspectives"},
	{"get_perspective_tasks", "Get tasks from a specific perspective"},
	{"list_tags", "List all tags with optional filtering and sorting"},
	{"get_tag", "Get a specific tag by ID or name"},
	{"create_tag", "Create a new tag"},
	{"update_tag", "Update an existing tag"},
	{"delete_tag", "Delete a tag"},
	{"get_tag_stats", "Get tag statistics"},
	{"list_folders", "List all folders"},
	{"get_folder", "Get a specific folder by ID or name"},
	{"search_tools", "Find tools matching a regex pattern"},
}

func registryDescription(name string) string {
	for _, t := range toolRegistry {
		if t.Name == name {
			return t.Description
		}
	}
	return ""
}

// Server wires the bridge into an MCP stdio server.
type Server struct {
	of  *bridge.OmniFocus
	log *zap.Logger
	mcp *server.MCPServer
}

// New builds the server and registers every tool.
func New(of *bridge.OmniFocus, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		of:  of,
		log: log,
		mcp: server.NewMCPServer("omnifocus", serverVersion,
			server.WithToolCapabilities(false)),
	}
	s.mcp.AddTools(s.taskTools()...)
	s.mcp.AddTools(s.projectTools()...)
	s.mcp.AddTools(s.tagTools()...)
	s.mcp.AddTools(s.otherTools()...)
	return s
}

// ServeStdio blocks, serving MCP requests over stdin/stdout.
func (s *Server) ServeStdio() error {
	s.log.Info("mcp server starting", zap.Int("tools", len(toolRegistry)))
	return server.ServeStdio(s.mcp)
}

func jsonResult(v any) *mcp.CallToolResult {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err))
	}
	return mcp.NewToolResultText(string(b))
}

// toolError converts a bridge failure into an MCP error result. The error
// return stays nil so the failure reaches the client as tool output
// instead of a protocol fault.
func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

// searchTools filters the registry by a case-insensitive regex over tool
// names and descriptions.
func searchTools(query string) ([]toolInfo, error) {
	re, err := regexp.Compile("(?i)" + query)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", query, err)
	}
	var matched []toolInfo
	for _, t := range toolRegistry {
		if re.MatchString(t.Name) || re.MatchString(t.Description) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}
