package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nhle/omnifocus-cli/internal/model"
)

func (s *Server) otherTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("list_inbox",
				mcp.WithDescription(registryDescription("list_inbox")),
			),
			Handler: s.handleListInbox,
		},
		{
			Tool: mcp.NewTool("get_inbox_count",
				mcp.WithDescription(registryDescription("get_inbox_count")),
			),
			Handler: s.handleGetInboxCount,
		},
		{
			Tool: mcp.NewTool("list_perspectives",
				mcp.WithDescription(registryDescription("list_perspectives")),
			),
			Handler: s.handleListPerspectives,
		},
		{
			Tool: mcp.NewTool("get_perspective_tasks",
				mcp.WithDescription(registryDescription("get_perspective_tasks")),
				mcp.WithString("name", mcp.Required(),
					mcp.Description("Perspective name (e.g., Inbox, Flagged, or custom perspective)")),
			),
			Handler: s.handleGetPerspectiveTasks,
		},
		{
			Tool: mcp.NewTool("list_folders",
				mcp.WithDescription(registryDescription("list_folders")),
				mcp.WithBoolean("includeDropped", mcp.Description("Include dropped folders")),
			),
			Handler: s.handleListFolders,
		},
		{
			Tool: mcp.NewTool("get_folder",
				mcp.WithDescription(registryDescription("get_folder")),
				mcp.WithString("idOrName", mcp.Required(), mcp.Description("Folder ID or name")),
				mcp.WithBoolean("includeDropped", mcp.Description("Include dropped children")),
			),
			Handler: s.handleGetFolder,
		},
		{
			Tool: mcp.NewTool("search_tools",
				mcp.WithDescription(registryDescription("search_tools")),
				mcp.WithString("query", mcp.Required(),
					mcp.Description("Regex pattern to match against tool names and descriptions (case-insensitive)")),
			),
			Handler: s.handleSearchTools,
		},
	}
}

func (s *Server) handleListInbox(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tasks, err := s.of.ListInboxTasks(ctx)
	if err != nil {
		return toolError(err)
	}
	return jsonResult(tasks), nil
}

func (s *Server) handleGetInboxCount(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n, err := s.of.InboxCount(ctx)
	if err != nil {
		return toolError(err)
	}
	return jsonResult(map[string]int{"count": n}), nil
}

func (s *Server) handleListPerspectives(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	perspectives, err := s.of.ListPerspectives(ctx)
	if err != nil {
		return toolError(err)
	}
	return jsonResult(perspectives), nil
}

func (s *Server) handleGetPerspectiveTasks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return toolError(err)
	}
	tasks, err := s.of.PerspectiveTasks(ctx, name)
	if err != nil {
		return toolError(err)
	}
	return jsonResult(tasks), nil
}

func (s *Server) handleListFolders(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	folders, err := s.of.ListFolders(ctx, model.FolderFilters{
		IncludeDropped: req.GetBool("includeDropped", false),
	})
	if err != nil {
		return toolError(err)
	}
	return jsonResult(folders), nil
}

func (s *Server) handleGetFolder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idOrName, err := req.RequireString("idOrName")
	if err != nil {
		return toolError(err)
	}
	folder, err := s.of.GetFolder(ctx, idOrName, model.FolderFilters{
		IncludeDropped: req.GetBool("includeDropped", false),
	})
	if err != nil {
		return toolError(err)
	}
	return jsonResult(folder), nil
}

func (s *Server) handleSearchTools(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return toolError(err)
	}
	matched, err := searchTools(query)
	if err != nil {
		return toolError(err)
	}
	return jsonResult(matched), nil
}
