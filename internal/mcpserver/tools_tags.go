package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nhle/omnifocus-cli/internal/model"
)

func (s *Server) tagTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("list_tags",
				mcp.WithDescription(registryDescription("list_tags")),
				mcp.WithNumber("unusedDays", mcp.Description("Only show tags unused for this many days")),
				mcp.WithString("sortBy", mcp.Description("Sort order"),
					mcp.Enum("name", "usage", "activity")),
				mcp.WithBoolean("activeOnly", mcp.Description("Only count active tasks")),
			),
			Handler: s.handleListTags,
		},
		{
			Tool: mcp.NewTool("get_tag",
				mcp.WithDescription(registryDescription("get_tag")),
				mcp.WithString("idOrName", mcp.Required(),
					mcp.Description("Tag ID, name, or path (e.g., \"Parent/Child\")")),
			),
			Handler: s.handleGetTag,
		},
		{
			Tool: mcp.NewTool("create_tag",
				mcp.WithDescription(registryDescription("create_tag")),
				mcp.WithString("name", mcp.Required(), mcp.Description("Tag name")),
				mcp.WithString("parent", mcp.Description("Parent tag name or path")),
				mcp.WithString("status", mcp.Description("Initial status"),
					mcp.Enum("active", "on hold", "dropped")),
			),
			Handler: s.handleCreateTag,
		},
		{
			Tool: mcp.NewTool("update_tag",
				mcp.WithDescription(registryDescription("update_tag")),
				mcp.WithString("idOrName", mcp.Required(), mcp.Description("Tag ID, name, or path")),
				mcp.WithString("name", mcp.Description("New tag name")),
				mcp.WithString("status", mcp.Description("New status"),
					mcp.Enum("active", "on hold", "dropped")),
			),
			Handler: s.handleUpdateTag,
		},
		{
			Tool: mcp.NewTool("delete_tag",
				mcp.WithDescription(registryDescription("delete_tag")),
				mcp.WithString("idOrName", mcp.Required(), mcp.Description("Tag ID, name, or path")),
			),
			Handler: s.handleDeleteTag,
		},
		{
			Tool: mcp.NewTool("get_tag_stats",
				mcp.WithDescription(registryDescription("get_tag_stats")),
			),
			Handler: s.handleGetTagStats,
		},
	}
}

func (s *Server) handleListTags(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sortBy, err := model.ParseTagSort(req.GetString("sortBy", ""))
	if err != nil {
		return toolError(err)
	}
	tags, err := s.of.ListTags(ctx, model.TagListOptions{
		UnusedDays: req.GetInt("unusedDays", 0),
		SortBy:     sortBy,
		ActiveOnly: req.GetBool("activeOnly", false),
	})
	if err != nil {
		return toolError(err)
	}
	return jsonResult(tags), nil
}

func (s *Server) handleGetTag(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idOrName, err := req.RequireString("idOrName")
	if err != nil {
		return toolError(err)
	}
	tag, err := s.of.GetTag(ctx, idOrName)
	if err != nil {
		return toolError(err)
	}
	return jsonResult(tag), nil
}

func (s *Server) handleCreateTag(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return toolError(err)
	}
	status, err := statusArg(req, "status")
	if err != nil {
		return toolError(err)
	}
	tag, err := s.of.CreateTag(ctx, model.CreateTagOptions{
		Name:   name,
		Parent: optString(req, "parent"),
		Status: status,
	})
	if err != nil {
		return toolError(err)
	}
	return jsonResult(tag), nil
}

func (s *Server) handleUpdateTag(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idOrName, err := req.RequireString("idOrName")
	if err != nil {
		return toolError(err)
	}
	status, err := statusArg(req, "status")
	if err != nil {
		return toolError(err)
	}
	tag, err := s.of.UpdateTag(ctx, idOrName, model.UpdateTagOptions{
		Name:   optString(req, "name"),
		Status: status,
	})
	if err != nil {
		return toolError(err)
	}
	return jsonResult(tag), nil
}

func (s *Server) handleDeleteTag(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idOrName, err := req.RequireString("idOrName")
	if err != nil {
		return toolError(err)
	}
	if err := s.of.DeleteTag(ctx, idOrName); err != nil {
		return toolError(err)
	}
	return jsonResult(map[string]bool{"deleted": true}), nil
}

func (s *Server) handleGetTagStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := s.of.GetTagStats(ctx)
	if err != nil {
		return toolError(err)
	}
	return jsonResult(stats), nil
}
