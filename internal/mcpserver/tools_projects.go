package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nhle/omnifocus-cli/internal/model"
)

func (s *Server) projectTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("list_projects",
				mcp.WithDescription(registryDescription("list_projects")),
				mcp.WithBoolean("includeDropped", mcp.Description("Include dropped projects")),
				mcp.WithString("status", mcp.Description("Filter by status"),
					mcp.Enum("active", "on hold", "dropped")),
				mcp.WithString("folder", mcp.Description("Filter by folder name")),
			),
			Handler: s.handleListProjects,
		},
		{
			Tool: mcp.NewTool("get_project",
				mcp.WithDescription(registryDescription("get_project")),
				mcp.WithString("idOrName", mcp.Required(), mcp.Description("Project ID or name")),
			),
			Handler: s.handleGetProject,
		},
		{
			Tool: mcp.NewTool("create_project",
				mcp.WithDescription(registryDescription("create_project")),
				mcp.WithString("name", mcp.Required(), mcp.Description("Project name")),
				mcp.WithString("note", mcp.Description("Project note")),
				mcp.WithString("folder", mcp.Description("Folder to create project in")),
				mcp.WithBoolean("sequential", mcp.Description("Sequential project (tasks must be done in order)")),
				mcp.WithArray("tags", mcp.Description("Tags to assign"), mcp.WithStringItems()),
				mcp.WithString("status", mcp.Description("Initial status"),
					mcp.Enum("active", "on hold", "dropped")),
			),
			Handler: s.handleCreateProject,
		},
		{
			Tool: mcp.NewTool("update_project",
				mcp.WithDescription(registryDescription("update_project")),
				mcp.WithString("idOrName", mcp.Required(), mcp.Description("Project ID or name")),
				mcp.WithString("name", mcp.Description("New project name")),
				mcp.WithString("note", mcp.Description("New project note")),
				mcp.WithString("folder", mcp.Description("Move to folder")),
				mcp.WithBoolean("sequential", mcp.Description("Set sequential/parallel")),
				mcp.WithArray("tags", mcp.Description("Replace tags"), mcp.WithStringItems()),
				mcp.WithString("status", mcp.Description("New status"),
					mcp.Enum("active", "on hold", "dropped")),
			),
			Handler: s.handleUpdateProject,
		},
		{
			Tool: mcp.NewTool("delete_project",
				mcp.WithDescription(registryDescription("delete_project")),
				mcp.WithString("idOrName", mcp.Required(), mcp.Description("Project ID or name")),
			),
			Handler: s.handleDeleteProject,
		},
		{
			Tool: mcp.NewTool("get_project_stats",
				mcp.WithDescription(registryDescription("get_project_stats")),
			),
			Handler: s.handleGetProjectStats,
		},
	}
}

func (s *Server) handleListProjects(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status, err := statusArg(req, "status")
	if err != nil {
		return toolError(err)
	}
	projects, err := s.of.ListProjects(ctx, model.ProjectFilters{
		IncludeDropped: req.GetBool("includeDropped", false),
		Status:         status,
		Folder:         req.GetString("folder", ""),
	})
	if err != nil {
		return toolError(err)
	}
	return jsonResult(projects), nil
}

func (s *Server) handleGetProject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idOrName, err := req.RequireString("idOrName")
	if err != nil {
		return toolError(err)
	}
	project, err := s.of.GetProject(ctx, idOrName)
	if err != nil {
		return toolError(err)
	}
	return jsonResult(project), nil
}

func (s *Server) handleCreateProject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return toolError(err)
	}
	status, err := statusArg(req, "status")
	if err != nil {
		return toolError(err)
	}
	opts := model.CreateProjectOptions{
		Name:       name,
		Note:       optString(req, "note"),
		Folder:     optString(req, "folder"),
		Sequential: optBool(req, "sequential"),
		Status:     status,
	}
	if tags := optStringSlice(req, "tags"); tags != nil {
		opts.Tags = *tags
	}
	project, err := s.of.CreateProject(ctx, opts)
	if err != nil {
		return toolError(err)
	}
	return jsonResult(project), nil
}

func (s *Server) handleUpdateProject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idOrName, err := req.RequireString("idOrName")
	if err != nil {
		return toolError(err)
	}
	status, err := statusArg(req, "status")
	if err != nil {
		return toolError(err)
	}
	project, err := s.of.UpdateProject(ctx, idOrName, model.UpdateProjectOptions{
		Name:       optString(req, "name"),
		Note:       optString(req, "note"),
		Folder:     optString(req, "folder"),
		Sequential: optBool(req, "sequential"),
		Tags:       optStringSlice(req, "tags"),
		Status:     status,
	})
	if err != nil {
		return toolError(err)
	}
	return jsonResult(project), nil
}

func (s *Server) handleDeleteProject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idOrName, err := req.RequireString("idOrName")
	if err != nil {
		return toolError(err)
	}
	if err := s.of.DeleteProject(ctx, idOrName); err != nil {
		return toolError(err)
	}
	return jsonResult(map[string]bool{"deleted": true}), nil
}

func (s *Server) handleGetProjectStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := s.of.GetProjectStats(ctx)
	if err != nil {
		return toolError(err)
	}
	return jsonResult(stats), nil
}
