package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nhle/omnifocus-cli/internal/dates"
	"github.com/nhle/omnifocus-cli/internal/model"
)

func (s *Server) taskTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("list_tasks",
				mcp.WithDescription(registryDescription("list_tasks")),
				mcp.WithBoolean("includeCompleted", mcp.Description("Include completed tasks")),
				mcp.WithBoolean("includeDropped", mcp.Description("Include dropped tasks")),
				mcp.WithBoolean("flagged", mcp.Description("Only show flagged tasks")),
				mcp.WithString("project", mcp.Description("Filter by project name")),
				mcp.WithString("tag", mcp.Description("Filter by tag name")),
			),
			Handler: s.handleListTasks,
		},
		{
			Tool: mcp.NewTool("get_task",
				mcp.WithDescription(registryDescription("get_task")),
				mcp.WithString("idOrName", mcp.Required(), mcp.Description("Task ID or name")),
			),
			Handler: s.handleGetTask,
		},
		{
			Tool: mcp.NewTool("create_task",
				mcp.WithDescription(registryDescription("create_task")),
				mcp.WithString("name", mcp.Required(), mcp.Description("Task name")),
				mcp.WithString("note", mcp.Description("Task note")),
				mcp.WithString("project", mcp.Description("Project to add task to")),
				mcp.WithArray("tags", mcp.Description("Tags to assign"), mcp.WithStringItems()),
				mcp.WithString("defer", mcp.Description("Defer date (ISO 8601)")),
				mcp.WithString("due", mcp.Description("Due date (ISO 8601)")),
				mcp.WithBoolean("flagged", mcp.Description("Flag the task")),
				mcp.WithNumber("estimatedMinutes", mcp.Description("Estimated duration in minutes")),
			),
			Handler: s.handleCreateTask,
		},
		{
			Tool: mcp.NewTool("update_task",
				mcp.WithDescription(registryDescription("update_task")),
				mcp.WithString("idOrName", mcp.Required(), mcp.Description("Task ID or name")),
				mcp.WithString("name", mcp.Description("New task name")),
				mcp.WithString("note", mcp.Description("New task note")),
				mcp.WithString("project", mcp.Description("Move to project")),
				mcp.WithArray("tags", mcp.Description("Replace tags"), mcp.WithStringItems()),
				mcp.WithString("defer", mcp.Description("New defer date (ISO 8601), empty clears")),
				mcp.WithString("due", mcp.Description("New due date (ISO 8601), empty clears")),
				mcp.WithBoolean("flagged", mcp.Description("Flag/unflag the task")),
				mcp.WithNumber("estimatedMinutes", mcp.Description("New estimated duration")),
				mcp.WithBoolean("completed", mcp.Description("Mark complete/incomplete")),
			),
			Handler: s.handleUpdateTask,
		},
		{
			Tool: mcp.NewTool("delete_task",
				mcp.WithDescription(registryDescription("delete_task")),
				mcp.WithString("idOrName", mcp.Required(), mcp.Description("Task ID or name")),
			),
			Handler: s.handleDeleteTask,
		},
		{
			Tool: mcp.NewTool("search_tasks",
				mcp.WithDescription(registryDescription("search_tasks")),
				mcp.WithString("query", mcp.Required(), mcp.Description("Search query")),
			),
			Handler: s.handleSearchTasks,
		},
		{
			Tool: mcp.NewTool("get_task_stats",
				mcp.WithDescription(registryDescription("get_task_stats")),
			),
			Handler: s.handleGetTaskStats,
		},
	}
}

func (s *Server) handleListTasks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tasks, err := s.of.ListTasks(ctx, model.TaskFilters{
		IncludeCompleted: req.GetBool("includeCompleted", false),
		IncludeDropped:   req.GetBool("includeDropped", false),
		Flagged:          req.GetBool("flagged", false),
		Project:          req.GetString("project", ""),
		Tag:              req.GetString("tag", ""),
	})
	if err != nil {
		return toolError(err)
	}
	return jsonResult(tasks), nil
}

func (s *Server) handleGetTask(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idOrName, err := req.RequireString("idOrName")
	if err != nil {
		return toolError(err)
	}
	task, err := s.of.GetTask(ctx, idOrName)
	if err != nil {
		return toolError(err)
	}
	return jsonResult(task), nil
}

func (s *Server) handleCreateTask(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return toolError(err)
	}
	opts := model.CreateTaskOptions{
		Name:             name,
		Note:             optString(req, "note"),
		Project:          optString(req, "project"),
		Flagged:          req.GetBool("flagged", false),
		EstimatedMinutes: optInt(req, "estimatedMinutes"),
	}
	if tags := optStringSlice(req, "tags"); tags != nil {
		opts.Tags = *tags
	}
	if raw := req.GetString("defer", ""); raw != "" {
		iso, err := dates.ParseDateTime(raw)
		if err != nil {
			return toolError(err)
		}
		opts.Defer = &iso
	}
	if raw := req.GetString("due", ""); raw != "" {
		iso, err := dates.ParseDateTime(raw)
		if err != nil {
			return toolError(err)
		}
		opts.Due = &iso
	}
	task, err := s.of.CreateTask(ctx, opts)
	if err != nil {
		return toolError(err)
	}
	return jsonResult(task), nil
}

func (s *Server) handleUpdateTask(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idOrName, err := req.RequireString("idOrName")
	if err != nil {
		return toolError(err)
	}
	opts := model.UpdateTaskOptions{
		Name:             optString(req, "name"),
		Note:             optString(req, "note"),
		Project:          optString(req, "project"),
		Tags:             optStringSlice(req, "tags"),
		Flagged:          optBool(req, "flagged"),
		EstimatedMinutes: optInt(req, "estimatedMinutes"),
		Completed:        optBool(req, "completed"),
	}
	if opts.Defer, err = datePatchArg(req, "defer"); err != nil {
		return toolError(err)
	}
	if opts.Due, err = datePatchArg(req, "due"); err != nil {
		return toolError(err)
	}
	task, err := s.of.UpdateTask(ctx, idOrName, opts)
	if err != nil {
		return toolError(err)
	}
	return jsonResult(task), nil
}

func (s *Server) handleDeleteTask(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idOrName, err := req.RequireString("idOrName")
	if err != nil {
		return toolError(err)
	}
	if err := s.of.DeleteTask(ctx, idOrName); err != nil {
		return toolError(err)
	}
	return jsonResult(map[string]bool{"deleted": true}), nil
}

func (s *Server) handleSearchTasks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return toolError(err)
	}
	tasks, err := s.of.SearchTasks(ctx, query)
	if err != nil {
		return toolError(err)
	}
	return jsonResult(tasks), nil
}

func (s *Server) handleGetTaskStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := s.of.GetTaskStats(ctx)
	if err != nil {
		return toolError(err)
	}
	return jsonResult(stats), nil
}
