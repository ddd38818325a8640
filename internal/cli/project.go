package cli

import (
	"github.com/spf13/cobra"

	"github.com/nhle/omnifocus-cli/internal/display"
	"github.com/nhle/omnifocus-cli/internal/model"
)

func newProjectCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage OmniFocus projects",
	}
	cmd.AddCommand(
		newProjectListCommand(a),
		newProjectCreateCommand(a),
		newProjectUpdateCommand(a),
		newProjectDeleteCommand(a),
		newProjectViewCommand(a),
		newProjectStatsCommand(a),
	)
	return cmd
}

func newProjectListCommand(a *app) *cobra.Command {
	var (
		folder  string
		status  string
		dropped bool
		verbose bool
	)
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			filters := model.ProjectFilters{
				IncludeDropped: dropped,
				Folder:         folder,
			}
			if status != "" {
				parsed, err := model.ParseStatus(status)
				if err != nil {
					return err
				}
				filters.Status = parsed
			}
			projects, err := a.of.ListProjects(cmd.Context(), filters)
			if err != nil {
				return err
			}
			return a.render(projects, func() { display.ProjectList(projects, verbose) })
		},
	}
	cmd.Flags().StringVarP(&folder, "folder", "f", "", "Filter by folder")
	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status (active, on hold, dropped)")
	cmd.Flags().BoolVarP(&dropped, "dropped", "d", false, "Include dropped projects")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed information")
	return cmd
}

func newProjectCreateCommand(a *app) *cobra.Command {
	var (
		folder     string
		note       string
		tags       []string
		sequential bool
		status     string
	)
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := model.CreateProjectOptions{
				Name: args[0],
				Tags: tags,
			}
			if folder != "" {
				opts.Folder = &folder
			}
			if cmd.Flags().Changed("note") {
				opts.Note = &note
			}
			if cmd.Flags().Changed("sequential") {
				opts.Sequential = &sequential
			}
			if status != "" {
				parsed, err := model.ParseStatus(status)
				if err != nil {
					return err
				}
				opts.Status = parsed
			}
			project, err := a.of.CreateProject(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return a.render(project, func() {
				display.WithSuccessMessage("Project created successfully", func() {
					display.ProjectDetails(*project)
				})
			})
		},
	}
	cmd.Flags().StringVarP(&folder, "folder", "f", "", "Assign to folder")
	cmd.Flags().StringVarP(&note, "note", "n", "", "Add note")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Add tags")
	cmd.Flags().BoolVarP(&sequential, "sequential", "s", false, "Make it a sequential project")
	cmd.Flags().StringVar(&status, "status", "", "Set status (active, on hold, dropped)")
	return cmd
}

func newProjectUpdateCommand(a *app) *cobra.Command {
	var (
		name       string
		note       string
		folder     string
		tags       []string
		sequential bool
		parallel   bool
		status     string
	)
	cmd := &cobra.Command{
		Use:   "update <idOrName>",
		Short: "Update an existing project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts model.UpdateProjectOptions
			if cmd.Flags().Changed("name") {
				opts.Name = &name
			}
			if cmd.Flags().Changed("note") {
				opts.Note = &note
			}
			if cmd.Flags().Changed("folder") {
				opts.Folder = &folder
			}
			if cmd.Flags().Changed("tag") {
				opts.Tags = &tags
			}
			if sequential && parallel {
				return model.NewValidationError("cannot combine --sequential and --parallel")
			}
			if sequential {
				opts.Sequential = boolPtr(true)
			}
			if parallel {
				opts.Sequential = boolPtr(false)
			}
			if status != "" {
				parsed, err := model.ParseStatus(status)
				if err != nil {
					return err
				}
				opts.Status = parsed
			}
			project, err := a.of.UpdateProject(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			return a.render(project, func() {
				display.WithSuccessMessage("Project updated successfully", func() {
					display.ProjectDetails(*project)
				})
			})
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "New name")
	cmd.Flags().StringVar(&note, "note", "", "New note")
	cmd.Flags().StringVarP(&folder, "folder", "f", "", "Move to folder")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Replace tags")
	cmd.Flags().BoolVar(&sequential, "sequential", false, "Make it sequential")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "Make it parallel")
	cmd.Flags().StringVarP(&status, "status", "s", "", "Set status (active, on hold, dropped)")
	return cmd
}

func newProjectDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <idOrName>",
		Aliases: []string{"rm"},
		Short:   "Delete a project",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.of.DeleteProject(cmd.Context(), args[0]); err != nil {
				return err
			}
			return a.render(map[string]bool{"deleted": true}, func() {
				display.SuccessMessage("Project deleted successfully")
			})
		},
	}
}

func newProjectViewCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view <idOrName>",
		Short: "View project details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := a.of.GetProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.render(project, func() { display.ProjectDetails(*project) })
		},
	}
}

func newProjectStatsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show project statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.of.GetProjectStats(cmd.Context())
			if err != nil {
				return err
			}
			return a.render(stats, func() { display.ProjectStats(*stats) })
		},
	}
}
