package cli

import (
	"github.com/spf13/cobra"

	"github.com/nhle/omnifocus-cli/internal/dates"
	"github.com/nhle/omnifocus-cli/internal/display"
	"github.com/nhle/omnifocus-cli/internal/model"
)

// parseDateFlag validates a date flag value. An empty string is an
// explicit clear; anything else must parse.
func parseDateFlag(cmd *cobra.Command, name string) (model.DatePatch, error) {
	if !cmd.Flags().Changed(name) {
		return model.DatePatch{}, nil
	}
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return model.DatePatch{}, err
	}
	if raw == "" {
		return model.ClearDate(), nil
	}
	iso, err := dates.ParseDateTime(raw)
	if err != nil {
		return model.DatePatch{}, err
	}
	return model.SetDate(iso), nil
}

func newTaskCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage OmniFocus tasks",
	}
	cmd.AddCommand(
		newTaskListCommand(a),
		newTaskCreateCommand(a),
		newTaskUpdateCommand(a),
		newTaskDeleteCommand(a),
		newTaskViewCommand(a),
		newTaskStatsCommand(a),
	)
	return cmd
}

func newTaskListCommand(a *app) *cobra.Command {
	var (
		flagged   bool
		project   string
		tag       string
		completed bool
		dropped   bool
		verbose   bool
	)
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := a.of.ListTasks(cmd.Context(), model.TaskFilters{
				IncludeCompleted: completed,
				IncludeDropped:   dropped,
				Flagged:          flagged,
				Project:          project,
				Tag:              tag,
			})
			if err != nil {
				return err
			}
			return a.render(tasks, func() { display.TaskList(tasks, verbose) })
		},
	}
	cmd.Flags().BoolVarP(&flagged, "flagged", "f", false, "Show only flagged tasks")
	cmd.Flags().StringVarP(&project, "project", "p", "", "Filter by project")
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "Filter by tag")
	cmd.Flags().BoolVarP(&completed, "completed", "c", false, "Include completed tasks")
	cmd.Flags().BoolVarP(&dropped, "dropped", "d", false, "Include dropped tasks")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed information")
	return cmd
}

func newTaskCreateCommand(a *app) *cobra.Command {
	var (
		project  string
		note     string
		tags     []string
		due      string
		deferOn  string
		flagged  bool
		estimate int
	)
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := model.CreateTaskOptions{
				Name:    args[0],
				Tags:    tags,
				Flagged: flagged,
			}
			if cmd.Flags().Changed("note") {
				opts.Note = &note
			}
			if project != "" {
				opts.Project = &project
			}
			if cmd.Flags().Changed("estimate") {
				opts.EstimatedMinutes = &estimate
			}
			if due != "" {
				iso, err := dates.ParseDateTime(due)
				if err != nil {
					return err
				}
				opts.Due = &iso
			}
			if deferOn != "" {
				iso, err := dates.ParseDateTime(deferOn)
				if err != nil {
					return err
				}
				opts.Defer = &iso
			}
			task, err := a.of.CreateTask(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return a.render(task, func() {
				display.WithSuccessMessage("Task created successfully", func() {
					display.TaskDetails(*task)
				})
			})
		},
	}
	cmd.Flags().StringVarP(&project, "project", "p", "", "Assign to project")
	cmd.Flags().StringVarP(&note, "note", "n", "", "Add note")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Add tags")
	cmd.Flags().StringVarP(&due, "due", "d", "", "Set due date (ISO format)")
	cmd.Flags().StringVarP(&deferOn, "defer", "D", "", "Set defer date (ISO format)")
	cmd.Flags().BoolVarP(&flagged, "flagged", "f", false, "Flag the task")
	cmd.Flags().IntVarP(&estimate, "estimate", "e", 0, "Estimated time in minutes")
	return cmd
}

func newTaskUpdateCommand(a *app) *cobra.Command {
	var (
		name       string
		note       string
		project    string
		tags       []string
		flag       bool
		unflag     bool
		complete   bool
		incomplete bool
		estimate   int
	)
	cmd := &cobra.Command{
		Use:   "update <idOrName>",
		Short: "Update an existing task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts model.UpdateTaskOptions
			if cmd.Flags().Changed("name") {
				opts.Name = &name
			}
			if cmd.Flags().Changed("note") {
				opts.Note = &note
			}
			if cmd.Flags().Changed("project") {
				opts.Project = &project
			}
			if cmd.Flags().Changed("tag") {
				opts.Tags = &tags
			}
			if cmd.Flags().Changed("estimate") {
				opts.EstimatedMinutes = &estimate
			}
			var err error
			if opts.Due, err = parseDateFlag(cmd, "due"); err != nil {
				return err
			}
			if opts.Defer, err = parseDateFlag(cmd, "defer"); err != nil {
				return err
			}
			if flag && unflag {
				return model.NewValidationError("cannot combine --flag and --unflag")
			}
			if flag {
				opts.Flagged = boolPtr(true)
			}
			if unflag {
				opts.Flagged = boolPtr(false)
			}
			if complete && incomplete {
				return model.NewValidationError("cannot combine --complete and --incomplete")
			}
			if complete {
				opts.Completed = boolPtr(true)
			}
			if incomplete {
				opts.Completed = boolPtr(false)
			}
			task, err := a.of.UpdateTask(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			return a.render(task, func() {
				display.WithSuccessMessage("Task updated successfully", func() {
					display.TaskDetails(*task)
				})
			})
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "New name")
	cmd.Flags().StringVar(&note, "note", "", "New note")
	cmd.Flags().StringVarP(&project, "project", "p", "", "Move to project")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Replace tags")
	cmd.Flags().StringP("due", "d", "", "Set due date (ISO format, empty clears)")
	cmd.Flags().StringP("defer", "D", "", "Set defer date (ISO format, empty clears)")
	cmd.Flags().BoolVarP(&flag, "flag", "f", false, "Flag the task")
	cmd.Flags().BoolVarP(&unflag, "unflag", "F", false, "Unflag the task")
	cmd.Flags().BoolVarP(&complete, "complete", "c", false, "Mark as completed")
	cmd.Flags().BoolVarP(&incomplete, "incomplete", "C", false, "Mark as incomplete")
	cmd.Flags().IntVarP(&estimate, "estimate", "e", 0, "Estimated time in minutes")
	return cmd
}

func newTaskDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <idOrName>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.of.DeleteTask(cmd.Context(), args[0]); err != nil {
				return err
			}
			return a.render(map[string]bool{"deleted": true}, func() {
				display.SuccessMessage("Task deleted successfully")
			})
		},
	}
}

func newTaskViewCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view <idOrName>",
		Short: "View task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := a.of.GetTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.render(task, func() { display.TaskDetails(*task) })
		},
	}
}

func newTaskStatsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show task statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.of.GetTaskStats(cmd.Context())
			if err != nil {
				return err
			}
			return a.render(stats, func() { display.TaskStats(*stats) })
		},
	}
}

func boolPtr(b bool) *bool {
	return &b
}
