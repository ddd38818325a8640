package cli

import (
	"github.com/spf13/cobra"

	"github.com/nhle/omnifocus-cli/internal/display"
	"github.com/nhle/omnifocus-cli/internal/model"
)

func newTagCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage OmniFocus tags",
	}
	cmd.AddCommand(
		newTagListCommand(a),
		newTagCreateCommand(a),
		newTagViewCommand(a),
		newTagUpdateCommand(a),
		newTagDeleteCommand(a),
		newTagStatsCommand(a),
	)
	return cmd
}

func newTagListCommand(a *app) *cobra.Command {
	var (
		unusedDays int
		sortBy     string
		activeOnly bool
		verbose    bool
	)
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			sort, err := model.ParseTagSort(sortBy)
			if err != nil {
				return err
			}
			tags, err := a.of.ListTags(cmd.Context(), model.TagListOptions{
				UnusedDays: unusedDays,
				SortBy:     sort,
				ActiveOnly: activeOnly,
			})
			if err != nil {
				return err
			}
			return a.render(tags, func() { display.TagList(tags, verbose) })
		},
	}
	cmd.Flags().IntVarP(&unusedDays, "unused-days", "u", 0, "Show tags unused for N days")
	cmd.Flags().StringVarP(&sortBy, "sort", "s", "name", "Sort by: name, usage, activity")
	cmd.Flags().BoolVarP(&activeOnly, "active-only", "a", false, "Only count active (incomplete) tasks")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed information")
	return cmd
}

func newTagCreateCommand(a *app) *cobra.Command {
	var (
		parent string
		status string
	)
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := model.CreateTagOptions{Name: args[0]}
			if parent != "" {
				opts.Parent = &parent
			}
			if status != "" {
				parsed, err := model.ParseStatus(status)
				if err != nil {
					return err
				}
				opts.Status = parsed
			}
			tag, err := a.of.CreateTag(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return a.render(tag, func() {
				display.WithSuccessMessage("Tag created successfully", func() {
					display.TagDetails(*tag)
				})
			})
		},
	}
	cmd.Flags().StringVarP(&parent, "parent", "p", "", "Create as child of parent tag")
	cmd.Flags().StringVarP(&status, "status", "s", "", "Set status (active, on hold, dropped)")
	return cmd
}

func newTagViewCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view <idOrName>",
		Short: "View tag details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := a.of.GetTag(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.render(tag, func() { display.TagDetails(*tag) })
		},
	}
}

func newTagUpdateCommand(a *app) *cobra.Command {
	var (
		name   string
		status string
	)
	cmd := &cobra.Command{
		Use:   "update <idOrName>",
		Short: "Update an existing tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts model.UpdateTagOptions
			if cmd.Flags().Changed("name") {
				opts.Name = &name
			}
			if status != "" {
				parsed, err := model.ParseStatus(status)
				if err != nil {
					return err
				}
				opts.Status = parsed
			}
			tag, err := a.of.UpdateTag(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			return a.render(tag, func() {
				display.WithSuccessMessage("Tag updated successfully", func() {
					display.TagDetails(*tag)
				})
			})
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "Rename tag")
	cmd.Flags().StringVarP(&status, "status", "s", "", "Set status (active, on hold, dropped)")
	return cmd
}

func newTagDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <idOrName>",
		Aliases: []string{"rm"},
		Short:   "Delete a tag",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.of.DeleteTag(cmd.Context(), args[0]); err != nil {
				return err
			}
			return a.render(map[string]bool{"deleted": true}, func() {
				display.SuccessMessage("Tag deleted successfully")
			})
		},
	}
}

func newTagStatsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show tag statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.of.GetTagStats(cmd.Context())
			if err != nil {
				return err
			}
			return a.render(stats, func() { display.TagStats(*stats) })
		},
	}
}
