package cli

import (
	"github.com/spf13/cobra"

	"github.com/nhle/omnifocus-cli/internal/display"
)

func newPerspectiveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perspective",
		Short: "Work with OmniFocus perspectives",
	}

	list := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List available perspectives",
		RunE: func(cmd *cobra.Command, args []string) error {
			perspectives, err := a.of.ListPerspectives(cmd.Context())
			if err != nil {
				return err
			}
			return a.render(perspectives, func() { display.PerspectiveList(perspectives) })
		},
	}

	var verbose bool
	view := &cobra.Command{
		Use:   "view <name>",
		Short: "Show the tasks a perspective would display",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := a.of.PerspectiveTasks(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.render(tasks, func() { display.TaskList(tasks, verbose) })
		},
	}
	view.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed information")

	cmd.AddCommand(list, view)
	return cmd
}
