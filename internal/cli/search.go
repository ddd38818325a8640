package cli

import (
	"github.com/spf13/cobra"

	"github.com/nhle/omnifocus-cli/internal/display"
)

func newSearchCommand(a *app) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search tasks by name or note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := a.of.SearchTasks(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.render(tasks, func() { display.TaskList(tasks, verbose) })
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed information")
	return cmd
}
