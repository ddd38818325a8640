package cli

import (
	"github.com/spf13/cobra"

	"github.com/nhle/omnifocus-cli/internal/display"
)

func newInboxCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "Work with the OmniFocus inbox",
	}

	var verbose bool
	list := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List inbox tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := a.of.ListInboxTasks(cmd.Context())
			if err != nil {
				return err
			}
			return a.render(tasks, func() { display.TaskList(tasks, verbose) })
		},
	}
	list.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed information")

	count := &cobra.Command{
		Use:   "count",
		Short: "Count inbox tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.of.InboxCount(cmd.Context())
			if err != nil {
				return err
			}
			return a.render(map[string]int{"count": n}, func() { display.InboxCount(n) })
		},
	}

	cmd.AddCommand(list, count)
	return cmd
}
