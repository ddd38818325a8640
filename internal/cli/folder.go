package cli

import (
	"github.com/spf13/cobra"

	"github.com/nhle/omnifocus-cli/internal/display"
	"github.com/nhle/omnifocus-cli/internal/model"
)

func newFolderCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folder",
		Short: "Browse the OmniFocus folder hierarchy",
	}

	var listDropped bool
	list := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List folders",
		RunE: func(cmd *cobra.Command, args []string) error {
			folders, err := a.of.ListFolders(cmd.Context(),
				model.FolderFilters{IncludeDropped: listDropped})
			if err != nil {
				return err
			}
			return a.render(folders, func() { display.FolderList(folders) })
		},
	}
	list.Flags().BoolVarP(&listDropped, "dropped", "d", false, "Include dropped folders")

	var viewDropped bool
	view := &cobra.Command{
		Use:   "view <idOrName>",
		Short: "View folder details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := a.of.GetFolder(cmd.Context(), args[0],
				model.FolderFilters{IncludeDropped: viewDropped})
			if err != nil {
				return err
			}
			return a.render(folder, func() { display.FolderDetails(*folder) })
		},
	}
	view.Flags().BoolVarP(&viewDropped, "dropped", "d", false, "Include dropped child folders")

	cmd.AddCommand(list, view)
	return cmd
}
