package cli

import (
	"github.com/spf13/cobra"

	"github.com/nhle/omnifocus-cli/internal/mcpserver"
)

func newMCPCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := mcpserver.New(a.of, a.log)
			return srv.ServeStdio()
		},
	}
}
