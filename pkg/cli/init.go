package cli

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [name]",
		Short: "Initialize a new project (creates cppkg.toml)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "my-cpp-project"
			if len(args) == 1 {
				name = args[0]
			}
			return c.app.Init(cmd.Context(), name)
		},
	}
	return cmd
}
