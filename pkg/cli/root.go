// Package cli implements the cppkg command line.
package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"cppkg/pkg/resolver"
)

// Application is what the commands drive.
type Application interface {
	Install(ctx context.Context, opts resolver.Options) error
	Init(ctx context.Context, name string) error
}

// CLI is the cppkg command line.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cppkg",
		Short:         "A package manager for C++ libraries",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newInitCmd())
	rootCmd.AddCommand(c.newInstallCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
