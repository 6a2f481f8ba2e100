package cli

import (
	"github.com/spf13/cobra"

	"cppkg/pkg/resolver"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install [package[=interval]...]",
		Short: "Install the project's dependencies, or add new packages",
		Long: `Install resolves the dependencies listed in cppkg.toml and copies them into the
project, going through the shared cache. Packages given as arguments are
installed and added to the manifest; the lock file is not used in that case.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			quiet, _ := cmd.Flags().GetBool("quiet")
			strict, _ := cmd.Flags().GetBool("strict")

			// Quiet wins over verbose.
			if quiet {
				verbose = false
			}

			return c.app.Install(cmd.Context(), resolver.Options{
				Packages: args,
				Quiet:    quiet,
				Verbose:  verbose,
				Strict:   strict,
			})
		},
	}
	cmd.Flags().BoolP("verbose", "v", false, "Print the cache and project keys of every package")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress progress output")
	cmd.Flags().Bool("strict", false, "Fail the install when any package cannot be fetched")
	return cmd
}
