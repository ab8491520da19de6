package cli

import (
	"fmt"

	"github.com/AntonioJCosta/testctl/internal/core/ports"
	"github.com/spf13/cobra"
)

var rootCmd *cobra.Command

func NewRootCommand(
	version string,
	runService ports.TargetRunService,
) *cobra.Command {
	rootCmd = &cobra.Command{
		Use:   "testctl",
		Short: "testctl is a front door for running the project's test suite.",
		Long: `testctl maps short target names to fixed invocations of the test runner:
the full suite, unit or integration subsets, fast runs, coverage runs,
single files, and watch mode.`,
		Version: version,
		// The runner's own output already explains failures; don't follow
		// it with a usage dump.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if runService == nil && cmd.Name() != "help" {
				return fmt.Errorf("target run service not initialized for command %s", cmd.Name())
			}
			return nil
		},
	}

	for _, c := range NewTargetCommands(runService) {
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(NewListCommand(runService))
	rootCmd.AddCommand(NewShowCommand(runService))

	return rootCmd
}
