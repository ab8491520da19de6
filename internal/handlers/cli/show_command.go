package cli

import (
	"fmt"

	"github.com/AntonioJCosta/testctl/internal/core/domain/target"
	"github.com/AntonioJCosta/testctl/internal/core/ports"
	"github.com/AntonioJCosta/testctl/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewShowCommand creates the 'show' subcommand: a dry run that prints the
// command line a target would execute.
func NewShowCommand(runService ports.TargetRunService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <target> [file]",
		Short: "Show the command line a target would run, without running it.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowCmd(cmd, args, runService)
		},
	}
	return cmd
}

func runShowCmd(
	_ *cobra.Command,
	args []string,
	runService ports.TargetRunService,
) error {
	targetName := args[0]

	tgt, ok := target.Lookup(targetName)
	if !ok {
		return fmt.Errorf("unknown target %q", targetName)
	}

	file := ""
	if len(args) == 2 {
		if !tgt.RequiresFile {
			return fmt.Errorf("target %q does not accept a file argument", targetName)
		}
		file = args[1]
	} else if tgt.RequiresFile {
		file = filePlaceholder
	}

	inv, err := runService.BuildInvocation(targetName, file)
	if err != nil {
		return fmt.Errorf("could not resolve target %q: %w", targetName, err)
	}

	fmt.Println(ui.CommandColor(inv.String()))
	return nil
}
