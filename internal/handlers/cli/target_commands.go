package cli

import (
	"github.com/AntonioJCosta/testctl/internal/core/domain/target"
	"github.com/AntonioJCosta/testctl/internal/core/ports"
	"github.com/spf13/cobra"
)

// NewTargetCommands creates one subcommand per entry of the target catalog.
// Each command is a fixed dispatch: no flags, no state, just the target name
// handed to the run service. Only the single-file target takes an argument.
func NewTargetCommands(runService ports.TargetRunService) []*cobra.Command {
	catalog := target.Catalog()
	cmds := make([]*cobra.Command, 0, len(catalog))
	for _, tgt := range catalog {
		if tgt.RequiresFile {
			cmds = append(cmds, newFileTargetCommand(tgt, runService))
			continue
		}
		cmds = append(cmds, newFixedTargetCommand(tgt, runService))
	}
	return cmds
}

// newFixedTargetCommand builds a parameterless target command. Extra
// arguments are rejected so nothing caller-supplied can leak into the
// runner's argument list.
func newFixedTargetCommand(tgt target.Target, runService ports.TargetRunService) *cobra.Command {
	return &cobra.Command{
		Use:   tgt.Name,
		Short: tgt.Description,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runService.RunTarget(tgt.Name, "")
		},
	}
}

// newFileTargetCommand builds the single-file target command. The path is
// mandatory and passed through to the runner unmodified.
func newFileTargetCommand(tgt target.Target, runService ports.TargetRunService) *cobra.Command {
	return &cobra.Command{
		Use:   tgt.Name + " <file>",
		Short: tgt.Description,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runService.RunTarget(tgt.Name, args[0])
		},
	}
}
