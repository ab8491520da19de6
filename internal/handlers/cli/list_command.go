package cli

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/testctl/internal/core/domain/target"
	"github.com/AntonioJCosta/testctl/internal/core/ports"
	"github.com/AntonioJCosta/testctl/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// filePlaceholder stands in for the caller-supplied path when a command line
// is rendered for display rather than execution.
const filePlaceholder = "<file>"

// NewListCommand creates the 'list' subcommand.
func NewListCommand(runService ports.TargetRunService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available targets and the command lines they run.",
		Long:  `Displays every target together with the exact runner invocation it resolves to under the active profile.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, args, runService)
		},
	}
	return cmd
}

// runListCmd contains the core logic for the 'list' command.
func runListCmd(
	_ *cobra.Command,
	_ []string,
	runService ports.TargetRunService,
) error {
	fmt.Println(ui.HeaderColor("Available targets:"))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Target", "Command Line", "Description"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, tgt := range target.Catalog() {
		file := ""
		if tgt.RequiresFile {
			file = filePlaceholder
		}
		inv, err := runService.BuildInvocation(tgt.Name, file)
		if err != nil {
			return fmt.Errorf("could not resolve target %q: %w", tgt.Name, err)
		}
		table.Append([]string{tgt.Name, inv.String(), tgt.Description})
	}
	table.Render()
	return nil
}
