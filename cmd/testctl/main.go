package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/AntonioJCosta/testctl/internal/adapters/oscommand"
	"github.com/AntonioJCosta/testctl/internal/core/services/targetrun"
	"github.com/AntonioJCosta/testctl/internal/handlers/cli"
	"github.com/AntonioJCosta/testctl/internal/repositories/runnerprofile"
)

// Version is set at build time
var Version = "dev"

// defaultProfilePath is looked up in the working directory when
// TESTCTL_PROFILE is unset.
const defaultProfilePath = ".testctl.yaml"

func main() {
	profilePath := os.Getenv("TESTCTL_PROFILE")
	if profilePath == "" {
		profilePath = defaultProfilePath
	}

	profileProvider, err := runnerprofile.NewYAMLProvider(profilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing runner profile provider: %v\n", err)
		os.Exit(1)
	}

	cmdExec := oscommand.NewOSCommandExecutor()
	runSvc := targetrun.NewService(profileProvider, cmdExec)
	rootCmd := cli.NewRootCommand(Version, runSvc)

	if err := rootCmd.Execute(); err != nil {
		// A target whose runner exited non-zero propagates that exact
		// status; every other failure is testctl's own and exits 1.
		var exitErr *targetrun.ExitStatusError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
