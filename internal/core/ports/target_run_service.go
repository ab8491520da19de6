package ports

import "github.com/AntonioJCosta/testctl/internal/core/domain/invocation"

// TargetRunService defines the contract for resolving and running test
// targets.
type TargetRunService interface {
	// BuildInvocation resolves the command line a target would run. file is
	// the caller-supplied path for the single-file target and must be empty
	// for every other target.
	BuildInvocation(targetName, file string) (invocation.Invocation, error)

	// RunTarget resolves a target and executes it, passing the runner's
	// stdio through. A non-zero runner exit is reported as a
	// targetrun.ExitStatusError so callers can propagate the code.
	RunTarget(targetName, file string) error
}
