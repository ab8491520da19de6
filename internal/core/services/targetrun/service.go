package targetrun

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/testctl/internal/core/domain/invocation"
	"github.com/AntonioJCosta/testctl/internal/core/domain/target"
	"github.com/AntonioJCosta/testctl/internal/core/ports"
)

type service struct {
	profileProvider ports.RunnerProfileProvider
	executor        ports.CommandExecutor
}

// NewService creates a new target run service.
// It panics if profileProvider or executor is nil.
func NewService(profileProvider ports.RunnerProfileProvider, executor ports.CommandExecutor) ports.TargetRunService {
	if profileProvider == nil {
		panic("profileProvider cannot be nil")
	}
	if executor == nil {
		panic("executor cannot be nil")
	}
	return &service{profileProvider: profileProvider, executor: executor}
}

// BuildInvocation resolves the exact command line for the named target.
// The file argument is accepted only by the single-file target; it is passed
// through to the runner unmodified.
func (s *service) BuildInvocation(targetName, file string) (invocation.Invocation, error) {
	tgt, ok := target.Lookup(targetName)
	if !ok {
		return invocation.Invocation{}, fmt.Errorf("unknown target %q", targetName)
	}

	if tgt.RequiresFile && strings.TrimSpace(file) == "" {
		return invocation.Invocation{}, fmt.Errorf("cannot build invocation for %q: %w", targetName, ErrFileRequired)
	}
	if !tgt.RequiresFile && file != "" {
		return invocation.Invocation{}, fmt.Errorf("target %q does not accept a file argument", targetName)
	}

	prof, err := s.profileProvider.GetProfile()
	if err != nil {
		return invocation.Invocation{}, fmt.Errorf("could not load runner profile: %w", err)
	}

	return buildInvocation(tgt, prof, file), nil
}

// RunTarget resolves the target and hands the invocation to the executor,
// surfacing the runner's exit status unmodified.
func (s *service) RunTarget(targetName, file string) error {
	inv, err := s.BuildInvocation(targetName, file)
	if err != nil {
		return err
	}

	exitCode, err := s.executor.Execute(inv)
	if err != nil {
		return fmt.Errorf("could not run target %q: %w", targetName, err)
	}
	if exitCode != 0 {
		return &ExitStatusError{Target: targetName, Code: exitCode}
	}
	return nil
}
