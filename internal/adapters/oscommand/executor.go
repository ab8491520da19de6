package oscommand

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/AntonioJCosta/testctl/internal/core/domain/invocation"
	"github.com/AntonioJCosta/testctl/internal/core/ports"
)

// OSCommandExecutor implements the CommandExecutor interface using the
// operating system's process facilities.
type OSCommandExecutor struct{}

// NewOSCommandExecutor creates a new OSCommandExecutor.
func NewOSCommandExecutor() ports.CommandExecutor {
	return &OSCommandExecutor{}
}

// Execute runs the invocation as a child process. The child inherits this
// process's stdin, stdout and stderr, so the runner's output reaches the
// caller unmodified. The child's exit status is returned as exitCode; err is
// reserved for failures to run the process at all.
func (e *OSCommandExecutor) Execute(inv invocation.Invocation) (int, error) {
	cmd := exec.Command(inv.Program, inv.Args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, fmt.Errorf("executing %q: %w", inv.Program, err)
}
