package ports

import "github.com/AntonioJCosta/testctl/internal/core/domain/invocation"

// CommandExecutor defines an interface for running a resolved invocation as a
// child process. The child inherits the parent's stdio unmodified; exitCode
// is the child's exit status. err is non-nil only when the process could not
// be run at all (e.g., the runner binary is missing), never for a non-zero
// exit.
type CommandExecutor interface {
	Execute(inv invocation.Invocation) (exitCode int, err error)
}
