package targetrun

import (
	"errors"
	"fmt"
)

// ErrFileRequired indicates that the single-file target was invoked without a
// file path. The failure is deterministic and happens before any runner
// process is spawned.
var ErrFileRequired = errors.New("a test file path is required for the single-file target")

// ExitStatusError reports a runner process that ran to completion but exited
// non-zero. The dispatcher does not interpret the failure; callers propagate
// Code as their own exit status.
type ExitStatusError struct {
	Target string
	Code   int
}

func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("target %q exited with status %d", e.Target, e.Code)
}
