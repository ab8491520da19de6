package testutil

import (
	"errors"

	"github.com/AntonioJCosta/testctl/internal/core/domain/invocation"
)

// MockCommandExecutor is a mock implementation of ports.CommandExecutor.
type MockCommandExecutor struct {
	ExecuteFunc func(inv invocation.Invocation) (exitCode int, err error)
}

// Execute calls the mock ExecuteFunc.
func (m *MockCommandExecutor) Execute(inv invocation.Invocation) (int, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(inv)
	}
	return 0, errors.New("MockCommandExecutor.ExecuteFunc not implemented")
}
