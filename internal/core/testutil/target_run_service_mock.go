package testutil

import (
	"errors"

	"github.com/AntonioJCosta/testctl/internal/core/domain/invocation"
)

// MockTargetRunService is a mock implementation of ports.TargetRunService.
type MockTargetRunService struct {
	BuildInvocationFunc func(targetName, file string) (invocation.Invocation, error)
	RunTargetFunc       func(targetName, file string) error
}

// BuildInvocation calls the mock BuildInvocationFunc.
func (m *MockTargetRunService) BuildInvocation(targetName, file string) (invocation.Invocation, error) {
	if m.BuildInvocationFunc != nil {
		return m.BuildInvocationFunc(targetName, file)
	}
	return invocation.Invocation{}, errors.New("MockTargetRunService.BuildInvocationFunc not implemented")
}

// RunTarget calls the mock RunTargetFunc.
func (m *MockTargetRunService) RunTarget(targetName, file string) error {
	if m.RunTargetFunc != nil {
		return m.RunTargetFunc(targetName, file)
	}
	return errors.New("MockTargetRunService.RunTargetFunc not implemented")
}
