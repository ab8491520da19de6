package testutil

import (
	"errors"

	"github.com/AntonioJCosta/testctl/internal/core/domain/profile"
)

// MockRunnerProfileProvider is a mock implementation of
// ports.RunnerProfileProvider.
type MockRunnerProfileProvider struct {
	GetProfileFunc func() (profile.RunnerProfile, error)
}

// GetProfile calls the mock GetProfileFunc.
func (m *MockRunnerProfileProvider) GetProfile() (profile.RunnerProfile, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc()
	}
	return profile.RunnerProfile{}, errors.New("MockRunnerProfileProvider.GetProfileFunc not implemented")
}
