package ports

import "github.com/AntonioJCosta/testctl/internal/core/domain/profile"

// RunnerProfileProvider defines the interface for sourcing the runner
// profile, like a configuration file.
type RunnerProfileProvider interface {
	// GetProfile loads the runner profile. Implementations return the
	// default profile, not an error, when no profile source exists.
	GetProfile() (profile.RunnerProfile, error)
}
