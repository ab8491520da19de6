/*
Package runnerprofile provides the runner profile from a YAML file, falling
back to the built-in defaults when no file is present.
*/
package runnerprofile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/testctl/internal/core/domain/profile"
	"github.com/AntonioJCosta/testctl/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// YAMLProvider implements the RunnerProfileProvider interface by reading the
// profile from a YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML profile file; the file does not have to
// exist.
func NewYAMLProvider(filePath string) (ports.RunnerProfileProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML profile file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// GetProfile reads and parses the profile from the configured YAML file.
// A missing or empty file yields the default profile and no error. A present
// file is decoded strictly: unknown fields are an error, and any field left
// at its zero value falls back to the default.
func (p *YAMLProvider) GetProfile() (profile.RunnerProfile, error) {
	def := profile.Default()

	yamlFile, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// No profile file means the defaults apply.
			return def, nil
		}
		return profile.RunnerProfile{}, fmt.Errorf("failed to read runner profile file %s: %w", p.filePath, err)
	}

	if len(yamlFile) == 0 {
		return def, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(yamlFile))
	decoder.KnownFields(true)

	var loaded profile.RunnerProfile
	if err := decoder.Decode(&loaded); err != nil {
		// A file holding only comments or "---" decodes to EOF; treat it
		// like an empty file.
		if errors.Is(err, io.EOF) {
			return def, nil
		}
		return profile.RunnerProfile{}, fmt.Errorf("failed to unmarshal runner profile from %s: %w", p.filePath, err)
	}

	return loaded.MergeDefaults(), nil
}
