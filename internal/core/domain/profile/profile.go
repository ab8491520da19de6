/*
Package profile defines the runner profile: the set of string literals
(binaries, directory paths, marker names) that parameterize every target's
command line.
*/
package profile

// RunnerProfile holds the runner binaries, suite paths and marker names used
// to build target invocations. Zero-value fields are backfilled from
// Default() by the profile provider.
type RunnerProfile struct {
	Runner            string `yaml:"runner"`
	WatchRunner       string `yaml:"watchRunner"`
	TestsDir          string `yaml:"testsDir"`
	UnitDir           string `yaml:"unitDir"`
	IntegrationDir    string `yaml:"integrationDir"`
	SourceDir         string `yaml:"sourceDir"`
	UnitMarker        string `yaml:"unitMarker"`
	IntegrationMarker string `yaml:"integrationMarker"`
	SlowMarker        string `yaml:"slowMarker"`
}

// Default returns the profile used when no profile file is present.
func Default() RunnerProfile {
	return RunnerProfile{
		Runner:            "pytest",
		WatchRunner:       "ptw",
		TestsDir:          "tests",
		UnitDir:           "tests/unit",
		IntegrationDir:    "tests/integration",
		SourceDir:         "src",
		UnitMarker:        "unit",
		IntegrationMarker: "integration",
		SlowMarker:        "slow",
	}
}

// MergeDefaults returns p with every zero-value field replaced by the
// corresponding Default() field.
func (p RunnerProfile) MergeDefaults() RunnerProfile {
	def := Default()
	if p.Runner == "" {
		p.Runner = def.Runner
	}
	if p.WatchRunner == "" {
		p.WatchRunner = def.WatchRunner
	}
	if p.TestsDir == "" {
		p.TestsDir = def.TestsDir
	}
	if p.UnitDir == "" {
		p.UnitDir = def.UnitDir
	}
	if p.IntegrationDir == "" {
		p.IntegrationDir = def.IntegrationDir
	}
	if p.SourceDir == "" {
		p.SourceDir = def.SourceDir
	}
	if p.UnitMarker == "" {
		p.UnitMarker = def.UnitMarker
	}
	if p.IntegrationMarker == "" {
		p.IntegrationMarker = def.IntegrationMarker
	}
	if p.SlowMarker == "" {
		p.SlowMarker = def.SlowMarker
	}
	return p
}
