package targetrun

import (
	"github.com/AntonioJCosta/testctl/internal/core/domain/invocation"
	"github.com/AntonioJCosta/testctl/internal/core/domain/profile"
	"github.com/AntonioJCosta/testctl/internal/core/domain/target"
)

// Runner flags shared by every target. These are pytest's spellings; a
// profile can swap the runner binary but not the flag dialect.
const (
	verboseFlag = "-v"
	markerFlag  = "-m"
)

// buildInvocation is the dispatch table from target name to fixed argument
// list. Every argument is either a profile literal or one of the constants
// above; nothing is derived at run time.
func buildInvocation(tgt target.Target, prof profile.RunnerProfile, file string) invocation.Invocation {
	switch tgt.Name {
	case target.Unit:
		return invocation.Invocation{
			Program: prof.Runner,
			Args:    []string{prof.UnitDir, markerFlag, prof.UnitMarker, verboseFlag},
		}
	case target.Integration:
		return invocation.Invocation{
			Program: prof.Runner,
			Args:    []string{prof.IntegrationDir, markerFlag, prof.IntegrationMarker, verboseFlag},
		}
	case target.Fast:
		return invocation.Invocation{
			Program: prof.Runner,
			Args:    []string{prof.TestsDir, markerFlag, excludeMarker(prof.SlowMarker), verboseFlag},
		}
	case target.Coverage:
		return invocation.Invocation{
			Program: prof.Runner,
			Args:    append([]string{prof.TestsDir}, coverageArgs(prof.SourceDir)...),
		}
	case target.File:
		return invocation.Invocation{
			Program: prof.Runner,
			Args:    []string{file, verboseFlag},
		}
	case target.Watch:
		return invocation.Invocation{
			Program: prof.WatchRunner,
			Args:    []string{prof.TestsDir, "--", verboseFlag},
		}
	default:
		// target.All; Lookup already rejected anything unknown.
		return invocation.Invocation{
			Program: prof.Runner,
			Args:    []string{prof.TestsDir, verboseFlag},
		}
	}
}

// excludeMarker builds the runner's negated marker expression.
func excludeMarker(marker string) string {
	return "not " + marker
}

// coverageArgs requests coverage over sourceDir with both an HTML and a
// terminal report, always against the same source target.
func coverageArgs(sourceDir string) []string {
	return []string{
		"--cov=" + sourceDir,
		"--cov-report=html",
		"--cov-report=term",
	}
}
