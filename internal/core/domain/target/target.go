/*
Package target defines the core domain entity for a test target: a named,
invokable alias for one fixed command line against the test runner.
*/
package target

// Well-known target names. These are the complete set of symbolic names the
// dispatcher understands; there is no dynamic registration.
const (
	All         = "test"
	Unit        = "test-unit"
	Integration = "test-integration"
	Fast        = "test-fast"
	Coverage    = "test-coverage"
	File        = "test-file"
	Watch       = "test-watch"
)

// Target describes one entry of the dispatch table.
type Target struct {
	Name        string
	Description string
	// RequiresFile marks the single target that takes a caller-supplied
	// file path. All other targets accept no parameters.
	RequiresFile bool
}

// catalog is ordered for display purposes (list command).
var catalog = []Target{
	{Name: All, Description: "Run the full test collection, verbose."},
	{Name: Unit, Description: "Run only unit-marked tests under the unit path, verbose."},
	{Name: Integration, Description: "Run only integration-marked tests under the integration path, verbose."},
	{Name: Fast, Description: "Run the full collection excluding slow-marked tests, verbose."},
	{Name: Coverage, Description: "Run the full collection with coverage, HTML and terminal reports."},
	{Name: File, Description: "Run a single test file, verbose.", RequiresFile: true},
	{Name: Watch, Description: "Run the collection under the watch runner, verbose."},
}

// Catalog returns all known targets in display order. The returned slice is a
// copy; callers may not mutate the dispatch table.
func Catalog() []Target {
	out := make([]Target, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the target with the given name, and whether it exists.
func Lookup(name string) (Target, bool) {
	for _, t := range catalog {
		if t.Name == name {
			return t, true
		}
	}
	return Target{}, false
}
