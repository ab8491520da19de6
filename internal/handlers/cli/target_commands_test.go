package cli

import (
	"io"
	"testing"

	"github.com/AntonioJCosta/testctl/internal/core/domain/invocation"
	"github.com/AntonioJCosta/testctl/internal/core/testutil"
	"github.com/spf13/cobra"
)

func newTestRootCommand(svc *testutil.MockTargetRunService) *cobra.Command {
	root := NewRootCommand("test", svc)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root
}

func TestTargetCommands_Dispatch(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		wantTargetName string
		wantFile       string
	}{
		{name: "test", args: []string{"test"}, wantTargetName: "test"},
		{name: "test-unit", args: []string{"test-unit"}, wantTargetName: "test-unit"},
		{name: "test-integration", args: []string{"test-integration"}, wantTargetName: "test-integration"},
		{name: "test-fast", args: []string{"test-fast"}, wantTargetName: "test-fast"},
		{name: "test-coverage", args: []string{"test-coverage"}, wantTargetName: "test-coverage"},
		{name: "test-watch", args: []string{"test-watch"}, wantTargetName: "test-watch"},
		{
			name:           "test-file forwards the exact path",
			args:           []string{"test-file", "tests/unit/test_config.py"},
			wantTargetName: "test-file",
			wantFile:       "tests/unit/test_config.py",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotTargetName, gotFile string
			calls := 0
			svc := &testutil.MockTargetRunService{
				RunTargetFunc: func(targetName, file string) error {
					calls++
					gotTargetName = targetName
					gotFile = file
					return nil
				},
			}

			root := newTestRootCommand(svc)
			root.SetArgs(tt.args)
			if err := root.Execute(); err != nil {
				t.Fatalf("Execute(%v) unexpected error = %v", tt.args, err)
			}

			if calls != 1 {
				t.Fatalf("RunTarget called %d times, want 1", calls)
			}
			if gotTargetName != tt.wantTargetName {
				t.Errorf("RunTarget target = %q, want %q", gotTargetName, tt.wantTargetName)
			}
			if gotFile != tt.wantFile {
				t.Errorf("RunTarget file = %q, want %q", gotFile, tt.wantFile)
			}
		})
	}
}

func TestTargetCommands_ArgumentValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "test-file without a path fails", args: []string{"test-file"}},
		{name: "fixed target rejects a stray argument", args: []string{"test-unit", "tests/unit/test_config.py"}},
		{name: "test rejects a stray argument", args: []string{"test", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &testutil.MockTargetRunService{
				RunTargetFunc: func(targetName, file string) error {
					t.Errorf("RunTarget(%q, %q) called, want argument validation to fail first", targetName, file)
					return nil
				},
			}

			root := newTestRootCommand(svc)
			root.SetArgs(tt.args)
			if err := root.Execute(); err == nil {
				t.Errorf("Execute(%v) expected error, got nil", tt.args)
			}
		})
	}
}

func TestShowCommand(t *testing.T) {
	t.Run("resolves through the run service", func(t *testing.T) {
		var gotTargetName, gotFile string
		svc := &testutil.MockTargetRunService{
			BuildInvocationFunc: func(targetName, file string) (invocation.Invocation, error) {
				gotTargetName = targetName
				gotFile = file
				return invocation.Invocation{Program: "pytest", Args: []string{"tests", "-v"}}, nil
			},
		}

		root := newTestRootCommand(svc)
		root.SetArgs([]string{"show", "test"})
		if err := root.Execute(); err != nil {
			t.Fatalf("Execute(show test) unexpected error = %v", err)
		}
		if gotTargetName != "test" || gotFile != "" {
			t.Errorf("BuildInvocation called with (%q, %q), want (%q, %q)", gotTargetName, gotFile, "test", "")
		}
	})

	t.Run("single-file target shows a placeholder when no path is given", func(t *testing.T) {
		var gotFile string
		svc := &testutil.MockTargetRunService{
			BuildInvocationFunc: func(targetName, file string) (invocation.Invocation, error) {
				gotFile = file
				return invocation.Invocation{Program: "pytest", Args: []string{file, "-v"}}, nil
			},
		}

		root := newTestRootCommand(svc)
		root.SetArgs([]string{"show", "test-file"})
		if err := root.Execute(); err != nil {
			t.Fatalf("Execute(show test-file) unexpected error = %v", err)
		}
		if gotFile != filePlaceholder {
			t.Errorf("BuildInvocation file = %q, want %q", gotFile, filePlaceholder)
		}
	})

	t.Run("unknown target fails", func(t *testing.T) {
		root := newTestRootCommand(&testutil.MockTargetRunService{})
		root.SetArgs([]string{"show", "test-everything"})
		if err := root.Execute(); err == nil {
			t.Error("Execute(show test-everything) expected error, got nil")
		}
	})

	t.Run("file argument on a fixed target fails", func(t *testing.T) {
		root := newTestRootCommand(&testutil.MockTargetRunService{})
		root.SetArgs([]string{"show", "test-unit", "some_file.py"})
		if err := root.Execute(); err == nil {
			t.Error("Execute(show test-unit some_file.py) expected error, got nil")
		}
	})
}
