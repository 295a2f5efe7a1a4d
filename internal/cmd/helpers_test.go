package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/pybake/cli/internal/config"
	"github.com/pybake/cli/internal/output"
	"github.com/pybake/cli/internal/testutil"
)

// isolate points HOME at a temp dir and clears pybake env vars.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvConfig, "")
	t.Setenv(config.EnvOutputDir, "")
	t.Setenv(config.EnvNoInput, "")
	return home
}

// execute runs the root command with args and returns what it printed to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout bytes.Buffer
	restore := output.SetStdout(&stdout)
	defer restore()

	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetIn(&bytes.Buffer{})

	err := root.ExecuteContext(context.Background())
	return stdout.String(), err
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	return testutil.WriteFile(t, dir, "config.yaml", content)
}
