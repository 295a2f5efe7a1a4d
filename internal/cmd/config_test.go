package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigInit_CreatesFile(t *testing.T) {
	home := isolate(t)

	stdout, err := execute(t, "config", "init")
	require.NoError(t, err)

	configFile := filepath.Join(home, ".pybake", "config.yaml")
	assert.FileExists(t, configFile)
	assert.Contains(t, stdout, configFile)
}

func TestConfigInit_SecurePermissions(t *testing.T) {
	home := isolate(t)

	_, err := execute(t, "config", "init")
	require.NoError(t, err)

	dirInfo, err := os.Stat(filepath.Join(home, ".pybake"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())

	fileInfo, err := os.Stat(filepath.Join(home, ".pybake", "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fileInfo.Mode().Perm())
}

func TestConfigInit_ExistingConfig(t *testing.T) {
	isolate(t)

	_, err := execute(t, "config", "init")
	require.NoError(t, err)

	_, err = execute(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigInit_CustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "pybake.yaml")

	_, err := execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestConfigVet_ValidAfterInit(t *testing.T) {
	isolate(t)

	_, err := execute(t, "config", "init")
	require.NoError(t, err)

	stdout, err := execute(t, "config", "vet")
	require.NoError(t, err)
	assert.Contains(t, stdout, "valid")
}

func TestConfigVet_Missing(t *testing.T) {
	isolate(t)

	_, err := execute(t, "config", "vet")
	require.Error(t, err)
	assert.Equal(t, ExitNotFound, ExitCodeFromError(err))
}

func TestConfigVet_Invalid(t *testing.T) {
	home := isolate(t)
	cfgPath := writeConfig(t, home, "default_context:\n  Full-Name: \"Ada\"\noutput_dir: \" \"\n")

	_, err := execute(t, "--config", cfgPath, "config", "vet")
	require.Error(t, err)
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
}
