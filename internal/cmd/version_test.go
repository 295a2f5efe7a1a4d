package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pybake/cli/internal/config"
)

func TestNewVersionCmd(t *testing.T) {
	c := NewVersionCmd(&config.GlobalConfig{})

	assert.Equal(t, "version", c.Use)
	assert.NotEmpty(t, c.Short)
	assert.NotEmpty(t, c.Long)
}

func TestVersionCmd_Execute(t *testing.T) {
	isolate(t)

	stdout, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "pybake:")
	assert.Contains(t, stdout, "pypackage")
}

func TestVersionCmd_JSON(t *testing.T) {
	isolate(t)

	stdout, err := execute(t, "version", "-o", "json")
	require.NoError(t, err)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.Contains(t, info, "goVersion")
}
