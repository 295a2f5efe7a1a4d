package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTemplateList(t *testing.T) {
	isolate(t)

	stdout, err := execute(t, "template", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "pypackage (default)")
	assert.Contains(t, stdout, "NAME")
}

func TestTemplateShow_Table(t *testing.T) {
	home := isolate(t)
	cfgPath := writeConfig(t, home, "default_context:\n  full_name: \"Ada Lovelace\"\n")

	stdout, err := execute(t, "--config", cfgPath, "template", "show", "pypackage")
	require.NoError(t, err)
	assert.Contains(t, stdout, "select_license")
	assert.Contains(t, stdout, "Ada Lovelace (config)")
	assert.Contains(t, stdout, "appveyor.yml")
}

func TestTemplateShow_YAML(t *testing.T) {
	isolate(t)

	stdout, err := execute(t, "template", "show", "pypackage", "-o", "yaml")
	require.NoError(t, err)

	var doc struct {
		Name    string `yaml:"name"`
		Cleanup []struct {
			Option string   `yaml:"option"`
			Values []string `yaml:"values"`
			Target string   `yaml:"target"`
		} `yaml:"cleanup"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, "pypackage", doc.Name)
	require.Len(t, doc.Cleanup, 3)
	assert.Equal(t, "LICENSE", doc.Cleanup[0].Target)
	assert.Equal(t, []string{"Not open source"}, doc.Cleanup[0].Values)
}

func TestTemplateShow_JSON(t *testing.T) {
	isolate(t)

	stdout, err := execute(t, "template", "show", "pypackage", "-o", "json")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, "{{ .Options.project_slug }}", doc["directory"])
}

func TestTemplateShow_Errors(t *testing.T) {
	isolate(t)

	_, err := execute(t, "template", "show", "django")
	assert.Equal(t, ExitNotFound, ExitCodeFromError(err))

	_, err = execute(t, "template", "show", "pypackage", "-o", "xml")
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
}
