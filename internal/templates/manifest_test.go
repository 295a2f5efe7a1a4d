package templates

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/pybake/cli/internal/errors"
	"github.com/pybake/cli/internal/hooks"
)

const minimalManifest = `
name: demo
directory: "{{ .Options.slug }}"
options:
  - name: slug
    default: demo
  - name: ci
    choices: ["y", "n"]
cleanup:
  - option: ci
    values: ["n"]
    target: .ci.yml
`

func validManifest() *Manifest {
	return &Manifest{
		Name:      "demo",
		Directory: "{{ .Options.slug }}",
		Options: []Option{
			{Name: "slug", Default: "demo"},
			{Name: "ci", Choices: []string{"y", "n"}},
		},
		Cleanup: []hooks.Rule{
			{Option: "ci", Triggers: []string{"n"}, Target: ".ci.yml"},
		},
	}
}

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest([]byte(minimalManifest))
	require.NoError(t, err)

	assert.Equal(t, "demo", m.Name)
	assert.Equal(t, []string{"slug", "ci"}, m.OptionNames())
	require.Len(t, m.Cleanup, 1)
	assert.Equal(t, hooks.Rule{Option: "ci", Triggers: []string{"n"}, Target: ".ci.yml"}, m.Cleanup[0])

	ci, ok := m.Option("ci")
	require.True(t, ok)
	assert.Equal(t, "y", ci.DefaultText())
	assert.True(t, ci.Allows("n"))
	assert.False(t, ci.Allows("maybe"))
}

func TestParseManifest_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "empty", input: "", wantErr: "empty document"},
		{name: "unknown field", input: "name: demo\nbogus: true\n", wantErr: "bogus"},
		{name: "bad yaml", input: "options: [\n", wantErr: "parsing manifest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateManifest_Valid(t *testing.T) {
	assert.NoError(t, ValidateManifest(validManifest()))
}

func TestValidateManifest_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *Manifest)
		wantErr string
	}{
		{
			name:    "rule references undefined option",
			mutate:  func(m *Manifest) { m.Cleanup[0].Option = "include_azure_ci" },
			wantErr: `option "include_azure_ci" is not defined`,
		},
		{
			name:    "rule value outside choices",
			mutate:  func(m *Manifest) { m.Cleanup[0].Triggers = []string{"no"} },
			wantErr: `value "no" is not a choice`,
		},
		{
			name:    "target escapes project",
			mutate:  func(m *Manifest) { m.Cleanup[0].Target = "../outside" },
			wantErr: "clean relative path",
		},
		{
			name:    "absolute target",
			mutate:  func(m *Manifest) { m.Cleanup[0].Target = "/etc/passwd" },
			wantErr: "clean relative path",
		},
		{
			name:    "duplicate option",
			mutate:  func(m *Manifest) { m.Options = append(m.Options, Option{Name: "slug"}) },
			wantErr: `duplicate option "slug"`,
		},
		{
			name:    "default outside choices",
			mutate:  func(m *Manifest) { m.Options[1].Default = "maybe" },
			wantErr: `default "maybe" is not one of`,
		},
		{
			name:    "unparsable default",
			mutate:  func(m *Manifest) { m.Options[0].Default = "{{ .Options.slug" },
			wantErr: "options.slug.default",
		},
		{
			name:    "path option undefined",
			mutate:  func(m *Manifest) { m.PathOptions = []string{"project_slug"} },
			wantErr: `path_options: option "project_slug" is not defined`,
		},
		{
			name:    "invalid glob",
			mutate:  func(m *Manifest) { m.CopyWithoutRender = []string{"docs/[unclosed"} },
			wantErr: "invalid pattern",
		},
		{
			name:    "schema rejects option name",
			mutate:  func(m *Manifest) { m.Options[0].Name = "Bad-Name" },
			wantErr: "options",
		},
		{
			name:    "schema requires directory",
			mutate:  func(m *Manifest) { m.Directory = "" },
			wantErr: "directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validManifest()
			tt.mutate(m)

			err := ValidateManifest(m)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrValidation))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateManifest_ReportsAllProblems(t *testing.T) {
	m := validManifest()
	m.Cleanup[0].Option = "missing"
	m.CopyWithoutRender = []string{"[bad"}

	err := ValidateManifest(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 problem(s)")
}
