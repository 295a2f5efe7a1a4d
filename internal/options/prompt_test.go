package options

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/pybake/cli/internal/errors"
)

func TestTerminalPrompter_Text(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("Ada\n\n"), &out)

	got, err := p.Text("Author full name", "Audrey")
	require.NoError(t, err)
	assert.Equal(t, "Ada", got)

	got, err = p.Text("Author email", "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", got)

	assert.Contains(t, out.String(), "Author full name")
	assert.Contains(t, out.String(), "(Audrey)")
}

func TestTerminalPrompter_TextEOF(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), &bytes.Buffer{})

	got, err := p.Text("Project name", "Python Boilerplate")
	require.NoError(t, err)
	assert.Equal(t, "Python Boilerplate", got)
}

func TestTerminalPrompter_Choice(t *testing.T) {
	choices := []string{"MIT license", "BSD license", "Not open source"}

	tests := []struct {
		name  string
		input string
		def   string
		want  string
	}{
		{name: "by index", input: "3\n", def: "MIT license", want: "Not open source"},
		{name: "by value", input: "BSD license\n", def: "MIT license", want: "BSD license"},
		{name: "empty takes default", input: "\n", def: "BSD license", want: "BSD license"},
		{name: "retry after invalid", input: "9\n1\n", def: "BSD license", want: "MIT license"},
		{name: "eof takes default", input: "", def: "Not open source", want: "Not open source"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := NewPrompter(strings.NewReader(tt.input), &out).Choice("License", choices, tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Not open source")
		})
	}
}

func TestTerminalPrompter_ChoiceGivesUp(t *testing.T) {
	p := NewPrompter(strings.NewReader("x\nq\nz\n"), &bytes.Buffer{})

	_, err := p.Choice("CI", []string{"y", "n"}, "y")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}
