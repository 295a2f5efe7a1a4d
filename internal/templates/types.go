// Package templates provides the embedded project templates, their manifests
// and the renderer that writes them to disk.
package templates

import (
	"io/fs"
	"slices"

	"github.com/pybake/cli/internal/hooks"
)

// Option is one named template variable.
type Option struct {
	// Name is the identifier used in templates as .Options.<name>.
	Name string `yaml:"name" json:"name"`

	// Prompt is the question shown in interactive mode.
	Prompt string `yaml:"prompt,omitempty" json:"prompt,omitempty"`

	// Default may reference earlier options, e.g. {{ .Options.project_name | lower }}.
	Default string `yaml:"default,omitempty" json:"default,omitempty"`

	// Choices restricts the value to a fixed list.
	Choices []string `yaml:"choices,omitempty" json:"choices,omitempty"`
}

// IsChoice reports whether the option has a fixed list of values.
func (o Option) IsChoice() bool {
	return len(o.Choices) > 0
}

// DefaultText returns the default template text. A choice option without an
// explicit default falls back to its first choice.
func (o Option) DefaultText() string {
	if o.Default == "" && o.IsChoice() {
		return o.Choices[0]
	}
	return o.Default
}

// Allows reports whether v is an acceptable value for the option.
func (o Option) Allows(v string) bool {
	if !o.IsChoice() {
		return true
	}
	return slices.Contains(o.Choices, v)
}

// PromptText returns the prompt, falling back to the option name.
func (o Option) PromptText() string {
	if o.Prompt != "" {
		return o.Prompt
	}
	return o.Name
}

// Manifest describes a template: its options, output directory and the
// cleanup rules applied after rendering.
type Manifest struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Directory is the template for the generated project directory name.
	Directory string `yaml:"directory" json:"directory"`

	// Options are resolved in order; defaults may reference earlier options.
	Options []Option `yaml:"options" json:"options"`

	// PathOptions names the options whose __name__ placeholders are
	// substituted in file and directory names.
	PathOptions []string `yaml:"path_options,omitempty" json:"path_options,omitempty"`

	// CopyWithoutRender holds doublestar globs of files copied verbatim.
	CopyWithoutRender []string `yaml:"copy_without_render,omitempty" json:"copy_without_render,omitempty"`

	// Cleanup is the post-generation rule table.
	Cleanup []hooks.Rule `yaml:"cleanup,omitempty" json:"cleanup,omitempty"`
}

// Option returns the option with the given name.
func (m *Manifest) Option(name string) (Option, bool) {
	for _, o := range m.Options {
		if o.Name == name {
			return o, true
		}
	}
	return Option{}, false
}

// OptionNames returns option names in manifest order.
func (m *Manifest) OptionNames() []string {
	names := make([]string, 0, len(m.Options))
	for _, o := range m.Options {
		names = append(names, o.Name)
	}
	return names
}

// Template is an embedded template with its parsed manifest.
type Template struct {
	// Name is the template identifier.
	Name string

	// Description explains what the template generates.
	Description string

	// Default indicates the template used when none is named.
	Default bool

	// Manifest is the validated manifest.
	Manifest *Manifest

	// files is the template tree rooted at the project directory.
	files fs.FS
}

// Files returns the template file tree.
func (t Template) Files() fs.FS {
	return t.files
}

// TemplateData is the data passed to every template.
type TemplateData struct {
	// Options are the resolved option values.
	Options map[string]string

	// Year is the current year, used in license headers.
	Year int

	// Template is the template name.
	Template string
}
