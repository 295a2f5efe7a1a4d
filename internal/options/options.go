// Package options resolves template option values from defaults, user
// config, command-line assignments and interactive prompts.
package options

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	oerrors "github.com/pybake/cli/internal/errors"
	"github.com/pybake/cli/internal/output"
	"github.com/pybake/cli/internal/templates"
)

// Values maps option names to resolved values.
type Values map[string]string

// Names returns the option names in sorted order.
func (v Values) Names() []string {
	return slices.Sorted(maps.Keys(v))
}

// Clone returns a copy of v.
func (v Values) Clone() Values {
	return maps.Clone(v)
}

// Prompter asks the user for option values.
type Prompter interface {
	// Text asks for a free-form value. An empty answer returns def.
	Text(prompt, def string) (string, error)

	// Choice asks the user to pick one of choices. An empty answer returns def.
	Choice(prompt string, choices []string, def string) (string, error)
}

// ResolveOptions controls option resolution.
type ResolveOptions struct {
	// ConfigContext holds default_context values from the user config.
	// Keys the template does not define are ignored.
	ConfigContext map[string]string

	// Overrides holds --set values. Unknown keys are an error.
	Overrides map[string]string

	// Prompter is asked for every option when set.
	Prompter Prompter

	// Year is exposed to default templates.
	Year int
}

// Resolve walks the manifest options in order. Each value starts from the
// rendered default and is then replaced by the config context, the override
// and finally the prompt answer.
func Resolve(m *templates.Manifest, opts ResolveOptions) (Values, error) {
	for _, name := range slices.Sorted(maps.Keys(opts.Overrides)) {
		if _, ok := m.Option(name); !ok {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("template %q has no option %q", m.Name, name),
				"--set", name,
				fmt.Sprintf("Valid options: %s", strings.Join(m.OptionNames(), ", ")),
			)
		}
	}
	for _, name := range slices.Sorted(maps.Keys(opts.ConfigContext)) {
		if _, ok := m.Option(name); !ok {
			output.Debug("ignoring default_context entry", "option", name, "template", m.Name)
		}
	}

	renderer := templates.NewRenderer(m)
	values := make(Values, len(m.Options))

	for _, o := range m.Options {
		value, err := renderer.RenderString("default:"+o.Name, o.DefaultText(), templates.TemplateData{
			Options:  values,
			Year:     opts.Year,
			Template: m.Name,
		})
		if err != nil {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("rendering default: %v", err),
				"manifest", o.Name,
				"Defaults may only reference options defined above them.",
			)
		}
		source := "default"

		if v, ok := opts.ConfigContext[o.Name]; ok {
			value, source = v, "config"
		}
		if v, ok := opts.Overrides[o.Name]; ok {
			value, source = v, "--set"
		}

		// Config and --set values must be valid whether or not we prompt.
		if source != "default" && !o.Allows(value) {
			return nil, invalidChoice(o, value, source)
		}

		if opts.Prompter != nil {
			if o.IsChoice() {
				if !o.Allows(value) {
					value = o.Choices[0]
				}
				value, err = opts.Prompter.Choice(o.PromptText(), o.Choices, value)
			} else {
				value, err = opts.Prompter.Text(o.PromptText(), value)
			}
			if err != nil {
				return nil, fmt.Errorf("prompting for %s: %w", o.Name, err)
			}
			source = "prompt"
		}

		if !o.Allows(value) {
			return nil, invalidChoice(o, value, source)
		}

		output.Debug("option resolved", "option", o.Name, "value", value, "source", source)
		values[o.Name] = value
	}

	return values, nil
}

func invalidChoice(o templates.Option, value, source string) error {
	return oerrors.NewValidationError(
		fmt.Sprintf("%q is not a valid value (from %s)", value, source),
		source, o.Name,
		fmt.Sprintf("Choose one of: %s", strings.Join(o.Choices, ", ")),
	)
}
