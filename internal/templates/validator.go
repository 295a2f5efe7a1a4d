package templates

import (
	_ "embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-multierror"

	oerrors "github.com/pybake/cli/internal/errors"
)

//go:embed schema/manifest.cue
var manifestSchema []byte

// ValidateManifest checks the manifest against the embedded CUE schema and
// then runs the cross-field checks the schema cannot express. All problems
// are reported together.
func ValidateManifest(m *Manifest) error {
	var result *multierror.Error

	if err := validateSchema(m); err != nil {
		result = multierror.Append(result, err)
	}
	result = multierror.Append(result, validateSemantics(m)...)

	if result.ErrorOrNil() == nil {
		return nil
	}
	result.ErrorFormat = listFormat

	return &oerrors.DetailError{
		Type:     "validation failed",
		Message:  result.Error(),
		Location: ManifestFile,
		Context:  map[string]string{"template": m.Name},
		Hint:     "Fix the template manifest; every cleanup rule must reference a defined option.",
		Cause:    fmt.Errorf("%w: %w", oerrors.ErrValidation, result),
	}
}

func validateSchema(m *Manifest) error {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(manifestSchema, cue.Filename("manifest.cue"))
	if schema.Err() != nil {
		return fmt.Errorf("compiling manifest schema: %w", schema.Err())
	}

	encoded := ctx.Encode(m)
	if encoded.Err() != nil {
		return fmt.Errorf("encoding manifest: %w", encoded.Err())
	}

	unified := schema.LookupPath(cue.ParsePath("#Manifest")).Unify(encoded)
	err := unified.Validate(cue.Concrete(true))
	if err == nil {
		return nil
	}

	var result *multierror.Error
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		result = multierror.Append(result,
			fmt.Errorf("%s: %s", strings.Join(e.Path(), "."), fmt.Sprintf(format, args...)))
	}
	return result.ErrorOrNil()
}

func validateSemantics(m *Manifest) []error {
	var errs []error

	if m.Directory != "" {
		if err := parseCheck("directory", m.Directory); err != nil {
			errs = append(errs, err)
		}
	}

	seen := make(map[string]bool, len(m.Options))
	for _, o := range m.Options {
		if seen[o.Name] {
			errs = append(errs, fmt.Errorf("options: duplicate option %q", o.Name))
			continue
		}
		seen[o.Name] = true

		if o.IsChoice() && o.Default != "" && !o.Allows(o.Default) {
			errs = append(errs, fmt.Errorf("options.%s: default %q is not one of %v", o.Name, o.Default, o.Choices))
		}
		if err := parseCheck("options."+o.Name+".default", o.Default); err != nil {
			errs = append(errs, err)
		}
	}

	for i, rule := range m.Cleanup {
		opt, ok := m.Option(rule.Option)
		if !ok {
			errs = append(errs, fmt.Errorf("cleanup[%d]: option %q is not defined", i, rule.Option))
		} else if opt.IsChoice() {
			for _, v := range rule.Triggers {
				if !opt.Allows(v) {
					errs = append(errs, fmt.Errorf("cleanup[%d]: value %q is not a choice of %q", i, v, rule.Option))
				}
			}
		}
		if rule.Target != "" && (!fs.ValidPath(rule.Target) || rule.Target == ".") {
			errs = append(errs, fmt.Errorf("cleanup[%d]: target %q must be a clean relative path inside the project", i, rule.Target))
		}
	}

	for _, name := range m.PathOptions {
		if _, ok := m.Option(name); !ok {
			errs = append(errs, fmt.Errorf("path_options: option %q is not defined", name))
		}
	}

	for _, pattern := range m.CopyWithoutRender {
		if !doublestar.ValidatePattern(pattern) {
			errs = append(errs, fmt.Errorf("copy_without_render: invalid pattern %q", pattern))
		}
	}

	return errs
}

func parseCheck(field, text string) error {
	if _, err := template.New(field).Funcs(FuncMap()).Parse(text); err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	return nil
}

func listFormat(errs []error) string {
	var b strings.Builder
	fmt.Fprintf(&b, "manifest has %d problem(s):", len(errs))
	for _, err := range errs {
		b.WriteString("\n    - ")
		b.WriteString(err.Error())
	}
	return b.String()
}
