// Package bake generates a project from a template: it resolves options,
// renders the tree and runs the cleanup hook.
package bake

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	oerrors "github.com/pybake/cli/internal/errors"
	"github.com/pybake/cli/internal/hooks"
	"github.com/pybake/cli/internal/options"
	"github.com/pybake/cli/internal/output"
	"github.com/pybake/cli/internal/templates"
)

// Options configures a Generator.
type Options struct {
	// Template is the template to generate from.
	Template templates.Template

	// OutputDir is the parent of the generated project directory.
	OutputDir string

	// ConfigContext holds default_context values from the user config.
	ConfigContext map[string]string

	// Overrides holds --set values.
	Overrides map[string]string

	// Prompter asks for option values. Nil disables prompting.
	Prompter options.Prompter

	// Force allows generating into an existing project directory.
	Force bool

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Result describes a generated or cleaned project.
type Result struct {
	// ProjectDir is the absolute project directory.
	ProjectDir string

	// Files are the rendered files still present after cleanup.
	Files []string

	// Removed are the files deleted by the cleanup hook.
	Removed []string

	// Options are the resolved option values.
	Options options.Values
}

// Generator runs generation for one template.
type Generator struct {
	opts Options
}

// New creates a generator.
func New(opts Options) *Generator {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	return &Generator{opts: opts}
}

// Generate renders the template into a new project directory and runs the
// cleanup hook. A render failure removes the directory if this call created
// it. A cleanup failure leaves the directory in place.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	tmpl := g.opts.Template
	m := tmpl.Manifest

	values, err := g.resolve(g.opts.Prompter)
	if err != nil {
		return nil, err
	}

	data := templates.TemplateData{
		Options:  values,
		Year:     g.opts.Now().Year(),
		Template: tmpl.Name,
	}
	renderer := templates.NewRenderer(m)

	dirName, err := renderer.RenderString("directory", m.Directory, data)
	if err != nil {
		return nil, oerrors.NewValidationError(err.Error(), templates.ManifestFile, "directory", "")
	}
	if err := checkDirName(dirName); err != nil {
		return nil, err
	}

	outputDir, err := filepath.Abs(g.opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("resolving output directory: %w", err)
	}
	projectDir := filepath.Join(outputDir, dirName)

	created, err := g.prepareDir(projectDir)
	if err != nil {
		return nil, err
	}

	output.Debug("generating project",
		"template", tmpl.Name,
		"directory", projectDir,
		"force", g.opts.Force)

	var files []string
	err = output.RunWithSpinner(ctx, func() error {
		var renderErr error
		files, renderErr = renderer.Render(ctx, tmpl.Files(), projectDir, data)
		return renderErr
	}, output.WithTitle(fmt.Sprintf("Rendering %s", dirName)))
	if err != nil {
		if created {
			if rmErr := os.RemoveAll(projectDir); rmErr != nil {
				output.Warn("could not remove partial project", "path", projectDir, "err", rmErr)
			}
		}
		return nil, renderError(projectDir, err)
	}

	removed, err := hooks.RunCleanup(ctx, projectDir, values, m.Cleanup)
	if err != nil {
		output.Warn("cleanup failed, project left in place for inspection", "path", projectDir)
		return nil, err
	}

	return &Result{
		ProjectDir: projectDir,
		Files:      slices.DeleteFunc(files, func(f string) bool { return slices.Contains(removed, f) }),
		Removed:    removed,
		Options:    values,
	}, nil
}

// Clean runs only the cleanup hook against an existing project directory.
// Options come from defaults, config context and overrides; nothing prompts.
func (g *Generator) Clean(ctx context.Context, dir string) (*Result, error) {
	projectDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving project directory: %w", err)
	}

	info, err := os.Stat(projectDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, oerrors.NewNotFoundError("project directory does not exist", projectDir, "")
		}
		return nil, fmt.Errorf("checking project directory: %w", err)
	}
	if !info.IsDir() {
		return nil, oerrors.NewValidationError("not a directory", projectDir, "", "")
	}

	values, err := g.resolve(nil)
	if err != nil {
		return nil, err
	}

	removed, err := hooks.RunCleanup(ctx, projectDir, values, g.opts.Template.Manifest.Cleanup)
	if err != nil {
		return nil, err
	}

	return &Result{
		ProjectDir: projectDir,
		Removed:    removed,
		Options:    values,
	}, nil
}

func (g *Generator) resolve(p options.Prompter) (options.Values, error) {
	return options.Resolve(g.opts.Template.Manifest, options.ResolveOptions{
		ConfigContext: g.opts.ConfigContext,
		Overrides:     g.opts.Overrides,
		Prompter:      p,
		Year:          g.opts.Now().Year(),
	})
}

// prepareDir creates projectDir and reports whether it did.
func (g *Generator) prepareDir(projectDir string) (bool, error) {
	info, err := os.Stat(projectDir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(projectDir, 0o755); err != nil {
			return false, dirError(projectDir, err)
		}
		return true, nil
	case err != nil:
		return false, dirError(projectDir, err)
	case !info.IsDir():
		return false, oerrors.NewValidationError("path exists and is not a directory", projectDir, "", "")
	case !g.opts.Force:
		return false, oerrors.NewValidationError(
			"project directory already exists",
			projectDir, "",
			"Use --force to render into the existing directory, or choose another project_slug.",
		)
	default:
		return false, nil
	}
}

func checkDirName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return oerrors.NewValidationError(
			fmt.Sprintf("project directory name %q is not a single path element", name),
			templates.ManifestFile, "directory",
			"Set project_slug to a plain directory name.",
		)
	}
	return nil
}

func dirError(path string, err error) error {
	cause := err
	if sentinel := oerrors.Classify(err); sentinel != nil {
		cause = fmt.Errorf("%w: %w", sentinel, err)
	}
	return &oerrors.DetailError{
		Type:     "cannot create project directory",
		Message:  err.Error(),
		Location: path,
		Cause:    cause,
	}
}

func renderError(path string, err error) error {
	cause := err
	if sentinel := oerrors.Classify(err); sentinel != nil {
		cause = fmt.Errorf("%w: %w", sentinel, err)
	}
	return &oerrors.DetailError{
		Type:     "render failed",
		Message:  err.Error(),
		Location: path,
		Cause:    cause,
	}
}
