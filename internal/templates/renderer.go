package templates

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/pybake/cli/internal/output"
)

// Renderer renders a template tree into a target directory.
type Renderer struct {
	funcs             template.FuncMap
	pathOptions       []string
	copyWithoutRender []string
}

// NewRenderer creates a renderer for the given manifest.
func NewRenderer(m *Manifest) *Renderer {
	return &Renderer{
		funcs:             FuncMap(),
		pathOptions:       m.PathOptions,
		copyWithoutRender: m.CopyWithoutRender,
	}
}

// RenderString renders a single template string. Missing keys are errors.
func (r *Renderer) RenderString(name, text string, data TemplateData) (string, error) {
	tmpl, err := template.New(name).Funcs(r.funcs).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}

// TargetPath substitutes __option__ placeholders in a slash-separated
// template path. Only options listed in path_options are substituted, so
// __init__.py or __version__.py keep their names.
func (r *Renderer) TargetPath(rel string, options map[string]string) (string, error) {
	names := make([]string, 0, len(r.pathOptions))
	for _, name := range r.pathOptions {
		if _, ok := options[name]; ok {
			names = append(names, name)
		}
	}
	// longest first so a short name never eats part of a longer one
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })

	out := rel
	for _, name := range names {
		out = strings.ReplaceAll(out, "__"+name+"__", options[name])
	}

	if out != rel && !fs.ValidPath(out) {
		return "", fmt.Errorf("path %q renders to %q which escapes the project", rel, out)
	}
	return out, nil
}

// Render writes every file of fsys into targetDir and returns the rendered
// relative paths in walk order.
func (r *Renderer) Render(ctx context.Context, fsys fs.FS, targetDir string, data TemplateData) ([]string, error) {
	var files []string

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == "." {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := r.TargetPath(p, data.Options)
		if err != nil {
			return err
		}
		target := filepath.Join(targetDir, filepath.FromSlash(rel))

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", p, err)
		}

		if r.verbatim(p) {
			output.Debug("copying without render", "path", p)
		} else {
			rendered, err := r.RenderString(p, string(content), data)
			if err != nil {
				return err
			}
			content = []byte(rendered)
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", rel, err)
		}
		if err := os.WriteFile(target, content, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", rel, err)
		}

		output.Debug("created file", "path", rel)
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return files, err
	}

	return files, nil
}

func (r *Renderer) verbatim(p string) bool {
	for _, pattern := range r.copyWithoutRender {
		if ok, _ := doublestar.Match(pattern, p); ok {
			return true
		}
		// a bare file name pattern also matches in subdirectories
		if !strings.Contains(pattern, "/") {
			if ok, _ := doublestar.Match(pattern, path.Base(p)); ok {
				return true
			}
		}
	}
	return false
}
