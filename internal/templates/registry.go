package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	oerrors "github.com/pybake/cli/internal/errors"
)

//go:embed all:pypackage
var pypackageFS embed.FS

// DefaultTemplateName is the template used when none is named.
const DefaultTemplateName = "pypackage"

// filesDir holds the project tree inside each template directory.
const filesDir = "files"

var builtin = []struct {
	name string
	fsys embed.FS
}{
	{name: "pypackage", fsys: pypackageFS},
}

var (
	loadOnce sync.Once
	loaded   []Template
	loadErr  error
)

// FromFS loads a template whose manifest sits at the root of fsys and whose
// project tree lives under files/.
func FromFS(fsys fs.FS) (Template, error) {
	m, err := LoadManifest(fsys)
	if err != nil {
		return Template{}, err
	}

	files, err := fs.Sub(fsys, filesDir)
	if err != nil {
		return Template{}, fmt.Errorf("opening %s tree: %w", m.Name, err)
	}

	return Template{
		Name:        m.Name,
		Description: m.Description,
		Default:     m.Name == DefaultTemplateName,
		Manifest:    m,
		files:       files,
	}, nil
}

func load() ([]Template, error) {
	loadOnce.Do(func() {
		for _, b := range builtin {
			root, err := fs.Sub(b.fsys, b.name)
			if err != nil {
				loadErr = fmt.Errorf("opening embedded template %s: %w", b.name, err)
				return
			}
			t, err := FromFS(root)
			if err != nil {
				loadErr = fmt.Errorf("loading embedded template %s: %w", b.name, err)
				return
			}
			loaded = append(loaded, t)
		}
	})
	return loaded, loadErr
}

// List returns all embedded templates.
func List() ([]Template, error) {
	return load()
}

// Get returns a template by name.
func Get(name string) (Template, error) {
	all, err := load()
	if err != nil {
		return Template{}, err
	}
	for _, t := range all {
		if t.Name == name {
			return t, nil
		}
	}
	return Template{}, oerrors.NewNotFoundError(
		fmt.Sprintf("unknown template %q", name),
		"",
		fmt.Sprintf("Available templates: %s", strings.Join(Names(), ", ")),
	)
}

// Default returns the default template.
func Default() (Template, error) {
	return Get(DefaultTemplateName)
}

// Names returns all template names.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for _, b := range builtin {
		names = append(names, b.name)
	}
	return names
}
