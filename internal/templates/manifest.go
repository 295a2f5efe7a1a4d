package templates

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// ManifestFile is the manifest name at the root of every template.
const ManifestFile = "manifest.yaml"

// ParseManifest decodes a manifest from YAML. Unknown fields are rejected.
func ParseManifest(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing manifest: empty document")
		}
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}

// LoadManifest reads, parses and validates the manifest at the root of fsys.
func LoadManifest(fsys fs.FS) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, ManifestFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ManifestFile, err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}

	if err := ValidateManifest(m); err != nil {
		return nil, err
	}
	return m, nil
}
