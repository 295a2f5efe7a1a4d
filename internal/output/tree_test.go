package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Empty(t, RenderFileTree("project", nil))
}

func TestRenderFileTree_DirectoriesFirst(t *testing.T) {
	out := RenderFileTree("python_boilerplate", map[string]string{
		"setup.py":                                 "Packaging metadata",
		"README.rst":                               "",
		"python_boilerplate/__init__.py":           "",
		"tests/test_python_boilerplate.py":         "",
		"python_boilerplate/python_boilerplate.py": "",
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "python_boilerplate/")

	pkgIdx := indexOfLine(lines, "├── python_boilerplate/")
	testsIdx := indexOfLine(lines, "tests/")
	readmeIdx := indexOfLine(lines, "README.rst")
	setupIdx := indexOfLine(lines, "setup.py")

	require.NotEqual(t, -1, pkgIdx)
	require.NotEqual(t, -1, testsIdx)
	assert.Less(t, pkgIdx, testsIdx, "directories sort alphabetically")
	assert.Less(t, testsIdx, readmeIdx, "directories come before files")
	assert.Less(t, readmeIdx, setupIdx)

	assert.Contains(t, lines[setupIdx], "Packaging metadata")
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "└── "), "last entry uses the closing connector")
}

func TestRenderSimpleTree(t *testing.T) {
	out := RenderSimpleTree("demo", []string{"a/b.txt", "c.txt"})
	assert.Contains(t, out, "demo/")
	assert.Contains(t, out, "├── a/")
	assert.Contains(t, out, "│   └── b.txt")
	assert.Contains(t, out, "└── c.txt")
}

func indexOfLine(lines []string, substr string) int {
	for i, l := range lines {
		if strings.Contains(l, substr) {
			return i
		}
	}
	return -1
}
