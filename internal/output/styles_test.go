package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCheckmark(t *testing.T) {
	assert.Contains(t, FormatCheckmark("Project generated"), "✔")
	assert.Contains(t, FormatCheckmark("Project generated"), "Project generated")
}

func TestFormatFileLine(t *testing.T) {
	line := FormatFileLine("LICENSE", StatusRemoved)
	assert.Contains(t, line, "removed")
	assert.Contains(t, line, "LICENSE")
}

func TestStatusStyle_UnknownIsPlain(t *testing.T) {
	assert.Equal(t, "kept", StatusStyle("kept").Render("kept"))
}

func TestTable(t *testing.T) {
	tbl := NewTable("NAME", "DEFAULT").Row("full_name", "Audrey Roy Greenfeld").Row("version", "0.1.0")
	assert.Equal(t, 2, tbl.Len())

	out := tbl.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "full_name")
	assert.Contains(t, out, "0.1.0")
}
