package templates

import (
	"strings"
	"text/template"
	"unicode"
)

// FuncMap returns the helper functions available to templates, manifest
// defaults and the project directory name. Functions taking the subject
// string last work in pipelines: {{ .Options.name | replace " " "_" }}.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"lower":        strings.ToLower,
		"upper":        strings.ToUpper,
		"title":        Title,
		"trim":         strings.TrimSpace,
		"replace":      Replace,
		"contains":     func(substr, s string) bool { return strings.Contains(s, substr) },
		"hasPrefix":    func(prefix, s string) bool { return strings.HasPrefix(s, prefix) },
		"hasSuffix":    func(suffix, s string) bool { return strings.HasSuffix(s, suffix) },
		"default":      DefaultValue,
		"escapeQuotes": EscapeQuotes,
		"underline":    Underline,
	}
}

// Replace replaces every old with repl in s.
func Replace(old, repl, s string) string {
	return strings.ReplaceAll(s, old, repl)
}

// Title upper-cases the first letter of every space separated word.
func Title(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// DefaultValue returns def when s is empty.
func DefaultValue(def, s string) string {
	if s == "" {
		return def
	}
	return s
}

// EscapeQuotes escapes backslashes and double quotes so s can sit inside a
// double-quoted Python string literal.
func EscapeQuotes(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// Underline returns a reStructuredText underline of ch as wide as s.
func Underline(ch, s string) string {
	return strings.Repeat(ch, len([]rune(s)))
}
