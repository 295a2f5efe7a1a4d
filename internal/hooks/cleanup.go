// Package hooks implements the post-generation cleanup that removes files the
// resolved options mark as unwanted.
package hooks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	oerrors "github.com/pybake/cli/internal/errors"
	"github.com/pybake/cli/internal/output"
)

// Rule removes Target when the value of Option is one of Triggers.
type Rule struct {
	// Option is the template option the rule inspects.
	Option string `yaml:"option" json:"option"`

	// Triggers are the option values that cause removal.
	Triggers []string `yaml:"values" json:"values"`

	// Target is the file to remove, relative to the project root.
	Target string `yaml:"target" json:"target"`
}

// Matches reports whether the rule fires for the given option values.
// The second return is false when the option is absent.
func (r Rule) Matches(values map[string]string) (matched, ok bool) {
	v, ok := values[r.Option]
	if !ok {
		return false, false
	}
	return slices.Contains(r.Triggers, v), true
}

// RunCleanup applies rules in order against the project at root and returns
// the targets it removed. The first failure stops processing; files removed
// before it stay removed.
func RunCleanup(ctx context.Context, root string, values map[string]string, rules []Rule) ([]string, error) {
	var removed []string

	for i, rule := range rules {
		if err := ctx.Err(); err != nil {
			return removed, fmt.Errorf("cleanup interrupted before rule %d: %w", i, err)
		}

		matched, ok := rule.Matches(values)
		if !ok {
			return removed, &oerrors.DetailError{
				Type:    "cleanup failed",
				Message: fmt.Sprintf("rule %d references option %q which has no resolved value", i, rule.Option),
				Field:   rule.Option,
				Hint:    "Every option used by a cleanup rule must be defined in the template manifest.",
				Cause:   oerrors.ErrValidation,
			}
		}
		if !matched {
			continue
		}

		if err := removeFile(root, rule.Target); err != nil {
			return removed, err
		}
		output.Debug("removed file", "path", rule.Target, "option", rule.Option, "value", values[rule.Option])
		removed = append(removed, rule.Target)
	}

	return removed, nil
}

// removeFile deletes a single regular file or symlink. Directories are refused.
func removeFile(root, target string) error {
	path := filepath.Join(root, filepath.FromSlash(target))

	info, err := os.Lstat(path)
	if err != nil {
		return cleanupError(target, path, err)
	}
	if info.IsDir() {
		return &oerrors.DetailError{
			Type:     "cleanup failed",
			Message:  fmt.Sprintf("%s is a directory, cleanup only removes files", target),
			Location: path,
			Cause:    oerrors.ErrValidation,
		}
	}

	if err := os.Remove(path); err != nil {
		return cleanupError(target, path, err)
	}
	return nil
}

func cleanupError(target, path string, err error) error {
	cause := err
	hint := ""
	if sentinel := oerrors.Classify(err); sentinel != nil {
		cause = fmt.Errorf("%w: %w", sentinel, err)
		switch sentinel {
		case oerrors.ErrNotFound:
			hint = "The template and its cleanup rules are out of sync."
		case oerrors.ErrPermission:
			hint = "Check the permissions of the generated project directory."
		}
	}
	return &oerrors.DetailError{
		Type:     "cleanup failed",
		Message:  fmt.Sprintf("could not remove %s: %v", target, err),
		Location: path,
		Hint:     hint,
		Cause:    cause,
	}
}
