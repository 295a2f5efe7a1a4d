package options

import (
	"fmt"
	"strings"

	oerrors "github.com/pybake/cli/internal/errors"
)

// ParseAssignments parses key=value pairs. Later keys win.
func ParseAssignments(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("invalid assignment %q", pair),
				"--set", "",
				"Use --set name=value, e.g. --set select_license=\"MIT license\".",
			)
		}
		out[key] = value
	}
	return out, nil
}
