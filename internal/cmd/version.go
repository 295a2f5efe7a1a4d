package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pybake/cli/internal/config"
	oerrors "github.com/pybake/cli/internal/errors"
	"github.com/pybake/cli/internal/output"
	"github.com/pybake/cli/internal/templates"
	"github.com/pybake/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *config.GlobalConfig) *cobra.Command {
	var formatFlag string

	c := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show pybake version information.

Displays:
  - pybake version, commit, and build date
  - CUE SDK version used for schema validation
  - embedded templates`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return withExitCode(runVersion(formatFlag))
		},
	}

	c.Flags().StringVarP(&formatFlag, "output", "o", string(output.FormatTable), "Output format (table, yaml, json)")

	return c
}

func runVersion(formatFlag string) error {
	format, err := output.ParseOutputFormat(formatFlag)
	if err != nil {
		return oerrors.NewValidationError(err.Error(), "", "output", "")
	}

	info := version.Get(templates.Names()...)
	if format == output.FormatTable {
		output.Print(info.String())
		return nil
	}

	data, err := output.Marshal(info, format)
	if err != nil {
		return err
	}
	output.Print(string(data))
	return nil
}
