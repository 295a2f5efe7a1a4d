package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pybake/cli/internal/config"
	oerrors "github.com/pybake/cli/internal/errors"
	"github.com/pybake/cli/internal/output"
)

func newConfigVetCmd(cfg *config.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the pybake configuration file",
		Long: `Validate the pybake configuration file against the internal schema.

The command validates ~/.pybake/config.yaml by default.
Use --config to specify a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return withExitCode(runConfigVet(c, cfg))
		},
	}
}

func runConfigVet(c *cobra.Command, cfg *config.GlobalConfig) error {
	expandedPath, err := configPath(cfg)
	if err != nil {
		return err
	}

	exists, err := config.ConfigFileExists(expandedPath)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if !exists {
		return oerrors.NewNotFoundError("config file not found", expandedPath,
			"Run 'pybake config init' to create one.")
	}

	validator, err := config.NewValidator()
	if err != nil {
		return fmt.Errorf("creating validator: %w", err)
	}

	if err := validator.ValidateFile(expandedPath); err != nil {
		var validationErrs config.ValidationErrors
		if errors.As(err, &validationErrs) {
			w := c.ErrOrStderr()
			fmt.Fprintln(w, "Error: config validation failed")
			fmt.Fprintf(w, "  File: %s\n\n", expandedPath)
			for _, e := range validationErrs {
				fmt.Fprintf(w, "  %s: %s\n", e.Field, e.Message)
			}
			return &oerrors.ExitError{
				Code:    ExitValidationError,
				Err:     fmt.Errorf("%w: %w", oerrors.ErrValidation, err),
				Printed: true,
			}
		}
		return fmt.Errorf("validating config: %w", err)
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Config file is valid: %s", expandedPath)))
	return nil
}
