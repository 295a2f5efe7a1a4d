package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pybake/cli/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *config.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Manage the pybake configuration file",
		Long: `Manage the pybake configuration file.

The configuration file lives at ~/.pybake/config.yaml unless --config or
PYBAKE_CONFIG points elsewhere. Its default_context values are applied to
every generated project.`,
	}

	c.AddCommand(newConfigInitCmd(cfg))
	c.AddCommand(newConfigVetCmd(cfg))

	return c
}
