// Package cmdutil provides flag groups shared by the generation commands.
package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/pybake/cli/internal/options"
)

// OptionFlags holds flags that set template option values (new, clean).
type OptionFlags struct {
	Set []string
}

// AddTo registers the option flags on the given cobra command.
func (f *OptionFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.Set, "set", nil,
		"Set an option value (name=value), repeatable")
}

// Overrides parses the --set values.
func (f *OptionFlags) Overrides() (map[string]string, error) {
	return options.ParseAssignments(f.Set)
}

// GenerateFlags holds flags for commands that write a new project.
type GenerateFlags struct {
	NoInput   bool
	OutputDir string
	Force     bool
}

// AddTo registers the generate flags on the given cobra command.
func (f *GenerateFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.NoInput, "no-input", false,
		"Do not prompt, use defaults and --set values (env: PYBAKE_NO_INPUT)")
	cmd.Flags().StringVarP(&f.OutputDir, "output-dir", "o", "",
		"Directory to generate the project in (env: PYBAKE_OUTPUT_DIR)")
	cmd.Flags().BoolVarP(&f.Force, "force", "f", false,
		"Render into an existing project directory")
}

// NoInputSet reports whether --no-input was passed explicitly.
func (f *GenerateFlags) NoInputSet(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("no-input")
}
