package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pybake/cli/internal/bake"
	"github.com/pybake/cli/internal/cmdutil"
	"github.com/pybake/cli/internal/config"
	"github.com/pybake/cli/internal/output"
	"github.com/pybake/cli/internal/templates"
)

// NewCleanCmd creates the clean command.
func NewCleanCmd(cfg *config.GlobalConfig) *cobra.Command {
	var (
		templateFlag string
		optionFlags  cmdutil.OptionFlags
	)

	c := &cobra.Command{
		Use:   "clean <dir>",
		Short: "Run the cleanup hook against an existing project",
		Long: `Run the cleanup hook against an existing project directory.

Option values come from template defaults, default_context and --set. Nothing
is prompted. Rules run in order and the first failure stops the run.

Every rule whose value matches must find its file. A file removed when the
project was generated is missing now, so set its option to a value that keeps
it. With defaults, appveyor.yml is already gone (select_appveyor_ci=n).

Examples:
  # Drop the Travis config from a project generated with defaults
  pybake clean ./python_boilerplate --set select_travis_ci=n --set select_appveyor_ci=y`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return withExitCode(runClean(c, cfg, args[0], templateFlag, &optionFlags))
		},
	}

	c.Flags().StringVarP(&templateFlag, "template", "t", templates.DefaultTemplateName, "Template the project was generated from")
	optionFlags.AddTo(c)

	return c
}

func runClean(c *cobra.Command, cfg *config.GlobalConfig, dir, templateName string, optionFlags *cmdutil.OptionFlags) error {
	tmpl, err := templates.Get(templateName)
	if err != nil {
		return err
	}

	overrides, err := optionFlags.Overrides()
	if err != nil {
		return err
	}

	result, err := bake.New(bake.Options{
		Template:      tmpl,
		ConfigContext: cfg.DefaultContext(),
		Overrides:     overrides,
	}).Clean(c.Context(), dir)
	if err != nil {
		return err
	}

	if len(result.Removed) == 0 {
		output.Println(output.FormatCheckmark("Nothing to remove"))
		return nil
	}
	for _, f := range result.Removed {
		output.Println(output.FormatFileLine(f, output.StatusRemoved))
	}
	output.Println("")
	output.Println(output.FormatCheckmark(fmt.Sprintf("Removed %d file(s) from %s", len(result.Removed), result.ProjectDir)))
	return nil
}
