package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pybake/cli/internal/config"
	oerrors "github.com/pybake/cli/internal/errors"
	"github.com/pybake/cli/internal/output"
	"github.com/pybake/cli/internal/templates"
)

// NewTemplateCmd creates the template command group.
func NewTemplateCmd(cfg *config.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "template",
		Short: "Inspect embedded templates",
		Long: `Inspect the project templates embedded in pybake.

Examples:
  pybake template list
  pybake template show pypackage -o yaml`,
	}

	c.AddCommand(newTemplateListCmd(cfg))
	c.AddCommand(newTemplateShowCmd(cfg))

	return c
}

func newTemplateListCmd(_ *config.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List embedded templates",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return withExitCode(runTemplateList())
		},
	}
}

func runTemplateList() error {
	all, err := templates.List()
	if err != nil {
		return err
	}

	tbl := output.NewTable("NAME", "OPTIONS", "CLEANUP RULES", "DESCRIPTION")
	for _, t := range all {
		name := t.Name
		if t.Default {
			name += " (default)"
		}
		tbl.Row(name,
			fmt.Sprintf("%d", len(t.Manifest.Options)),
			fmt.Sprintf("%d", len(t.Manifest.Cleanup)),
			t.Description)
	}
	output.Println(tbl.String())
	return nil
}

func newTemplateShowCmd(cfg *config.GlobalConfig) *cobra.Command {
	var formatFlag string

	c := &cobra.Command{
		Use:   "show <name>",
		Short: "Show a template's options and cleanup rules",
		Long: `Show a template's options and cleanup rules.

Defaults shown in the table view are rendered with your default_context
applied, so they match what "pybake new --no-input" would use.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return withExitCode(runTemplateShow(cfg, args[0], formatFlag))
		},
	}

	c.Flags().StringVarP(&formatFlag, "output", "o", string(output.FormatTable),
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))

	return c
}

func runTemplateShow(cfg *config.GlobalConfig, name, formatFlag string) error {
	format, err := output.ParseOutputFormat(formatFlag)
	if err != nil {
		return oerrors.NewValidationError(err.Error(), "", "output", "")
	}

	tmpl, err := templates.Get(name)
	if err != nil {
		return err
	}

	if format != output.FormatTable {
		data, err := output.Marshal(tmpl.Manifest, format)
		if err != nil {
			return err
		}
		output.Print(string(data))
		return nil
	}

	m := tmpl.Manifest
	ctxValues := cfg.DefaultContext()

	output.Println(fmt.Sprintf("%s  %s", output.StyleNoun.Render(m.Name), output.StyleDim.Render(m.Description)))
	output.Println(fmt.Sprintf("Directory: %s", m.Directory))
	output.Println("")

	opts := output.NewTable("OPTION", "DEFAULT", "CHOICES")
	for _, o := range m.Options {
		def := o.DefaultText()
		if v, ok := ctxValues[o.Name]; ok {
			def = v + " (config)"
		}
		opts.Row(o.Name, def, strings.Join(o.Choices, ", "))
	}
	output.Println(opts.String())

	if len(m.Cleanup) > 0 {
		output.Println("")
		rules := output.NewTable("OPTION", "VALUES", "REMOVES")
		for _, r := range m.Cleanup {
			rules.Row(r.Option, strings.Join(r.Triggers, ", "), r.Target)
		}
		output.Println(rules.String())
	}
	return nil
}
