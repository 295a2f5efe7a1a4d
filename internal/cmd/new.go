package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pybake/cli/internal/bake"
	"github.com/pybake/cli/internal/cmdutil"
	"github.com/pybake/cli/internal/config"
	"github.com/pybake/cli/internal/options"
	"github.com/pybake/cli/internal/output"
	"github.com/pybake/cli/internal/templates"
)

// NewNewCmd creates the new command.
func NewNewCmd(cfg *config.GlobalConfig) *cobra.Command {
	var (
		optionFlags   cmdutil.OptionFlags
		generateFlags cmdutil.GenerateFlags
	)

	c := &cobra.Command{
		Use:   "new [template]",
		Short: "Generate a new project from a template",
		Long: fmt.Sprintf(`Generate a new project from a template.

Option values are resolved in order: template default, default_context from
the config file, --set, then an interactive prompt. Prompts are skipped with
--no-input or when stdin is not a terminal.

After rendering, files the chosen options make unnecessary are removed
(for example LICENSE when select_license is "Not open source").

Templates: %s

Examples:
  # Generate with prompts
  pybake new

  # Generate without prompts
  pybake new --no-input --set project_name="Data Cruncher" --set select_travis_ci=n

  # Generate into another directory
  pybake new pypackage --output-dir ~/src`, strings.Join(templates.Names(), ", ")),
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			name := templates.DefaultTemplateName
			if len(args) == 1 {
				name = args[0]
			}
			return withExitCode(runNew(c, cfg, name, &optionFlags, &generateFlags))
		},
	}

	optionFlags.AddTo(c)
	generateFlags.AddTo(c)

	return c
}

func runNew(c *cobra.Command, cfg *config.GlobalConfig, name string, optionFlags *cmdutil.OptionFlags, flags *cmdutil.GenerateFlags) error {
	tmpl, err := templates.Get(name)
	if err != nil {
		return err
	}

	overrides, err := optionFlags.Overrides()
	if err != nil {
		return err
	}

	file := cfg.File()
	outputDir := config.ResolveString(config.ResolveStringOptions{
		Key:          "output_dir",
		FlagValue:    flags.OutputDir,
		EnvVar:       config.EnvOutputDir,
		ConfigValue:  file.OutputDir,
		DefaultValue: ".",
	})
	noInput, noInputValue, err := config.ResolveBool(config.ResolveBoolOptions{
		Key:         "no_input",
		FlagSet:     flags.NoInputSet(c),
		FlagValue:   flags.NoInput,
		EnvVar:      config.EnvNoInput,
		ConfigValue: file.NoInput,
	})
	if err != nil {
		return err
	}
	config.LogResolvedValues([]config.ResolvedValue{outputDir, noInput})

	dir, err := config.ExpandPath(outputDir.Value)
	if err != nil {
		return fmt.Errorf("expanding output directory: %w", err)
	}

	var prompter options.Prompter
	if !noInputValue && output.IsInputTTY() {
		prompter = options.NewPrompter(c.InOrStdin(), c.ErrOrStderr())
	}

	result, err := bake.New(bake.Options{
		Template:      tmpl,
		OutputDir:     dir,
		ConfigContext: cfg.DefaultContext(),
		Overrides:     overrides,
		Prompter:      prompter,
		Force:         flags.Force,
	}).Generate(c.Context())
	if err != nil {
		return err
	}

	printResult(result)
	return nil
}

func printResult(result *bake.Result) {
	output.Println(output.FormatCheckmark(fmt.Sprintf("Created %s in %s",
		output.StyleNoun.Render(filepath.Base(result.ProjectDir)), result.ProjectDir)))
	output.Println("")

	files := make(map[string]string, len(result.Files))
	for _, f := range result.Files {
		files[f] = fileDescription(f)
	}
	output.Print(output.RenderFileTree(filepath.Base(result.ProjectDir)+"/", files))

	if len(result.Removed) > 0 {
		output.Println("")
		for _, f := range result.Removed {
			output.Println(output.FormatFileLine(f, output.StatusRemoved))
		}
	}
}

// fileDescription returns a short description for well-known generated files.
func fileDescription(name string) string {
	descriptions := map[string]string{
		"setup.py":             "Package metadata",
		"setup.cfg":            "Tool configuration",
		"README.rst":           "Project overview",
		"HISTORY.rst":          "Changelog",
		"LICENSE":              "License text",
		"Pipfile":              "Development dependencies",
		"requirements_dev.txt": "Pinned dev requirements",
		"tox.ini":              "Test matrix",
		".travis.yml":          "Travis CI config",
		"appveyor.yml":         "AppVeyor config",
		"docs/conf.py":         "Sphinx configuration",
	}
	if desc, ok := descriptions[name]; ok {
		return desc
	}
	if strings.HasPrefix(name, "tests/") && strings.HasSuffix(name, ".py") {
		return "Test module"
	}
	return ""
}
