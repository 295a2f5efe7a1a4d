package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pybake/cli/internal/config"
	oerrors "github.com/pybake/cli/internal/errors"
	"github.com/pybake/cli/internal/output"
)

func newConfigInitCmd(cfg *config.GlobalConfig) *cobra.Command {
	var forceFlag bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new pybake configuration file",
		Long: `Create a new pybake configuration file with default values.

The configuration file is created at ~/.pybake/config.yaml by default.
Use --config to specify a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return withExitCode(runConfigInit(cfg, forceFlag))
		},
	}

	c.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite existing config file")

	return c
}

func runConfigInit(cfg *config.GlobalConfig, force bool) error {
	expandedPath, err := configPath(cfg)
	if err != nil {
		return err
	}

	exists, err := config.ConfigFileExists(expandedPath)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if exists && !force {
		return &oerrors.DetailError{
			Type:     "config exists",
			Message:  "config file already exists",
			Location: expandedPath,
			Hint:     "Use --force to overwrite it.",
			Cause:    oerrors.ErrValidation,
		}
	}

	if err := os.MkdirAll(filepath.Dir(expandedPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(expandedPath, []byte(config.DefaultConfigTemplate), 0o600); err != nil {
		if sentinel := oerrors.Classify(err); sentinel != nil {
			return fmt.Errorf("writing config file: %w: %w", sentinel, err)
		}
		return fmt.Errorf("writing config file: %w", err)
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Config file created: %s", expandedPath)))
	return nil
}

// configPath returns the expanded config file path resolved at startup.
func configPath(cfg *config.GlobalConfig) (string, error) {
	path := cfg.ConfigPath
	if path == "" {
		var err error
		path, err = config.GetConfigFile()
		if err != nil {
			return "", fmt.Errorf("getting config file path: %w", err)
		}
	}

	expanded, err := config.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("expanding config path: %w", err)
	}
	return expanded, nil
}
