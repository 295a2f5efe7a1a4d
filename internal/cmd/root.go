// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pybake/cli/internal/config"
	"github.com/pybake/cli/internal/output"
)

// NewRootCmd creates the root command for the pybake CLI.
func NewRootCmd() *cobra.Command {
	var (
		configFlag     string
		verboseFlag    bool
		timestampsFlag bool
	)
	cfg := &config.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "pybake",
		Short: "Generate Python projects from templates",
		Long: `pybake renders an embedded Python project template into a new directory,
then removes the files your answers say you do not want.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd, cfg, configFlag, verboseFlag, timestampsFlag)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: PYBAKE_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewNewCmd(cfg))
	rootCmd.AddCommand(NewCleanCmd(cfg))
	rootCmd.AddCommand(NewTemplateCmd(cfg))
	rootCmd.AddCommand(NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration into cfg.
func initializeGlobals(cmd *cobra.Command, cfg *config.GlobalConfig, configFlag string, verbose, timestamps bool) error {
	pathResult, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{FlagValue: configFlag})
	if err != nil {
		return err
	}

	// A broken config file must not block commands like `config init`.
	loaded, loadErr := config.NewLoader().LoadWithDefaults(pathResult.ConfigPath)

	cfg.Config = loaded
	cfg.ConfigPath = pathResult.ConfigPath
	cfg.Verbose = verbose

	// timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestamps)
	} else if loaded != nil && loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if loadErr != nil {
		output.Warn("could not load config, using defaults", "path", pathResult.ConfigPath, "err", loadErr)
		cfg.Config = config.DefaultConfig()
	}

	config.LogResolvedValues([]config.ResolvedValue{{
		Key:      "config",
		Value:    pathResult.ConfigPath,
		Source:   pathResult.Source,
		Shadowed: pathResult.Shadowed,
	}})

	return nil
}
