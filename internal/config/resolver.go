package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pybake/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a single resolved setting with its provenance.
type ResolvedValue struct {
	Key      string
	Value    string
	Source   ConfigSource
	Shadowed map[ConfigSource]string
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	ConfigPath string
	Source     ConfigSource
	Shadowed   map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) PYBAKE_CONFIG env, (3) ~/.pybake/config.yaml
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolveConfigPathResult, error) {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(EnvConfig)

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	switch {
	case opts.FlagValue != "":
		result.ConfigPath = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.ConfigPath = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// ResolveStringOptions describes one string setting to resolve.
type ResolveStringOptions struct {
	Key          string
	FlagValue    string
	EnvVar       string
	ConfigValue  string
	DefaultValue string
}

// ResolveString resolves a string setting using precedence:
// flag > env > config > default. Empty values are treated as unset.
func ResolveString(opts ResolveStringOptions) ResolvedValue {
	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, opts.FlagValue},
		{SourceEnv, lookupEnv(opts.EnvVar)},
		{SourceConfig, opts.ConfigValue},
		{SourceDefault, opts.DefaultValue},
	}

	result := ResolvedValue{
		Key:      opts.Key,
		Shadowed: make(map[ConfigSource]string),
	}
	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		// Viper merges env into the loaded config, so the config candidate
		// can echo the env value.
		if c.source == SourceConfig && c.value == result.Value && result.Source == SourceEnv {
			continue
		}
		result.Shadowed[c.source] = c.value
	}
	return result
}

// ResolveBoolOptions describes one boolean setting to resolve.
type ResolveBoolOptions struct {
	Key string
	// FlagSet reports whether the flag was passed explicitly.
	FlagSet     bool
	FlagValue   bool
	EnvVar      string
	ConfigValue *bool
	Default     bool
}

// ResolveBool resolves a boolean setting using precedence:
// flag > env > config > default. An unparsable env value is an error.
func ResolveBool(opts ResolveBoolOptions) (ResolvedValue, bool, error) {
	result := ResolvedValue{
		Key:      opts.Key,
		Shadowed: make(map[ConfigSource]string),
	}

	var envValue *bool
	if raw := lookupEnv(opts.EnvVar); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return result, false, fmt.Errorf("parsing %s=%q: %w", opts.EnvVar, raw, err)
		}
		envValue = &b
	}

	var flagValue *bool
	if opts.FlagSet {
		flagValue = &opts.FlagValue
	}

	candidates := []struct {
		source ConfigSource
		value  *bool
	}{
		{SourceFlag, flagValue},
		{SourceEnv, envValue},
		{SourceConfig, opts.ConfigValue},
		{SourceDefault, &opts.Default},
	}

	var resolved bool
	for _, c := range candidates {
		if c.value == nil {
			continue
		}
		s := strconv.FormatBool(*c.value)
		if result.Source == "" {
			resolved = *c.value
			result.Value = s
			result.Source = c.source
			continue
		}
		if c.source == SourceConfig && result.Source == SourceEnv && *c.value == resolved {
			continue
		}
		result.Shadowed[c.source] = s
	}
	return result, resolved, nil
}

func lookupEnv(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
