// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" json:"timestamps,omitempty"`
}

// Config represents the pybake CLI configuration.
// Loaded from ~/.pybake/config.yaml, validated against the embedded CUE schema.
type Config struct {
	// DefaultContext holds user-wide option values applied on top of template
	// defaults, e.g. full_name or email.
	DefaultContext map[string]string `mapstructure:"default_context" json:"default_context,omitempty"`

	// NoInput disables interactive prompts.
	// Env: PYBAKE_NO_INPUT
	NoInput *bool `mapstructure:"no_input" json:"no_input,omitempty"`

	// OutputDir is the directory new projects are generated into.
	// Env: PYBAKE_OUTPUT_DIR, Default: current directory
	OutputDir string `mapstructure:"output_dir" json:"output_dir,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" json:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		DefaultContext: map[string]string{},
		OutputDir:      ".",
	}
}

// WithDefaults returns a copy of the config with unset fields filled in.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.DefaultContext == nil {
		out.DefaultContext = map[string]string{}
	}
	if out.OutputDir == "" {
		out.OutputDir = "."
	}
	return &out
}

// DefaultConfigTemplate is written by `pybake config init`.
const DefaultConfigTemplate = `# pybake configuration
#
# default_context values override template defaults for every project.
default_context:
  full_name: "Your Name"
  email: "you@example.com"
  github_username: "yourname"

# Skip interactive prompts (same as --no-input).
no_input: false

# Directory new projects are generated into.
output_dir: "."

log:
  # Show timestamps in log output.
  timestamps: true
`
