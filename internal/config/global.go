package config

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed into every command constructor.
type GlobalConfig struct {
	// Config is the loaded configuration file merged with env overrides.
	Config *Config

	// ConfigPath is the resolved config file path.
	ConfigPath string

	// Verbose mirrors the --verbose flag.
	Verbose bool
}

// DefaultContext returns the configured default_context, never nil.
func (g *GlobalConfig) DefaultContext() map[string]string {
	if g == nil || g.Config == nil || g.Config.DefaultContext == nil {
		return map[string]string{}
	}
	return g.Config.DefaultContext
}

// File returns the loaded config, or the defaults when nothing was loaded.
func (g *GlobalConfig) File() *Config {
	if g == nil || g.Config == nil {
		return DefaultConfig()
	}
	return g.Config
}
