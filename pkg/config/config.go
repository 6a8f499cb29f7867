package config

// Config is the effective sortie configuration
type Config struct {
	Organize Organize `koanf:"organize" toml:"organize"`
	Rules    Rules    `koanf:"rules" toml:"rules"`
	Keywords Keywords `koanf:"keywords" toml:"keywords"`
	Logging  Logging  `koanf:"logging" toml:"logging"`
	Output   Output   `koanf:"output" toml:"output"`

	// source is the user config file that was loaded, if any
	source string
}

// Organize holds run defaults
type Organize struct {
	DefaultDestination string   `koanf:"default_destination" toml:"default_destination"`
	Sources            []string `koanf:"sources" toml:"sources"`
	ShowSkipped        bool     `koanf:"show_skipped" toml:"show_skipped"`
}

// Rules locates the extension rules file
type Rules struct {
	File string `koanf:"file" toml:"file"`
}

// Keywords locates the keyword file
type Keywords struct {
	File string `koanf:"file" toml:"file"`
}

// Logging configures the log file location
type Logging struct {
	Dir string `koanf:"dir" toml:"dir"`
}

// Output configures summary rendering
type Output struct {
	Format string `koanf:"format" toml:"format"`
}

// Source returns the user config file the configuration was read from, or
// "" when only defaults and environment were used
func (c *Config) Source() string {
	return c.source
}
