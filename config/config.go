// Package config holds the CLI-facing configuration for whence. The
// resolver core never reads configuration; everything here feeds the
// command-line surface, which is just one recognizer-side caller of the
// resolve contract.
package config

// Config represents the whence CLI configuration
type Config struct {
	Output  OutputConfig  `mapstructure:"output" toml:"output"`
	Resolve ResolveConfig `mapstructure:"resolve" toml:"resolve"`
}

// OutputConfig configures how resolved components are rendered
type OutputConfig struct {
	JSON    bool   `mapstructure:"json" toml:"json"`         // machine-readable output
	Layout  string `mapstructure:"layout" toml:"layout"`     // Go time layout for resolved timestamps
	Verbose bool   `mapstructure:"verbose" toml:"verbose"`   // debug-level resolution traces
	LogJSON bool   `mapstructure:"log_json" toml:"log_json"` // structured JSON logs instead of console
}

// ResolveConfig configures defaults for the resolve command
type ResolveConfig struct {
	// Reference overrides the anchor instant (RFC3339). Empty means the
	// CLI passes the current wall clock; the resolver core itself never
	// reads a clock.
	Reference string `mapstructure:"reference" toml:"reference"`

	// TimezoneOffsetMinutes is a fixed UTC offset recorded on every
	// resolved component set. Nil leaves the offset unset.
	TimezoneOffsetMinutes *int `mapstructure:"timezone_offset_minutes" toml:"timezone_offset_minutes"`
}
