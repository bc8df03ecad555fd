package config

import (
	"time"

	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Output defaults
	v.SetDefault("output.json", false)
	v.SetDefault("output.layout", time.RFC3339) // resolved timestamp rendering
	v.SetDefault("output.verbose", false)
	v.SetDefault("output.log_json", false)

	// Resolve defaults
	v.SetDefault("resolve.reference", "") // empty = current wall clock
}
