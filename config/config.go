// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct and is a mix
// of settings available in a local settings file, the environment,
// and those available from the command line.
type Config struct {
	// GapSize is the number of filler bases inserted between adjacent
	// contigs on a scaffold. Juicebox assemblies have always used 100;
	// it is surfaced here so a migration can override it without a
	// code change, but no CLI flag exposes it.
	GapSize int `mapstructure:"gap-size"`

	// WrapWidth is the column at which emitted FASTA sequence
	// lines are wrapped.
	WrapWidth int `mapstructure:"wrap-width"`
}

// setDefaults registers the settings' fallback values with viper.
func setDefaults() {
	viper.SetDefault("gap-size", 100)
	viper.SetDefault("wrap-width", 80)
}

// New returns a new Config struct populated by Viper settings
// (environment, optional settings file) and/or command line arguments.
func New() *Config {
	setDefaults()

	viper.SetEnvPrefix("JBC")
	viper.AutomaticEnv()

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct: %v", err)
	}

	return &c
}
