// Package config loads optional user configuration: a persistent exclude
// and include list plus a cargo binary override, kept in
// ~/.cargo-makedocs.yaml or overridden per invocation with --config.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds user-level defaults merged into every invocation.
type Config struct {
	// Cargo overrides the cargo executable name or path.
	Cargo string `mapstructure:"cargo"`
	// Exclude lists crates never documented unless explicitly included.
	Exclude []string `mapstructure:"exclude"`
	// Include lists crates always added to the documentation set.
	Include []string `mapstructure:"include"`
}

const configName = ".cargo-makedocs"

// Init configures viper and reads the config file if one exists. A missing
// file is not an error; a malformed one is.
func Init(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("locating home directory: %w", err)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(configName)
		viper.SetConfigType("yaml")
	}

	viper.SetDefault("cargo", "cargo")
	viper.SetEnvPrefix("CARGO_MAKEDOCS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// Get returns the loaded configuration.
func Get() (*Config, error) {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Cargo == "" {
		cfg.Cargo = "cargo"
	}
	return cfg, nil
}
