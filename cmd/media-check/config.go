// Copyright 2026 Teradata
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/inkscape/media-check/pkg/iconcheck"
	"github.com/inkscape/media-check/pkg/uicheck"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. MEDIACHECK_ICONS_ROOT.
	EnvPrefix = "MEDIACHECK"
	// DefaultConfigFileName is the name of the config file
	DefaultConfigFileName = "media-check"
)

// Config holds all configuration for media-check.
// Priority: CLI flags > env vars > config file > defaults.
// The policy sets themselves are compiled in and cannot be configured.
type Config struct {
	Icons   IconsConfig   `mapstructure:"icons"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// IconsConfig configures the icon theme check.
type IconsConfig struct {
	Root      string `mapstructure:"root"`       // Theme directory (default: share/icons)
	Hints     bool   `mapstructure:"hints"`      // Print "did you mean" hints
	HintLimit int    `mapstructure:"hint_limit"` // Hints per icon (default: 3)
}

// UIConfig configures the UI policy check.
type UIConfig struct {
	Root string `mapstructure:"root"` // UI file directory (default: share/ui)
}

// LoggingConfig configures diagnostics logging. Reports are not logs and
// always go to stderr.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig loads configuration from file, environment, and bound flags.
func LoadConfig(cfgFile string) (*Config, error) {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(DefaultConfigFileName)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", viper.ConfigFileUsed(), err)
		}
		// No config file; defaults + env vars + flags
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults() {
	viper.SetDefault("icons.root", iconcheck.DefaultRoot)
	viper.SetDefault("icons.hints", false)
	viper.SetDefault("icons.hint_limit", iconcheck.DefaultHintLimit)

	viper.SetDefault("ui.root", uicheck.DefaultRoot)

	viper.SetDefault("logging.level", "warn")
	viper.SetDefault("logging.format", "text")
}

// Validate checks the configuration for values the checkers cannot use.
func (c *Config) Validate() error {
	if c.Icons.Root == "" {
		return fmt.Errorf("icons.root must not be empty")
	}
	if c.UI.Root == "" {
		return fmt.Errorf("ui.root must not be empty")
	}
	if c.Icons.HintLimit < 0 {
		return fmt.Errorf("icons.hint_limit must be >= 0, got %d", c.Icons.HintLimit)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q (must be debug, info, warn or error)", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid logging.format %q (must be text or json)", c.Logging.Format)
	}
	return nil
}
