// Package config loads the settings of the listtoggle demo program.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. LISTTOGGLE_LINE_NUMBERS.
const EnvPrefix = "LISTTOGGLE"

// ErrInvalid reports a setting outside its allowed range.
var ErrInvalid = errors.New("invalid config")

// Config holds the demo settings.
type Config struct {
	File         string `mapstructure:"file"`
	LineNumbers  bool   `mapstructure:"line_numbers"`
	HistoryLimit int    `mapstructure:"history_limit"`
	ReadOnly     bool   `mapstructure:"read_only"`
	LogFile      string `mapstructure:"log_file"`
	Mouse        bool   `mapstructure:"mouse"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		LineNumbers:  true,
		HistoryLimit: 1000,
		LogFile:      "listtoggle.log",
		Mouse:        true,
	}
}

// Load reads path (YAML, TOML or JSON, chosen by extension) on top of the
// defaults and applies environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault("file", def.File)
	v.SetDefault("line_numbers", def.LineNumbers)
	v.SetDefault("history_limit", def.HistoryLimit)
	v.SetDefault("read_only", def.ReadOnly)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("mouse", def.Mouse)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.HistoryLimit < 0 {
		return fmt.Errorf("%w: history_limit must be >= 0, got %d", ErrInvalid, c.HistoryLimit)
	}
	return nil
}
