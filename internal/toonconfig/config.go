// Package toonconfig loads TOON processor settings from a project
// config file (`.toon.yml`/`.toon.yaml`), environment variables, and
// built-in defaults, following the same viper wiring the teacher CLI
// uses for its own project config.
package toonconfig

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/madskristensen/toon/pkg/toon"
)

// Config is the on-disk/env shape of TOON processor settings.
type Config struct {
	MaxStringLength int            `mapstructure:"max_string_length"`
	MaxTokenCount   int            `mapstructure:"max_token_count"`
	MaxNestingDepth int            `mapstructure:"max_nesting_depth"`
	MaxArraySize    int            `mapstructure:"max_array_size"`
	Encode          EncodeConfig   `mapstructure:"encode"`
}

// EncodeConfig is the on-disk shape of encoder rendering choices.
type EncodeConfig struct {
	IndentWidth  int    `mapstructure:"indent_width"`
	Delimiter    string `mapstructure:"delimiter"` // "comma" | "tab" | "pipe"
	PreferTables bool   `mapstructure:"prefer_tables"`
}

// Load reads `.toon.yml`/`.toon.yaml` from the current directory (if
// present), layers in `TOON_*` environment variables, and returns the
// merged Config. A missing config file is not an error — defaults
// apply.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("max_string_length", toon.DefaultOptions().MaxStringLength)
	v.SetDefault("max_token_count", toon.DefaultOptions().MaxTokenCount)
	v.SetDefault("max_nesting_depth", toon.DefaultOptions().MaxNestingDepth)
	v.SetDefault("max_array_size", toon.DefaultOptions().MaxArraySize)
	v.SetDefault("encode.indent_width", toon.DefaultEncodeOptions().IndentWidth)
	v.SetDefault("encode.delimiter", "comma")
	v.SetDefault("encode.prefer_tables", toon.DefaultEncodeOptions().PreferTables)

	v.SetConfigName(".toon")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("TOON")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("toonconfig: failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("toonconfig: failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// ParseOptions converts Config to the pkg/toon.Options the lexer and
// parser consume.
func (c *Config) ParseOptions() toon.Options {
	return toon.Options{
		MaxStringLength: c.MaxStringLength,
		MaxTokenCount:   c.MaxTokenCount,
		MaxNestingDepth: c.MaxNestingDepth,
		MaxArraySize:    c.MaxArraySize,
	}
}

// EncodeOptions converts Config to the pkg/toon.EncodeOptions the
// encoder consumes.
func (c *Config) EncodeOptions() toon.EncodeOptions {
	opts := toon.DefaultEncodeOptions()
	opts.IndentWidth = c.Encode.IndentWidth
	opts.PreferTables = c.Encode.PreferTables
	opts.Delimiter = toon.ParseDelimiterName(c.Encode.Delimiter)
	return opts
}

// InProject reports whether the current directory looks like a TOON
// project (a `.toon.yml`/`.toon.yaml` config file is present).
func InProject() bool {
	for _, name := range []string{".toon.yml", ".toon.yaml"} {
		if _, err := os.Stat(name); err == nil {
			return true
		}
	}
	return false
}
