// Package config loads CLI settings from .mappy.yaml and MAPPY_* env vars.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"mappy/internal/mapfile"
)

// Config holds the resolved CLI settings.
type Config struct {
	// StorePath is the directory of the session slot, home-expanded.
	StorePath string
	// Newline is the terminator used for documents created from scratch.
	Newline string
	// Strict makes decoding reject malformed lines.
	Strict bool
	// ChunkSize is the number of changes applied between progress reports.
	ChunkSize int
}

// Load reads configuration. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("store", "~/.mappy")
	v.SetDefault("newline", "lf")
	v.SetDefault("strict", false)
	v.SetDefault("chunk", 500)

	v.SetConfigName(".mappy") // .yaml is implicit
	v.SetEnvPrefix("MAPPY")
	v.AutomaticEnv()

	if override := os.Getenv("MAPPY_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}

	v.AddConfigPath("./")

	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	store, err := homedir.Expand(v.GetString("store"))
	if err != nil {
		return nil, fmt.Errorf("expand store path: %w", err)
	}

	nl, err := mapfile.ParseNewline(v.GetString("newline"))
	if err != nil {
		return nil, err
	}

	chunk := v.GetInt("chunk")
	if chunk <= 0 {
		return nil, fmt.Errorf("chunk must be positive, got %d", chunk)
	}

	return &Config{
		StorePath: store,
		Newline:   nl,
		Strict:    v.GetBool("strict"),
		ChunkSize: chunk,
	}, nil
}

// NewFormat is the encode format for documents not read from a file.
func (c *Config) NewFormat() mapfile.Format {
	return mapfile.Format{Newline: c.Newline, TrailingNewline: true}
}
