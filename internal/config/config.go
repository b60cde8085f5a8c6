// Package config provides configuration for the lichess-tv client.
package config

import (
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/lichess-tv-go/internal/errors"
)

// DefaultFeedURL is the Lichess TV ND-JSON feed.
const DefaultFeedURL = "https://lichess.org/api/tv/feed"

// DefaultMaxRecordSize bounds one feed record. FEN plus player metadata
// fits in a few hundred bytes; 64 KiB leaves generous headroom.
const DefaultMaxRecordSize = 64 * 1024

// Config holds all program configuration.
type Config struct {
	// Feed
	FeedURL        string
	ConnectTimeout time.Duration
	MaxRecordSize  int

	// Display
	NoColor bool

	// Diagnostics
	LogFile io.Writer
}

// NewConfig creates a configuration with default values.
func NewConfig() *Config {
	return &Config{
		FeedURL:        DefaultFeedURL,
		ConnectTimeout: 30 * time.Second,
		MaxRecordSize:  DefaultMaxRecordSize,
		LogFile:        os.Stderr,
	}
}

// fileConfig mirrors the YAML config file. Pointer fields distinguish
// "absent" from zero values so the file only overrides what it names.
type fileConfig struct {
	FeedURL        *string `yaml:"feed_url"`
	ConnectTimeout *string `yaml:"connect_timeout"`
	MaxRecordSize  *int    `yaml:"max_record_size"`
	NoColor        *bool   `yaml:"no_color"`
}

// LoadFile overlays values from a YAML config file onto c. Keys absent
// from the file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading config file")
	}

	var f fileConfig
	if err := yaml.Unmarshal(data, &f); err != nil {
		return errors.Wrapf(err, "parsing config file %s", path)
	}

	if f.FeedURL != nil {
		c.FeedURL = *f.FeedURL
	}
	if f.ConnectTimeout != nil {
		d, err := time.ParseDuration(*f.ConnectTimeout)
		if err != nil {
			return errors.Wrapf(errors.ErrInvalidConfig, "connect_timeout %q", *f.ConnectTimeout)
		}
		c.ConnectTimeout = d
	}
	if f.MaxRecordSize != nil {
		c.MaxRecordSize = *f.MaxRecordSize
	}
	if f.NoColor != nil {
		c.NoColor = *f.NoColor
	}
	return nil
}

// Validate checks the configuration for nonsense values.
func (c *Config) Validate() error {
	if c.FeedURL == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "feed URL must not be empty")
	}
	if c.MaxRecordSize <= 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "max record size must be positive, got %d", c.MaxRecordSize)
	}
	if c.ConnectTimeout < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "connect timeout must not be negative, got %v", c.ConnectTimeout)
	}
	return nil
}
