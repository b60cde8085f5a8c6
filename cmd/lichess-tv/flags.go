// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/lichess-tv-go/internal/config"
)

var (
	feedURL    = flag.String("url", "", "Feed URL (default: the Lichess TV feed)")
	configFile = flag.String("config", "", "YAML configuration file")
	noColor    = flag.Bool("no-color", false, "Disable colored output")
	timeout    = flag.Duration("timeout", 0, "Connect timeout (0 = keep configured value)")
	version    = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show usage information")
)

// applyFlags overlays command-line flags onto the configuration. Flags
// take precedence over config file values.
func applyFlags(cfg *config.Config) {
	if *feedURL != "" {
		cfg.FeedURL = *feedURL
	}
	if *timeout != 0 {
		cfg.ConnectTimeout = *timeout
	}
	if *noColor {
		cfg.NoColor = true
	}
}
