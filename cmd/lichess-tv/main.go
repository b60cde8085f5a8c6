// lichess-tv renders the Lichess TV feed as a live board in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lgbarn/lichess-tv-go/internal/config"
	interrors "github.com/lgbarn/lichess-tv-go/internal/errors"
	"github.com/lgbarn/lichess-tv-go/internal/feed"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}
	if *version {
		fmt.Printf("lichess-tv version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if *configFile != "" {
		if err := cfg.LoadFile(*configFile); err != nil {
			fatal(err)
		}
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tv := newViewer(cfg, os.Stdout)
	err := feed.New(cfg).Run(ctx, tv.onRecord)
	switch {
	case err == nil || errors.Is(err, interrors.ErrFeedClosed):
	case ctx.Err() != nil:
		// Interrupted; leave the last frame on screen.
	default:
		fatal(err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: lichess-tv [options]\n\n")
	fmt.Fprintf(os.Stderr, "Watch the Lichess TV feed as a live board in the terminal.\n\nOptions:\n")
	flag.PrintDefaults()
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "lichess-tv: %v\n", err)
	os.Exit(1)
}
