// Command keypads prints the sum of complexities of a list of door codes for
// each configured chain depth.
//
// Usage:
//
//	keypads -input codes.txt [-depths 2,25] [-workers N] [-cache N] [-log-level info]
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/keypads/codes"
	"github.com/katalvlaran/keypads/complexity"
	"github.com/katalvlaran/keypads/config"
	"github.com/katalvlaran/keypads/ctxlog"
	"github.com/katalvlaran/keypads/sequencer"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run is main without the process exit, so it can be driven from tests.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	ctx = ctxlog.WithLogger(ctx, logger)

	list, err := readCodes(cfg.Input)
	if err != nil {
		logger.Error("reading codes", "input", cfg.Input, "error", err)
		return err
	}
	logger.Debug("codes loaded", "input", cfg.Input, "count", len(list))

	for _, depth := range cfg.Depths {
		s, err := sequencer.New(depth, sequencer.WithCacheSize(cfg.CacheSize))
		if err != nil {
			logger.Error("building sequencer", "depth", depth, "error", err)
			return err
		}
		total, err := complexity.Sum(ctx, s, list, complexity.WithWorkers(cfg.Workers))
		if err != nil {
			logger.Error("summing complexities", "depth", depth, "error", err)
			return err
		}
		fmt.Fprintf(stdout, "sum of complexities with %d directional keypads: %d\n", depth, total)
	}
	return nil
}

func readCodes(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return codes.Parse(f)
}
