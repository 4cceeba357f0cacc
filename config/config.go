// Package config loads the command-line driver's settings from a .env
// file, flags and KEYPADS_* environment variables, in that order of
// increasing precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/keypads/sequencer"
)

// ErrInvalidConfig indicates a missing or unparsable setting.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the driver settings.
type Config struct {
	// Input is the path of the code list, one code per line.
	Input string
	// Depths lists the chain depths to evaluate, in order.
	Depths []int
	// Workers bounds parallel code evaluation; 0 means GOMAXPROCS.
	Workers int
	// CacheSize bounds each sequencer's result cache.
	CacheSize int
	// LogLevel filters log records.
	LogLevel slog.Level
}

// Load parses args (without the program name) and applies environment
// overrides. A missing .env file is ignored.
func Load(args []string) (*Config, error) {
	_ = godotenv.Load()

	fs := flag.NewFlagSet("keypads", flag.ContinueOnError)
	input := fs.String("input", "", "path of the code list")
	depths := fs.String("depths", "2,25", "comma-separated chain depths")
	workers := fs.Int("workers", 0, "parallel workers (0 = GOMAXPROCS)")
	cacheSize := fs.Int("cache", sequencer.DefaultCacheSize, "per-depth result cache size")
	level := fs.String("log-level", "info", "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if fs.NArg() > 0 && *input == "" {
		*input = fs.Arg(0)
	}

	*input = firstNonEmpty(strings.TrimSpace(os.Getenv("KEYPADS_INPUT")), *input)
	*depths = firstNonEmpty(strings.TrimSpace(os.Getenv("KEYPADS_DEPTHS")), *depths)
	*level = firstNonEmpty(strings.TrimSpace(os.Getenv("KEYPADS_LOG_LEVEL")), *level)

	cfg := &Config{Input: *input, Workers: *workers, CacheSize: *cacheSize}
	if cfg.Input == "" {
		return nil, fmt.Errorf("%w: no input file (use -input or KEYPADS_INPUT)", ErrInvalidConfig)
	}

	var err error
	if cfg.Workers, err = envInt("KEYPADS_WORKERS", cfg.Workers); err != nil {
		return nil, err
	}
	if cfg.CacheSize, err = envInt("KEYPADS_CACHE_SIZE", cfg.CacheSize); err != nil {
		return nil, err
	}
	if cfg.Workers < 0 || cfg.CacheSize < 0 {
		return nil, fmt.Errorf("%w: workers and cache size must be non-negative", ErrInvalidConfig)
	}
	if cfg.Depths, err = parseDepths(*depths); err != nil {
		return nil, err
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(*level)); err != nil {
		return nil, fmt.Errorf("%w: log level %q", ErrInvalidConfig, *level)
	}

	return cfg, nil
}

func parseDepths(raw string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := strconv.Atoi(part)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("%w: depth %q", ErrInvalidConfig, part)
		}
		out = append(out, d)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no depths", ErrInvalidConfig)
	}
	return out, nil
}

func envInt(name string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, name, raw)
	}
	return v, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
