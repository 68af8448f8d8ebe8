// Package cmd holds the shared entrypoint plumbing for command binaries.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/louisbranch/chance/internal/platform/config"
	"github.com/rs/zerolog"
)

// Service identifiers for command logging and CLI naming consistency.
const (
	ServiceChance = "chance"
)

// ParseConfig loads environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// NewLogger builds the console logger used by command binaries.
func NewLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// RunWithLogger attaches a service-scoped logger to ctx and executes run.
func RunWithLogger(ctx context.Context, service string, logger zerolog.Logger, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return fmt.Errorf("service name is required")
	}
	if run == nil {
		return fmt.Errorf("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	scoped := logger.With().Str("service", service).Logger()
	ctx = scoped.WithContext(ctx)

	started := time.Now()
	err := run(ctx)
	event := scoped.Debug()
	if err != nil {
		event = scoped.Error().Err(err)
	}
	event.Dur("elapsed", time.Since(started)).Msg("run finished")
	return err
}
