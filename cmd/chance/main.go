// Package main prints reproducible random data from the command line.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	chancecmd "github.com/louisbranch/chance/internal/cmd/chance"
	"github.com/louisbranch/chance/internal/platform/config"
)

func main() {
	cfg, err := chancecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.ExitError(err, cfg.Locale, 2)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := chancecmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		config.ExitError(err, cfg.Locale, 1)
	}
}
