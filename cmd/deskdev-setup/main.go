package main

import (
	"context"
	"io"
	"os"

	"github.com/deskdev/deskdev-setup/internal/config"
	"github.com/deskdev/deskdev-setup/internal/logging"
	"github.com/deskdev/deskdev-setup/internal/setup"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code: 0 on success, 1 when a setup step
// fails, 2 when the settings cannot be loaded.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args)
	if err != nil {
		logging.NewTextLogger(stderr, config.DefaultLogLevel).Error(ctx, "invalid configuration", "error", err)
		return 2
	}

	logger := logging.NewTextLogger(stderr, cfg.LogLevel)

	if err := setup.NewRunner(cfg, logger, stdout).Run(ctx); err != nil {
		logger.Error(ctx, "setup failed", "error", err)
		return 1
	}
	return 0
}
