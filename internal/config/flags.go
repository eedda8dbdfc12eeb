package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/deskdev/deskdev-setup/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-d string          data directory
//	-db string         database file
//	-out string        configuration file
//	-log-level string  log level
//
// Only the flags above are considered (see flagx.FilterArgs), so -c/-config
// and anything unknown pass through untouched.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("deskdev-setup", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory holding users.db and config.json")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "database file")
	fs.StringVar(&cfg.ConfigPath, "out", cfg.ConfigPath, "configuration file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")

	if err := fs.Parse(flagx.FilterArgs(args, fs)); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
