// Package setup runs the provisioning steps in order and reports progress.
package setup

import (
	"context"
	"fmt"
	"io"

	"github.com/deskdev/deskdev-setup/internal/config"
	"github.com/deskdev/deskdev-setup/internal/database"
	"github.com/deskdev/deskdev-setup/internal/logging"
	"github.com/deskdev/deskdev-setup/internal/settings"
)

// Completion lines, printed in this order on success.
const (
	MsgDatabaseDone = "Database setup completed!"
	MsgConfigDone   = "Default configuration created!"
	MsgAllDone      = "Authentication setup completed!"
)

// Runner provisions the database and then the configuration file. A failed
// step stops the run; earlier steps are not undone.
type Runner struct {
	cfg    *config.Config
	logger logging.Logger
	out    io.Writer
	doc    settings.Document
}

func NewRunner(cfg *config.Config, logger logging.Logger, out io.Writer) *Runner {
	return &Runner{cfg: cfg, logger: logger, out: out, doc: settings.Default()}
}

func (r *Runner) Run(ctx context.Context) error {
	dbPath := r.cfg.DatabaseFile()
	r.logger.Info(ctx, "provisioning database", "path", dbPath)
	if err := database.Initialize(ctx, dbPath, r.logger.With("step", "database")); err != nil {
		return fmt.Errorf("database setup: %w", err)
	}
	fmt.Fprintln(r.out, MsgDatabaseDone)

	cfgPath := r.cfg.ConfigFile()
	r.logger.Info(ctx, "writing default configuration", "path", cfgPath)
	if err := settings.Write(cfgPath, r.doc); err != nil {
		return fmt.Errorf("config setup: %w", err)
	}
	fmt.Fprintln(r.out, MsgConfigDone)

	fmt.Fprintln(r.out, MsgAllDone)
	return nil
}
