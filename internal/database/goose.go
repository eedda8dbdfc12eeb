package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/deskdev/deskdev-setup/internal/logging"
	"github.com/pressly/goose/v3"
)

// GooseLogger sends goose output to a logging.Logger instead of stdout.
// Progress lines are logged at debug level, so they only show up when the
// handler is configured for it.
type GooseLogger struct {
	ctx    context.Context
	logger logging.Logger
}

var _ goose.Logger = (*GooseLogger)(nil)

func NewGooseLogger(ctx context.Context, logger logging.Logger) *GooseLogger {
	return &GooseLogger{ctx: ctx, logger: logger.With("component", "goose")}
}

func (l *GooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Debug(l.ctx, line(format, v...))
}

// Fatalf logs at error level and returns. Goose reports the failure to the
// caller as an error as well, and that error decides the exit code.
func (l *GooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(l.ctx, line(format, v...))
}

func line(format string, v ...interface{}) string {
	return strings.TrimRight(fmt.Sprintf(format, v...), "\n")
}
