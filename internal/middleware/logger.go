package middleware

import (
	"errors"
	"flag"
	"log/slog"
	"time"

	"github.com/vaultpass/passgen-go/internal/handler"
)

// Logger logs each command run at debug level with its duration, and
// failures other than a help request at error level.
func Logger(name string, next handler.CommandFunc) handler.CommandFunc {
	return func(args []string) error {
		start := time.Now()
		err := next(args)
		elapsed := time.Since(start)

		switch {
		case err == nil, errors.Is(err, flag.ErrHelp):
			slog.Debug("command finished", "command", name, "duration", elapsed)
		case errors.Is(err, handler.ErrUsage):
			slog.Debug("command rejected", "command", name, "duration", elapsed, "error", err)
		default:
			slog.Error("command failed", "command", name, "duration", elapsed, "error", err)
		}
		return err
	}
}
