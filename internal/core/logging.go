package core

import (
	"log/slog"
	"time"

	"github.com/comalice/layoutfocus/internal/primitives"
)

// LoggingMiddleware logs every dispatched action and how long the rest of the
// pipeline took to handle it.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(api API) func(next DispatchFunc) DispatchFunc {
		return func(next DispatchFunc) DispatchFunc {
			return func(action primitives.Action) error {
				start := time.Now()
				before := CurrentLayoutFocus(api.State())
				err := next(action)
				attrs := []any{
					slog.String("action", action.String()),
					slog.String("before", before.String()),
					slog.String("after", CurrentLayoutFocus(api.State()).String()),
					slog.Duration("took", time.Since(start)),
				}
				if err != nil {
					logger.Warn("dispatch failed", append(attrs, slog.Any("err", err))...)
					return err
				}
				logger.Debug("dispatch", attrs...)
				return nil
			}
		}
	}
}
