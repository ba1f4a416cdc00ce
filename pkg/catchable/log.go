package catchable

import (
	"context"
	"errors"
	"log/slog"
)

// Logged decorates h so every error it is asked about is recorded on logger.
// Skipped and stopping elements are logged at warn level, propagated ones at debug level.
// A nil h propagates everything; a nil logger means slog.Default().
func Logged(logger *slog.Logger, h Handler) Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(err error) Action {
		action := Propagate
		if h != nil {
			action = h(err)
		}

		level := slog.LevelDebug
		if action != Propagate {
			level = slog.LevelWarn
		}
		attrs := []slog.Attr{
			slog.String("action", action.String()),
			slog.Any("error", err),
		}
		var pe *PanicError
		if errors.As(err, &pe) {
			attrs = append(attrs, slog.Any("panic", pe.Value))
		}
		logger.LogAttrs(context.Background(), level, "element failed", attrs...)
		return action
	}
}
