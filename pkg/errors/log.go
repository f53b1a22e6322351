package errors

import (
	"log/slog"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

// SetLogger replaces the logger used by LogHandler. Pass nil to fall back
// to slog.Default().
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

// Logger returns the logger used by LogHandler.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// LogHandler is an ErrorHandler that writes structured log records.
type LogHandler struct {
	// Verbose includes stack traces.
	Verbose bool
}

// HandleError logs an OmniError at error level.
func (h *LogHandler) HandleError(err *OmniError) {
	if err == nil {
		return
	}
	Logger().Error("omnigui error",
		slog.String("op", err.Op),
		slog.String("kind", err.Kind.String()),
		slog.Any("err", err.Err),
	)
}

// HandleBoundaryError logs a recovered panic at error level.
func (h *LogHandler) HandleBoundaryError(err *BoundaryError) {
	if err == nil {
		return
	}
	attrs := []any{
		slog.String("phase", err.Phase),
		slog.Any("recovered", err.Recovered),
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, slog.String("stack", err.StackTrace))
	}
	Logger().Error("omnigui panic", attrs...)
}
