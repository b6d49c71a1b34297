package types

// Logger defines methods for structured logging.
//
// Compatible with zap.SugaredLogger, the slog adapter in internal/logging and other
// structured loggers. All methods accept alternating key-value pairs.
//
// Connectors log at Debug for per-asset progress, Info for completed refreshes and
// Warn for ambiguous references and hook failures. Errors are returned, not logged,
// unless they are swallowed (hook errors).
type Logger interface {
	// Debug logs a message at DebugLevel.
	Debug(msg string, keysAndValues ...any)

	// Info logs a message at InfoLevel.
	Info(msg string, keysAndValues ...any)

	// Warn logs a message at WarnLevel.
	Warn(msg string, keysAndValues ...any)

	// Error logs a message at ErrorLevel.
	Error(msg string, keysAndValues ...any)
}
