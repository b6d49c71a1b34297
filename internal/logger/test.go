package logger

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/arloliu/dataconn/types"
)

// TestLogger implements types.Logger using testing.T for output.
//
// Messages are also recorded so tests can assert on what a component logged.
type TestLogger struct {
	t tb

	mu      sync.Mutex
	entries []string
}

// tb is the subset of testing.TB used by TestLogger.
type tb interface {
	Helper()
	Logf(format string, args ...any)
}

// Compile-time assertion that TestLogger implements Logger.
var _ types.Logger = (*TestLogger)(nil)

// NewTest creates a new test logger that writes to testing.T.
//
// Parameters:
//   - t: The testing.T instance to write logs to
//
// Returns:
//   - *TestLogger: A new logger instance that uses t.Logf()
//
// Example:
//
//	func TestRefresh(t *testing.T) {
//	    log := logger.NewTest(t)
//	    conn, _ := dataconn.NewConfiguredAssetConnector(cfg, src, dataconn.WithLogger(log))
//	    // ...
//	    require.True(t, log.Contains("WARN: ambiguous data references"))
//	}
func NewTest(t *testing.T) *TestLogger {
	return &TestLogger{t: t}
}

// Debug logs a debug-level message with optional key-value pairs.
func (l *TestLogger) Debug(msg string, keysAndValues ...any) {
	l.log("DEBUG", msg, keysAndValues)
}

// Info logs an info-level message with optional key-value pairs.
func (l *TestLogger) Info(msg string, keysAndValues ...any) {
	l.log("INFO", msg, keysAndValues)
}

// Warn logs a warning-level message with optional key-value pairs.
func (l *TestLogger) Warn(msg string, keysAndValues ...any) {
	l.log("WARN", msg, keysAndValues)
}

// Error logs an error-level message with optional key-value pairs.
func (l *TestLogger) Error(msg string, keysAndValues ...any) {
	l.log("ERROR", msg, keysAndValues)
}

// Entries returns every recorded line in logging order.
func (l *TestLogger) Entries() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.entries...)
}

// Contains reports whether any recorded line contains substr.
func (l *TestLogger) Contains(substr string) bool {
	for _, e := range l.Entries() {
		if strings.Contains(e, substr) {
			return true
		}
	}

	return false
}

func (l *TestLogger) log(level, msg string, keysAndValues []any) {
	line := fmt.Sprintf("%s: %s %s", level, msg, formatKeyValues(keysAndValues))

	l.mu.Lock()
	l.entries = append(l.entries, line)
	l.mu.Unlock()

	l.t.Helper()
	l.t.Logf("%s", line)
}

// formatKeyValues formats key-value pairs for logging.
func formatKeyValues(keysAndValues []any) string {
	if len(keysAndValues) == 0 {
		return ""
	}

	var sb strings.Builder
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			fmt.Fprintf(&sb, "%v=%v ", keysAndValues[i], keysAndValues[i+1])
		} else {
			fmt.Fprintf(&sb, "%v=<missing> ", keysAndValues[i])
		}
	}

	return sb.String()
}
