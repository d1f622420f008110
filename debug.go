package casetrail

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// DebugLogger provides opt-in debug logging for session operations: loads,
// filter changes, navigation, commits, and exports.
type DebugLogger struct {
	mu      sync.Mutex
	enabled bool
	writer  io.Writer
}

// NewDebugLogger creates a new debug logger.
// If logPath is empty, logs to stderr.
func NewDebugLogger(enabled bool, logPath string) (*DebugLogger, error) {
	var writer io.Writer = os.Stderr

	if enabled && logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("open debug log: %w", err)
		}
		writer = f
	}

	return &DebugLogger{
		enabled: enabled,
		writer:  writer,
	}, nil
}

// Close closes the debug logger if it's writing to a file.
func (l *DebugLogger) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if closer, ok := l.writer.(io.Closer); ok && l.writer != os.Stderr {
		return closer.Close()
	}
	return nil
}

// Log writes a debug message if logging is enabled.
func (l *DebugLogger) Log(format string, args ...any) {
	if l == nil || !l.enabled {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02T15:04:05.000Z07:00")
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(l.writer, "[%s] [CASETRAIL DEBUG] %s\n", timestamp, msg)
}

// LogLoad logs a completed load.
func (l *DebugLogger) LogLoad(session string, records int) {
	l.Log("LOAD [%s]: %d records", session, records)
}

// LogFilter logs a filter change and the resulting view size.
func (l *DebugLogger) LogFilter(session string, p Predicate, viewLen int) {
	l.Log("FILTER [%s]: category=%q status=%q → %d visible", session, p.Category, p.Status, viewLen)
}

// LogNav logs a navigation step.
func (l *DebugLogger) LogNav(session string, offset, viewLen int) {
	l.Log("NAV [%s]: offset %d of %d", session, offset, viewLen)
}

// LogCommit logs a commit result.
func (l *DebugLogger) LogCommit(session string, result *CommitResult) {
	l.Log("COMMIT [%s]: record=%q position=%d applied=%t fields=%d",
		session, result.RecordID, result.Position, result.Applied, len(result.Changed))
}

// LogExport logs a completed export.
func (l *DebugLogger) LogExport(session string, records int) {
	l.Log("EXPORT [%s]: %d records", session, records)
}

// LogError logs an error with its operation.
func (l *DebugLogger) LogError(operation string, err error) {
	l.Log("ERROR [%s]: %v", operation, err)
}
