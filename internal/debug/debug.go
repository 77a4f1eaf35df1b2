// Package debug provides an injectable debug logger for reckon.
//
// The core library never reads environment variables or other process
// globals itself: a Logger is constructed once by the CLI driver and
// passed down explicitly to every component that wants to emit debug
// output. This keeps internal/stats, internal/parser and friends free of
// hidden global state while preserving the component-tagged log records
// the rest of this stack uses.
package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar is the environment variable the CLI driver (and only the CLI
// driver) consults to decide whether debug logging is enabled.
const EnvVar = "RECKON_DEBUG"

// Logger writes component-tagged debug records to a configured writer.
// A nil *Logger, or one with enabled false, is a safe no-op: every method
// is nil-receiver-safe so callers can pass a *Logger around unconditionally
// instead of threading an extra bool everywhere.
type Logger struct {
	mu      sync.Mutex
	enabled bool
	output  io.Writer
}

// New returns a Logger that writes to w when enabled is true. A nil w
// with enabled true silently discards output rather than panicking.
func New(enabled bool, w io.Writer) *Logger {
	return &Logger{enabled: enabled, output: w}
}

// FromEnv constructs a Logger the way cmd/scount does: enabled if
// RECKON_DEBUG is "1", disabled if it is unset or "0", and disabled with
// a warning to stderr for any other value. This helper lives in the
// debug package for convenience but is only ever called from cmd/scount,
// never from internal/stats or its peers.
func FromEnv() *Logger {
	switch v := os.Getenv(EnvVar); v {
	case "1":
		return New(true, os.Stderr)
	case "", "0":
		return New(false, os.Stderr)
	default:
		fmt.Fprintf(os.Stderr, "[WARN] Invalid value for environment variable %q. "+
			"Expected \"0\" or \"1\" but found %q. Disabling debug logging.\n", EnvVar, v)
		return New(false, os.Stderr)
	}
}

// Disabled returns a Logger that never writes anything.
func Disabled() *Logger {
	return New(false, nil)
}

// InitLogFile points the logger at a fresh timestamped file under
// os.TempDir()/reckon-debug-logs and returns its path.
func (l *Logger) InitLogFile() (string, error) {
	if l == nil {
		return "", nil
	}
	logDir := filepath.Join(os.TempDir(), "reckon-debug-logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create debug log directory: %w", err)
	}
	timestamp := time.Now().Format("2006-01-02T150405")
	logPath := filepath.Join(logDir, fmt.Sprintf("debug-%s.log", timestamp))
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create debug log file: %w", err)
	}
	l.mu.Lock()
	l.output = file
	l.enabled = true
	l.mu.Unlock()
	return logPath, nil
}

func (l *Logger) isEnabled() bool {
	return l != nil && l.enabled
}

func (l *Logger) writer() io.Writer {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.output
}

// Log writes a single component-tagged debug record, e.g.
// "[DEBUG:stats] counting file %s".
func (l *Logger) Log(component, format string, args ...interface{}) {
	if !l.isEnabled() {
		return
	}
	w := l.writer()
	if w == nil {
		return
	}
	fmt.Fprintf(w, "[DEBUG:%s] "+format+"\n", append([]interface{}{component}, args...)...)
}

// Node logs the kind and starting line of a grammar node under
// evaluation.
func (l *Logger) Node(kind string, line uint64) {
	l.Log("parser", "node %s at line %d", kind, line)
}
