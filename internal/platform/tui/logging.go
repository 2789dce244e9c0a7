package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// NewLogger creates a timestamped logger with the given prefix.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// OpenLogFile returns a logger writing to path. An empty path gives a
// logger that discards everything, since the terminal is owned by the
// alt-screen while a program runs.
func OpenLogFile(path, prefix string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return NewLogger(io.Discard, prefix), io.NopCloser(nil), nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("tui: cannot create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("tui: cannot open log file: %w", err)
	}
	logger := NewLogger(f, prefix)
	logger.SetLevel(log.DebugLevel)
	return logger, f, nil
}
