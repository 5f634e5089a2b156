// ABOUTME: Structured logging with verbosity control and level-based output
// ABOUTME: Logs to a file while the TUI owns the terminal

package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

var (
	verbose = false
	output  io.Writer = os.Stderr
	logFile *os.File
)

// SetVerbose enables or disables verbose (DEBUG) logging
func SetVerbose(v bool) {
	verbose = v
}

// IsVerbose returns current verbose setting
func IsVerbose() bool {
	return verbose
}

// SetOutput sets the output destination for logs
func SetOutput(w io.Writer) {
	if w == nil {
		output = os.Stderr
		log.SetOutput(os.Stderr)
	} else {
		output = w
		log.SetOutput(w)
	}
}

// SetupFile redirects logging to the given file, creating parent directories
// as needed. The terminal belongs to the TUI, so stderr is only a fallback.
func SetupFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f
	SetOutput(f)
	return nil
}

// Close closes the log file if one was opened with SetupFile.
func Close() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
		SetOutput(nil)
	}
}

// Debug logs at DEBUG level (only shown when verbose)
func Debug(format string, args ...interface{}) {
	if verbose {
		log.Printf("[DEBUG] %s", fmt.Sprintf(format, args...))
	}
}

// Info logs at INFO level (always shown)
func Info(format string, args ...interface{}) {
	log.Printf("[INFO] %s", fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (always shown)
func Warn(format string, args ...interface{}) {
	log.Printf("[WARN] %s", fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (always shown)
func Error(format string, args ...interface{}) {
	log.Printf("[ERROR] %s", fmt.Sprintf(format, args...))
}
