// Package logging wraps charmbracelet/log as a CLI-facing pretty logger;
// cmd/forge builds one into its AppContext, while the command output
// itself is written with fmt. The engine's own structured trace uses
// zerolog directly (internal/strategy); this package covers the
// adjacent concern of a terminal-facing human logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	cblog "github.com/charmbracelet/log"
)

// Options configures a CLI logger.
type Options struct {
	Writer io.Writer
	Level  string
	JSON   bool
}

// Logger prints human- or machine-readable lines to the terminal.
type Logger struct {
	base *cblog.Logger
}

// New constructs a Logger from Options, defaulting to stderr at info
// level with human-readable output.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := cblog.InfoLevel
	if opts.Level != "" {
		parsed, err := cblog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("logging: parse level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	cblogOpts := cblog.Options{
		Level:           level,
		ReportTimestamp: true,
	}
	if opts.JSON {
		cblogOpts.Formatter = cblog.JSONFormatter
	}

	return &Logger{base: cblog.NewWithOptions(writer, cblogOpts)}, nil
}

// With returns a derived Logger that always includes the given key/value
// pairs.
func (l *Logger) With(keyvals ...interface{}) *Logger {
	return &Logger{base: l.base.With(keyvals...)}
}

// Info prints an informational line.
func (l *Logger) Info(msg string, keyvals ...interface{}) { l.base.Info(msg, keyvals...) }

// Warn prints a warning line.
func (l *Logger) Warn(msg string, keyvals ...interface{}) { l.base.Warn(msg, keyvals...) }

// Error prints an error line.
func (l *Logger) Error(msg string, keyvals ...interface{}) { l.base.Error(msg, keyvals...) }

// Debug prints a debug line, shown only at debug level or below.
func (l *Logger) Debug(msg string, keyvals ...interface{}) { l.base.Debug(msg, keyvals...) }
