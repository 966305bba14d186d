// Package logger provides a small prefixed, colored logger used by
// every component of the service. Each component gets its own prefix
// and color so interleaved output stays readable.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"
)

// Logger writes leveled log lines with a colored component prefix.
type Logger struct {
	prefix string
	color  string
	out    *log.Logger
}

const colorReset = "\033[0m"

// New creates a Logger that writes to out with the given component
// prefix and ANSI color code.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix must not be empty")
	}
	if out == nil {
		return nil, errors.New("logger output must not be nil")
	}
	return &Logger{
		prefix: prefix,
		color:  color,
		out:    log.New(out, "", log.LstdFlags),
	}, nil
}

func (l *Logger) printf(level, msg string) {
	l.out.Printf("%s[%s]%s [%s] %s", l.color, l.prefix, colorReset, level, msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.printf("INFO", msg)
}

// Warning logs a warning message.
func (l *Logger) Warning(msg string) {
	l.printf("WARNING", msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.printf("ERROR", msg)
}

// Infof logs a formatted informational message.
func (l *Logger) Infof(format string, args ...any) {
	l.Info(fmt.Sprintf(format, args...))
}

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, args ...any) {
	l.Error(fmt.Sprintf(format, args...))
}
