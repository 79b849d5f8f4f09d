// Package logger provides a small logging interface for pingdeck components
// so packages can emit debug output without being coupled to a specific
// implementation or destination.
package logger

import (
	"log"
	"os"
)

// Logger is the interface components log through. All methods accept a
// format string and arguments, like fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// envLogger logs through the standard log package. Debug messages are only
// emitted when PINGDECK_DEBUG is set; the CLI points the standard logger at
// a file in that case so the alternate screen is not disturbed.
type envLogger struct {
	prefix string
}

// NewEnvLogger creates a logger that respects the PINGDECK_DEBUG environment
// variable. The prefix is prepended to every message (e.g. "[probe]").
func NewEnvLogger(prefix string) Logger {
	return &envLogger{prefix: prefix}
}

func (l *envLogger) Debug(format string, args ...interface{}) {
	if os.Getenv("PINGDECK_DEBUG") != "" {
		log.Printf(l.prefix+" "+format, args...)
	}
}

func (l *envLogger) Info(format string, args ...interface{}) {
	log.Printf(l.prefix+" "+format, args...)
}

func (l *envLogger) Error(format string, args ...interface{}) {
	log.Printf(l.prefix+" ERROR: "+format, args...)
}

// noopLogger discards all messages.
type noopLogger struct{}

// Noop returns a logger that discards everything. Useful in tests.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Info(format string, args ...interface{})  {}
func (l *noopLogger) Error(format string, args ...interface{}) {}
