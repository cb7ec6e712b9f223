// Package logger provides the leveled, colorized logger shared by the
// scaffolding pipeline. It is an explicit instance handed to components
// rather than process-global state, so tests can capture output and the
// debug level is decided once at startup.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Logger writes leveled, colorized log lines to a single destination.
type Logger struct {
	out   io.Writer
	debug bool

	info *color.Color
	warn *color.Color
	err  *color.Color
	dbg  *color.Color
}

// New returns a Logger writing to stderr. Debug lines are emitted only
// when enableDebug is true.
func New(enableDebug bool) *Logger {
	return NewWithWriter(os.Stderr, enableDebug)
}

// NewWithWriter returns a Logger writing to w. Used by tests to capture output.
func NewWithWriter(w io.Writer, enableDebug bool) *Logger {
	return &Logger{
		out:   w,
		debug: enableDebug,
		info:  color.New(color.FgGreen),
		warn:  color.New(color.FgHiMagenta),
		err:   color.New(color.FgRed),
		dbg:   color.New(color.FgCyan),
	}
}

// Infof logs an informational message.
func (l *Logger) Infof(format string, a ...any) {
	l.line(l.info, "INFO", format, a...)
}

// Warnf logs a recoverable problem that did not stop the run.
func (l *Logger) Warnf(format string, a ...any) {
	l.line(l.warn, "WARN", format, a...)
}

// Errorf logs a failure.
func (l *Logger) Errorf(format string, a ...any) {
	l.line(l.err, "ERROR", format, a...)
}

// Debugf logs a message only when debug logging is enabled.
func (l *Logger) Debugf(format string, a ...any) {
	if !l.debug {
		return
	}
	l.line(l.dbg, "DEBUG", format, a...)
}

func (l *Logger) line(c *color.Color, level, format string, a ...any) {
	fmt.Fprintf(l.out, "%s %s\n", c.Sprint(level), fmt.Sprintf(format, a...))
}
