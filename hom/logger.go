package hom

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Logger is the injectable sink for the warning-grade conditions the
// parallel driver surfaces (branch-limit warnings, per-stage frontier
// sizes). There is no global logger; every caller that wants
// diagnostics injects one via WithLogger.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// nullLogger discards everything; it is the default when no Logger is
// injected, so callers never pay for formatting they didn't ask for.
type nullLogger struct{}

func (nullLogger) Debugf(string, ...interface{}) {}
func (nullLogger) Infof(string, ...interface{})  {}
func (nullLogger) Warnf(string, ...interface{})  {}
func (nullLogger) Errorf(string, ...interface{}) {}

// WriterLogger is a minimal Logger writing plain lines to an io.Writer,
// guarded by a mutex so it is safe to share across SearchParallel's
// worker goroutines.
type WriterLogger struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriterLogger returns a Logger writing to w. A nil w defaults to
// os.Stderr.
func NewWriterLogger(w io.Writer) *WriterLogger {
	if w == nil {
		w = os.Stderr
	}
	return &WriterLogger{out: w}
}

func (l *WriterLogger) line(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "[%s] %s\n", level, fmt.Sprintf(format, args...))
}

func (l *WriterLogger) Debugf(format string, args ...interface{}) { l.line("DEBUG", format, args...) }
func (l *WriterLogger) Infof(format string, args ...interface{})  { l.line("INFO", format, args...) }
func (l *WriterLogger) Warnf(format string, args ...interface{})  { l.line("WARN", format, args...) }
func (l *WriterLogger) Errorf(format string, args ...interface{}) { l.line("ERROR", format, args...) }
