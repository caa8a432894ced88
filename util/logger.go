// Package util provides low-level helpers shared by all other packages.
package util

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

// LogLevel controls output verbosity.
type LogLevel int

const (
	LogQuiet   LogLevel = 0
	LogNormal  LogLevel = 1
	LogVerbose LogLevel = 2
	LogDebug   LogLevel = 3
)

// TimestampFormat is the layout prepended to every line when
// timestamps are enabled.
const TimestampFormat = "2006-01-02 15:04:05"

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiGreen  = "\x1b[32m"
	ansiGray   = "\x1b[90m"
)

// sink is one destination for log lines.  Terminal sinks get coloured
// level tags; files and buffers get plain text.
type sink struct {
	w     io.Writer
	color bool
}

// Logger writes levelled, timestamped messages to one or more sinks.
// It is constructed once at startup and passed to every component.
type Logger struct {
	level      LogLevel
	sinks      []sink
	mu         sync.Mutex
	timestamps bool
	now        func() time.Time
}

// NewLogger returns a Logger writing to stdout that prints messages at
// or below the given verbosity (0 = quiet, 1 = normal, 2 = verbose,
// 3 = debug).
func NewLogger(verbosity int) *Logger {
	return &Logger{
		level:      LogLevel(verbosity),
		sinks:      []sink{newSink(os.Stdout)},
		timestamps: true,
		now:        time.Now,
	}
}

func newSink(w io.Writer) sink {
	return sink{w: w, color: isTerminal(w)}
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// SetTimestamps enables or disables timestamp prefixes.
func (l *Logger) SetTimestamps(on bool) { l.timestamps = on }

// SetOutput replaces every sink with w.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sinks = []sink{newSink(w)}
}

// AddOutput appends w as an additional sink.
func (l *Logger) AddOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sinks = append(l.sinks, newSink(w))
}

// OpenFile opens path in append mode and adds it as a sink.  The
// caller closes the returned file when the process is done logging.
func (l *Logger) OpenFile(path string) (io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	l.AddOutput(f)
	return f, nil
}

// Info prints when verbosity ≥ 1.  Prefixed with [INF].
func (l *Logger) Info(format string, args ...interface{}) {
	if l.level >= LogNormal {
		l.write("INF", format, args...)
	}
}

// Warn prints when verbosity ≥ 1.  Prefixed with [WRN].
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.level >= LogNormal {
		l.write("WRN", format, args...)
	}
}

// Verbose prints when verbosity ≥ 2.  Prefixed with [VRB].
func (l *Logger) Verbose(format string, args ...interface{}) {
	if l.level >= LogVerbose {
		l.write("VRB", format, args...)
	}
}

// Debug prints when verbosity ≥ 3.  Prefixed with [DBG].
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.level >= LogDebug {
		l.write("DBG", format, args...)
	}
}

// Error always prints regardless of verbosity.  Prefixed with [ERR].
func (l *Logger) Error(format string, args ...interface{}) {
	l.write("ERR", format, args...)
}

func (l *Logger) write(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	var ts string
	if l.timestamps {
		ts = l.now().Format(TimestampFormat) + " "
	}

	for _, s := range l.sinks {
		tag := "[" + level + "]"
		if s.color {
			tag = levelColor(level) + tag + ansiReset
		}
		fmt.Fprintf(s.w, "%s%s %s\n", ts, tag, msg) //nolint:errcheck
	}
}

func levelColor(level string) string {
	switch level {
	case "ERR":
		return ansiRed
	case "WRN":
		return ansiYellow
	case "INF":
		return ansiGreen
	default:
		return ansiGray
	}
}
