// Package logging is the session's reporter: colored console lines for the
// user and an optional JSON file sink for the record.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/backmassage/batchren/internal/config"
	"github.com/backmassage/batchren/internal/term"
)

// Logger provides leveled, optionally colored console output with an
// optional file sink.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	verbose bool

	file *os.File
	sink *zap.Logger
}

// NewLogger writes ordinary output to out and errors to errOut, and opens
// cfg.LogFile when set. Call Close when done.
func NewLogger(cfg *config.Config, out, errOut io.Writer) (*Logger, error) {
	l := &Logger{out: out, errOut: errOut, verbose: cfg.Verbose, sink: zap.NewNop()}
	if cfg.LogFile == "" {
		return l, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	level := zapcore.InfoLevel
	if cfg.Verbose {
		level = zapcore.DebugLevel
	}
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(f), level)

	l.file = f
	l.sink = zap.New(core)
	return l, nil
}

// Close flushes and closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	_ = l.sink.Sync()
	err := l.file.Close()
	l.file = nil
	l.sink = zap.NewNop()
	return err
}

// Verbose reports whether debug output is enabled.
func (l *Logger) Verbose() bool { return l.verbose }

func (l *Logger) line(w io.Writer, style func(...string) string, level zapcore.Level, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(w, style(text)+"\n")
	if ce := l.sink.Check(level, text); ce != nil {
		ce.Write()
	}
}

func plain(s ...string) string { return strings.Join(s, "") }

// Out prints an ordinary line. It goes to the file sink at info level.
func (l *Logger) Out(format string, args ...interface{}) {
	l.line(l.out, plain, zapcore.InfoLevel, fmt.Sprintf(format, args...))
}

// Info prints an informational line in secondary style.
func (l *Logger) Info(format string, args ...interface{}) {
	l.line(l.out, term.Etc.Render, zapcore.InfoLevel, fmt.Sprintf(format, args...))
}

// Success prints a line in success style.
func (l *Logger) Success(format string, args ...interface{}) {
	l.line(l.out, term.OK.Render, zapcore.InfoLevel, fmt.Sprintf(format, args...))
}

// Warn prints a warning.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line(l.out, term.Warn.Render, zapcore.WarnLevel, fmt.Sprintf(format, args...))
}

// Error prints an error to the error stream.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line(l.errOut, term.Err.Render, zapcore.ErrorLevel, fmt.Sprintf(format, args...))
}

// Debug prints only when verbose; no-op otherwise.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.line(l.out, term.Etc.Render, zapcore.DebugLevel, "debug: "+fmt.Sprintf(format, args...))
}

// Record writes a structured entry to the file sink only.
func (l *Logger) Record(msg string, fields ...zap.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sink.Info(msg, fields...)
}
