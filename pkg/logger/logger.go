package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger is a printf-style facade over logrus.
// Consumers depend on their own narrow Logger interfaces, so this type
// never leaks logrus into the rest of the code.
type Logger struct {
	entry *logrus.Entry
	file  *os.File
}

// Options configure output format and static fields
type Options struct {
	JSON   bool
	Fields map[string]interface{}
}

// New creates a logger writing to file (stdout when file is empty) at the given level.
func New(file, level string, opts ...Options) (*Logger, error) {
	var (
		out io.Writer = os.Stdout
		f   *os.File
	)

	if file != "" {
		if dir := filepath.Dir(file); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("logger: create log dir: %w", err)
			}
		}
		var err error
		f, err = os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file: %w", err)
		}
		out = io.MultiWriter(os.Stdout, f)
	}

	l, err := newWithWriter(out, level, opts...)
	if err != nil {
		if f != nil {
			_ = f.Close()
		}
		return nil, err
	}
	l.file = f
	return l, nil
}

// NewWithWriter creates a logger writing to w. Used by tests and tools.
func NewWithWriter(w io.Writer, level string, opts ...Options) (*Logger, error) {
	return newWithWriter(w, level, opts...)
}

// Discard returns a logger that drops everything
func Discard() *Logger {
	l, _ := newWithWriter(io.Discard, "error")
	return l
}

func newWithWriter(w io.Writer, level string, opts ...Options) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	base := logrus.New()
	base.SetOutput(w)
	base.SetLevel(lvl)

	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.JSON {
		base.SetFormatter(&logrus.JSONFormatter{})
	} else {
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	}

	return &Logger{entry: base.WithFields(logrus.Fields(o.Fields))}, nil
}

// parseLevel accepts logrus level names plus "warn"
func parseLevel(level string) (logrus.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return logrus.InfoLevel, nil
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("logger: invalid level %q: %w", level, err)
	}
	return lvl, nil
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.entry.Debugf(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.entry.Infof(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.entry.Warnf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.entry.Errorf(format, v...)
}

// Fatal logs and exits with status 1
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.entry.Fatalf(format, v...)
}

// With returns a child logger with an extra field
func (l *Logger) With(key string, value interface{}) *Logger {
	return &Logger{entry: l.entry.WithField(key, value), file: l.file}
}

// Close closes the log file, if any
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
