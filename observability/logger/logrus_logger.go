// Package logger implements the observability Logger contract on top of
// logrus. All component loggers of a provider share one root *logrus.Logger,
// so reconfiguring the root changes every cached component logger at once.
package logger

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sudzxd/azure-functions-test/observability/types"
)

// NameField holds the dotted logger name in every entry.
const NameField = "logger"

// Caller fields attached to entries when verbose text output is enabled.
const (
	funcField = "func"
	lineField = "line"
)

// ParseLevel converts a level name to a logrus level.
// Unrecognized levels default to WarnLevel.
//
// Valid levels:
//   - "debug"
//   - "info"
//   - "warn", "warning"
//   - "error"
//   - "critical", "fatal"
//   - "off", "disabled", "none"
//
// Returns:
//   - The corresponding logrus level
//   - false when the level silences all output
func ParseLevel(level string) (logrus.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel, true
	case "info":
		return logrus.InfoLevel, true
	case "warn", "warning":
		return logrus.WarnLevel, true
	case "error":
		return logrus.ErrorLevel, true
	case "critical", "fatal":
		return logrus.FatalLevel, true
	case "off", "disabled", "none":
		return logrus.PanicLevel, false
	default:
		return logrus.WarnLevel, true
	}
}

// Options configure a root logger.
type Options struct {
	Level   string
	Format  string
	Verbose bool
	Output  io.Writer
}

// NewRoot creates a root logrus logger configured with opts.
func NewRoot(opts Options) *logrus.Logger {
	root := logrus.New()
	Apply(root, opts)
	return root
}

// Apply reconfigures an existing root logger in place.
func Apply(root *logrus.Logger, opts Options) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	level, enabled := ParseLevel(opts.Level)
	if !enabled {
		out = io.Discard
	}

	var formatter logrus.Formatter
	switch strings.ToLower(opts.Format) {
	case "json":
		formatter = &logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
			FieldMap:        logrus.FieldMap{logrus.FieldKeyMsg: "message"},
		}
	default:
		formatter = &TextFormatter{Verbose: opts.Verbose}
	}

	root.SetOutput(out)
	root.SetLevel(level)
	root.SetFormatter(formatter)
}

// LogrusLogger implements types.Logger with a logrus entry bound to a
// component name.
type LogrusLogger struct {
	entry *logrus.Entry
}

// New creates a component logger on root.
//
// Parameters:
//   - root: The shared root logger
//   - name: Dotted logger name, e.g. "azure_functions_test.mocks"
//   - fields: Fields to include in every entry
//
// Returns:
//   - A LogrusLogger writing through root
func New(root *logrus.Logger, name string, fields types.Fields) *LogrusLogger {
	data := make(logrus.Fields, len(fields)+1)
	for k, v := range fields {
		data[k] = v
	}
	data[NameField] = name

	return &LogrusLogger{entry: root.WithFields(data)}
}

// Info logs an informational message at INFO level.
func (l *LogrusLogger) Info(msg string, fields types.Fields) {
	l.log(logrus.InfoLevel, msg, nil, fields)
}

// Error logs at ERROR level. The error message and its dynamic type are
// added as fields.
func (l *LogrusLogger) Error(msg string, err error, fields types.Fields) {
	l.log(logrus.ErrorLevel, msg, err, fields)
}

// Warn logs a warning message at WARN level.
func (l *LogrusLogger) Warn(msg string, fields types.Fields) {
	l.log(logrus.WarnLevel, msg, nil, fields)
}

// Debug logs a debug message at DEBUG level.
func (l *LogrusLogger) Debug(msg string, fields types.Fields) {
	l.log(logrus.DebugLevel, msg, nil, fields)
}

// WithFields returns a new logger with additional persistent fields.
func (l *LogrusLogger) WithFields(fields types.Fields) types.Logger {
	return &LogrusLogger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

// Name returns the dotted logger name.
func (l *LogrusLogger) Name() string {
	name, _ := l.entry.Data[NameField].(string)
	return name
}

func (l *LogrusLogger) log(level logrus.Level, msg string, err error, fields types.Fields) {
	if !l.entry.Logger.IsLevelEnabled(level) {
		return
	}

	entry := l.entry
	if len(fields) > 0 {
		entry = entry.WithFields(logrus.Fields(fields))
	}
	if err != nil {
		entry = entry.WithFields(logrus.Fields{
			logrus.ErrorKey: err.Error(),
			"error_type":    fmt.Sprintf("%T", err),
		})
	}
	if f, ok := entry.Logger.Formatter.(*TextFormatter); ok && f.Verbose {
		// Skip log and the exported method that called it.
		if pc, _, line, ok := runtime.Caller(2); ok {
			entry = entry.WithFields(logrus.Fields{
				funcField: shortFuncName(runtime.FuncForPC(pc)),
				lineField: line,
			})
		}
	}

	entry.Log(level, msg)
}

func shortFuncName(fn *runtime.Func) string {
	if fn == nil {
		return "unknown"
	}
	name := fn.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
