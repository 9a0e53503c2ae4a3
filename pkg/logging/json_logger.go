package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// jsonMarshal is a variable for dependency injection in tests.
var jsonMarshal = json.Marshal

// LogEntry is a single line of a JSON Lines journal.
type LogEntry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// JSONLoggerConfig configures a JSONLogger.
type JSONLoggerConfig struct {
	// OutputPath is the journal file. Entries are appended;
	// missing parent directories are created. Empty means
	// stdout.
	OutputPath string
	Level      LogLevel
	Fields     map[string]any
}

// JSONLogger writes one JSON object per line. Loggers derived
// with WithFields share the writer and its lock.
type JSONLogger struct {
	state  *journal
	level  LogLevel
	fields map[string]any
}

// Compile-time assertion: *JSONLogger implements Logger.
var _ Logger = (*JSONLogger)(nil)

type journal struct {
	mu     sync.Mutex
	output io.Writer
	closed bool
}

// NewJSONLogger opens the journal described by config.
func NewJSONLogger(config JSONLoggerConfig) (*JSONLogger, error) {
	var output io.Writer = os.Stdout
	if config.OutputPath != "" {
		dir := filepath.Dir(config.OutputPath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf(
				"failed to create log directory: %w", err,
			)
		}
		file, err := os.OpenFile(
			config.OutputPath,
			os.O_CREATE|os.O_WRONLY|os.O_APPEND,
			0o644,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to open log file: %w", err,
			)
		}
		output = file
	}

	return NewJSONLoggerTo(output, config.Level, config.Fields), nil
}

// NewJSONLoggerTo writes the journal to w.
func NewJSONLoggerTo(w io.Writer, level LogLevel, fields map[string]any) *JSONLogger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return &JSONLogger{
		state:  &journal{output: w},
		level:  level,
		fields: copied,
	}
}

func (l *JSONLogger) log(level LogLevel, msg string, fields ...Field) {
	if level < l.level {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().Format(time.RFC3339Nano),
		Level:     level.String(),
		Message:   msg,
		Fields:    make(map[string]any, len(l.fields)+len(fields)),
	}
	for k, v := range l.fields {
		entry.Fields[k] = v
	}
	for _, f := range fields {
		entry.Fields[f.Key] = f.Value
	}

	data, err := jsonMarshal(entry)
	if err != nil {
		return
	}

	l.state.mu.Lock()
	defer l.state.mu.Unlock()
	if l.state.closed {
		return
	}
	fmt.Fprintln(l.state.output, string(data))
}

// Info logs an informational message.
func (l *JSONLogger) Info(msg string, fields ...Field) {
	l.log(LevelInfo, msg, fields...)
}

// Warn logs a warning message.
func (l *JSONLogger) Warn(msg string, fields ...Field) {
	l.log(LevelWarn, msg, fields...)
}

// Error logs an error message.
func (l *JSONLogger) Error(msg string, fields ...Field) {
	l.log(LevelError, msg, fields...)
}

// Debug logs a debug message.
func (l *JSONLogger) Debug(msg string, fields ...Field) {
	l.log(LevelDebug, msg, fields...)
}

// WithFields returns a logger that adds fields to every entry.
func (l *JSONLogger) WithFields(fields ...Field) Logger {
	merged := make(map[string]any, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for _, f := range fields {
		merged[f.Key] = f.Value
	}
	return &JSONLogger{state: l.state, level: l.level, fields: merged}
}

// Close closes the journal file. Stdout is left open. Entries
// logged after Close are dropped.
func (l *JSONLogger) Close() error {
	l.state.mu.Lock()
	defer l.state.mu.Unlock()

	if l.state.closed {
		return nil
	}
	l.state.closed = true

	if closer, ok := l.state.output.(io.Closer); ok &&
		l.state.output != os.Stdout {
		return closer.Close()
	}
	return nil
}

// ParseLevel maps a level name, as written in configuration
// files, to a LogLevel.
func ParseLevel(name string) (LogLevel, error) {
	switch name {
	case "debug", "DEBUG":
		return LevelDebug, nil
	case "", "info", "INFO":
		return LevelInfo, nil
	case "warn", "WARN":
		return LevelWarn, nil
	case "error", "ERROR":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}
