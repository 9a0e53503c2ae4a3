// Package logging records assertion outcomes. A chain reports
// every evaluated assertion to a Logger: passes at debug level,
// failures at error level with the failing test's name. Outcomes
// can go to the console, to zap, to a JSON Lines journal, or to
// several of these at once.
package logging

// Logger receives assertion outcomes. Implementations must be
// safe for concurrent use since parallel tests share one Config.
type Logger interface {
	// Info records an event about the run itself, such as a
	// journal being opened.
	Info(msg string, fields ...Field)

	// Warn records an event that did not fail a test.
	Warn(msg string, fields ...Field)

	// Error records a failed assertion.
	Error(msg string, fields ...Field)

	// Debug records a passed assertion.
	Debug(msg string, fields ...Field)

	// WithFields returns a Logger that attaches fields to every
	// outcome it records, typically the test name.
	WithFields(fields ...Field) Logger

	// Close flushes buffered outcomes and releases resources.
	Close() error
}

// Field is one key-value attribute of a recorded outcome.
type Field struct {
	Key   string
	Value any
}

// LogLevel is the severity of a recorded outcome.
type LogLevel int

const (
	// LevelDebug includes passed assertions.
	LevelDebug LogLevel = iota
	// LevelInfo is the default level.
	LevelInfo
	LevelWarn
	// LevelError keeps only failed assertions.
	LevelError
)

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
