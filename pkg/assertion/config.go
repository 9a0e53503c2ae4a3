package assertion

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"digital.vasic.fluent/pkg/logging"
)

// Config controls how failures are rendered and where
// evaluation events are logged.
type Config struct {
	// Color wraps the failure header and labels in ANSI
	// color codes.
	Color bool `json:"color" yaml:"color"`

	// Diff appends a structural diff to equality failures.
	Diff bool `json:"diff" yaml:"diff"`

	// MaxValueLength truncates each rendered value to the
	// given number of runes. Zero means unlimited.
	MaxValueLength int `json:"max_value_length" yaml:"max_value_length"`

	// LogFile, when set in a loaded configuration, opens a JSON
	// Lines journal of evaluation events as the Logger. A
	// relative path is resolved against the configuration file.
	LogFile string `json:"log_file,omitempty" yaml:"log_file,omitempty"`

	// LogLevel is the minimum journal level: debug, info, warn
	// or error.
	LogLevel string `json:"log_level,omitempty" yaml:"log_level,omitempty"`

	// Logger receives one entry per evaluated assertion.
	Logger logging.Logger `json:"-" yaml:"-"`
}

// DefaultConfig returns the configuration used by chains that
// were not configured explicitly.
func DefaultConfig() Config {
	return Config{
		Diff:   true,
		Logger: logging.NullLogger{},
	}
}

// NewConfig applies opts on top of DefaultConfig.
func NewConfig(opts ...Option) Config {
	return DefaultConfig().With(opts...)
}

// With returns a copy of c with opts applied.
func (c Config) With(opts ...Option) Config {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c Config) logger() logging.Logger {
	if c.Logger == nil {
		return logging.NullLogger{}
	}
	return c.Logger
}

// Option configures a Config.
type Option func(*Config)

// WithColor enables or disables ANSI colors in failures.
func WithColor(enabled bool) Option {
	return func(c *Config) {
		c.Color = enabled
	}
}

// WithDiff enables or disables diffs on equality failures.
func WithDiff(enabled bool) Option {
	return func(c *Config) {
		c.Diff = enabled
	}
}

// WithMaxValueLength sets the rune limit for rendered values.
func WithMaxValueLength(n int) Option {
	return func(c *Config) {
		c.MaxValueLength = n
	}
}

// WithLogger sets the logger that receives evaluation events.
func WithLogger(logger logging.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithConfig replaces the whole configuration. A nil Logger in
// other keeps the current logger.
func WithConfig(other Config) Option {
	return func(c *Config) {
		logger := c.Logger
		*c = other
		if c.Logger == nil {
			c.Logger = logger
		}
	}
}

// LoadConfig reads a Config from a .json, .yaml or .yml file.
// Keys missing from the file keep their default values. When the
// file names a log_file, the caller owns the opened Logger and
// must Close it.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf(
			"failed to read config file %s: %w", path, err,
		)
	}

	cfg := DefaultConfig()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".json":
		err = json.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf(
			"unsupported config format %q: %s", ext, path,
		)
	}
	if err != nil {
		return Config{}, fmt.Errorf(
			"failed to parse config file %s: %w", path, err,
		)
	}

	if cfg.MaxValueLength < 0 {
		return Config{}, fmt.Errorf(
			"invalid max_value_length %d in %s",
			cfg.MaxValueLength, path,
		)
	}

	if cfg.LogFile != "" {
		logger, err := openJournal(path, cfg)
		if err != nil {
			return Config{}, err
		}
		cfg.Logger = logger
	}

	return cfg, nil
}

func openJournal(configPath string, cfg Config) (logging.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log_level in %s: %w", configPath, err)
	}

	logPath := cfg.LogFile
	if !filepath.IsAbs(logPath) {
		logPath = filepath.Join(filepath.Dir(configPath), logPath)
	}

	logger, err := logging.NewJSONLogger(logging.JSONLoggerConfig{
		OutputPath: logPath,
		Level:      level,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open log_file %s: %w", logPath, err)
	}
	return logger, nil
}
