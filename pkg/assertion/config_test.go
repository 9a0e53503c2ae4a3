package assertion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.fluent/pkg/logging"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.False(t, cfg.Color)
	assert.True(t, cfg.Diff)
	assert.Zero(t, cfg.MaxValueLength)
	assert.IsType(t, logging.NullLogger{}, cfg.Logger)
}

func TestOptions(t *testing.T) {
	logger := logging.NewConsoleLogger(false)

	cfg := NewConfig(
		WithColor(true),
		WithDiff(false),
		WithMaxValueLength(80),
		WithLogger(logger),
	)

	assert.True(t, cfg.Color)
	assert.False(t, cfg.Diff)
	assert.Equal(t, 80, cfg.MaxValueLength)
	assert.Same(t, logger, cfg.Logger)
}

func TestConfig_WithDoesNotMutate(t *testing.T) {
	base := DefaultConfig()
	_ = base.With(WithColor(true))
	assert.False(t, base.Color)
}

func TestWithConfig_KeepsLoggerWhenNil(t *testing.T) {
	logger := logging.NewConsoleLogger(false)

	cfg := NewConfig(
		WithLogger(logger),
		WithConfig(Config{Color: true}),
	)

	assert.True(t, cfg.Color)
	assert.False(t, cfg.Diff)
	assert.Same(t, logger, cfg.Logger)
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		expected Config
	}{
		{
			name:     "yaml",
			file:     "fluent.yaml",
			content:  "color: true\nmax_value_length: 120\n",
			expected: Config{Color: true, Diff: true, MaxValueLength: 120},
		},
		{
			name:     "yml disables diff",
			file:     "fluent.yml",
			content:  "diff: false\n",
			expected: Config{Diff: false},
		},
		{
			name:     "json",
			file:     "fluent.json",
			content:  `{"color": true, "diff": false}`,
			expected: Config{Color: true},
		},
		{
			name:     "empty yaml keeps defaults",
			file:     "empty.yaml",
			content:  "",
			expected: Config{Diff: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tt.file, tt.content))
			require.NoError(t, err)

			assert.Equal(t, tt.expected.Color, cfg.Color)
			assert.Equal(t, tt.expected.Diff, cfg.Diff)
			assert.Equal(t, tt.expected.MaxValueLength, cfg.MaxValueLength)
			assert.NotNil(t, cfg.Logger)
		})
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr string
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "none.yaml") },
			wantErr: "failed to read config file",
		},
		{
			name:    "unsupported extension",
			path:    func(t *testing.T) string { return writeConfig(t, "fluent.toml", "color = true") },
			wantErr: "unsupported config format",
		},
		{
			name:    "malformed yaml",
			path:    func(t *testing.T) string { return writeConfig(t, "bad.yaml", "color: [true") },
			wantErr: "failed to parse config file",
		},
		{
			name:    "malformed json",
			path:    func(t *testing.T) string { return writeConfig(t, "bad.json", "{") },
			wantErr: "failed to parse config file",
		},
		{
			name:    "unknown log level",
			path:    func(t *testing.T) string { return writeConfig(t, "lvl.yaml", "log_file: a.log\nlog_level: trace") },
			wantErr: "invalid log_level",
		},
		{
			name: "unopenable log file",
			path: func(t *testing.T) string {
				blocker := writeConfig(t, "blocker", "")
				return writeConfig(t, "log.yaml", "log_file: "+filepath.Join(blocker, "a.log"))
			},
			wantErr: "failed to open log_file",
		},
		{
			name:    "negative length",
			path:    func(t *testing.T) string { return writeConfig(t, "neg.yaml", "max_value_length: -1") },
			wantErr: "invalid max_value_length",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(tt.path(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig_LogFile(t *testing.T) {
	path := writeConfig(t, "fluent.yaml", "log_file: logs/events.log\nlog_level: debug\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.IsType(t, &logging.JSONLogger{}, cfg.Logger)

	rt := &mockT{}
	rt.On("Helper").Return()
	Check(rt, cfg, true, NoExpected("to be true", true))
	require.NoError(t, cfg.Logger.Close())

	data, err := os.ReadFile(filepath.Join(filepath.Dir(path), "logs", "events.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"assertion passed"`)
	assert.Contains(t, string(data), `"label":"to be true"`)
}
