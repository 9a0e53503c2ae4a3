package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedZapLogger() (*ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewZapLogger(zap.New(core)), logs
}

func TestZapLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(l Logger)
		level zapcore.Level
	}{
		{"debug", func(l Logger) { l.Debug("event") }, zapcore.DebugLevel},
		{"info", func(l Logger) { l.Info("event") }, zapcore.InfoLevel},
		{"warn", func(l Logger) { l.Warn("event") }, zapcore.WarnLevel},
		{"error", func(l Logger) { l.Error("event") }, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, logs := newObservedZapLogger()

			tt.log(logger)

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.level, entries[0].Level)
			assert.Equal(t, "event", entries[0].Message)
		})
	}
}

func TestZapLogger_Fields(t *testing.T) {
	logger, logs := newObservedZapLogger()

	logger.Error("assertion failed",
		StringField("label", "to be Err"),
		IntField("index", 1),
	)

	entries := logs.All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "to be Err", ctx["label"])
	assert.EqualValues(t, 1, ctx["index"])
}

func TestZapLogger_WithFields(t *testing.T) {
	logger, logs := newObservedZapLogger()

	child := logger.WithFields(StringField("test", "TestChain"))
	child.Info("assertion passed")

	entries := logs.FilterField(zap.String("test", "TestChain")).All()
	assert.Len(t, entries, 1)
}

func TestZapLogger_NilIsNoop(t *testing.T) {
	var logger *ZapLogger
	assert.NotPanics(t, func() {
		logger.Info("ignored")
		logger.WithFields(BoolField("x", true)).Warn("ignored")
	})
	assert.NoError(t, NewZapLogger(nil).Close())
}
