package logger_test

import (
	"testing"

	"unity-bridge/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestConfig_IsValidLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  bool
	}{
		{"Debug", logger.LevelDebug, true},
		{"Info", logger.LevelInfo, true},
		{"Warning", logger.LevelWarning, true},
		{"Error", logger.LevelError, true},
		{"Critical", logger.LevelCritical, true},
		{"Lowercase", "info", false},
		{"Unknown", "VERBOSE", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := logger.Config{Level: tt.level}
			assert.Equal(t, tt.want, c.IsValidLevel())
		})
	}
}

func TestConfig_ZapLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, logger.Config{Level: logger.LevelDebug}.ZapLevel())
	assert.Equal(t, zapcore.InfoLevel, logger.Config{Level: logger.LevelInfo}.ZapLevel())
	assert.Equal(t, zapcore.WarnLevel, logger.Config{Level: logger.LevelWarning}.ZapLevel())
	assert.Equal(t, zapcore.ErrorLevel, logger.Config{Level: logger.LevelError}.ZapLevel())
	assert.Equal(t, zapcore.FatalLevel, logger.Config{Level: logger.LevelCritical}.ZapLevel())
}

func TestNew(t *testing.T) {
	for _, format := range []string{logger.FormatConsole, logger.FormatJSON} {
		l, err := logger.New(&logger.Config{Level: logger.LevelInfo, Format: format})
		require.NoError(t, err)
		require.NotNil(t, l)
		assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
		assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	}
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := logger.New(&logger.Config{Level: "TRACE", Format: logger.FormatConsole})
	assert.Error(t, err)
}
