package logger

import "go.uber.org/zap/zapcore"

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum severity that will be emitted.
	Level string `mapstructure:"level"`
	// Format selects the line encoding. It is fixed at startup and is not
	// exposed on the command-line surface.
	Format string `mapstructure:"format"`
}

// Log levels accepted by the configuration resolver.
const (
	LevelDebug    = "DEBUG"
	LevelInfo     = "INFO"
	LevelWarning  = "WARNING"
	LevelError    = "ERROR"
	LevelCritical = "CRITICAL"
)

// Encodings supported by Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// IsValidLevel checks if the configured level is one of the accepted set.
func (c Config) IsValidLevel() bool {
	switch c.Level {
	case LevelDebug, LevelInfo, LevelWarning, LevelError, LevelCritical:
		return true
	default:
		return false
	}
}

// ZapLevel maps the configured level onto the zap severity scale.
// CRITICAL has no direct zap equivalent and maps to the fatal threshold.
func (c Config) ZapLevel() zapcore.Level {
	switch c.Level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarning:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	case LevelCritical:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}
