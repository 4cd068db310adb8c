// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance built from the resolved bridge
// configuration and integrates with the Fiber management app.
//
// # Levels
//
// The configuration accepts the five-level set DEBUG, INFO, WARNING, ERROR
// and CRITICAL. Levels are mapped onto the zap severity scale before the
// logger is built; an unknown level is rejected rather than silently
// downgraded.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID from a Fiber context and attaches
// it to the log entry, ensuring that all logs related to a specific request
// can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: logger.LevelInfo, Format: logger.FormatConsole})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
