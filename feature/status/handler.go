package status

import (
	"time"

	"unity-bridge/core/config"
	"unity-bridge/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Bridge is the subset of the editor client the status feature reads.
type Bridge interface {
	IsConnected() bool
}

// Handler handles HTTP requests for the management surface.
type Handler struct {
	bridge  Bridge
	cfg     config.Config
	logger  *zap.Logger
	version string
	started time.Time
}

// NewHandler creates a new HTTP handler.
func NewHandler(b Bridge, cfg config.Config, logger *zap.Logger, version string) *Handler {
	return &Handler{
		bridge:  b,
		cfg:     cfg,
		logger:  logger,
		version: version,
		started: time.Now(),
	}
}

// RegisterRoutes registers the status routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.HandleHealth)
	app.Get("/config", h.HandleConfig)
}

// HandleHealth reports process health and editor connectivity.
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	l.Debug("Health check requested")

	return c.JSON(fiber.Map{
		"status":          "healthy",
		"version":         h.version,
		"uptime_seconds":  int(time.Since(h.started).Seconds()),
		"unity_host":      h.cfg.Unity.Host,
		"unity_port":      h.cfg.Unity.Port,
		"unity_connected": h.bridge.IsConnected(),
	})
}

// HandleConfig echoes the resolved configuration snapshot.
func (h *Handler) HandleConfig(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"unity": fiber.Map{
			"host":            h.cfg.Unity.Host,
			"port":            h.cfg.Unity.Port,
			"connect_timeout": h.cfg.Unity.ConnectTimeout,
			"buffer_size":     h.cfg.Unity.BufferSize,
			"max_retries":     h.cfg.Unity.MaxRetries,
			"retry_delay":     h.cfg.Unity.RetryDelay,
		},
		"server": fiber.Map{
			"port":            h.cfg.Server.Port,
			"management_port": h.cfg.Server.ManagementPort(),
		},
		"log": fiber.Map{
			"level":  h.cfg.Log.Level,
			"format": h.cfg.Log.Format,
		},
	})
}
