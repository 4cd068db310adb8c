package status

import (
	"unity-bridge/core/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature exposes the management endpoints for the running bridge.
type Feature struct {
	handler *Handler
}

// NewFeature creates the status feature around the shared editor bridge.
func NewFeature(b Bridge, cfg config.Config, logger *zap.Logger, version string) *Feature {
	return &Feature{handler: NewHandler(b, cfg, logger, version)}
}

// Name identifies the feature.
func (f *Feature) Name() string { return "status" }

// IsEnabled reports whether the feature should be loaded. Status is always on.
func (f *Feature) IsEnabled() bool { return true }

// Load registers the status routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
