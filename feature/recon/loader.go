package recon

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"data-recon/feature/report"
	"data-recon/feature/source"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the reconciliation feature.
func NewFeature(loader *source.Loader, reports *report.Writer, probes Probes, logger *zap.Logger) *Feature {
	svc := NewService(loader, reports, probes, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "recon"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
