// Package valuation provides the comp-selection and valuation bounded context.
package valuation

import (
	apphttp "valuation_backend/internal/http"
	"valuation_backend/internal/valuation/handler"
	"valuation_backend/internal/valuation/service"
	"valuation_backend/platform/config"
	"valuation_backend/platform/logger"
)

// Module wires the valuation pipeline and its HTTP routes.
type Module struct {
	service *service.Service
	handler *handler.Handler
}

// NewModule creates the valuation module. Sources carries the external
// collaborators (geocoder, property providers, sale history); the caller
// decides which providers are configured.
func NewModule(src service.Sources, cfg config.CompsConfig, log *logger.Logger) *Module {
	svc := service.New(src, cfg, log)
	h := handler.New(svc)
	return &Module{service: svc, handler: h}
}

func (m *Module) Name() string {
	return "valuation"
}

// Service exposes the pipeline for other modules (e.g., deal calculation).
func (m *Module) Service() *service.Service {
	return m.service
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/valuations")
	group.GET("/comp-summary", m.handler.CompSummary)
}

var _ apphttp.Module = (*Module)(nil)
