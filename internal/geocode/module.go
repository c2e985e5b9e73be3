package geocode

import (
	apphttp "valuation_backend/internal/http"
	"valuation_backend/platform/config"
	"valuation_backend/platform/logger"
)

// Module wires the geocode lookup HTTP routes.
type Module struct {
	service *Service
	handler *Handler
}

func NewModule(cfg config.GeocodeConfig, log *logger.Logger) *Module {
	svc := NewService(cfg, log)
	h := NewHandler(svc)
	return &Module{service: svc, handler: h}
}

func (m *Module) Name() string {
	return "geocode"
}

// Service exposes the resolver for the valuation pipeline.
func (m *Module) Service() *Service {
	return m.service
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/geocode", m.handler.Lookup)
}

var _ apphttp.Module = (*Module)(nil)
