package market

import (
	apphttp "valuation_backend/internal/http"
	"valuation_backend/platform/logger"
)

// Module wires the market conditions HTTP routes.
type Module struct {
	service *Service
	handler *Handler
}

func NewModule(store *Store, extractor CountyExtractor, geocoder Geocoder, log *logger.Logger) *Module {
	svc := NewService(store, extractor, geocoder, log)
	return &Module{service: svc, handler: NewHandler(svc)}
}

func (m *Module) Name() string {
	return "market"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/market", m.handler.Info)
}

var _ apphttp.Module = (*Module)(nil)
