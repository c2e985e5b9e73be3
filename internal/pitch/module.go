package pitch

import (
	apphttp "valuation_backend/internal/http"
)

// Module wires the pitch generation HTTP route.
type Module struct {
	handler *Handler
}

func NewModule() *Module {
	return &Module{handler: NewHandler()}
}

func (m *Module) Name() string {
	return "pitch"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/pitch", m.handler.Generate)
}

var _ apphttp.Module = (*Module)(nil)
