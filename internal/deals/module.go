package deals

import (
	apphttp "valuation_backend/internal/http"
)

// Module wires the deal calculation HTTP routes. The calculator is pure,
// so the module carries no service state.
type Module struct {
	handler *Handler
}

func NewModule() *Module {
	return &Module{handler: NewHandler()}
}

func (m *Module) Name() string {
	return "deals"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/deals/offer", m.handler.Offer)
}

var _ apphttp.Module = (*Module)(nil)
