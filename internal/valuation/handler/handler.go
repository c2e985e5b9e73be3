// Package handler exposes the valuation HTTP endpoints.
package handler

import (
	"net/http"

	"valuation_backend/internal/valuation/service"
	"valuation_backend/internal/valuation/transport"
	"valuation_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the comp summary endpoint.
type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// CompSummary handles GET /api/v1/valuations/comp-summary?address=...&sqft=...
func (h *Handler) CompSummary(c *gin.Context) {
	var req transport.CompSummaryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "query 'address' is required (min 5 chars)", nil)
		return
	}

	summary, err := h.svc.GetCompSummary(c.Request.Context(), req.Address, req.Sqft)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.FromSummary(req.Address, summary))
}
