package geocode

import (
	"net/http"

	"valuation_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the address resolution endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Lookup handles GET /api/v1/geocode?address=...
func (h *Handler) Lookup(c *gin.Context) {
	var req LookupRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "query 'address' is required (min 5 chars)", nil)
		return
	}

	location, err := h.svc.Resolve(c.Request.Context(), req.Address)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, location)
}
