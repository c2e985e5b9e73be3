package market

import (
	"net/http"

	"valuation_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// InfoRequest queries market conditions either by free-text address or by
// an explicit county/state pair.
type InfoRequest struct {
	Address string `form:"address" binding:"omitempty,min=5"`
	County  string `form:"county" binding:"omitempty,min=2"`
	State   string `form:"state" binding:"omitempty,len=2"`
}

// Handler exposes the market info endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Info handles GET /api/v1/market.
func (h *Handler) Info(c *gin.Context) {
	var req InfoRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "provide 'address' or 'county'+'state'", nil)
		return
	}

	if req.County != "" && req.State != "" {
		httpkit.OK(c, h.svc.InfoByCounty(req.County, req.State))
		return
	}
	if req.Address == "" {
		httpkit.Error(c, http.StatusBadRequest, "provide 'address' or 'county'+'state'", nil)
		return
	}

	info, err := h.svc.InfoByAddress(c.Request.Context(), req.Address)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, info)
}
