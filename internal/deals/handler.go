package deals

import (
	"net/http"

	"valuation_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// OfferRequest carries the valuation output and the 1..N rehab grade. The
// ARV is derived here as subject sqft times the comp average PSF.
type OfferRequest struct {
	SubjectSqft int     `json:"subjectSqft" binding:"required,gt=0"`
	AvgPSF      float64 `json:"avgPsf" binding:"required,gt=0"`
	RehabLevel  int     `json:"rehabLevel" binding:"omitempty,gte=0,lte=10"`
	Notes       string  `json:"notes" binding:"omitempty,max=2000"`
}

// Handler exposes the offer calculation endpoint.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Offer handles POST /api/v1/deals/offer.
func (h *Handler) Offer(c *gin.Context) {
	var req OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "body requires 'subjectSqft' > 0, 'avgPsf' > 0 and optional 'rehabLevel' 0-10", nil)
		return
	}

	arv := float64(req.SubjectSqft) * req.AvgPSF
	httpkit.OK(c, Calculate(arv, req.RehabLevel))
}
