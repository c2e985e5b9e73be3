package pitch

import (
	"net/http"

	"valuation_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// GenerateRequest carries the call notes and the planned exit strategy.
type GenerateRequest struct {
	Notes        string `json:"notes" binding:"omitempty,max=2000"`
	ExitStrategy string `json:"exitStrategy" binding:"omitempty,max=100"`
}

type generateResponse struct {
	Pitch string `json:"pitch"`
}

// Handler exposes the pitch generation endpoint.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Generate handles POST /api/v1/pitch.
func (h *Handler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid pitch request body", nil)
		return
	}

	httpkit.OK(c, generateResponse{Pitch: Generate(req.Notes, req.ExitStrategy)})
}
