package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lcintel/internal/validator"
	"lcintel/internal/validator/lc"
)

// ValidateHandler runs the consistency rule engine over caller-supplied
// field maps, outside any session.
type ValidateHandler struct {
	engine *validator.Engine
}

// NewValidateHandler creates a new ValidateHandler.
func NewValidateHandler(engine *validator.Engine) *ValidateHandler {
	return &ValidateHandler{engine: engine}
}

// Run handles POST /api/v1/validate
func (h *ValidateHandler) Run(c *gin.Context) {
	var req struct {
		LC         map[string]string            `json:"lc" binding:"required"`
		Supporting map[string]map[string]string `json:"supporting"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "lc field map is required")
		return
	}

	report := h.engine.Validate(c.Request.Context(), &lc.Docs{
		LC:         req.LC,
		Supporting: req.Supporting,
	})
	RespondOK(c, report)
}
