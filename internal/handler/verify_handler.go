package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lcintel/internal/domain"
	"lcintel/internal/verify"
)

// VerifyHandler handles standalone verification endpoints that run
// outside any session.
type VerifyHandler struct {
	dispatcher *verify.Dispatcher
	toolset    *verify.Toolset
}

// NewVerifyHandler creates a new VerifyHandler.
func NewVerifyHandler(dispatcher *verify.Dispatcher, toolset *verify.Toolset) *VerifyHandler {
	return &VerifyHandler{dispatcher: dispatcher, toolset: toolset}
}

type verifyRequest struct {
	ToolName string            `json:"tool_name" binding:"required"`
	Value    string            `json:"value"`
	Args     map[string]string `json:"args"`
	FieldKey string            `json:"field_key"`
}

func (r *verifyRequest) toDomain() domain.VerificationRequest {
	return domain.VerificationRequest{
		FieldKey: r.FieldKey,
		ToolName: r.ToolName,
		Args:     r.Args,
		Value:    r.Value,
	}
}

// Run handles POST /api/v1/verify
func (h *VerifyHandler) Run(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "tool_name is required")
		return
	}

	result, err := h.dispatcher.Run(c.Request.Context(), req.toDomain())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// RunBatch handles POST /api/v1/verify/batch
func (h *VerifyHandler) RunBatch(c *gin.Context) {
	var req struct {
		Requests []verifyRequest `json:"requests" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "requests are required")
		return
	}

	requests := make([]domain.VerificationRequest, len(req.Requests))
	for i, r := range req.Requests {
		requests[i] = r.toDomain()
	}

	results, errs := h.dispatcher.RunBatch(c.Request.Context(), requests)

	type batchItem struct {
		Result *domain.VerificationResult `json:"result,omitempty"`
		Error  string                     `json:"error,omitempty"`
	}
	items := make([]batchItem, len(requests))
	for i := range requests {
		if errs[i] != nil {
			items[i].Error = errs[i].Error()
			continue
		}
		items[i].Result = results[i]
	}
	RespondOK(c, items)
}

// Tools handles GET /api/v1/tools
func (h *VerifyHandler) Tools(c *gin.Context) {
	RespondOK(c, h.toolset.Tools())
}
