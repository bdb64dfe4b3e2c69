package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lcintel/internal/port"
)

// CustomerHandler handles lookups against the operational record store.
type CustomerHandler struct {
	customers port.CustomerRepository
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customers port.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// Lookup handles POST /api/v1/customers/lookup
func (h *CustomerHandler) Lookup(c *gin.Context) {
	var req struct {
		CustomerNo    string `json:"customer_no" binding:"required"`
		AccountNumber string `json:"account_number" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "customer_no and account_number are required")
		return
	}

	record, err := h.customers.LookupByAccount(c.Request.Context(), req.CustomerNo, req.AccountNumber)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, record)
}
