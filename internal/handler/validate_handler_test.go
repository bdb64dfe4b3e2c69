package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lcintel/internal/handler"
	"lcintel/internal/validator"
)

func newValidateRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := handler.NewValidateHandler(validator.NewDefaultEngine())

	r := gin.New()
	r.POST("/api/v1/validate", h.Run)
	return r
}

func TestValidateRun(t *testing.T) {
	r := newValidateRouter(t)

	w := postJSON(t, r, "/api/v1/validate", map[string]interface{}{
		"lc": map[string]string{
			"lc_number":            "LC-2025-0042",
			"date":                 "01/06/2025",
			"expiry_date":          "31/12/2025",
			"latest_shipment_date": "30/11/2025",
			"amount_in_figures":    "100,000.00",
			"percentage_tolerance": "10",
			"applicant_name":       "Al Noor Trading LLC",
			"beneficiary_name":     "Hangzhou Textile Export Co.",
			"port_loading":         "Shanghai",
			"commercial_invoice":   "Yes",
			"bills_of_lading":      "No",
		},
		"supporting": map[string]map[string]string{
			"commercial_invoice": {
				"invoice_amount":   "98,500.00",
				"invoice_currency": "USD",
				"lc_number":        "LC-2025-0042",
				"seller_name":      "Hangzhou Textile Export Co.",
			},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decodeEnvelope(t, w)
	require.True(t, resp.Success)
	report := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(0), report["errors"])
	assert.Greater(t, report["total_checks"], float64(0))
}

func TestValidateRunFindsErrors(t *testing.T) {
	r := newValidateRouter(t)

	w := postJSON(t, r, "/api/v1/validate", map[string]interface{}{
		"lc": map[string]string{
			"lc_number":         "LC-2025-0042",
			"amount_in_figures": "100,000.00",
			"expiry_date":       "31/12/2025",
		},
		"supporting": map[string]map[string]string{
			"commercial_invoice": {
				"invoice_amount": "150,000.00",
				"lc_number":      "LC-2025-9999",
			},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decodeEnvelope(t, w)
	require.True(t, resp.Success)
	report := resp.Data.(map[string]interface{})
	assert.Greater(t, report["errors"], float64(0))
}

func TestValidateRunRequiresLC(t *testing.T) {
	r := newValidateRouter(t)

	w := postJSON(t, r, "/api/v1/validate", map[string]interface{}{
		"supporting": map[string]map[string]string{},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeEnvelope(t, w)
	require.False(t, resp.Success)
	assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
}
