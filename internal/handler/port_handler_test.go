package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lcintel/internal/handler"
	"lcintel/internal/unlocode"
)

func newPortRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	index := unlocode.NewIndex([]unlocode.Entry{
		{Locode: "LYTIP", Country: "LY", Name: "Tripoli", Function: "1-------"},
		{Locode: "ITGOA", Country: "IT", Name: "Genova", Function: "12345---"},
		{Locode: "ITTRP", Country: "IT", Name: "Tripoli di Lazio", Function: "--3-----"},
	})
	r := gin.New()
	r.GET("/api/v1/ports/search", handler.NewPortHandler(index).Search)
	return r
}

func searchPorts(t *testing.T, r *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		return w, nil
	}
	return w, decodeEnvelope(t, w).Data.(map[string]interface{})
}

func TestPortSearch(t *testing.T) {
	r := newPortRouter(t)
	w, data := searchPorts(t, r, "/api/v1/ports/search?q=tripoli")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "tripoli", data["query"])
	assert.Equal(t, float64(2), data["total"])
	matches := data["matches"].([]interface{})
	first := matches[0].(map[string]interface{})
	entry := first["entry"].(map[string]interface{})
	assert.Equal(t, "LYTIP", entry["locode"], "exact name match ranks first")
}

func TestPortSearchFilters(t *testing.T) {
	r := newPortRouter(t)

	_, data := searchPorts(t, r, "/api/v1/ports/search?q=tripoli&country=it")
	assert.Equal(t, float64(1), data["total"])

	_, data = searchPorts(t, r, "/api/v1/ports/search?q=tripoli&ports_only=true")
	assert.Equal(t, float64(1), data["total"], "road terminals are excluded")
}

func TestPortSearchRequiresQuery(t *testing.T) {
	r := newPortRouter(t)
	w, _ := searchPorts(t, r, "/api/v1/ports/search")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPortSearchLimitValidation(t *testing.T) {
	r := newPortRouter(t)

	w, _ := searchPorts(t, r, "/api/v1/ports/search?q=tripoli&limit=0")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = searchPorts(t, r, "/api/v1/ports/search?q=tripoli&limit=500")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, data := searchPorts(t, r, "/api/v1/ports/search?q=tripoli&limit=1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), data["total"])
}
