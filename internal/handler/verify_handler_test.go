package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lcintel/internal/config"
	"lcintel/internal/handler"
	"lcintel/internal/unlocode"
	"lcintel/internal/verify"
)

func newVerifyRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	toolset := verify.NewToolset(&config.VerifyConfig{}, nil, nil, nil, nil, unlocode.NewIndex(nil))
	dispatcher := verify.NewDispatcher(toolset, 2, 5*time.Second)
	h := handler.NewVerifyHandler(dispatcher, toolset)

	r := gin.New()
	r.POST("/api/v1/verify", h.Run)
	r.POST("/api/v1/verify/batch", h.RunBatch)
	r.GET("/api/v1/tools", h.Tools)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestVerifyRun(t *testing.T) {
	r := newVerifyRouter(t)

	w := postJSON(t, r, "/api/v1/verify", map[string]interface{}{
		"tool_name": "verify_hs_code",
		"args":      map[string]string{"code": "8471.30"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decodeEnvelope(t, w)
	require.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, true, data["verified"])
}

func TestVerifyRunUnknownTool(t *testing.T) {
	r := newVerifyRouter(t)

	w := postJSON(t, r, "/api/v1/verify", map[string]interface{}{
		"tool_name": "read_tea_leaves",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "UNKNOWN_TOOL", decodeEnvelope(t, w).Error.Code)
}

func TestVerifyRunMissingToolName(t *testing.T) {
	r := newVerifyRouter(t)

	w := postJSON(t, r, "/api/v1/verify", map[string]interface{}{
		"value": "8471.30",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeEnvelope(t, w).Error.Code)
}

func TestVerifyBatchKeepsPositions(t *testing.T) {
	r := newVerifyRouter(t)

	w := postJSON(t, r, "/api/v1/verify/batch", map[string]interface{}{
		"requests": []map[string]interface{}{
			{"tool_name": "verify_hs_code", "args": map[string]string{"code": "8471.30"}},
			{"tool_name": "read_tea_leaves"},
			{"tool_name": "verify_hs_code", "args": map[string]string{"code": "0012.34"}},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	items := decodeEnvelope(t, w).Data.([]interface{})
	require.Len(t, items, 3)

	first := items[0].(map[string]interface{})
	assert.NotNil(t, first["result"])
	assert.Nil(t, first["error"])

	second := items[1].(map[string]interface{})
	assert.Nil(t, second["result"])
	assert.Contains(t, second["error"], "read_tea_leaves")

	third := items[2].(map[string]interface{})
	require.NotNil(t, third["result"])
	assert.Equal(t, false, third["result"].(map[string]interface{})["verified"])
}

func TestToolsListing(t *testing.T) {
	r := newVerifyRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tools", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	tools := decodeEnvelope(t, w).Data.([]interface{})
	require.Len(t, tools, 8)
	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.(map[string]interface{})["name"].(string))
	}
	assert.Contains(t, names, "verify_swift_code")
	assert.Contains(t, names, "check_sanctions")
	assert.Contains(t, names, "deep_research_verify")
}
