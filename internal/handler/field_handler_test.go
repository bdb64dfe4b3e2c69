package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lcintel/internal/fields"
	"lcintel/internal/handler"
)

func newFieldRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/fields", handler.NewFieldHandler().Schema)
	return r
}

func getSchema(t *testing.T, r *gin.Engine, path string) map[string]interface{} {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	return decodeEnvelope(t, w).Data.(map[string]interface{})
}

func TestFieldSchemaEnglish(t *testing.T) {
	r := newFieldRouter(t)
	data := getSchema(t, r, "/api/v1/fields")

	assert.Equal(t, "en", data["language"])
	assert.Equal(t, false, data["rtl"])
	assert.Equal(t, float64(fields.Total()), data["total"])

	sections := data["sections"].([]interface{})
	require.Equal(t, len(fields.Sections), len(sections))
	first := sections[0].(map[string]interface{})
	assert.Equal(t, "basic_information", first["key"])
	assert.Equal(t, "Basic Information", first["label"])
}

func TestFieldSchemaArabic(t *testing.T) {
	r := newFieldRouter(t)
	data := getSchema(t, r, "/api/v1/fields?lang=ar")

	assert.Equal(t, "ar", data["language"])
	assert.Equal(t, true, data["rtl"])
	first := data["sections"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "المعلومات الأساسية", first["label"])
}

func TestFieldSchemaUnknownLanguageFallsBack(t *testing.T) {
	r := newFieldRouter(t)
	data := getSchema(t, r, "/api/v1/fields?lang=fr")
	assert.Equal(t, "en", data["language"])
}
