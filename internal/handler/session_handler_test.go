package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lcintel/internal/chat"
	"lcintel/internal/config"
	"lcintel/internal/domain"
	"lcintel/internal/handler"
	"lcintel/internal/pipeline"
	"lcintel/internal/unlocode"
	"lcintel/internal/validator"
	"lcintel/internal/verify"
	"lcintel/mocks"
)

type stubExtractor struct {
	result *domain.ExtractionResult
}

func (s *stubExtractor) Extract(_ context.Context, _ []byte, _ string, _ domain.ExtractionOptions) (*domain.ExtractionResult, error) {
	return s.result, nil
}

func newSessionRouter(t *testing.T, model *mocks.MockChatModel) (*gin.Engine, *pipeline.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if model == nil {
		model = new(mocks.MockChatModel)
	}

	toolset := verify.NewToolset(&config.VerifyConfig{}, nil, nil, nil, nil, unlocode.NewIndex(nil))
	dispatcher := verify.NewDispatcher(toolset, 2, 5*time.Second)
	svc := pipeline.NewService(
		pipeline.NewManager(),
		&stubExtractor{result: &domain.ExtractionResult{
			Fields:      map[string]string{"lc_number": "LC-2025-0042", "hs_code": "8471.30"},
			MethodUsed:  domain.MethodText,
			FieldsFound: 2,
			FieldsTotal: 40,
		}},
		validator.NewDefaultEngine(),
		dispatcher,
		chat.NewAggregator(model, nil),
		chat.NewResearchService(dispatcher),
	)

	h := handler.NewSessionHandler(svc)
	r := gin.New()
	sessions := r.Group("/api/v1/sessions")
	{
		sessions.POST("", h.Create)
		sessions.GET("", h.List)
		sessions.GET("/:id", h.Get)
		sessions.DELETE("/:id", h.Delete)
		sessions.POST("/:id/document", h.UploadDocument)
		sessions.POST("/:id/supporting", h.AddSupporting)
		sessions.POST("/:id/extract", h.Extract)
		sessions.POST("/:id/chat", h.Chat)
		sessions.GET("/:id/export", h.Export)
	}
	return r, svc
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func createSession(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeEnvelope(t, w)
	require.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	return data["id"].(string)
}

func uploadPDF(t *testing.T, r *gin.Engine, id string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := make(map[string][]string)
	hdr["Content-Disposition"] = []string{`form-data; name="file"; filename="application.pdf"`}
	hdr["Content-Type"] = []string{"application/pdf"}
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 fixture"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+id+"/document", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestSessionLifecycle(t *testing.T) {
	r, _ := newSessionRouter(t, nil)
	id := createSession(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/v1/sessions/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w).Data.(map[string]interface{})
	assert.Equal(t, "empty", data["state"])
	assert.Equal(t, false, data["has_document"])

	w = doJSON(t, r, http.MethodGet, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/sessions/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/sessions/"+id, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "SESSION_NOT_FOUND", resp.Error.Code)
}

func TestSessionIDMustBeUUID(t *testing.T) {
	r, _ := newSessionRouter(t, nil)
	w := doJSON(t, r, http.MethodGet, "/api/v1/sessions/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeEnvelope(t, w).Error.Code)
}

func TestUploadAndExtract(t *testing.T) {
	r, _ := newSessionRouter(t, nil)
	id := createSession(t, r)
	uploadPDF(t, r, id)

	w := doJSON(t, r, http.MethodPost, "/api/v1/sessions/"+id+"/extract", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decodeEnvelope(t, w).Data.(map[string]interface{})
	fields := data["fields"].(map[string]interface{})
	assert.Equal(t, "LC-2025-0042", fields["lc_number"])

	w = doJSON(t, r, http.MethodGet, "/api/v1/sessions/"+id, nil)
	data = decodeEnvelope(t, w).Data.(map[string]interface{})
	assert.Equal(t, "extracted", data["state"])
	assert.Equal(t, true, data["has_document"])
}

func TestExtractRejectsUnknownMethod(t *testing.T) {
	r, _ := newSessionRouter(t, nil)
	id := createSession(t, r)
	uploadPDF(t, r, id)

	w := doJSON(t, r, http.MethodPost, "/api/v1/sessions/"+id+"/extract", map[string]string{
		"method": "telepathy",
	})
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Equal(t, "INVALID_REQUEST", decodeEnvelope(t, w).Error.Code)
}

func TestExtractAcceptsOverrides(t *testing.T) {
	r, _ := newSessionRouter(t, nil)
	id := createSession(t, r)
	uploadPDF(t, r, id)

	w := doJSON(t, r, http.MethodPost, "/api/v1/sessions/"+id+"/extract", map[string]string{
		"method":   "text",
		"language": "ar",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestExtractWithoutDocument(t *testing.T) {
	r, _ := newSessionRouter(t, nil)
	id := createSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/v1/sessions/"+id+"/extract", nil)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "PREREQUISITE_MISSING", decodeEnvelope(t, w).Error.Code)
}

func TestAddSupportingValidation(t *testing.T) {
	r, _ := newSessionRouter(t, nil)
	id := createSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/v1/sessions/"+id+"/supporting", map[string]interface{}{
		"doc_type": "commercial_invoice",
		"fields":   map[string]string{"invoice_amount": "100"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/v1/sessions/"+id+"/supporting", map[string]interface{}{
		"fields": map[string]string{"invoice_amount": "100"},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatEndpoint(t *testing.T) {
	model := new(mocks.MockChatModel)
	model.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("The session is empty so far.", nil)

	r, _ := newSessionRouter(t, model)
	id := createSession(t, r)
	uploadPDF(t, r, id)
	w := doJSON(t, r, http.MethodPost, "/api/v1/sessions/"+id+"/extract", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/sessions/"+id+"/chat", map[string]string{
		"message": "What do we have?",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decodeEnvelope(t, w).Data.(map[string]interface{})
	assert.Equal(t, "The session is empty so far.", data["message"])
	assert.Equal(t, "en", data["language"])
}

func TestChatRequiresExtraction(t *testing.T) {
	r, _ := newSessionRouter(t, nil)
	id := createSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/v1/sessions/"+id+"/chat", map[string]string{
		"message": "What do we have?",
	})
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	resp := decodeEnvelope(t, w)
	require.False(t, resp.Success)
	assert.Equal(t, "PREREQUISITE_MISSING", resp.Error.Code)
}

func TestExportCSV(t *testing.T) {
	r, _ := newSessionRouter(t, nil)
	id := createSession(t, r)
	uploadPDF(t, r, id)
	w := doJSON(t, r, http.MethodPost, "/api/v1/sessions/"+id+"/extract", nil)
	require.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+id+"/export?format=csv", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")

	body := rec.Body.Bytes()
	require.True(t, bytes.HasPrefix(body, []byte{0xEF, 0xBB, 0xBF}), "CSV starts with a UTF-8 BOM")
	assert.True(t, strings.HasPrefix(string(body[3:]), "Section,Field Key,Field Label,"))
	assert.Contains(t, string(body), "LC-2025-0042")
}

func TestExportRequiresExtraction(t *testing.T) {
	r, _ := newSessionRouter(t, nil)
	id := createSession(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/v1/sessions/"+id+"/export?format=csv", nil)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestExportUnknownFormat(t *testing.T) {
	r, _ := newSessionRouter(t, nil)
	id := createSession(t, r)
	uploadPDF(t, r, id)
	w := doJSON(t, r, http.MethodPost, "/api/v1/sessions/"+id+"/extract", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/sessions/"+id+"/export?format=doc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
