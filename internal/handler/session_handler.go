package handler

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lcintel/internal/domain"
	"lcintel/internal/export"
	"lcintel/internal/i18n"
	"lcintel/internal/pipeline"
)

// SessionHandler handles the session lifecycle and pipeline endpoints.
type SessionHandler struct {
	service *pipeline.Service
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(service *pipeline.Service) *SessionHandler {
	return &SessionHandler{service: service}
}

// sessionView is the serializable summary of a session.
type sessionView struct {
	ID          uuid.UUID `json:"id"`
	State       string    `json:"state"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	HasDocument bool      `json:"has_document"`
	Supporting  []string  `json:"supporting_documents"`
	Messages    int       `json:"messages"`
}

func toView(s *pipeline.Session) sessionView {
	fileBytes, _ := s.Document()
	supporting := make([]string, 0)
	for docType := range s.Supporting() {
		supporting = append(supporting, docType)
	}
	sort.Strings(supporting)
	return sessionView{
		ID:          s.ID,
		State:       string(s.State()),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt(),
		HasDocument: len(fileBytes) > 0,
		Supporting:  supporting,
		Messages:    s.Conversation().Len(),
	}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(c *gin.Context) {
	session := h.service.Manager().Create()
	RespondCreated(c, toView(session))
}

// List handles GET /api/v1/sessions
func (h *SessionHandler) List(c *gin.Context) {
	sessions := h.service.Manager().List()
	views := make([]sessionView, 0, len(sessions))
	for _, s := range sessions {
		views = append(views, toView(s))
	}
	RespondOK(c, views)
}

// Get handles GET /api/v1/sessions/:id
func (h *SessionHandler) Get(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	RespondOK(c, toView(session))
}

// Delete handles DELETE /api/v1/sessions/:id
func (h *SessionHandler) Delete(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	if err := h.service.Manager().Delete(id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}

// UploadDocument handles POST /api/v1/sessions/:id/document
func (h *SessionHandler) UploadDocument(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "multipart field 'file' is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "could not open uploaded file")
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "could not read uploaded file")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if err := h.service.UploadDocument(c.Request.Context(), id, fileBytes, contentType); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"session_id": id, "size": len(fileBytes)})
}

// AddSupporting handles POST /api/v1/sessions/:id/supporting
func (h *SessionHandler) AddSupporting(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req struct {
		DocType string            `json:"doc_type" binding:"required"`
		Fields  map[string]string `json:"fields" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "doc_type and fields are required")
		return
	}

	if err := h.service.AddSupporting(c.Request.Context(), id, req.DocType, req.Fields); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"session_id": id, "doc_type": req.DocType})
}

// Extract handles POST /api/v1/sessions/:id/extract
func (h *SessionHandler) Extract(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	opts, ok := h.extractionOptions(c)
	if !ok {
		return
	}
	result, err := h.service.Extract(c.Request.Context(), id, opts)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// extractionOptions reads the optional extraction overrides from the
// request body. An empty body means all defaults.
func (h *SessionHandler) extractionOptions(c *gin.Context) (domain.ExtractionOptions, bool) {
	var opts domain.ExtractionOptions
	if c.Request.ContentLength == 0 {
		return opts, true
	}
	if err := c.ShouldBindJSON(&opts); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "malformed extraction options")
		return opts, false
	}
	if opts.Method != "" && !domain.KnownMethod(opts.Method) {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST",
			fmt.Sprintf("unknown extraction method %q", opts.Method))
		return opts, false
	}
	return opts, true
}

// Validate handles POST /api/v1/sessions/:id/validate
func (h *SessionHandler) Validate(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	report, err := h.service.Validate(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// Verify handles POST /api/v1/sessions/:id/verify
func (h *SessionHandler) Verify(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	results, failures, err := h.service.Verify(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	resp := gin.H{"results": results}
	if len(failures) > 0 {
		msgs := make([]string, 0, len(failures))
		for _, f := range failures {
			msgs = append(msgs, f.Error())
		}
		resp["failures"] = msgs
	}
	RespondOK(c, resp)
}

// RunPipeline handles POST /api/v1/sessions/:id/pipeline
func (h *SessionHandler) RunPipeline(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	opts, ok := h.extractionOptions(c)
	if !ok {
		return
	}
	result, err := h.service.RunPipeline(c.Request.Context(), id, opts)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// Chat handles POST /api/v1/sessions/:id/chat
func (h *SessionHandler) Chat(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req struct {
		Message  string `json:"message" binding:"required"`
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "message is required")
		return
	}

	reply, err := h.service.Chat(c.Request.Context(), id, req.Message, i18n.Normalize(req.Language))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, reply)
}

// Research handles POST /api/v1/sessions/:id/research
func (h *SessionHandler) Research(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req struct {
		Query string `json:"query" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "query is required")
		return
	}

	result, err := h.service.Research(c.Request.Context(), id, req.Query)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// Archive handles POST /api/v1/sessions/:id/archive
func (h *SessionHandler) Archive(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	url, err := h.service.Archive(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"session_id": id, "url": url})
}

// Export handles GET /api/v1/sessions/:id/export?format=csv|xlsx
func (h *SessionHandler) Export(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	extraction := session.Extraction()
	if extraction == nil {
		RespondError(c, http.StatusConflict, "PREREQUISITE_MISSING", "an earlier pipeline step has not run yet")
		return
	}

	label := "session_" + session.ID.String()[:8]
	switch c.DefaultQuery("format", "csv") {
	case "csv":
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.BuildFilename(label, "csv")))
		c.Status(http.StatusOK)
		if _, err := c.Writer.Write(export.BOM); err != nil {
			return
		}
		w := export.NewWriter(c.Writer)
		if err := w.WriteHeader(); err != nil {
			return
		}
		if err := w.WriteSession(extraction, session.Verification()); err != nil {
			return
		}
		w.Flush()
	case "xlsx":
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.BuildFilename(label, "xlsx")))
		c.Status(http.StatusOK)
		if err := export.WriteWorkbook(c.Writer, extraction, session.Validation(), session.Verification()); err != nil {
			requestID, _ := c.Get("request_id")
			log.Printf("[%v] workbook export failed: %v", requestID, err)
		}
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "format must be 'csv' or 'xlsx'")
	}
}

func (h *SessionHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "session id must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

func (h *SessionHandler) session(c *gin.Context) (*pipeline.Session, bool) {
	id, ok := h.sessionID(c)
	if !ok {
		return nil, false
	}
	session, err := h.service.Manager().Get(id)
	if err != nil {
		HandleError(c, err)
		return nil, false
	}
	return session, true
}
