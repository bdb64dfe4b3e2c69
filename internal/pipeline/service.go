package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"lcintel/internal/chat"
	"lcintel/internal/domain"
	"lcintel/internal/port"
	"lcintel/internal/validator"
	"lcintel/internal/validator/lc"
	"lcintel/internal/verify"
)

// Extractor runs field extraction over an uploaded document.
type Extractor interface {
	Extract(ctx context.Context, fileBytes []byte, contentType string, opts domain.ExtractionOptions) (*domain.ExtractionResult, error)
}

// Service orchestrates the session lifecycle over the pipeline stages.
type Service struct {
	manager    *Manager
	extractor  Extractor
	engine     *validator.Engine
	dispatcher *verify.Dispatcher
	aggregator *chat.Aggregator
	research   *chat.ResearchService

	// Optional integrations.
	storage       port.ObjectStorage
	archiveBucket string
	emailSender   port.EmailSender
	alertTo       string
}

// NewService creates the pipeline service. storage and emailSender may
// be nil; archival and compliance alerts are then disabled.
func NewService(
	manager *Manager,
	extractor Extractor,
	engine *validator.Engine,
	dispatcher *verify.Dispatcher,
	aggregator *chat.Aggregator,
	research *chat.ResearchService,
) *Service {
	return &Service{
		manager:    manager,
		extractor:  extractor,
		engine:     engine,
		dispatcher: dispatcher,
		aggregator: aggregator,
		research:   research,
	}
}

// WithArchive enables session archival to object storage.
func (s *Service) WithArchive(storage port.ObjectStorage, bucket string) *Service {
	s.storage = storage
	s.archiveBucket = bucket
	return s
}

// WithComplianceAlerts enables alert emails on sanctions findings.
func (s *Service) WithComplianceAlerts(sender port.EmailSender, alertTo string) *Service {
	s.emailSender = sender
	s.alertTo = alertTo
	return s
}

// Manager exposes session CRUD.
func (s *Service) Manager() *Manager {
	return s.manager
}

// MaxDocumentSize caps uploaded documents at 25 MB.
const MaxDocumentSize = 25 * 1024 * 1024

// UploadDocument stores the application document on the session.
func (s *Service) UploadDocument(ctx context.Context, sessionID uuid.UUID, fileBytes []byte, contentType string) error {
	session, err := s.manager.Get(sessionID)
	if err != nil {
		return err
	}
	if _, ok := domain.AllowedContentTypes[contentType]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, contentType)
	}
	if len(fileBytes) > MaxDocumentSize {
		return fmt.Errorf("%w: %d bytes", domain.ErrFileTooLarge, len(fileBytes))
	}
	if err := session.acquire(); err != nil {
		return err
	}
	defer session.release()

	session.SetDocument(fileBytes, contentType)
	return nil
}

// AddSupporting attaches an already-structured supporting document,
// such as a commercial invoice or bill of lading, to the session.
func (s *Service) AddSupporting(ctx context.Context, sessionID uuid.UUID, docType string, fields map[string]string) error {
	session, err := s.manager.Get(sessionID)
	if err != nil {
		return err
	}
	if strings.TrimSpace(docType) == "" {
		return fmt.Errorf("%w: missing document type", domain.ErrInvalidRequest)
	}
	if err := session.acquire(); err != nil {
		return err
	}
	defer session.release()

	session.AddSupporting(docType, fields)
	return nil
}

// Extract runs field extraction for a session's uploaded document.
func (s *Service) Extract(ctx context.Context, sessionID uuid.UUID, opts domain.ExtractionOptions) (*domain.ExtractionResult, error) {
	session, err := s.manager.Get(sessionID)
	if err != nil {
		return nil, err
	}
	fileBytes, contentType := session.Document()
	if len(fileBytes) == 0 {
		return nil, fmt.Errorf("%w: no document uploaded", domain.ErrPrerequisiteMissing)
	}

	if err := session.acquire(); err != nil {
		return nil, err
	}
	defer session.release()

	result, err := s.extractor.Extract(ctx, fileBytes, contentType, opts)
	if err != nil {
		return nil, err
	}
	session.setExtraction(result)
	log.Printf("pipeline.Service: session %s extracted %d/%d fields via %s",
		sessionID, result.FieldsFound, result.FieldsTotal, result.MethodUsed)
	return result, nil
}

// Validate cross-checks the extracted application against the
// supporting documents.
func (s *Service) Validate(ctx context.Context, sessionID uuid.UUID) (*domain.ValidationReport, error) {
	session, err := s.manager.Get(sessionID)
	if err != nil {
		return nil, err
	}
	extraction := session.Extraction()
	if extraction == nil {
		return nil, fmt.Errorf("%w: extraction has not run", domain.ErrPrerequisiteMissing)
	}

	if err := session.acquire(); err != nil {
		return nil, err
	}
	defer session.release()

	docs := &lc.Docs{
		LC:         extraction.Fields,
		Supporting: session.Supporting(),
	}
	report := s.engine.Validate(ctx, docs)
	session.setValidation(report)
	return report, nil
}

// Verify runs external verification for every extracted field with a
// mapped tool. Partial failures leave the other results intact.
func (s *Service) Verify(ctx context.Context, sessionID uuid.UUID) (map[string]*domain.VerificationResult, []error, error) {
	session, err := s.manager.Get(sessionID)
	if err != nil {
		return nil, nil, err
	}
	extraction := session.Extraction()
	if extraction == nil {
		return nil, nil, fmt.Errorf("%w: extraction has not run", domain.ErrPrerequisiteMissing)
	}

	if err := session.acquire(); err != nil {
		return nil, nil, err
	}
	defer session.release()

	requests := verify.BuildRequests(extraction.Fields)
	results, errs := s.dispatcher.RunBatch(ctx, requests)

	byField := make(map[string]*domain.VerificationResult, len(requests))
	var failures []error
	for i, req := range requests {
		if errs[i] != nil {
			failures = append(failures, errs[i])
			continue
		}
		byField[req.FieldKey] = results[i]
		s.maybeAlert(ctx, session.ID, req, results[i])
	}

	session.setVerification(byField)
	return byField, failures, nil
}

// maybeAlert emails compliance when a sanctions screen comes back as a
// potential hit.
func (s *Service) maybeAlert(ctx context.Context, sessionID uuid.UUID, req domain.VerificationRequest, res *domain.VerificationResult) {
	if s.emailSender == nil || s.alertTo == "" || res == nil {
		return
	}
	if req.ToolName != verify.ToolCheckSanctions || res.Verified {
		return
	}
	alert := port.ComplianceAlert{
		SessionID: sessionID.String(),
		FieldKey:  req.FieldKey,
		Value:     req.Value,
		Tool:      req.ToolName,
		Message:   res.Message,
	}
	if err := s.emailSender.SendComplianceAlert(ctx, s.alertTo, alert); err != nil {
		log.Printf("pipeline.Service: compliance alert failed: %v", err)
	}
}

// Chat answers a user message in the session's conversation.
func (s *Service) Chat(ctx context.Context, sessionID uuid.UUID, message, lang string) (*chat.Reply, error) {
	session, err := s.manager.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Extraction() == nil {
		return nil, fmt.Errorf("%w: extraction has not run", domain.ErrPrerequisiteMissing)
	}
	if err := session.acquire(); err != nil {
		return nil, err
	}
	defer session.release()

	reply := s.aggregator.Chat(ctx, session.Conversation(), s.snapshot(session), message, lang)
	session.markConversing()
	return reply, nil
}

// Research answers an open question, searching the document first and
// the live web second.
func (s *Service) Research(ctx context.Context, sessionID uuid.UUID, query string) (*chat.ResearchResult, error) {
	session, err := s.manager.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Extraction() == nil {
		return nil, fmt.Errorf("%w: extraction has not run", domain.ErrPrerequisiteMissing)
	}
	if err := session.acquire(); err != nil {
		return nil, err
	}
	defer session.release()

	return s.research.Research(ctx, s.snapshot(session), query)
}

// PipelineResult is the combined output of a full pipeline run.
type PipelineResult struct {
	Extraction   *domain.ExtractionResult              `json:"extraction"`
	Validation   *domain.ValidationReport              `json:"validation"`
	Verification map[string]*domain.VerificationResult `json:"verification"`
	Failures     []string                              `json:"failures,omitempty"`
}

// RunPipeline runs extract, validate, and verify back to back.
func (s *Service) RunPipeline(ctx context.Context, sessionID uuid.UUID, opts domain.ExtractionOptions) (*PipelineResult, error) {
	extraction, err := s.Extract(ctx, sessionID, opts)
	if err != nil {
		return nil, err
	}
	validation, err := s.Validate(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	verification, failures, err := s.Verify(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result := &PipelineResult{
		Extraction:   extraction,
		Validation:   validation,
		Verification: verification,
	}
	for _, f := range failures {
		result.Failures = append(result.Failures, f.Error())
	}
	return result, nil
}

// Archive writes the session's results to object storage as JSON and
// returns a presigned link to the archive object.
func (s *Service) Archive(ctx context.Context, sessionID uuid.UUID) (string, error) {
	if s.storage == nil {
		return "", fmt.Errorf("%w: archival is not configured", domain.ErrCapabilityFailure)
	}
	session, err := s.manager.Get(sessionID)
	if err != nil {
		return "", err
	}
	extraction := session.Extraction()
	if extraction == nil {
		return "", fmt.Errorf("%w: extraction has not run", domain.ErrPrerequisiteMissing)
	}

	payload := map[string]interface{}{
		"session_id":   session.ID,
		"created_at":   session.CreatedAt,
		"state":        session.State(),
		"extraction":   extraction,
		"validation":   session.Validation(),
		"verification": session.Verification(),
		"archived_at":  time.Now().UTC(),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: marshaling archive: %v", domain.ErrArchiveFailed, err)
	}

	key := fmt.Sprintf("sessions/%s/%s.json", session.ID, time.Now().UTC().Format("20060102T150405Z"))
	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.archiveBucket,
		Key:         key,
		Body:        strings.NewReader(string(body)),
		ContentType: "application/json",
		Size:        int64(len(body)),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrArchiveFailed, err)
	}

	url, err := s.storage.GetPresignedURL(ctx, s.archiveBucket, key, 3600)
	if err != nil {
		return "", fmt.Errorf("%w: presigning: %v", domain.ErrArchiveFailed, err)
	}
	return url, nil
}

func (s *Service) snapshot(session *Session) *chat.SessionSnapshot {
	return &chat.SessionSnapshot{
		Extraction:   session.Extraction(),
		Validation:   session.Validation(),
		Verification: session.Verification(),
	}
}
