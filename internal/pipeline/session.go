// Package pipeline orchestrates the review lifecycle of a Letter of
// Credit session: extract, validate, verify, then converse.
package pipeline

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"lcintel/internal/domain"
)

// SupportingDocument is a presented document attached to a session.
type SupportingDocument struct {
	DocType string            `json:"doc_type"`
	Fields  map[string]string `json:"fields"`
}

// Session is one document review. All mutation goes through the
// methods; a single busy flag serializes the long-running operations.
type Session struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	mu   sync.Mutex
	busy bool

	state        domain.SessionState
	updatedAt    time.Time
	fileBytes    []byte
	contentType  string
	supporting   map[string]map[string]string
	extraction   *domain.ExtractionResult
	validation   *domain.ValidationReport
	verification map[string]*domain.VerificationResult
	conversation *domain.ConversationState
}

// NewSession creates an empty session.
func NewSession() *Session {
	now := time.Now().UTC()
	return &Session{
		ID:           uuid.New(),
		CreatedAt:    now,
		updatedAt:    now,
		state:        domain.StateEmpty,
		supporting:   make(map[string]map[string]string),
		conversation: &domain.ConversationState{},
	}
}

// acquire marks the session busy. A second concurrent long-running
// operation gets domain.ErrSessionBusy instead of blocking.
func (s *Session) acquire() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return domain.ErrSessionBusy
	}
	s.busy = true
	return nil
}

func (s *Session) release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
}

// State returns the current lifecycle state.
func (s *Session) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// UpdatedAt returns the time of the last state change.
func (s *Session) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

// SetDocument stores the application document bytes.
func (s *Session) SetDocument(fileBytes []byte, contentType string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fileBytes = fileBytes
	s.contentType = contentType
	s.updatedAt = time.Now().UTC()
}

// Document returns the stored application document.
func (s *Session) Document() ([]byte, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fileBytes, s.contentType
}

// AddSupporting attaches an extracted supporting document field map.
func (s *Session) AddSupporting(docType string, fields map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make(map[string]string, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	s.supporting[docType] = copied
	s.updatedAt = time.Now().UTC()
}

// Supporting returns a copy of the supporting document set.
func (s *Session) Supporting() map[string]map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]map[string]string, len(s.supporting))
	for dt, fields := range s.supporting {
		copied := make(map[string]string, len(fields))
		for k, v := range fields {
			copied[k] = v
		}
		out[dt] = copied
	}
	return out
}

func (s *Session) setExtraction(result *domain.ExtractionResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.extraction = result
	s.state = domain.StateExtracted
	s.updatedAt = time.Now().UTC()
}

// Extraction returns the extraction result, or nil before extraction.
func (s *Session) Extraction() *domain.ExtractionResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.extraction
}

func (s *Session) setValidation(report *domain.ValidationReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.validation = report
	s.state = domain.StateValidated
	s.updatedAt = time.Now().UTC()
}

// Validation returns the consistency report, or nil before validation.
func (s *Session) Validation() *domain.ValidationReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validation
}

func (s *Session) setVerification(results map[string]*domain.VerificationResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verification = results
	s.state = domain.StateVerified
	s.updatedAt = time.Now().UTC()
}

// Verification returns the per-field verification results, or nil.
func (s *Session) Verification() map[string]*domain.VerificationResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.verification
}

// Conversation returns the append-only conversation state.
func (s *Session) Conversation() *domain.ConversationState {
	return s.conversation
}

func (s *Session) markConversing() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = domain.StateConversing
	s.updatedAt = time.Now().UTC()
}
