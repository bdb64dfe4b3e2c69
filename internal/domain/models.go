package domain

import (
	"fmt"
	"time"
)

// ExtractionResult is the canonical output of one extraction run.
// It is immutable once produced: downstream stages only read it.
type ExtractionResult struct {
	// Fields maps field keys to extracted values. Absent and empty values
	// are normalized away at the boundary, so presence in the map means
	// the field carries a real value.
	Fields           map[string]string `json:"fields"`
	DocumentText     string            `json:"document_text"`
	IsScanned        bool              `json:"is_scanned"`
	MethodUsed       ExtractionMethod  `json:"method_used"`
	ModelUsed        string            `json:"model_used"`
	FieldsFound      int               `json:"fields_found"`
	FieldsTotal      int               `json:"fields_total"`
	ProcessingTimeMS int64             `json:"processing_time_ms"`
}

// ValidationCheck is the outcome of a single validation rule.
// Severity is only meaningful when Passed is false.
type ValidationCheck struct {
	RuleName string             `json:"rule_name"`
	Message  string             `json:"message"`
	Passed   bool               `json:"passed"`
	Severity ValidationSeverity `json:"severity"`
}

// ValidationReport aggregates a full validation run.
type ValidationReport struct {
	Checks       []ValidationCheck `json:"checks"`
	TotalChecks  int               `json:"total_checks"`
	PassedChecks int               `json:"passed_checks"`
	Warnings     int               `json:"warnings"`
	Errors       int               `json:"errors"`
}

// VerificationRequest is one verifiable field queued for dispatch.
type VerificationRequest struct {
	FieldKey string            `json:"field_key,omitempty"`
	ToolName string            `json:"tool_name"`
	Args     map[string]string `json:"args"`
	Value    string            `json:"value,omitempty"`
}

// VerificationResult is the outcome of one external verification call.
// Confidence is reported only when the verifier itself returned one.
type VerificationResult struct {
	Verified   bool                   `json:"verified"`
	Message    string                 `json:"message"`
	Confidence *float64               `json:"confidence,omitempty"`
	Source     string                 `json:"source,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty"`
}

// VerificationFieldError scopes a failure to one position in a batch.
type VerificationFieldError struct {
	Index    int
	FieldKey string
	Err      error
}

func (e *VerificationFieldError) Error() string {
	if e.FieldKey != "" {
		return fmt.Sprintf("verification of %s (index %d) failed: %v", e.FieldKey, e.Index, e.Err)
	}
	return fmt.Sprintf("verification at index %d failed: %v", e.Index, e.Err)
}

func (e *VerificationFieldError) Unwrap() error {
	return e.Err
}

// ChatMessage is one entry in a session's conversation history.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// ConversationState holds a session's append-only message history.
// Entries are never reordered or edited; Append is the only mutation.
type ConversationState struct {
	history []ChatMessage
}

// Append adds a message to the end of the history.
func (c *ConversationState) Append(role ChatRole, content string) {
	c.history = append(c.history, ChatMessage{Role: role, Content: content})
}

// History returns a copy of the message history.
func (c *ConversationState) History() []ChatMessage {
	out := make([]ChatMessage, len(c.history))
	copy(out, c.history)
	return out
}

// Len returns the number of messages in the history.
func (c *ConversationState) Len() int {
	return len(c.history)
}

// Tail returns a copy of at most n most recent messages.
func (c *ConversationState) Tail(n int) []ChatMessage {
	if n <= 0 || n >= len(c.history) {
		return c.History()
	}
	out := make([]ChatMessage, n)
	copy(out, c.history[len(c.history)-n:])
	return out
}

// CustomerRecord is a read-only row from the operational record store,
// joined across the customer, account, and L/C tables.
type CustomerRecord struct {
	CustomerNo         string     `db:"customer_no" json:"customer_no"`
	CustomerName       string     `db:"customer_name" json:"customer_name"`
	ShortName          string     `db:"short_name" json:"short_name"`
	Address            string     `db:"address" json:"address"`
	Country            string     `db:"country" json:"country"`
	Nationality        string     `db:"nationality" json:"nationality"`
	AccountNumber      string     `db:"account_number" json:"account_number"`
	AccountDescription string     `db:"account_description" json:"account_description"`
	AccountCurrency    string     `db:"account_currency" json:"account_currency"`
	CurrentBalance     float64    `db:"current_balance" json:"current_balance"`
	AccountStatus      string     `db:"account_status" json:"account_status"`
	AccountOpenDate    *time.Time `db:"account_open_date" json:"account_open_date"`
	LCNumber           string     `db:"lc_number" json:"lc_number"`
	LCAmount           string     `db:"lc_amount" json:"lc_amount"`
	LCCurrency         string     `db:"lc_currency" json:"lc_currency"`
	SwiftNumber        string     `db:"swift_number" json:"swift_number"`
	ApplicantBank      string     `db:"applicant_bank" json:"applicant_bank"`
	HSCode             string     `db:"hs_code" json:"hs_code"`
	ExpiryDate         string     `db:"expiry_date" json:"expiry_date"`
}
