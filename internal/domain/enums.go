package domain

// ExtractionMethod identifies which extraction strategy produced a result.
type ExtractionMethod string

const (
	MethodVision ExtractionMethod = "vision"
	MethodText   ExtractionMethod = "text"
	MethodOCR    ExtractionMethod = "ocr"
)

// KnownMethod reports whether m names a supported extraction method.
func KnownMethod(m ExtractionMethod) bool {
	switch m {
	case MethodVision, MethodText, MethodOCR:
		return true
	}
	return false
}

// ExtractionOptions carries caller overrides for an extraction run.
// Every field is optional: an empty Method means the service classifies
// the document and picks one, an empty Provider means the configured
// fallback chain, an empty Model means the provider's configured model,
// and an empty Language means no document language hint.
type ExtractionOptions struct {
	Method   ExtractionMethod `json:"method"`
	Provider string           `json:"provider"`
	Model    string           `json:"model"`
	Language string           `json:"language"`
}

// ValidationSeverity classifies how serious a failed validation check is.
type ValidationSeverity string

const (
	SeverityWarning ValidationSeverity = "warning"
	SeverityError   ValidationSeverity = "error"
)

// ChatRole identifies the author of a conversation message.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// SessionState tracks how far a document session has progressed.
// Extracted is reachable only from Empty; the later states only read the
// extraction result and may be re-entered in any order.
type SessionState string

const (
	StateEmpty      SessionState = "empty"
	StateExtracted  SessionState = "extracted"
	StateValidated  SessionState = "validated"
	StateVerified   SessionState = "verified"
	StateConversing SessionState = "conversing"
)

// FileType represents the allowed upload types.
type FileType string

const (
	FileTypePDF FileType = "pdf"
)

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
}
