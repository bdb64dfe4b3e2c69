package port

import "context"

// ComplianceAlert describes a verification finding worth escalating.
type ComplianceAlert struct {
	SessionID string
	FieldKey  string
	Value     string
	Tool      string
	Message   string
}

// EmailSender defines the contract for sending compliance alert emails.
type EmailSender interface {
	SendComplianceAlert(ctx context.Context, toEmail string, alert ComplianceAlert) error
}
