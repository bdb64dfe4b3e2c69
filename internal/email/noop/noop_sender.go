package noop

import (
	"context"
	"log"

	"lcintel/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs alerts to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendComplianceAlert(_ context.Context, toEmail string, alert port.ComplianceAlert) error {
	log.Printf("[NOOP EMAIL] Compliance alert for %s: session %s field %s (%s): %s",
		toEmail, alert.SessionID, alert.FieldKey, alert.Tool, alert.Message)
	return nil
}
