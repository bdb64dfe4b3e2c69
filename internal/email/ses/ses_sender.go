package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"lcintel/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendComplianceAlert(ctx context.Context, toEmail string, alert port.ComplianceAlert) error {
	subject := fmt.Sprintf("Sanctions screening alert: session %s", alert.SessionID)
	htmlBody := buildAlertHTML(alert)
	textBody := fmt.Sprintf(
		"A sanctions screen flagged a party during document review.\n\nSession: %s\nField: %s\nValue: %s\nTool: %s\n\nFinding:\n%s\n\nPlease review before proceeding with this application.",
		alert.SessionID, alert.FieldKey, alert.Value, alert.Tool, alert.Message)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildAlertHTML(alert port.ComplianceAlert) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #B91C1C;">Sanctions screening alert</h2>
  <p>A sanctions screen flagged a party during document review.</p>
  <table style="border-collapse: collapse; width: 100%%;">
    <tr><td style="padding: 6px; color: #666;">Session</td><td style="padding: 6px;">%s</td></tr>
    <tr><td style="padding: 6px; color: #666;">Field</td><td style="padding: 6px;">%s</td></tr>
    <tr><td style="padding: 6px; color: #666;">Value</td><td style="padding: 6px;">%s</td></tr>
    <tr><td style="padding: 6px; color: #666;">Tool</td><td style="padding: 6px;">%s</td></tr>
  </table>
  <p style="margin-top: 20px;"><strong>Finding</strong></p>
  <p style="color: #333;">%s</p>
  <p style="color: #999; font-size: 12px; margin-top: 30px;">Please review before proceeding with this application.</p>
</body>
</html>`, alert.SessionID, alert.FieldKey, alert.Value, alert.Tool, alert.Message)
}
