package lc

import (
	"fmt"

	"lcintel/internal/domain"
)

// DateValidators returns the date ordering rules.
func DateValidators() []*rule {
	expiryAfterIssue := &rule{
		ruleKey: "DATE_001", ruleName: "Expiry After Issue",
		severity: domain.SeverityError,
	}
	expiryAfterIssue.validate = func(d *Docs) []domain.ValidationCheck {
		issueRaw, ok1 := d.LCField("date")
		expiryRaw, ok2 := d.LCField("expiry_date")
		if !ok1 || !ok2 {
			return nil
		}
		issue, ok1 := ParseDate(issueRaw)
		expiry, ok2 := ParseDate(expiryRaw)
		if !ok1 || !ok2 {
			return nil
		}
		if expiry.After(issue) {
			return expiryAfterIssue.check(true, fmt.Sprintf("Expiry date %s falls after issue date %s", expiryRaw, issueRaw))
		}
		return expiryAfterIssue.check(false, fmt.Sprintf("Expiry date %s is not after issue date %s", expiryRaw, issueRaw))
	}

	shipmentBeforeExpiry := &rule{
		ruleKey: "DATE_002", ruleName: "Shipment Before Expiry",
		severity: domain.SeverityError,
	}
	shipmentBeforeExpiry.validate = func(d *Docs) []domain.ValidationCheck {
		shipRaw, ok1 := d.LCField("latest_shipment_date")
		expiryRaw, ok2 := d.LCField("expiry_date")
		if !ok1 || !ok2 {
			return nil
		}
		ship, ok1 := ParseDate(shipRaw)
		expiry, ok2 := ParseDate(expiryRaw)
		if !ok1 || !ok2 {
			return nil
		}
		if !ship.After(expiry) {
			return shipmentBeforeExpiry.check(true, fmt.Sprintf("Latest shipment date %s is within credit validity ending %s", shipRaw, expiryRaw))
		}
		return shipmentBeforeExpiry.check(false, fmt.Sprintf("Latest shipment date %s falls after credit expiry %s", shipRaw, expiryRaw))
	}

	onBoardWithinDeadline := &rule{
		ruleKey: "DATE_003", ruleName: "On Board Within Shipment Deadline",
		severity: domain.SeverityError,
	}
	onBoardWithinDeadline.validate = func(d *Docs) []domain.ValidationCheck {
		deadlineRaw, ok := d.LCField("latest_shipment_date")
		if !ok {
			return nil
		}
		deadline, ok := ParseDate(deadlineRaw)
		if !ok {
			return nil
		}
		onBoardRaw, ok := d.SupportingField(DocBillOfLading, "on_board_date")
		if !ok {
			return nil
		}
		onBoard, ok := ParseDate(onBoardRaw)
		if !ok {
			return nil
		}
		if !onBoard.After(deadline) {
			return onBoardWithinDeadline.check(true, fmt.Sprintf("Bill of lading on board date %s meets the shipment deadline %s", onBoardRaw, deadlineRaw))
		}
		return onBoardWithinDeadline.check(false, fmt.Sprintf("Bill of lading on board date %s is after the shipment deadline %s", onBoardRaw, deadlineRaw))
	}

	return []*rule{expiryAfterIssue, shipmentBeforeExpiry, onBoardWithinDeadline}
}
