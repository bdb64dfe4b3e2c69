package lc

import (
	"fmt"

	"lcintel/internal/domain"
)

// AmountValidators returns the credit amount rules.
func AmountValidators() []*rule {
	withinCredit := &rule{
		ruleKey: "AMT_001", ruleName: "Invoice Within Credit Amount",
		severity: domain.SeverityError,
	}
	withinCredit.validate = func(d *Docs) []domain.ValidationCheck {
		lcRaw, ok := d.LCField("amount_in_figures")
		if !ok {
			return nil
		}
		invRaw, ok := d.SupportingField(DocCommercialInvoice, "invoice_amount")
		if !ok {
			return nil
		}
		lcAmt, ok1 := ParseAmount(lcRaw)
		invAmt, ok2 := ParseAmount(invRaw)
		if !ok1 || !ok2 || lcAmt == 0 {
			return nil
		}
		tolerance := 0.0
		if tolRaw, ok := d.LCField("percentage_tolerance"); ok {
			if t, ok := ParsePercent(tolRaw); ok {
				tolerance = t
			}
		}
		maxAmt := lcAmt * (1 + tolerance/100)
		if invAmt <= maxAmt {
			return withinCredit.check(true, fmt.Sprintf("Invoice amount %.2f is within the credit amount %.2f (tolerance %.1f%%)", invAmt, lcAmt, tolerance))
		}
		return withinCredit.check(false, fmt.Sprintf("Invoice amount %.2f exceeds the credit amount %.2f with %.1f%% tolerance (maximum %.2f)", invAmt, lcAmt, tolerance, maxAmt))
	}

	aboveFaceValue := &rule{
		ruleKey: "AMT_002", ruleName: "Invoice Above Face Value",
		severity: domain.SeverityWarning,
	}
	aboveFaceValue.validate = func(d *Docs) []domain.ValidationCheck {
		lcRaw, ok := d.LCField("amount_in_figures")
		if !ok {
			return nil
		}
		invRaw, ok := d.SupportingField(DocCommercialInvoice, "invoice_amount")
		if !ok {
			return nil
		}
		lcAmt, ok1 := ParseAmount(lcRaw)
		invAmt, ok2 := ParseAmount(invRaw)
		if !ok1 || !ok2 || lcAmt == 0 {
			return nil
		}
		tolerance := 0.0
		if tolRaw, ok := d.LCField("percentage_tolerance"); ok {
			if t, ok := ParsePercent(tolRaw); ok {
				tolerance = t
			}
		}
		maxAmt := lcAmt * (1 + tolerance/100)
		if invAmt > maxAmt {
			// Outside tolerance entirely, covered by the error rule.
			return nil
		}
		if invAmt <= lcAmt {
			return aboveFaceValue.check(true, fmt.Sprintf("Invoice amount %.2f does not exceed the credit face value %.2f", invAmt, lcAmt))
		}
		return aboveFaceValue.check(false, fmt.Sprintf("Invoice amount %.2f exceeds the credit face value %.2f but is covered by the %.1f%% tolerance", invAmt, lcAmt, tolerance))
	}

	return []*rule{withinCredit, aboveFaceValue}
}
