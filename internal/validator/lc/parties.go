package lc

import (
	"fmt"

	"lcintel/internal/domain"
)

// PartyValidators returns the party name consistency rules.
func PartyValidators() []*rule {
	beneficiaryMatch := &rule{
		ruleKey: "PARTY_001", ruleName: "Beneficiary Name Consistency",
		severity: domain.SeverityWarning,
	}
	beneficiaryMatch.validate = func(d *Docs) []domain.ValidationCheck {
		lcName, ok := d.LCField("beneficiary_name")
		if !ok {
			return nil
		}
		invName, ok := d.SupportingField(DocCommercialInvoice, "seller_name")
		if !ok {
			invName, ok = d.SupportingField(DocCommercialInvoice, "beneficiary_name")
			if !ok {
				return nil
			}
		}
		if NamesMatch(lcName, invName) {
			return beneficiaryMatch.check(true, fmt.Sprintf("Beneficiary %q matches invoice seller %q", lcName, invName))
		}
		return beneficiaryMatch.check(false, fmt.Sprintf("Beneficiary %q does not match invoice seller %q", lcName, invName))
	}

	applicantMatch := &rule{
		ruleKey: "PARTY_002", ruleName: "Applicant Name Consistency",
		severity: domain.SeverityWarning,
	}
	applicantMatch.validate = func(d *Docs) []domain.ValidationCheck {
		lcName, ok := d.LCField("applicant_name")
		if !ok {
			return nil
		}
		invName, ok := d.SupportingField(DocCommercialInvoice, "buyer_name")
		if !ok {
			invName, ok = d.SupportingField(DocCommercialInvoice, "applicant_name")
			if !ok {
				return nil
			}
		}
		if NamesMatch(lcName, invName) {
			return applicantMatch.check(true, fmt.Sprintf("Applicant %q matches invoice buyer %q", lcName, invName))
		}
		return applicantMatch.check(false, fmt.Sprintf("Applicant %q does not match invoice buyer %q", lcName, invName))
	}

	return []*rule{beneficiaryMatch, applicantMatch}
}
