package lc

import (
	"fmt"
	"sort"
	"strings"

	"lcintel/internal/domain"
)

// ReferenceValidators returns the credit reference consistency rules.
func ReferenceValidators() []*rule {
	creditNumber := &rule{
		ruleKey: "NUM_001", ruleName: "Credit Number Consistency",
		severity: domain.SeverityError,
	}
	creditNumber.validate = func(d *Docs) []domain.ValidationCheck {
		lcNumber, ok := d.LCField("lc_number")
		if !ok {
			return nil
		}

		// Deterministic order across the supporting document set.
		docTypes := make([]string, 0, len(d.Supporting))
		for dt := range d.Supporting {
			docTypes = append(docTypes, dt)
		}
		sort.Strings(docTypes)

		var checks []domain.ValidationCheck
		for _, dt := range docTypes {
			docNumber, ok := d.SupportingField(dt, "lc_number")
			if !ok {
				continue
			}
			// Reference numbers must match verbatim, not fuzzily.
			if strings.TrimSpace(docNumber) == strings.TrimSpace(lcNumber) {
				checks = append(checks, creditNumber.check(true, fmt.Sprintf("Credit number on %s matches %q", dt, lcNumber))...)
			} else {
				checks = append(checks, creditNumber.check(false, fmt.Sprintf("Credit number on %s is %q, application states %q", dt, docNumber, lcNumber))...)
			}
		}
		return checks
	}

	return []*rule{creditNumber}
}
