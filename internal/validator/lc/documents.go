package lc

import (
	"fmt"

	"lcintel/internal/domain"
)

// requiredDoc ties an application checkbox field to the supporting
// document type it calls for.
type requiredDoc struct {
	ruleKey  string
	lcField  string
	docType  string
	docLabel string
}

var requiredDocs = []requiredDoc{
	{"DOC_001", "bills_of_lading", DocBillOfLading, "bill of lading"},
	{"DOC_002", "commercial_invoice", DocCommercialInvoice, "commercial invoice"},
	{"DOC_003", "packing_list", DocPackingList, "packing list"},
	{"DOC_004", "certificate_of_origin", DocCertificateOrigin, "certificate of origin"},
	{"DOC_005", "insurance_certificate", DocInsurance, "insurance certificate"},
}

// DocumentValidators returns the required document presence rules.
func DocumentValidators() []*rule {
	rules := make([]*rule, 0, len(requiredDocs))
	for _, rd := range requiredDocs {
		rd := rd
		r := &rule{
			ruleKey: rd.ruleKey, ruleName: fmt.Sprintf("Required Document: %s", rd.docLabel),
			severity: domain.SeverityWarning,
		}
		r.validate = func(d *Docs) []domain.ValidationCheck {
			required, ok := d.LCField(rd.lcField)
			if !ok || required != "Yes" {
				return nil
			}
			if d.HasSupporting(rd.docType) {
				return r.check(true, fmt.Sprintf("Required %s was presented", rd.docLabel))
			}
			return r.check(false, fmt.Sprintf("Application requires a %s but none was presented", rd.docLabel))
		}
		rules = append(rules, r)
	}
	return rules
}
