// Package lc holds the built-in cross-document consistency rules for
// Letter of Credit reviews.
package lc

// Document type keys for supporting documents.
const (
	DocCommercialInvoice = "commercial_invoice"
	DocBillOfLading      = "bill_of_lading"
	DocPackingList       = "packing_list"
	DocCertificateOrigin = "certificate_of_origin"
	DocInsurance         = "insurance_certificate"
)

// Docs carries the extracted field maps being cross-checked. LC is the
// Letter of Credit application; Supporting maps document type keys to
// the field maps extracted from presented documents.
type Docs struct {
	LC         map[string]string
	Supporting map[string]map[string]string
}

// LCField returns an application field value and whether it is present.
func (d *Docs) LCField(key string) (string, bool) {
	v, ok := d.LC[key]
	return v, ok && v != ""
}

// SupportingField returns a field from a supporting document.
func (d *Docs) SupportingField(docType, key string) (string, bool) {
	doc, ok := d.Supporting[docType]
	if !ok {
		return "", false
	}
	v, ok := doc[key]
	return v, ok && v != ""
}

// HasSupporting reports whether a supporting document was presented.
func (d *Docs) HasSupporting(docType string) bool {
	_, ok := d.Supporting[docType]
	return ok
}
