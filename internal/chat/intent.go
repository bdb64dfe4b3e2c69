package chat

import "strings"

// Intent is a pipeline action the user asked for in conversation.
type Intent string

const (
	IntentNone     Intent = ""
	IntentExtract  Intent = "extract"
	IntentValidate Intent = "validate"
	IntentVerify   Intent = "verify"
)

var extractKeywords = []string{
	"extract", "استخرج", "extraer", "estrarre", "read the pdf", "process the document",
}

var validateKeywords = []string{
	"validate", "تحقق", "validar", "validare", "check consistency", "compare documents",
}

var verifyKeywords = []string{
	"verify hs", "check swift", "sanctions", "track shipment", "verify company",
	"تحقق من", "verificar", "verificare",
}

// DetectIntent looks for pipeline action keywords in a user message.
// Extraction keywords win over validation, which wins over
// verification, matching how overlapping multilingual keywords such as
// the Arabic "تحقق" family are resolved.
func DetectIntent(message string) Intent {
	msg := strings.ToLower(strings.TrimSpace(message))

	for _, kw := range extractKeywords {
		if strings.Contains(msg, kw) {
			return IntentExtract
		}
	}
	for _, kw := range validateKeywords {
		if strings.Contains(msg, kw) {
			return IntentValidate
		}
	}
	for _, kw := range verifyKeywords {
		if strings.Contains(msg, kw) {
			return IntentVerify
		}
	}
	return IntentNone
}
