package extract

import (
	"strings"

	"lcintel/internal/fields"
	"lcintel/internal/i18n"
)

// BuildExtractionPrompt returns the field extraction prompt for a Letter
// of Credit application. The expected output is a single flat JSON object
// keyed by the vocabulary field keys, with null for fields the document
// does not contain. language is an optional hint about the document's
// language; empty means unknown.
func BuildExtractionPrompt(language string) string {
	var b strings.Builder

	b.WriteString(`You are a trade-finance document data extraction assistant. Analyze the provided Letter of Credit application and extract its fields.

CRITICAL RULES:
- Return ONLY valid JSON with no markdown formatting, no code fences, no explanation. Just the raw JSON object.
- The JSON object must be flat: one key per field listed below.
- Use null for any field that is not present in the document. Never invent values.
- Copy values verbatim from the document. Do not translate, summarize, or reformat text fields.
- Normalize all dates to DD/MM/YYYY format.
- Keep amounts with their currency code and thousand separators, for example "USD 150,000.00".
- For checkbox fields, return "Yes" if the box is checked and null otherwise.
`)
	if language == "" {
		b.WriteString("- The document may be in English or Arabic. Field labels below are in English.\n")
	} else {
		b.WriteString("- The document is expected to be in ")
		b.WriteString(i18n.Name(language))
		b.WriteString(". Field labels below are in English.\n")
	}
	b.WriteString(`
FIELDS TO EXTRACT:
`)

	for _, sec := range fields.Sections {
		b.WriteString("\n")
		b.WriteString(sec.EN)
		b.WriteString(":\n")
		for _, f := range sec.Fields {
			b.WriteString("- ")
			b.WriteString(f.Key)
			b.WriteString(": ")
			b.WriteString(f.EN)
			if len(f.Options) > 0 {
				b.WriteString(" (one of: ")
				b.WriteString(strings.Join(f.Options, ", "))
				b.WriteString(")")
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// BuildTextExtractionPrompt wraps the extraction prompt around a
// pre-extracted text layer for providers called without the document file.
func BuildTextExtractionPrompt(documentText, language string) string {
	var b strings.Builder
	b.WriteString(BuildExtractionPrompt(language))
	b.WriteString("\nDOCUMENT TEXT:\n")
	b.WriteString(documentText)
	return b.String()
}
