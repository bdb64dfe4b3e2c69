package port

import "context"

// ExtractInput carries the data needed for L/C field extraction.
type ExtractInput struct {
	FileBytes   []byte
	ContentType string
	// DocumentText is the pre-extracted text layer, set when Vision is false.
	DocumentText string
	Prompt       string
	// Vision selects image-based extraction for scanned documents.
	Vision bool
}

// ExtractOutput contains the raw field map from an LLM extraction provider.
// A nil value means the field was absent from the document.
type ExtractOutput struct {
	RawFields map[string]*string
	ModelUsed string
}

// FieldExtractor abstracts LLM-based field extraction.
type FieldExtractor interface {
	Extract(ctx context.Context, input ExtractInput) (*ExtractOutput, error)
}
