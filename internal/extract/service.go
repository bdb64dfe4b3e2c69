package extract

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"lcintel/internal/domain"
	"lcintel/internal/fields"
	"lcintel/internal/pdfdoc"
	"lcintel/internal/port"
)

// ProviderResolver returns the extractor for an explicitly requested
// provider, with an optional model override.
type ProviderResolver func(provider, model string) (port.FieldExtractor, error)

// Service runs field extraction over an uploaded document and normalizes
// the provider output into an immutable ExtractionResult.
type Service struct {
	extractor port.FieldExtractor
	ocr       port.OCRReader   // optional
	resolver  ProviderResolver // optional
}

// NewService creates an extraction service. ocr may be nil when no OCR
// capability is configured.
func NewService(extractor port.FieldExtractor, ocr port.OCRReader) *Service {
	return &Service{extractor: extractor, ocr: ocr}
}

// WithProviderResolver enables per-request provider and model overrides.
func (s *Service) WithProviderResolver(resolver ProviderResolver) *Service {
	s.resolver = resolver
	return s
}

// Extract classifies the document once, runs the provider with the
// requested or derived method, and normalizes the raw field map. Empty
// and whitespace-only values are treated as absent. The text and ocr
// methods always populate DocumentText; vision on a scanned document
// leaves it empty.
func (s *Service) Extract(ctx context.Context, fileBytes []byte, contentType string, opts domain.ExtractionOptions) (*domain.ExtractionResult, error) {
	if _, ok := domain.AllowedContentTypes[contentType]; !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, contentType)
	}
	if opts.Method != "" && !domain.KnownMethod(opts.Method) {
		return nil, fmt.Errorf("%w: unknown extraction method %q", domain.ErrInvalidRequest, opts.Method)
	}

	extractor, err := s.resolveExtractor(opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	text, err := pdfdoc.ExtractText(fileBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnsupportedFormat, err)
	}
	scanned := pdfdoc.IsScanned(text)

	method := opts.Method
	if method == "" {
		method = domain.MethodText
		if scanned {
			method = domain.MethodVision
		}
	}

	if method == domain.MethodOCR {
		if s.ocr == nil {
			return nil, fmt.Errorf("%w: ocr is not configured", domain.ErrCapabilityFailure)
		}
		ocrText, err := s.ocr.ReadText(ctx, fileBytes)
		if err != nil {
			return nil, mapExtractionError(err)
		}
		text = ocrText
	}

	input := port.ExtractInput{
		FileBytes:    fileBytes,
		ContentType:  contentType,
		DocumentText: text,
		Prompt:       BuildTextExtractionPrompt(text, opts.Language),
	}
	if method == domain.MethodVision {
		input.DocumentText = ""
		input.Prompt = BuildExtractionPrompt(opts.Language)
		input.Vision = true
	}

	out, err := extractor.Extract(ctx, input)
	if err != nil && method == domain.MethodVision && opts.Method == "" && s.ocr != nil {
		// The derived vision path failed. Recover the text layer
		// through OCR and retry with the text method.
		log.Printf("extract.Service: vision extraction failed, falling back to OCR: %v", err)
		ocrText, ocrErr := s.ocr.ReadText(ctx, fileBytes)
		if ocrErr == nil && !pdfdoc.IsScanned(ocrText) {
			method = domain.MethodOCR
			text = ocrText
			out, err = extractor.Extract(ctx, port.ExtractInput{
				FileBytes:    fileBytes,
				ContentType:  contentType,
				DocumentText: ocrText,
				Prompt:       BuildTextExtractionPrompt(ocrText, opts.Language),
			})
		}
	}
	if err != nil {
		return nil, mapExtractionError(err)
	}

	// Vision reads the page images directly; the sub-threshold text
	// layer scraps of a scanned document are not its transcript.
	if method == domain.MethodVision && scanned {
		text = ""
	}

	result := &domain.ExtractionResult{
		Fields:           normalizeFields(out.RawFields),
		DocumentText:     text,
		IsScanned:        scanned,
		MethodUsed:       method,
		ModelUsed:        out.ModelUsed,
		FieldsTotal:      fields.Total(),
		ProcessingTimeMS: time.Since(start).Milliseconds(),
	}
	result.FieldsFound = len(result.Fields)
	return result, nil
}

// resolveExtractor honors an explicit provider request, falling back to
// the configured chain when the caller did not name one.
func (s *Service) resolveExtractor(opts domain.ExtractionOptions) (port.FieldExtractor, error) {
	if opts.Provider == "" {
		if opts.Model != "" {
			return nil, fmt.Errorf("%w: a model override requires a provider", domain.ErrInvalidRequest)
		}
		return s.extractor, nil
	}
	if s.resolver == nil {
		return nil, fmt.Errorf("%w: provider selection is not configured", domain.ErrInvalidRequest)
	}
	extractor, err := s.resolver(opts.Provider, opts.Model)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}
	return extractor, nil
}

// normalizeFields keeps known vocabulary keys with non-empty values.
// A nil or whitespace-only value means the field was absent.
func normalizeFields(raw map[string]*string) map[string]string {
	out := make(map[string]string)
	for key, val := range raw {
		if !fields.Known(key) {
			continue
		}
		if val == nil {
			continue
		}
		v := strings.TrimSpace(*val)
		if v == "" {
			continue
		}
		out[key] = v
	}
	return out
}

func mapExtractionError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrCapabilityTimeout, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrCapabilityFailure, err)
}
