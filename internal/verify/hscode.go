package verify

import (
	"context"
	"fmt"
	"strings"

	"lcintel/internal/domain"
)

// verifyHSCode checks an HS code structurally, then tries to confirm
// the classification through research and web search.
func (t *Toolset) verifyHSCode(ctx context.Context, args map[string]string) (*domain.VerificationResult, error) {
	raw := strings.TrimSpace(args["code"])
	hs, ok := ParseHSCode(raw)
	if !ok {
		return &domain.VerificationResult{
			Verified: false,
			Message:  fmt.Sprintf("HS code %q is not structurally valid: expected 4 to 12 digits with chapter 01-99.", raw),
			Source:   sourceFormatValidation,
		}, nil
	}

	lookupURLs := map[string]string{
		"us_hts":   fmt.Sprintf("https://hts.usitc.gov/?query=%s", hs.Code),
		"eu_taric": fmt.Sprintf("https://ec.europa.eu/taxation_customs/dds2/taric/measures.jsp?Lang=en&Taric=%s", hs.Code),
	}

	if t.researcher != nil {
		answer, err := t.researcher.Ask(ctx, fmt.Sprintf(
			"What product does HS code %s (chapter %s) classify? Official description.", hs.Code, hs.Chapter))
		if err == nil && answer != "" {
			return &domain.VerificationResult{
				Verified:   true,
				Confidence: conf(0.85),
				Message:    fmt.Sprintf("HS %s: %s", hs.Code, truncate(answer, 300)),
				Source:     sourcePerplexity,
				Details: map[string]interface{}{
					"code":        hs.Code,
					"chapter":     hs.Chapter,
					"heading":     hs.Heading,
					"subheading":  hs.Subheading,
					"description": truncate(answer, 500),
					"lookup_urls": lookupURLs,
				},
			}, nil
		}
	}

	if t.searcher != nil {
		hits, err := t.searcher.Search(ctx, fmt.Sprintf("HS code %s harmonized system", hs.Code), 3)
		if err == nil && len(hits) > 0 {
			urls := make([]string, 0, len(hits))
			for _, h := range hits {
				urls = append(urls, h.URL)
			}
			return &domain.VerificationResult{
				Verified:   true,
				Confidence: conf(0.75),
				Message:    fmt.Sprintf("HS %s format valid (chapter %s). Web results found.", hs.Code, hs.Chapter),
				Source:     sourceExa,
				Details: map[string]interface{}{
					"code":        hs.Code,
					"chapter":     hs.Chapter,
					"heading":     hs.Heading,
					"subheading":  hs.Subheading,
					"source_urls": urls,
					"lookup_urls": lookupURLs,
				},
			}, nil
		}
	}

	return &domain.VerificationResult{
		Verified:   true,
		Confidence: conf(0.6),
		Message:    fmt.Sprintf("HS %s format valid (chapter %s). See lookup URLs.", hs.Code, hs.Chapter),
		Source:     sourceFormatValidation,
		Details: map[string]interface{}{
			"code":        hs.Code,
			"chapter":     hs.Chapter,
			"heading":     hs.Heading,
			"subheading":  hs.Subheading,
			"lookup_urls": lookupURLs,
		},
	}, nil
}
