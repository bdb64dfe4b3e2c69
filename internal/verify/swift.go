package verify

import (
	"context"
	"fmt"
	"strings"

	"lcintel/internal/domain"
)

// verifySwiftCode resolves a SWIFT/BIC code. Malformed codes are
// expanded into repair candidates before lookup. Tiers: directory
// lookup, research, web search, then bare format validation.
func (t *Toolset) verifySwiftCode(ctx context.Context, args map[string]string) (*domain.VerificationResult, error) {
	raw := strings.TrimSpace(args["code"])
	if raw == "" {
		return &domain.VerificationResult{
			Verified: false,
			Message:  "No SWIFT code provided.",
			Source:   sourceInputValidation,
		}, nil
	}

	candidates := SwiftCandidates(raw)
	cleaned := candidates[0]

	if t.swiftDir != nil {
		for _, swift := range candidates {
			if !ValidSwiftFormat(swift) {
				continue
			}
			rec, err := t.swiftDir.LookupSwift(ctx, swift)
			if err != nil {
				continue
			}
			note := ""
			if swift != cleaned {
				note = fmt.Sprintf(" (cleaned from %q)", raw)
			}
			return &domain.VerificationResult{
				Verified:   true,
				Confidence: conf(0.95),
				Message:    fmt.Sprintf("SWIFT %s verified: %s in %s, %s%s", swift, rec.BankName, rec.City, rec.Country, note),
				Source:     sourceAPINinjas,
				Details: map[string]interface{}{
					"original_input": raw,
					"code":           swift,
					"bank_name":      rec.BankName,
					"city":           rec.City,
					"country":        rec.Country,
					"google_maps":    gmapsSearch(fmt.Sprintf("%s %s %s", rec.BankName, rec.City, rec.Country)),
				},
			}, nil
		}
	}

	if t.researcher != nil {
		answer, err := t.researcher.Ask(ctx, fmt.Sprintf(
			"What bank has SWIFT/BIC code '%s'? Give bank name, city, country. If the code seems wrong, suggest the correct SWIFT code.", raw))
		if err == nil && answer != "" {
			return &domain.VerificationResult{
				Verified:   true,
				Confidence: conf(0.7),
				Message:    fmt.Sprintf("SWIFT %q: %s", raw, truncate(answer, 250)),
				Source:     sourcePerplexity,
				Details: map[string]interface{}{
					"original_input":   raw,
					"candidates_tried": candidates,
					"research":         truncate(answer, 600),
				},
			}, nil
		}
	}

	if t.searcher != nil {
		hits, err := t.searcher.Search(ctx, fmt.Sprintf("SWIFT BIC code %s bank", raw), 3)
		if err == nil && len(hits) > 0 {
			urls := make([]string, 0, len(hits))
			for _, h := range hits {
				urls = append(urls, h.URL)
			}
			return &domain.VerificationResult{
				Verified:   true,
				Confidence: conf(0.5),
				Message:    fmt.Sprintf("SWIFT %q: web results found.", raw),
				Source:     sourceExa,
				Details: map[string]interface{}{
					"original_input": raw,
					"source_urls":    urls,
				},
			}, nil
		}
	}

	valid := ValidSwiftFormat(cleaned)
	msg := fmt.Sprintf("SWIFT %q has a valid format but could not be confirmed. Tried: %s", raw, strings.Join(candidates, ", "))
	if !valid {
		msg = fmt.Sprintf("SWIFT %q is not a structurally valid BIC. Tried: %s", raw, strings.Join(candidates, ", "))
	}
	return &domain.VerificationResult{
		Verified:   valid,
		Confidence: conf(0.3),
		Message:    msg,
		Source:     sourceFormatValidation,
		Details: map[string]interface{}{
			"original_input":   raw,
			"candidates_tried": candidates,
		},
	}, nil
}
