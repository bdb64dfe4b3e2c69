package verify

import (
	"context"
	"fmt"
	"strings"

	"lcintel/internal/domain"
)

// deepResearch runs a free-form verification query against the live
// web, preferring cited research over bare search results.
func (t *Toolset) deepResearch(ctx context.Context, args map[string]string) (*domain.VerificationResult, error) {
	query := strings.TrimSpace(args["query"])
	if query == "" {
		return &domain.VerificationResult{
			Verified: false,
			Message:  "No research query provided.",
			Source:   sourceInputValidation,
		}, nil
	}

	full := query
	if ctxNote := strings.TrimSpace(args["context"]); ctxNote != "" {
		full = fmt.Sprintf("%s Context: %s", query, ctxNote)
	}

	if t.researcher != nil {
		answer, err := t.researcher.Ask(ctx, full)
		if err == nil && answer != "" {
			return &domain.VerificationResult{
				Verified:   true,
				Confidence: conf(0.75),
				Message:    "Research completed.",
				Source:     sourcePerplexity,
				Details: map[string]interface{}{
					"query":    query,
					"research": answer,
				},
			}, nil
		}
	}

	if t.searcher != nil {
		hits, err := t.searcher.Search(ctx, query, 5)
		if err == nil && len(hits) > 0 {
			urls := make([]string, 0, len(hits))
			results := make([]map[string]interface{}, 0, len(hits))
			for _, h := range hits {
				urls = append(urls, h.URL)
				results = append(results, map[string]interface{}{
					"title": h.Title,
					"url":   h.URL,
					"text":  truncate(h.Snippet, 300),
				})
			}
			return &domain.VerificationResult{
				Verified:   true,
				Confidence: conf(0.5),
				Message:    fmt.Sprintf("%d web results found.", len(hits)),
				Source:     sourceExa,
				Details: map[string]interface{}{
					"query":       query,
					"results":     results,
					"source_urls": urls,
				},
			}, nil
		}
	}

	return &domain.VerificationResult{
		Verified:   false,
		Confidence: conf(0.1),
		Message:    "No results. Check research provider configuration.",
		Source:     sourceNoResults,
		Details: map[string]interface{}{
			"query": query,
		},
	}, nil
}
