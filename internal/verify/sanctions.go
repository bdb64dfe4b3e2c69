package verify

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"lcintel/internal/domain"
)

// hitWords in a research answer indicate a possible sanctions listing.
var hitWords = []string{
	"sanctioned", "designated", "listed on", "sdn list", "blocked", "restricted",
}

// clearWords indicate the researcher explicitly found no listing.
var clearWords = []string{
	"no sanctions", "not listed", "not found on", "no matches", "not sanctioned",
	"no indication", "does not appear", "no evidence", "not on any",
}

// checkSanctions screens a party name against sanctions lists via
// research, falling back to web search and a manual OFAC link.
func (t *Toolset) checkSanctions(ctx context.Context, args map[string]string) (*domain.VerificationResult, error) {
	party := strings.TrimSpace(args["party_name"])
	if len(party) < 2 {
		return &domain.VerificationResult{
			Verified: false,
			Message:  "Party name too short.",
			Source:   sourceInputValidation,
		}, nil
	}

	ofacURL := "https://sanctionssearch.ofac.treas.gov/Details.aspx?id=" + url.QueryEscape(party)

	if t.researcher != nil {
		answer, err := t.researcher.Ask(ctx, fmt.Sprintf(
			"Is '%s' on any OFAC SDN, EU, or UN sanctions list? Check for fraud or money laundering too. If no hits, say explicitly 'no sanctions found'.", party))
		if err == nil && answer != "" {
			content := strings.ToLower(answer)
			isHit := containsAny(content, hitWords)
			isClear := containsAny(content, clearWords)
			if isHit && !isClear {
				return &domain.VerificationResult{
					Verified:   false,
					Confidence: conf(0.8),
					Message:    fmt.Sprintf("POTENTIAL SANCTIONS HIT for %q. Manual review required.", party),
					Source:     sourcePerplexity,
					Details: map[string]interface{}{
						"party":           party,
						"research":        truncate(answer, 800),
						"ofac_search_url": ofacURL,
					},
				}, nil
			}
			return &domain.VerificationResult{
				Verified:   true,
				Confidence: conf(0.7),
				Message:    fmt.Sprintf("No sanctions hits found for %q.", party),
				Source:     sourcePerplexity,
				Details: map[string]interface{}{
					"party":           party,
					"research":        truncate(answer, 500),
					"ofac_search_url": ofacURL,
				},
			}, nil
		}
	}

	if t.searcher != nil {
		hits, err := t.searcher.Search(ctx, fmt.Sprintf("'%s' OFAC sanctions SDN list", party), 5)
		if err == nil && len(hits) > 0 {
			urls := make([]string, 0, len(hits))
			for _, h := range hits {
				urls = append(urls, h.URL)
			}
			return &domain.VerificationResult{
				Verified:   true,
				Confidence: conf(0.5),
				Message:    fmt.Sprintf("Web search returned %d results for %q. Manual review recommended.", len(hits), party),
				Source:     sourceExa,
				Details: map[string]interface{}{
					"party":           party,
					"source_urls":     urls,
					"ofac_search_url": ofacURL,
				},
			}, nil
		}
	}

	return &domain.VerificationResult{
		Verified:   true,
		Confidence: conf(0.3),
		Message:    fmt.Sprintf("Could not screen %q. Use the OFAC link manually.", party),
		Source:     sourceNoResults,
		Details: map[string]interface{}{
			"party":           party,
			"ofac_search_url": ofacURL,
		},
	}, nil
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
