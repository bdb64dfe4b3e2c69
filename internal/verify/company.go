package verify

import (
	"context"
	"fmt"
	"strings"

	"lcintel/internal/domain"
)

// specificFraudPhrases indicate the researcher found fraud evidence
// against this specific company, not generic industry articles.
var specificFraudPhrases = []string{
	"convicted of fraud", "charged with fraud", "regulatory action against",
	"fined for", "shut down", "revoked license", "ponzi scheme",
	"criminal charges", "money laundering conviction", "blacklisted",
	"is fraudulent", "is a scam", "not a legitimate",
}

// confirmedLegitPhrases indicate the researcher confirmed legitimacy.
var confirmedLegitPhrases = []string{
	"legitimate", "registered", "established", "incorporated",
	"official website", "operates in", "headquartered",
	"no fraud", "no evidence of fraud", "reputable",
}

// verifyCompany cross-references web search existence signals with an
// authoritative research answer. Fraud is flagged only on specific
// evidence against the company, never on search noise alone.
func (t *Toolset) verifyCompany(ctx context.Context, args map[string]string) (*domain.VerificationResult, error) {
	company := strings.TrimSpace(args["company_name"])
	country := strings.TrimSpace(args["country"])
	if len(company) < 2 {
		return &domain.VerificationResult{
			Verified: false,
			Message:  "Company name too short.",
			Source:   sourceInputValidation,
		}, nil
	}

	var sources []string
	details := map[string]interface{}{
		"company_name": company,
		"country":      country,
		"google_maps":  gmapsSearch(fmt.Sprintf("%s %s headquarters", company, country)),
	}

	if t.searcher != nil {
		hits, err := t.searcher.Search(ctx, strings.TrimSpace(fmt.Sprintf("%s %s company official website", company, country)), 5)
		if err == nil && len(hits) > 0 {
			urls := make([]string, 0, len(hits))
			for _, h := range hits {
				urls = append(urls, h.URL)
			}
			details["source_urls"] = urls
			sources = append(sources, fmt.Sprintf("Exa: %d results", len(hits)))
		}
	}

	var research string
	if t.researcher != nil {
		q := fmt.Sprintf("Is '%s'", company)
		if country != "" {
			q += fmt.Sprintf(" from %s", country)
		}
		q += " a legitimate registered company? Provide: 1) Is it a real, registered business? 2) Official website URL 3) Industry/sector 4) Any SPECIFIC fraud convictions, regulatory actions, or criminal charges? Only flag fraud if THIS SPECIFIC company has fraud issues."
		answer, err := t.researcher.Ask(ctx, q)
		if err == nil && answer != "" {
			research = answer
			details["research"] = truncate(answer, 800)
			sources = append(sources, "Perplexity research")

			lower := strings.ToLower(answer)
			specificFraud := containsAny(lower, specificFraudPhrases)
			confirmedLegit := containsAny(lower, confirmedLegitPhrases)
			if specificFraud && !confirmedLegit {
				return &domain.VerificationResult{
					Verified:   false,
					Confidence: conf(0.75),
					Message:    fmt.Sprintf("Specific fraud evidence found for %q. Review required.", company),
					Source:     strings.Join(sources, ", "),
					Details:    details,
				}, nil
			}
		}
	}

	if len(sources) == 0 {
		return &domain.VerificationResult{
			Verified:   false,
			Confidence: conf(0.2),
			Message:    fmt.Sprintf("No information found for %q. Could indicate a non-existent entity.", company),
			Source:     sourceNoResults,
			Details:    details,
		}, nil
	}

	confidence := 0.65
	if _, hasWeb := details["source_urls"]; hasWeb && research != "" {
		confidence = 0.85
	}
	return &domain.VerificationResult{
		Verified:   true,
		Confidence: conf(confidence),
		Message:    fmt.Sprintf("Company %q verified via %d source(s).", company, len(sources)),
		Source:     strings.Join(sources, ", "),
		Details:    details,
	}, nil
}
