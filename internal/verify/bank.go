package verify

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"lcintel/internal/domain"
)

// legalSuffixes are stripped from bank names to widen the search.
var legalSuffixes = []string{
	"S.P.A.", "SPA", "S.A.", "SA", "PLC", "LTD", "LLC", "AG", "GMBH", "N.V.", "NV",
}

// bankSearchNames expands a bank name into progressively shorter
// search terms, deduplicated case-insensitively.
func bankSearchNames(bankName string) []string {
	names := []string{bankName}
	words := strings.Fields(bankName)
	if len(words) > 3 {
		names = append(names, strings.Join(words[:3], " "))
	}
	if len(words) > 2 {
		names = append(names, strings.Join(words[:2], " "))
	}
	if len(words) > 1 {
		names = append(names, words[0])
	}
	for _, sfx := range legalSuffixes {
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(sfx) + `\b`)
		cleaned := strings.TrimSpace(re.ReplaceAllString(bankName, ""))
		if cleaned != "" && !strings.EqualFold(cleaned, bankName) {
			names = append(names, cleaned)
		}
	}

	seen := make(map[string]bool)
	var out []string
	for _, n := range names {
		n = strings.TrimSpace(n)
		key := strings.ToUpper(n)
		if len(n) < 2 || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, n)
	}
	return out
}

// verifyBankByName searches a bank by name. The directory tier only
// applies with a premium plan; otherwise web search and research carry
// the lookup.
func (t *Toolset) verifyBankByName(ctx context.Context, args map[string]string) (*domain.VerificationResult, error) {
	bankName := strings.TrimSpace(args["bank_name"])
	country := strings.TrimSpace(args["country_code"])
	if len(bankName) < 2 {
		return &domain.VerificationResult{
			Verified: false,
			Message:  "Bank name too short.",
			Source:   sourceInputValidation,
		}, nil
	}

	names := bankSearchNames(bankName)

	if t.premium && t.swiftDir != nil {
		for _, sname := range names {
			rec, err := t.swiftDir.LookupSwift(ctx, sname)
			if err != nil {
				continue
			}
			return &domain.VerificationResult{
				Verified:   true,
				Confidence: conf(0.9),
				Message:    fmt.Sprintf("Found directory record for %q (searched %q).", bankName, sname),
				Source:     sourceAPINinjasPremium,
				Details: map[string]interface{}{
					"bank_name":   rec.BankName,
					"swift":       rec.Swift,
					"city":        rec.City,
					"country":     rec.Country,
					"google_maps": gmapsSearch(fmt.Sprintf("%s %s", rec.BankName, rec.City)),
				},
			}, nil
		}
	}

	if t.searcher != nil {
		q := fmt.Sprintf("%s bank SWIFT BIC code official website", bankName)
		if country != "" {
			q += " " + country
		}
		hits, err := t.searcher.Search(ctx, q, 5)
		if err == nil && len(hits) > 0 {
			urls := make([]string, 0, len(hits))
			results := make([]map[string]interface{}, 0, len(hits))
			for _, h := range hits {
				urls = append(urls, h.URL)
				results = append(results, map[string]interface{}{
					"title":   h.Title,
					"url":     h.URL,
					"snippet": truncate(h.Snippet, 250),
				})
			}
			return &domain.VerificationResult{
				Verified:   true,
				Confidence: conf(0.75),
				Message:    fmt.Sprintf("%q found via web search (%d results).", bankName, len(hits)),
				Source:     sourceExa,
				Details: map[string]interface{}{
					"bank_name":   bankName,
					"results":     results,
					"source_urls": urls,
					"google_maps": gmapsSearch(bankName + " bank"),
				},
			}, nil
		}
	}

	if t.researcher != nil {
		answer, err := t.researcher.Ask(ctx, fmt.Sprintf(
			"Is '%s' a real bank? Give SWIFT/BIC codes, headquarters, official website. If misspelled suggest the correct name.", bankName))
		if err == nil && answer != "" {
			return &domain.VerificationResult{
				Verified:   true,
				Confidence: conf(0.7),
				Message:    fmt.Sprintf("%q: %s", bankName, truncate(answer, 200)),
				Source:     sourcePerplexity,
				Details: map[string]interface{}{
					"bank_name":   bankName,
					"research":    truncate(answer, 800),
					"google_maps": gmapsSearch(bankName + " bank headquarters"),
				},
			}, nil
		}
	}

	return &domain.VerificationResult{
		Verified:   false,
		Confidence: conf(0.2),
		Message:    fmt.Sprintf("No information for %q. Names tried: %s", bankName, strings.Join(names, ", ")),
		Source:     sourceNoResults,
		Details: map[string]interface{}{
			"names_tried": names,
			"google_maps": gmapsSearch(bankName + " bank"),
		},
	}, nil
}
