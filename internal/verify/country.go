package verify

import (
	"regexp"
	"strings"
)

// countryAliases maps country names and demonyms common on L/C
// documents to ISO 3166-1 alpha-2 codes.
var countryAliases = map[string]string{
	"libya": "LY", "libia": "LY", "libyan": "LY",
	"italy": "IT", "italia": "IT", "italian": "IT",
	"egypt": "EG", "egyptian": "EG",
	"tunisia": "TN", "tunisian": "TN",
	"algeria": "DZ", "algerian": "DZ",
	"morocco": "MA", "moroccan": "MA",
	"turkey": "TR", "turkiye": "TR",
	"china": "CN", "chinese": "CN",
	"india": "IN", "indian": "IN",
	"usa": "US", "united states": "US", "america": "US",
	"uk": "GB", "united kingdom": "GB", "england": "GB", "britain": "GB",
	"germany": "DE", "german": "DE", "deutschland": "DE",
	"france": "FR", "french": "FR",
	"spain": "ES", "spanish": "ES",
	"greece": "GR", "greek": "GR",
	"lebanon": "LB", "lebanese": "LB",
	"jordan": "JO", "jordanian": "JO",
	"uae": "AE", "emirates": "AE", "dubai": "AE",
	"saudi": "SA", "saudi arabia": "SA",
}

var trailingCountryCode = regexp.MustCompile(`,\s*([A-Z]{2})\s*$`)

// GuessCountryCode extracts an ISO country code from free text such as
// a port name or context string. Returns "" when nothing matches.
func GuessCountryCode(text string) string {
	t := strings.ToLower(strings.TrimSpace(text))
	for alias, code := range countryAliases {
		if strings.Contains(t, alias) {
			return code
		}
	}
	// Trailing two-letter code like "TRIPOLI, LY".
	if m := trailingCountryCode.FindStringSubmatch(strings.TrimSpace(text)); m != nil {
		return m[1]
	}
	return ""
}

// StripCountryWords removes country aliases from a port search term so
// "Tripoli Libya" searches as "Tripoli".
func StripCountryWords(name string) string {
	out := name
	for alias := range countryAliases {
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(alias) + `\b`)
		out = re.ReplaceAllString(out, "")
	}
	out = strings.TrimSpace(out)
	if len(out) < 2 {
		return name
	}
	return out
}

var portNoiseWords = []string{"seaport", "sea port", "port", "airport", "terminal", "harbour", "harbor"}

var portSplitter = regexp.MustCompile(`(?i)\s+AND/OR\s+|\s+AND\s+|\s+OR\s+|/|,`)

// SplitPortNames cleans a compound port designation such as
// "Tripoli seaport AND/OR Misurata" into individual searchable names.
func SplitPortNames(raw string) []string {
	cleaned := raw
	for _, nw := range portNoiseWords {
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(nw) + `\b`)
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	cleaned = strings.Trim(strings.TrimSpace(cleaned), ",")
	cleaned = strings.TrimSpace(cleaned)

	parts := portSplitter.Split(cleaned, -1)
	var names []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) >= 2 {
			names = append(names, p)
		}
	}
	if len(names) == 0 {
		names = []string{strings.TrimSpace(raw)}
	}
	return names
}
