package verify

import (
	"regexp"
	"strconv"
	"strings"
)

var swiftPattern = regexp.MustCompile(`^[A-Z]{4}[A-Z]{2}[A-Z0-9]{2}([A-Z0-9]{3})?$`)

// ValidSwiftFormat reports whether a code is structurally a SWIFT/BIC:
// 4 letter bank code, 2 letter country, 2 location characters, and an
// optional 3 character branch.
func ValidSwiftFormat(code string) bool {
	return swiftPattern.MatchString(code)
}

// CleanSwiftCode uppercases a raw value and strips separators.
func CleanSwiftCode(raw string) string {
	code := strings.ToUpper(strings.TrimSpace(raw))
	for _, sep := range []string{" ", "-", ".", "/"} {
		code = strings.ReplaceAll(code, sep, "")
	}
	return code
}

// SwiftCandidates expands a malformed SWIFT code into plausible repairs.
// OCR output commonly drops or doubles a character; candidates are
// ordered best-guess first and always include the cleaned original.
func SwiftCandidates(raw string) []string {
	code := CleanSwiftCode(raw)
	candidates := []string{code}

	switch len(code) {
	case 9:
		// One character short of a branch-less 8, or truncated branch.
		candidates = append(candidates, code[:8], code+"XX")
	case 10:
		candidates = append(candidates, code[:8], code+"X", code[:8]+code[9:])
	case 11:
		if strings.HasSuffix(code, "XXX") {
			candidates = append(candidates, code[:8])
		}
	case 12:
		candidates = append(candidates, code[:11], code[:8])
	}

	// Dedupe while keeping order.
	seen := make(map[string]bool, len(candidates))
	out := candidates[:0]
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// HSCode is a structurally validated Harmonized System code.
type HSCode struct {
	Code       string
	Chapter    string
	Heading    string
	Subheading string
}

// ParseHSCode strips separators from a raw HS code and validates its
// structure: all digits, 4 to 12 long, chapter between 01 and 99.
func ParseHSCode(raw string) (*HSCode, bool) {
	code := strings.TrimSpace(raw)
	for _, sep := range []string{".", " ", "-"} {
		code = strings.ReplaceAll(code, sep, "")
	}
	if len(code) < 4 || len(code) > 12 {
		return nil, false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return nil, false
		}
	}
	chapter, _ := strconv.Atoi(code[:2])
	if chapter < 1 || chapter > 99 {
		return nil, false
	}
	hs := &HSCode{
		Code:    code,
		Chapter: code[:2],
		Heading: code[:4],
	}
	if len(code) >= 6 {
		hs.Subheading = code[:6]
	}
	return hs, true
}

// containerOwnerCategories are the valid ISO 6346 equipment category
// identifiers.
var containerOwnerCategories = map[byte]bool{'U': true, 'J': true, 'Z': true}

// iso6346LetterValues maps letters to their ISO 6346 numeric values.
// Multiples of 11 are skipped by the standard.
var iso6346LetterValues = map[byte]int{
	'A': 10, 'B': 12, 'C': 13, 'D': 14, 'E': 15, 'F': 16, 'G': 17,
	'H': 18, 'I': 19, 'J': 20, 'K': 21, 'L': 23, 'M': 24, 'N': 25,
	'O': 26, 'P': 27, 'Q': 28, 'R': 29, 'S': 30, 'T': 31, 'U': 32,
	'V': 34, 'W': 35, 'X': 36, 'Y': 37, 'Z': 38,
}

// ValidContainerNumber validates an ISO 6346 container number: three
// owner letters, a category letter, six digits, and a check digit.
func ValidContainerNumber(raw string) bool {
	code := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), " ", ""))
	if len(code) != 11 {
		return false
	}
	for i := 0; i < 3; i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	if !containerOwnerCategories[code[3]] {
		return false
	}
	for i := 4; i < 11; i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}

	sum := 0
	for i := 0; i < 10; i++ {
		var v int
		if code[i] >= 'A' && code[i] <= 'Z' {
			v = iso6346LetterValues[code[i]]
		} else {
			v = int(code[i] - '0')
		}
		sum += v << i
	}
	check := sum % 11 % 10
	return check == int(code[10]-'0')
}
