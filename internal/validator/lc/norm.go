package lc

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order when parsing document dates.
var dateLayouts = []string{
	"02/01/2006",
	"01/02/2006",
	"2006-01-02",
}

// ParseDate parses a document date, trying day-first, month-first, and
// ISO layouts in that order.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

var nonAmountChars = regexp.MustCompile(`[^\d.]`)

// ParseAmount parses a monetary value such as "USD 150,000.00" into a
// float. Currency codes and thousand separators are stripped.
func ParseAmount(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	s = nonAmountChars.ReplaceAllString(s, "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParsePercent parses a tolerance percentage such as "10%" or "+/- 5".
func ParsePercent(s string) (float64, bool) {
	return ParseAmount(s)
}

var nameSeparators = regexp.MustCompile(`[\s,.\-&]+`)

// NormalizeName lowercases a party name and collapses punctuation and
// whitespace so spelling variants of the same name compare equal.
func NormalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.TrimSpace(nameSeparators.ReplaceAllString(s, " "))
}

// NamesMatch reports whether two party names are the same after
// normalization. A name with extra words, such as a missing corporate
// suffix, is not a match.
func NamesMatch(a, b string) bool {
	na, nb := NormalizeName(a), NormalizeName(b)
	if na == "" || nb == "" {
		return false
	}
	return na == nb
}
