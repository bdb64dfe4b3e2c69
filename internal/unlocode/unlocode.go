// Package unlocode holds an in-memory index over the UN/LOCODE
// location reference table used for port verification.
package unlocode

import (
	"sort"
	"strconv"
	"strings"
)

// functionLabels maps positions in the UN/LOCODE function classifier
// string to human-readable facility types.
var functionLabels = []string{
	"Port",
	"Rail Terminal",
	"Road Terminal",
	"Airport",
	"Postal Exchange",
	"Multimodal (ICD/CFS)",
	"Fixed Transport",
	"Border Crossing",
}

// Entry is a single UN/LOCODE location.
type Entry struct {
	Country     string   `db:"country" json:"country"`
	Locode      string   `db:"locode" json:"locode"`
	Name        string   `db:"name" json:"name"`
	NameASCII   string   `db:"name_ascii" json:"name_ascii"`
	Subdivision string   `db:"subdivision" json:"subdivision"`
	Function    string   `db:"function" json:"function"`
	IATA        string   `db:"iata" json:"iata,omitempty"`
	Lat         *float64 `db:"lat" json:"lat,omitempty"`
	Lon         *float64 `db:"lon" json:"lon,omitempty"`
}

// IsPort reports whether the location is classified as a seaport.
func (e *Entry) IsPort() bool {
	return len(e.Function) > 0 && e.Function[0] == '1'
}

// IsAirport reports whether the location is classified as an airport.
func (e *Entry) IsAirport() bool {
	return len(e.Function) > 3 && e.Function[3] == '4'
}

// Facilities expands the function classifier into facility labels.
func (e *Entry) Facilities() []string {
	var out []string
	for i, label := range functionLabels {
		if i < len(e.Function) && e.Function[i] == byte('1'+i) {
			out = append(out, label)
		}
	}
	return out
}

// ParseCoordinates parses the UN/LOCODE coordinate format, for example
// "4230N 00131E", into decimal degrees. South and west are negative.
func ParseCoordinates(raw string) (lat, lon *float64, ok bool) {
	parts := strings.Fields(strings.TrimSpace(raw))
	if len(parts) != 2 {
		return nil, nil, false
	}
	la, ok1 := parseCoordinate(parts[0], 2)
	lo, ok2 := parseCoordinate(parts[1], 3)
	if !ok1 || !ok2 {
		return nil, nil, false
	}
	return &la, &lo, true
}

func parseCoordinate(s string, degDigits int) (float64, bool) {
	if len(s) < degDigits+2 {
		return 0, false
	}
	hemi := s[len(s)-1]
	digits := s[:len(s)-1]
	deg, err := strconv.Atoi(digits[:degDigits])
	if err != nil {
		return 0, false
	}
	min, err := strconv.Atoi(digits[degDigits:])
	if err != nil {
		return 0, false
	}
	v := float64(deg) + float64(min)/60.0
	switch hemi {
	case 'S', 'W':
		v = -v
	case 'N', 'E':
	default:
		return 0, false
	}
	return v, true
}

// Index is an immutable search index over UN/LOCODE entries.
type Index struct {
	entries []Entry
}

// Match is a scored search result.
type Match struct {
	Entry Entry   `json:"entry"`
	Score float64 `json:"score"`
}

// NewIndex builds an index over the given entries. Alias rows, whose
// names begin with a period, are skipped.
func NewIndex(entries []Entry) *Index {
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Name, ".") {
			continue
		}
		kept = append(kept, e)
	}
	return &Index{entries: kept}
}

// Len returns the number of indexed entries.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// SearchOptions narrows a name search.
type SearchOptions struct {
	// Country restricts matches to a two-letter country code.
	Country string
	// PortsOnly drops locations with no seaport function.
	PortsOnly bool
	// Limit caps the number of returned matches. Zero means 10.
	Limit int
}

// Search scores entries against a location name. Exact name or locode
// matches score 100, prefix matches 80, substring matches 60. Results
// are ordered by score, seaports first within a score band.
func (ix *Index) Search(query string, opts SearchOptions) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	country := strings.ToUpper(strings.TrimSpace(opts.Country))
	limit := opts.Limit
	if limit <= 0 {
		limit = 10
	}

	var matches []Match
	for _, e := range ix.entries {
		if country != "" && e.Country != country {
			continue
		}
		if opts.PortsOnly && !e.IsPort() {
			continue
		}
		score := scoreEntry(&e, q)
		if score <= 0 {
			continue
		}
		matches = append(matches, Match{Entry: e, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Entry.IsPort() && !matches[j].Entry.IsPort()
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func scoreEntry(e *Entry, q string) float64 {
	name := strings.ToLower(e.Name)
	ascii := strings.ToLower(e.NameASCII)
	locode := strings.ToLower(e.Locode)
	switch {
	case name == q || ascii == q || locode == q:
		return 100
	case strings.HasPrefix(name, q) || strings.HasPrefix(ascii, q):
		return 80
	case strings.Contains(name, q) || strings.Contains(ascii, q):
		return 60
	}
	return 0
}
