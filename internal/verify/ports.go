package verify

import (
	"context"
	"fmt"
	"strings"

	"lcintel/internal/domain"
	"lcintel/internal/unlocode"
)

// verifyPort resolves a port designation with country-aware matching:
// "Libya" must not match Libiaz, Poland. Tiers: local UN/LOCODE index
// with a country filter, geocoding, then research.
func (t *Toolset) verifyPort(ctx context.Context, args map[string]string) (*domain.VerificationResult, error) {
	rawPort := strings.TrimSpace(args["port_name"])
	if len(rawPort) < 2 {
		return &domain.VerificationResult{
			Verified: false,
			Message:  "Port name too short.",
			Source:   sourceInputValidation,
		}, nil
	}

	docCountryCode := strings.TrimSpace(args["country_code"])
	if docCountryCode == "" {
		docCountryCode = GuessCountryCode(rawPort)
	}
	if docCountryCode == "" {
		docCountryCode = GuessCountryCode(args["country"])
	}

	portNames := SplitPortNames(rawPort)

	if t.locodes != nil && t.locodes.Len() > 0 {
		var all []unlocode.Match
		for _, pname := range portNames {
			searchName := StripCountryWords(pname)
			cc := GuessCountryCode(pname)
			if cc == "" {
				cc = docCountryCode
			}

			var results []unlocode.Match
			if cc != "" {
				results = t.locodes.Search(searchName, unlocode.SearchOptions{Country: cc, PortsOnly: true, Limit: 5})
				if len(results) == 0 {
					results = t.locodes.Search(searchName, unlocode.SearchOptions{Country: cc, Limit: 5})
				}
			}
			if len(results) == 0 {
				results = t.locodes.Search(searchName, unlocode.SearchOptions{PortsOnly: true, Limit: 10})
				if cc != "" {
					var filtered []unlocode.Match
					for _, r := range results {
						if r.Entry.Country == cc {
							filtered = append(filtered, r)
						}
					}
					if len(filtered) > 0 {
						results = filtered
					}
				}
			}
			all = append(all, results...)
		}

		if len(all) > 0 {
			seen := make(map[string]bool)
			var matches []map[string]interface{}
			var names []string
			for _, m := range all {
				if seen[m.Entry.Locode] {
					continue
				}
				seen[m.Entry.Locode] = true
				gm := gmapsSearch(fmt.Sprintf("%s port %s", m.Entry.Name, m.Entry.Country))
				if m.Entry.Lat != nil && m.Entry.Lon != nil {
					gm = gmapsLink(*m.Entry.Lat, *m.Entry.Lon)
				}
				matches = append(matches, map[string]interface{}{
					"locode":      m.Entry.Locode,
					"name":        m.Entry.Name,
					"country":     m.Entry.Country,
					"functions":   m.Entry.Facilities(),
					"google_maps": gm,
				})
				names = append(names, fmt.Sprintf("%s (%s)", m.Entry.Name, m.Entry.Locode))
				if len(matches) == 5 {
					break
				}
			}
			return &domain.VerificationResult{
				Verified:   true,
				Confidence: conf(0.95),
				Message:    fmt.Sprintf("Port(s) found in UN/LOCODE: %s", strings.Join(names, ", ")),
				Source:     sourceUnlocode,
				Details: map[string]interface{}{
					"query":          rawPort,
					"parsed_ports":   portNames,
					"country_filter": docCountryCode,
					"matches":        matches,
					"database_size":  t.locodes.Len(),
				},
			}, nil
		}
	}

	if t.geocoder != nil {
		for _, pname := range portNames {
			q := pname + " port"
			if docCountryCode != "" {
				q += " " + docCountryCode
			}
			places, err := t.geocoder.Geocode(ctx, q)
			if err != nil || len(places) == 0 {
				continue
			}
			best := places[0]
			locs := make([]map[string]interface{}, 0, len(places))
			for _, p := range places {
				locs = append(locs, map[string]interface{}{
					"name":         p.Name,
					"country":      p.Country,
					"country_code": p.CountryCode,
					"lat":          p.Lat,
					"lon":          p.Lon,
					"google_maps":  gmapsLink(p.Lat, p.Lon),
				})
			}
			return &domain.VerificationResult{
				Verified:   true,
				Confidence: conf(0.85),
				Message:    fmt.Sprintf("Port %q located: %s (%s)", pname, best.Name, best.Country),
				Source:     sourceGeoapify,
				Details: map[string]interface{}{
					"query":        rawPort,
					"parsed_ports": portNames,
					"locations":    locs,
					"google_maps":  gmapsLink(best.Lat, best.Lon),
				},
			}, nil
		}
	}

	if t.researcher != nil {
		answer, err := t.researcher.Ask(ctx, fmt.Sprintf(
			"Where is the port '%s'? Give country, city, coordinates, UN/LOCODE.", rawPort))
		if err == nil && answer != "" {
			return &domain.VerificationResult{
				Verified:   true,
				Confidence: conf(0.6),
				Message:    fmt.Sprintf("Port %q: %s", rawPort, truncate(answer, 200)),
				Source:     sourcePerplexity,
				Details: map[string]interface{}{
					"query":       rawPort,
					"research":    truncate(answer, 500),
					"google_maps": gmapsSearch(rawPort + " seaport"),
				},
			}, nil
		}
	}

	return &domain.VerificationResult{
		Verified:   false,
		Confidence: conf(0.3),
		Message:    fmt.Sprintf("Could not verify port %q. Searched: %s", rawPort, strings.Join(portNames, ", ")),
		Source:     sourceNoResults,
		Details: map[string]interface{}{
			"query":        rawPort,
			"parsed_ports": portNames,
			"google_maps":  gmapsSearch(rawPort + " port"),
		},
	}, nil
}
