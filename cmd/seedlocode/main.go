// Command seedlocode converts the UN/LOCODE CSV distribution into a SQL
// seed file. The distribution ships as several part files; pass them all.
// Usage: go run ./cmd/seedlocode code-list-1.csv code-list-2.csv code-list-3.csv
// Output: db/seeds/locations.sql
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"lcintel/internal/unlocode"
)

const batchSize = 500

// CSV columns in the UN/LOCODE distribution.
const (
	colChange = iota
	colCountry
	colLocation
	colName
	colNameASCII
	colSubdivision
	colFunction
	colStatus
	colDate
	colIATA
	colCoordinates
	colRemarks
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		fmt.Println("Usage: seedlocode <code-list.csv> [...]")
		os.Exit(1)
	}
	outPath := "db/seeds/locations.sql"

	seen := make(map[string]bool)
	var entries []unlocode.Entry
	for _, path := range os.Args[1:] {
		fileEntries, err := parseFile(path, seen)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		entries = append(entries, fileEntries...)
		log.Printf("%s: %d entries", path, len(fileEntries))
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	w := func(s string) error { _, werr := fmt.Fprintln(out, s); return werr }

	for _, line := range []string{
		"-- UN/LOCODE location seed data generated from the CSV distribution.",
		fmt.Sprintf("-- %d entries in batches of %d.", len(entries), batchSize),
		"-- Run: make seed-locode",
		"BEGIN;",
		"",
	} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write header: %w", werr)
		}
	}

	for i := 0; i < len(entries); i += batchSize {
		end := i + batchSize
		if end > len(entries) {
			end = len(entries)
		}
		if err := writeBatch(out, entries[i:end]); err != nil {
			return fmt.Errorf("write batch at offset %d: %w", i, err)
		}
	}

	for _, line := range []string{"", "COMMIT;"} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write footer: %w", werr)
		}
	}

	log.Printf("Generated %d total entries (%d batches) in %s",
		len(entries), (len(entries)+batchSize-1)/batchSize, outPath)
	return nil
}

// parseFile reads one code-list CSV. Rows without a location code are
// country headers and are skipped, as are names starting with "." which
// mark alternative spellings.
func parseFile(path string, seen map[string]bool) ([]unlocode.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var entries []unlocode.Entry
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) <= colCoordinates {
			continue
		}

		country := strings.TrimSpace(row[colCountry])
		location := strings.TrimSpace(row[colLocation])
		name := strings.TrimSpace(row[colName])
		if len(country) != 2 || location == "" || name == "" || strings.HasPrefix(name, ".") {
			continue
		}

		locode := country + location
		if seen[locode] {
			continue
		}
		seen[locode] = true

		entry := unlocode.Entry{
			Country:     country,
			Locode:      locode,
			Name:        name,
			NameASCII:   strings.TrimSpace(row[colNameASCII]),
			Subdivision: strings.TrimSpace(row[colSubdivision]),
			Function:    strings.TrimSpace(row[colFunction]),
			IATA:        strings.TrimSpace(row[colIATA]),
		}
		if lat, lon, ok := unlocode.ParseCoordinates(strings.TrimSpace(row[colCoordinates])); ok {
			entry.Lat = lat
			entry.Lon = lon
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func writeBatch(out *os.File, batch []unlocode.Entry) error {
	if len(batch) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("INSERT INTO locations (country, locode, name, name_ascii, subdivision, function, iata, lat, lon) VALUES\n")

	for i := range batch {
		e := &batch[i]
		if i > 0 {
			b.WriteString(",\n")
		}
		fmt.Fprintf(&b, "  ('%s', '%s', '%s', '%s', '%s', '%s', '%s', %s, %s)",
			escapeSQL(e.Country), escapeSQL(e.Locode), escapeSQL(e.Name),
			escapeSQL(e.NameASCII), escapeSQL(e.Subdivision), escapeSQL(e.Function),
			escapeSQL(e.IATA), floatVal(e.Lat), floatVal(e.Lon))
	}

	b.WriteString("\nON CONFLICT (locode) DO NOTHING;\n")

	_, err := out.WriteString(b.String())
	return err
}

func floatVal(v *float64) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%.6f", *v)
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
