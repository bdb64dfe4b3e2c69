package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"lcintel/internal/domain"
	"lcintel/internal/fields"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row, one row per application field.
var columns = []string{
	"Section",
	"Field Key",
	"Field Label",
	"Value",
	"Verified",
	"Confidence",
	"Source",
	"Notes",
}

// Writer wraps csv.Writer for exporting session results as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteSession writes one row per schema field in schema order.
// Fields with no extracted value get an empty Value column, and the
// verification columns stay empty for fields that were never verified.
func (w *Writer) WriteSession(extraction *domain.ExtractionResult, verification map[string]*domain.VerificationResult) error {
	for _, section := range fields.Sections {
		for _, def := range section.Fields {
			row := fieldToRow(&section, &def, extraction, verification)
			if err := w.csv.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func fieldToRow(section *fields.Section, def *fields.Def, extraction *domain.ExtractionResult, verification map[string]*domain.VerificationResult) []string {
	row := make([]string, len(columns))
	row[0] = section.EN
	row[1] = def.Key
	row[2] = def.EN

	if extraction != nil {
		row[3] = extraction.Fields[def.Key]
	}
	if res, ok := verification[def.Key]; ok && res != nil {
		row[4] = formatBool(res.Verified)
		if res.Confidence != nil {
			row[5] = strconv.FormatFloat(*res.Confidence, 'f', 2, 64)
		}
		row[6] = res.Source
		row[7] = res.Message
	}
	return row
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a session label for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {sanitized_label}_{YYYY-MM-DD}.{ext}
func BuildFilename(label, ext string) string {
	sanitized := SanitizeFilename(label)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.%s", sanitized, date, ext)
}
