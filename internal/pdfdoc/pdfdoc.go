// Package pdfdoc extracts the text layer from PDF documents and
// classifies scanned documents that need vision or OCR handling.
package pdfdoc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// scannedTextThreshold is the minimum number of text-layer characters
// below which a document is treated as scanned.
const scannedTextThreshold = 50

// ExtractText reads the text layer of a PDF. Pages that fail to decode
// are skipped.
func ExtractText(data []byte) (string, error) {
	reader := bytes.NewReader(data)

	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var b strings.Builder
	numPages := pdfReader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String()), nil
}

// IsScanned reports whether the extracted text layer is too small to
// represent the document, which indicates a scanned or image-only PDF.
func IsScanned(text string) bool {
	return len(strings.TrimSpace(text)) < scannedTextThreshold
}
