package pdfdoc_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"lcintel/internal/pdfdoc"
)

func TestIsScanned(t *testing.T) {
	assert.True(t, pdfdoc.IsScanned(""))
	assert.True(t, pdfdoc.IsScanned("   \n  \t "))
	assert.True(t, pdfdoc.IsScanned("LC-2025-0042"), "a few stray characters still count as scanned")
	assert.False(t, pdfdoc.IsScanned(strings.Repeat("IRREVOCABLE DOCUMENTARY CREDIT ", 4)))
}

func TestExtractTextRejectsNonPDF(t *testing.T) {
	_, err := pdfdoc.ExtractText([]byte("plain text, not a pdf"))
	assert.Error(t, err)
}
