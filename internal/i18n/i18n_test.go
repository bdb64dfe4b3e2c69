package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lcintel/internal/i18n"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "en", i18n.Normalize("en"))
	assert.Equal(t, "ar", i18n.Normalize("ar"))
	assert.Equal(t, "es", i18n.Normalize("es"))
	assert.Equal(t, "it", i18n.Normalize("it"))
	assert.Equal(t, "en", i18n.Normalize(""))
	assert.Equal(t, "en", i18n.Normalize("fr"))
	assert.Equal(t, "en", i18n.Normalize("AR"), "codes are matched case-sensitively")
}

func TestIsRTL(t *testing.T) {
	assert.True(t, i18n.IsRTL("ar"))
	assert.False(t, i18n.IsRTL("en"))
	assert.False(t, i18n.IsRTL("es"))
}

func TestResponseInstruction(t *testing.T) {
	assert.Equal(t, "Respond in English.", i18n.ResponseInstruction("en"))
	assert.Contains(t, i18n.ResponseInstruction("ar"), "Arabic")
	assert.Contains(t, i18n.ResponseInstruction("es"), "Spanish")
	assert.Equal(t, "Respond in English.", i18n.ResponseInstruction("unknown"))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Field", i18n.Label("en", "field"))
	assert.Equal(t, "الحقل", i18n.Label("ar", "field"))
	assert.Equal(t, "Campo", i18n.Label("es", "field"))
	assert.Equal(t, "Field", i18n.Label("de", "field"), "unsupported languages fall back to English")
	assert.Equal(t, "no_such_key", i18n.Label("en", "no_such_key"), "unknown keys fall back to the key")
}
