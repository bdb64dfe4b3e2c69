// Package i18n holds the language support shared by chat and export.
package i18n

// Supported languages, ISO 639-1.
const (
	English = "en"
	Arabic  = "ar"
	Spanish = "es"
	Italian = "it"
)

var supported = map[string]bool{
	English: true,
	Arabic:  true,
	Spanish: true,
	Italian: true,
}

// Normalize maps an arbitrary language code to a supported one,
// defaulting to English.
func Normalize(lang string) string {
	if supported[lang] {
		return lang
	}
	return English
}

// IsRTL reports whether the language is written right to left.
func IsRTL(lang string) bool {
	return lang == Arabic
}

var languageNames = map[string]string{
	English: "English",
	Arabic:  "Arabic",
	Spanish: "Spanish",
	Italian: "Italian",
}

// Name returns the English name of a supported language code.
func Name(lang string) string {
	return languageNames[Normalize(lang)]
}

var responseInstructions = map[string]string{
	English: "Respond in English.",
	Arabic:  "Respond in Arabic (العربية). Use Arabic script.",
	Spanish: "Respond in Spanish (Español).",
	Italian: "Respond in Italian (Italiano).",
}

// ResponseInstruction returns the language directive appended to chat
// prompts so the assistant answers in the user's language.
func ResponseInstruction(lang string) string {
	if s, ok := responseInstructions[Normalize(lang)]; ok {
		return s
	}
	return responseInstructions[English]
}

var uiLabels = map[string]map[string]string{
	English: {
		"field":      "Field",
		"value":      "Value",
		"section":    "Section",
		"passed":     "Passed",
		"failed":     "Failed",
		"warning":    "Warning",
		"error":      "Error",
		"verified":   "Verified",
		"unverified": "Not Verified",
	},
	Arabic: {
		"field":      "الحقل",
		"value":      "القيمة",
		"section":    "القسم",
		"passed":     "ناجح",
		"failed":     "فاشل",
		"warning":    "تحذير",
		"error":      "خطأ",
		"verified":   "تم التحقق",
		"unverified": "لم يتم التحقق",
	},
	Spanish: {
		"field":      "Campo",
		"value":      "Valor",
		"section":    "Sección",
		"passed":     "Aprobado",
		"failed":     "Fallido",
		"warning":    "Advertencia",
		"error":      "Error",
		"verified":   "Verificado",
		"unverified": "No Verificado",
	},
	Italian: {
		"field":      "Campo",
		"value":      "Valore",
		"section":    "Sezione",
		"passed":     "Superato",
		"failed":     "Fallito",
		"warning":    "Avviso",
		"error":      "Errore",
		"verified":   "Verificato",
		"unverified": "Non Verificato",
	},
}

// Label returns a UI label in the requested language, falling back to
// English and then to the key itself.
func Label(lang, key string) string {
	if m, ok := uiLabels[Normalize(lang)]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	if s, ok := uiLabels[English][key]; ok {
		return s
	}
	return key
}
