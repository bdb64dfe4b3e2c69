package handler

import (
	"github.com/gin-gonic/gin"

	"lcintel/internal/fields"
	"lcintel/internal/i18n"
)

// FieldHandler serves the application field schema for UI rendering.
type FieldHandler struct{}

// NewFieldHandler creates a new FieldHandler.
func NewFieldHandler() *FieldHandler {
	return &FieldHandler{}
}

// Schema handles GET /api/v1/fields?lang=
func (h *FieldHandler) Schema(c *gin.Context) {
	lang := i18n.Normalize(c.Query("lang"))

	type fieldView struct {
		Key      string   `json:"key"`
		Label    string   `json:"label"`
		Type     string   `json:"type"`
		Options  []string `json:"options,omitempty"`
		Required bool     `json:"required"`
	}
	type sectionView struct {
		Key    string      `json:"key"`
		Label  string      `json:"label"`
		Fields []fieldView `json:"fields"`
	}

	sections := make([]sectionView, 0, len(fields.Sections))
	for _, section := range fields.Sections {
		sv := sectionView{
			Key:    section.Key,
			Label:  section.Label(lang),
			Fields: make([]fieldView, 0, len(section.Fields)),
		}
		for _, def := range section.Fields {
			sv.Fields = append(sv.Fields, fieldView{
				Key:      def.Key,
				Label:    def.Label(lang),
				Type:     string(def.Type),
				Options:  def.Options,
				Required: def.Required,
			})
		}
		sections = append(sections, sv)
	}

	RespondOK(c, gin.H{
		"language": lang,
		"rtl":      i18n.IsRTL(lang),
		"sections": sections,
		"total":    fields.Total(),
	})
}
