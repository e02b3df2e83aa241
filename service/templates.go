package service

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hwangtab/artcontract/generator"
	"github.com/hwangtab/artcontract/model"
)

// TemplateStore holds one basic-document template per work field. It
// ships with built-in Korean defaults; an optional yaml file can
// override or extend them per deployment.
type TemplateStore struct {
	templates map[model.WorkField]*generator.Template
}

// NewTemplateStore builds the store from the built-in defaults plus an
// optional override file (empty path skips the file).
func NewTemplateStore(path string) (*TemplateStore, error) {
	store := &TemplateStore{templates: builtinTemplates()}

	if path == "" {
		return store, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file: %w", err)
	}

	var overrides []generator.Template
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse template file: %w", err)
	}

	for i := range overrides {
		tmpl := overrides[i]
		store.templates[model.WorkField(tmpl.Field)] = &tmpl
	}

	return store, nil
}

// Get returns the template for the field, falling back to the generic
// default for unknown or empty fields.
func (s *TemplateStore) Get(field model.WorkField) *generator.Template {
	if tmpl, ok := s.templates[field]; ok {
		return tmpl
	}
	return generator.DefaultTemplate()
}

// builtinTemplates returns the shipped per-field templates. Fields
// without a dedicated template share the generic default wording with
// a field-specific title.
func builtinTemplates() map[model.WorkField]*generator.Template {
	base := generator.DefaultTemplate()

	titles := map[model.WorkField]string{
		model.FieldDesign:      "디자인 용역 계약서",
		model.FieldPhotography: "사진 촬영 용역 계약서",
		model.FieldWriting:     "원고 집필 용역 계약서",
		model.FieldMusic:       "음악 제작 용역 계약서",
		model.FieldVideo:       "영상 제작 용역 계약서",
		model.FieldVoice:       "성우·더빙 용역 계약서",
		model.FieldTranslation: "번역 용역 계약서",
		model.FieldOther:       "용역 계약서",
	}

	templates := make(map[model.WorkField]*generator.Template, len(titles))
	for field, title := range titles {
		tmpl := &generator.Template{
			Field:    string(field),
			Title:    title,
			Sections: base.Sections,
		}
		templates[field] = tmpl
	}
	return templates
}
