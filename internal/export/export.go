// Package export converts templates to and from a portable YAML
// document for sharing and backup.
package export

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/chazuruo/promptvault/internal/template"
)

// SchemaVersion is the current export document schema version.
const SchemaVersion = 1

// Document is the top-level export format.
type Document struct {
	SchemaVersion int           `yaml:"schema_version"`
	Templates     []TemplateDoc `yaml:"templates"`
}

// TemplateDoc is one exported template with its placeholders inline,
// in association order.
type TemplateDoc struct {
	Title        string           `yaml:"title"`
	Description  string           `yaml:"description,omitempty"`
	Content      string           `yaml:"content"`
	Tags         []string         `yaml:"tags,omitempty"`
	Favorite     bool             `yaml:"favorite,omitempty"`
	Placeholders []PlaceholderDoc `yaml:"placeholders,omitempty"`
}

// PlaceholderDoc is one exported placeholder: the definition fields
// plus the association's overrides. List position encodes sort order.
type PlaceholderDoc struct {
	Key      string   `yaml:"key"`
	Label    string   `yaml:"label,omitempty"`
	Type     string   `yaml:"type"`
	Options  []string `yaml:"options,omitempty"`
	Global   bool     `yaml:"global,omitempty"`
	Default  string   `yaml:"default,omitempty"`
	Required bool     `yaml:"required"`

	// TemplateDefault is the association's per-template override,
	// distinct from the definition default.
	TemplateDefault *string `yaml:"template_default,omitempty"`

	Description string   `yaml:"description,omitempty"`
	DefTags     []string `yaml:"definition_tags,omitempty"`
}

// FromTemplate converts a template (associations loaded) into its
// document form. Associations without a resolvable definition are
// omitted; the caller decides whether to warn.
func FromTemplate(tpl *template.Template) TemplateDoc {
	doc := TemplateDoc{
		Title:       tpl.Title,
		Description: tpl.Description,
		Content:     tpl.Content,
		Tags:        tpl.Tags,
		Favorite:    tpl.Favorite,
	}

	for _, a := range tpl.Associations {
		if a.Definition == nil {
			continue
		}
		doc.Placeholders = append(doc.Placeholders, PlaceholderDoc{
			Key:             a.Definition.Key,
			Label:           a.Definition.Label,
			Type:            string(a.Definition.Type),
			Options:         a.Definition.Options,
			Global:          a.Definition.IsGlobal,
			Default:         a.Definition.DefaultValue,
			Required:        a.IsRequired,
			TemplateDefault: a.TemplateDefaultValue,
			Description:     a.Definition.Description,
			DefTags:         a.Definition.Tags,
		})
	}

	return doc
}

// Marshal renders a document to YAML.
func Marshal(doc *Document) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export document: %w", err)
	}
	return data, nil
}

// Unmarshal parses a YAML export document and validates it.
func Unmarshal(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal export document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("export document validation failed: %w", err)
	}
	return &doc, nil
}

// Validate checks the document structure.
func (d *Document) Validate() error {
	if d.SchemaVersion != SchemaVersion {
		return fmt.Errorf("unsupported schema version %d", d.SchemaVersion)
	}
	for i, tpl := range d.Templates {
		if tpl.Title == "" {
			return fmt.Errorf("template %d: title is required", i)
		}
		for _, ph := range tpl.Placeholders {
			if ph.Key == "" {
				return fmt.Errorf("template %q: placeholder key is required", tpl.Title)
			}
			typ := template.PlaceholderType(ph.Type)
			if !typ.Valid() {
				return fmt.Errorf("template %q: placeholder %q has unknown type %q", tpl.Title, ph.Key, ph.Type)
			}
			if typ.RequiresOptions() && len(ph.Options) == 0 {
				return fmt.Errorf("template %q: placeholder %q requires options", tpl.Title, ph.Key)
			}
		}
	}
	return nil
}
