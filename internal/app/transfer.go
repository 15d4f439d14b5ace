package app

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/chazuruo/promptvault/internal/export"
	pverrors "github.com/chazuruo/promptvault/internal/errors"
	"github.com/chazuruo/promptvault/internal/store"
	"github.com/chazuruo/promptvault/internal/template"
)

// ExportTemplates renders the named templates (all templates when
// titles is empty) as a YAML export document.
func ExportTemplates(ctx context.Context, st store.Store, titles []string) ([]byte, error) {
	var tpls []*template.Template

	if len(titles) == 0 {
		listed, err := st.ListTemplates(ctx, store.Filter{})
		if err != nil {
			return nil, err
		}
		for _, t := range listed {
			full, err := st.GetTemplate(ctx, t.ID)
			if err != nil {
				return nil, err
			}
			tpls = append(tpls, full)
		}
	} else {
		for _, title := range titles {
			tpl, err := ResolveTemplate(ctx, st, title)
			if err != nil {
				return nil, err
			}
			tpls = append(tpls, tpl)
		}
	}

	doc := &export.Document{SchemaVersion: export.SchemaVersion}
	for _, tpl := range tpls {
		doc.Templates = append(doc.Templates, export.FromTemplate(tpl))
	}

	return export.Marshal(doc)
}

// ImportOutput contains the result of an import.
type ImportOutput struct {
	// Imported are the titles of templates created.
	Imported []string
	// ReusedGlobals counts placeholders bound to already-present global
	// definitions instead of newly created ones.
	ReusedGlobals int
}

// ImportTemplates creates the templates from a YAML export document.
// Global placeholders reuse an existing global definition with the same
// key; everything else is created fresh. A template whose title already
// exists is rejected. The whole import commits or rolls back as a unit.
func ImportTemplates(ctx context.Context, st store.Store, data []byte) (*ImportOutput, error) {
	doc, err := export.Unmarshal(data)
	if err != nil {
		return nil, err
	}

	out := &ImportOutput{}
	err = st.Transaction(ctx, func(tx store.Store) error {
		globals, err := tx.GlobalDefinitions(ctx)
		if err != nil {
			return err
		}
		globalByKey := make(map[string]template.PlaceholderDefinition, len(globals))
		for _, def := range globals {
			globalByKey[def.Key] = def
		}

		for _, tdoc := range doc.Templates {
			if _, err := tx.GetTemplateByTitle(ctx, tdoc.Title); err == nil {
				return &pverrors.TemplateError{Op: "import", Err: pverrors.ErrAlreadyExists, ID: tdoc.Title}
			}

			tpl := &template.Template{
				ID:          uuid.New(),
				Title:       tdoc.Title,
				Description: tdoc.Description,
				Content:     tdoc.Content,
				Tags:        tdoc.Tags,
				Favorite:    tdoc.Favorite,
			}
			if err := tx.CreateTemplate(ctx, tpl); err != nil {
				return err
			}

			for i, ph := range tdoc.Placeholders {
				var definitionID uuid.UUID
				if existing, ok := globalByKey[ph.Key]; ph.Global && ok {
					definitionID = existing.ID
					out.ReusedGlobals++
				} else {
					def := &template.PlaceholderDefinition{
						ID:           uuid.New(),
						Key:          ph.Key,
						Label:        ph.Label,
						Type:         template.PlaceholderType(ph.Type),
						Options:      ph.Options,
						IsGlobal:     ph.Global,
						DefaultValue: ph.Default,
						Description:  ph.Description,
						Tags:         ph.DefTags,
					}
					if def.Label == "" {
						def.Label = template.LabelForKey(ph.Key)
					}
					if err := tx.CreateDefinition(ctx, def); err != nil {
						return err
					}
					definitionID = def.ID
					if def.IsGlobal {
						globalByKey[def.Key] = *def
					}
				}

				assoc := &template.Association{
					ID:                   uuid.New(),
					TemplateID:           tpl.ID,
					DefinitionID:         definitionID,
					IsRequired:           ph.Required,
					SortOrder:            i,
					TemplateDefaultValue: ph.TemplateDefault,
				}
				if err := tx.CreateAssociation(ctx, assoc); err != nil {
					return err
				}
			}

			out.Imported = append(out.Imported, tdoc.Title)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// ReadDocumentFile loads an export document from disk.
func ReadDocumentFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read import file: %w", err)
	}
	return data, nil
}
