package engine

import (
	"context"

	"github.com/google/uuid"

	"github.com/chazuruo/promptvault/internal/placeholders"
	"github.com/chazuruo/promptvault/internal/store"
	"github.com/chazuruo/promptvault/internal/template"
)

// SyncResult lists the association changes a sync made, by placeholder
// key. Re-running sync on unchanged content yields an empty result.
type SyncResult struct {
	// Created are keys for which a new non-global definition was minted
	// and associated.
	Created []string
	// Reused are keys bound to an existing global definition.
	Reused []string
	// Removed are keys whose associations were deleted because the key
	// no longer appears in the content.
	Removed []string
}

// Changed reports whether the sync touched any associations.
func (r *SyncResult) Changed() bool {
	return len(r.Created)+len(r.Reused)+len(r.Removed) > 0
}

// Sync reconciles a template's associations with the placeholder keys
// actually present in its content. Keys detected in the content but not
// yet associated get an association appended at the end of the order:
// bound to a matching global definition when one exists, otherwise to a
// freshly minted non-global free-text definition. Associations whose
// key left the content are deleted. Definitions and templates are never
// deleted here, and minted definitions are never promoted to global.
//
// Extraction is permissive: a detected key that fails the key grammar
// still takes part in synchronization.
//
// All writes run inside the store's transaction boundary; on failure a
// single error surfaces and nothing is partially applied.
func Sync(ctx context.Context, st store.Store, tpl *template.Template) (*SyncResult, error) {
	detected := placeholders.ExtractDistinct(tpl.Content)
	detectedSet := make(map[string]bool, len(detected))
	for _, key := range detected {
		detectedSet[key] = true
	}

	assocs := resolvedAssociations(tpl)
	existing := make(map[string]bool, len(assocs))
	for _, a := range assocs {
		existing[a.Definition.Key] = true
	}

	result := &SyncResult{}
	err := st.Transaction(ctx, func(tx store.Store) error {
		// Missing keys, in first-detected order. New associations append
		// at the end: sort order starts at the current association count.
		nextOrder := len(tpl.Associations)
		var globals map[string]template.PlaceholderDefinition

		for _, key := range detected {
			if existing[key] {
				continue
			}

			if globals == nil {
				defs, err := tx.GlobalDefinitions(ctx)
				if err != nil {
					return err
				}
				globals = make(map[string]template.PlaceholderDefinition, len(defs))
				for _, def := range defs {
					globals[def.Key] = def
				}
			}

			var definitionID uuid.UUID
			if def, ok := globals[key]; ok {
				definitionID = def.ID
				result.Reused = append(result.Reused, key)
			} else {
				def := template.NewDefinitionForKey(key)
				if err := tx.CreateDefinition(ctx, def); err != nil {
					return err
				}
				definitionID = def.ID
				result.Created = append(result.Created, key)
			}

			assoc := &template.Association{
				ID:           uuid.New(),
				TemplateID:   tpl.ID,
				DefinitionID: definitionID,
				IsRequired:   true,
				SortOrder:    nextOrder,
			}
			nextOrder++

			if err := tx.CreateAssociation(ctx, assoc); err != nil {
				return err
			}
		}

		// Obsolete associations: key no longer in the content.
		for _, a := range assocs {
			if detectedSet[a.Definition.Key] {
				continue
			}
			if err := tx.DeleteAssociation(ctx, a.ID); err != nil {
				return err
			}
			result.Removed = append(result.Removed, a.Definition.Key)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
