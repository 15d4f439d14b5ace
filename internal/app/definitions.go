package app

import (
	"context"

	"github.com/google/uuid"

	pverrors "github.com/chazuruo/promptvault/internal/errors"
	"github.com/chazuruo/promptvault/internal/placeholders"
	"github.com/chazuruo/promptvault/internal/store"
	"github.com/chazuruo/promptvault/internal/template"
)

// CreateDefinitionOptions contains the options for creating a
// placeholder definition by hand (as opposed to the ones sync mints).
type CreateDefinitionOptions struct {
	// Key is the placeholder key. When empty it is suggested from Label.
	Key          string
	Label        string
	Type         template.PlaceholderType
	Options      []string
	DefaultValue string
	Description  string
	Tags         []string
	Global       bool
}

// CreateDefinition validates and persists a placeholder definition.
// Unlike sync, manual creation enforces the key grammar, and a global
// key must be unique among globals.
func CreateDefinition(ctx context.Context, st store.Store, opts CreateDefinitionOptions) (*template.PlaceholderDefinition, error) {
	key := opts.Key
	if key == "" {
		key = placeholders.SuggestKey(opts.Label)
	}
	if !placeholders.IsValidKey(key) {
		return nil, &pverrors.TemplateError{Op: "createDefinition", Err: pverrors.ErrInvalid, ID: key}
	}

	if opts.Global {
		globals, err := st.GlobalDefinitions(ctx)
		if err != nil {
			return nil, err
		}
		for _, def := range globals {
			if def.Key == key {
				return nil, &pverrors.TemplateError{Op: "createDefinition", Err: pverrors.ErrAlreadyExists, ID: key}
			}
		}
	}

	label := opts.Label
	if label == "" {
		label = template.LabelForKey(key)
	}

	def := &template.PlaceholderDefinition{
		ID:           uuid.New(),
		Key:          key,
		Label:        label,
		Type:         opts.Type,
		Options:      opts.Options,
		IsGlobal:     opts.Global,
		DefaultValue: opts.DefaultValue,
		Description:  opts.Description,
		Tags:         opts.Tags,
	}
	if def.Type == "" {
		def.Type = template.TypeText
	}
	if err := def.Validate(); err != nil {
		return nil, &pverrors.TemplateError{Op: "createDefinition", Err: err, ID: key}
	}

	if err := st.CreateDefinition(ctx, def); err != nil {
		return nil, err
	}
	return def, nil
}
