package app

import (
	"context"

	"github.com/chazuruo/promptvault/internal/engine"
	"github.com/chazuruo/promptvault/internal/store"
	"github.com/chazuruo/promptvault/internal/template"
)

// RenderOptions contains the options for rendering a template.
type RenderOptions struct {
	// Title identifies the template (title or UUID).
	Title string
	// Values are the user-supplied placeholder values. Effective
	// defaults fill the gaps before rendering.
	Values map[string]string
	// Notes are stored with the generated instance.
	Notes string
	// NoRecord skips writing the generated instance.
	NoRecord bool
}

// RenderOutput contains the result of a render.
type RenderOutput struct {
	Text     string
	Instance *template.GeneratedInstance
}

// RenderTemplate applies defaults, renders, and records the result.
func RenderTemplate(ctx context.Context, st store.Store, opts RenderOptions) (*RenderOutput, error) {
	tpl, err := ResolveTemplate(ctx, st, opts.Title)
	if err != nil {
		return nil, err
	}

	values := MergeDefaults(tpl, opts.Values)

	if opts.NoRecord {
		text, err := engine.Render(tpl, values)
		if err != nil {
			return nil, err
		}
		return &RenderOutput{Text: text}, nil
	}

	inst, err := engine.Generate(ctx, st, tpl, values, opts.Notes)
	if err != nil {
		return nil, err
	}
	return &RenderOutput{Text: inst.RenderedText, Instance: inst}, nil
}

// PreviewTemplate substitutes whatever values are supplied (after
// default resolution) and returns the text with unresolved markers
// still visible. Never fails on placeholder state.
func PreviewTemplate(ctx context.Context, st store.Store, title string, values map[string]string) (string, error) {
	tpl, err := ResolveTemplate(ctx, st, title)
	if err != nil {
		return "", err
	}
	return engine.Preview(tpl, MergeDefaults(tpl, values)), nil
}

// MergeDefaults resolves the value for each associated placeholder:
// the supplied value when present and non-empty, else the association's
// effective default. Supplied values for keys without an association
// pass through untouched.
func MergeDefaults(tpl *template.Template, supplied map[string]string) map[string]string {
	values := make(map[string]string, len(supplied))
	for k, v := range supplied {
		values[k] = v
	}

	for _, a := range tpl.Associations {
		if a.Definition == nil {
			continue
		}
		key := a.Definition.Key
		if v, ok := values[key]; ok && v != "" {
			continue
		}
		if def, ok := a.EffectiveDefault(); ok && def != "" {
			values[key] = def
		}
	}

	return values
}
