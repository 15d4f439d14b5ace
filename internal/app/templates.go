package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/chazuruo/promptvault/internal/engine"
	pverrors "github.com/chazuruo/promptvault/internal/errors"
	"github.com/chazuruo/promptvault/internal/store"
	"github.com/chazuruo/promptvault/internal/template"
)

// CreateTemplateOptions contains the options for creating a template.
type CreateTemplateOptions struct {
	Title       string
	Description string
	Content     string
	Tags        []string
	Favorite    bool
	// NoSync skips the initial association sync.
	NoSync bool
}

// CreateTemplateOutput contains the result of creating a template.
type CreateTemplateOutput struct {
	Template *template.Template
	Sync     *engine.SyncResult
}

// CreateTemplate validates and persists a new template, then syncs its
// associations against the content.
func CreateTemplate(ctx context.Context, st store.Store, opts CreateTemplateOptions) (*CreateTemplateOutput, error) {
	tpl := &template.Template{
		ID:          uuid.New(),
		Title:       opts.Title,
		Description: opts.Description,
		Content:     opts.Content,
		Tags:        opts.Tags,
		Favorite:    opts.Favorite,
	}
	if err := tpl.Validate(); err != nil {
		return nil, &pverrors.TemplateError{Op: "create", Err: err}
	}

	if _, err := st.GetTemplateByTitle(ctx, opts.Title); err == nil {
		return nil, &pverrors.TemplateError{Op: "create", Err: pverrors.ErrAlreadyExists, ID: opts.Title}
	}

	if err := st.CreateTemplate(ctx, tpl); err != nil {
		return nil, err
	}

	out := &CreateTemplateOutput{Template: tpl, Sync: &engine.SyncResult{}}
	if !opts.NoSync {
		result, err := engine.Sync(ctx, st, tpl)
		if err != nil {
			return nil, err
		}
		out.Sync = result
	}

	// Reload so the caller sees the synced associations.
	reloaded, err := st.GetTemplate(ctx, tpl.ID)
	if err != nil {
		return nil, err
	}
	out.Template = reloaded

	return out, nil
}

// UpdateContentOptions contains the options for editing template content.
type UpdateContentOptions struct {
	Title   string
	Content string
}

// UpdateContentOutput contains the result of a content edit.
type UpdateContentOutput struct {
	Template *template.Template
	Sync     *engine.SyncResult
}

// UpdateContent replaces a template's content and re-syncs its
// associations so they converge with the new set of keys.
func UpdateContent(ctx context.Context, st store.Store, opts UpdateContentOptions) (*UpdateContentOutput, error) {
	tpl, err := ResolveTemplate(ctx, st, opts.Title)
	if err != nil {
		return nil, err
	}

	tpl.Content = opts.Content
	if err := st.UpdateTemplate(ctx, tpl); err != nil {
		return nil, err
	}

	result, err := engine.Sync(ctx, st, tpl)
	if err != nil {
		return nil, err
	}

	reloaded, err := st.GetTemplate(ctx, tpl.ID)
	if err != nil {
		return nil, err
	}

	return &UpdateContentOutput{Template: reloaded, Sync: result}, nil
}

// SyncTemplate re-runs association synchronization for one template.
func SyncTemplate(ctx context.Context, st store.Store, title string) (*engine.SyncResult, error) {
	tpl, err := ResolveTemplate(ctx, st, title)
	if err != nil {
		return nil, err
	}
	return engine.Sync(ctx, st, tpl)
}

// ResolveTemplate looks a template up by title, or by id when the
// argument parses as a UUID.
func ResolveTemplate(ctx context.Context, st store.Store, ref string) (*template.Template, error) {
	if id, err := uuid.Parse(ref); err == nil {
		tpl, err := st.GetTemplate(ctx, id)
		if err == nil {
			return tpl, nil
		}
	}

	tpl, err := st.GetTemplateByTitle(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("template %q: %w", ref, err)
	}
	return tpl, nil
}
