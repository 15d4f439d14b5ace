// Package store defines the persistence interface for templates,
// placeholder definitions, associations, and generated instances.
package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/chazuruo/promptvault/internal/template"
)

// Store is the persistence boundary for the engine and the CLI.
// Implementations return associations ordered by SortOrder with their
// definitions resolved, and surface write failures as *errors.StoreError.
type Store interface {
	// CreateTemplate persists a new template.
	CreateTemplate(ctx context.Context, tpl *template.Template) error

	// GetTemplate loads a template by id with its associations (ordered
	// by SortOrder, definitions resolved).
	GetTemplate(ctx context.Context, id uuid.UUID) (*template.Template, error)

	// GetTemplateByTitle loads a template by exact title.
	GetTemplateByTitle(ctx context.Context, title string) (*template.Template, error)

	// ListTemplates returns templates matching the filter, without
	// associations loaded.
	ListTemplates(ctx context.Context, filter Filter) ([]template.Template, error)

	// UpdateTemplate persists changes to an existing template's own
	// fields. Associations are managed through the association methods.
	UpdateTemplate(ctx context.Context, tpl *template.Template) error

	// DeleteTemplate removes a template along with its associations and
	// generated instances.
	DeleteTemplate(ctx context.Context, id uuid.UUID) error

	// CreateDefinition persists a new placeholder definition.
	CreateDefinition(ctx context.Context, def *template.PlaceholderDefinition) error

	// GlobalDefinitions returns every definition with IsGlobal set.
	GlobalDefinitions(ctx context.Context) ([]template.PlaceholderDefinition, error)

	// ListDefinitions returns all definitions, global and template-scoped.
	ListDefinitions(ctx context.Context) ([]template.PlaceholderDefinition, error)

	// CreateAssociation links a definition to a template.
	CreateAssociation(ctx context.Context, assoc *template.Association) error

	// DeleteAssociation removes a single association row. Definitions
	// and templates are never deleted through this path.
	DeleteAssociation(ctx context.Context, id uuid.UUID) error

	// RecordInstance appends a generated instance.
	RecordInstance(ctx context.Context, inst *template.GeneratedInstance) error

	// ListInstances returns the generated instances for a template,
	// newest first.
	ListInstances(ctx context.Context, templateID uuid.UUID) ([]template.GeneratedInstance, error)

	// Transaction runs fn against a store whose writes commit or roll
	// back as a unit. Sync runs inside this boundary.
	Transaction(ctx context.Context, fn func(Store) error) error
}

// Filter narrows ListTemplates results. Zero value matches everything.
type Filter struct {
	// Tags restricts to templates carrying all of these tags.
	Tags []string

	// FavoritesOnly restricts to templates with the favorite flag.
	FavoritesOnly bool
}
