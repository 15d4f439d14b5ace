package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	pverrors "github.com/chazuruo/promptvault/internal/errors"
	"github.com/chazuruo/promptvault/internal/template"
)

// Memory is an in-memory Store for tests and ephemeral use. It keeps
// the same contract as the sqlite store: GetTemplate returns
// associations ordered by SortOrder with definitions resolved.
type Memory struct {
	mu           sync.RWMutex
	templates    map[uuid.UUID]template.Template
	definitions  map[uuid.UUID]template.PlaceholderDefinition
	associations map[uuid.UUID]template.Association
	instances    map[uuid.UUID]template.GeneratedInstance
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		templates:    make(map[uuid.UUID]template.Template),
		definitions:  make(map[uuid.UUID]template.PlaceholderDefinition),
		associations: make(map[uuid.UUID]template.Association),
		instances:    make(map[uuid.UUID]template.GeneratedInstance),
	}
}

func (m *Memory) CreateTemplate(ctx context.Context, tpl *template.Template) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if tpl.ID == uuid.Nil {
		tpl.ID = uuid.New()
	}
	if _, exists := m.templates[tpl.ID]; exists {
		return &pverrors.StoreError{Op: "createTemplate", Err: pverrors.ErrAlreadyExists}
	}
	now := time.Now()
	tpl.CreatedAt = now
	tpl.UpdatedAt = now

	stored := *tpl
	stored.Associations = nil
	m.templates[tpl.ID] = stored
	return nil
}

func (m *Memory) GetTemplate(ctx context.Context, id uuid.UUID) (*template.Template, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stored, ok := m.templates[id]
	if !ok {
		return nil, pverrors.ErrNotFound
	}
	tpl := stored
	tpl.Associations = m.associationsFor(id)
	return &tpl, nil
}

func (m *Memory) GetTemplateByTitle(ctx context.Context, title string) (*template.Template, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for id, stored := range m.templates {
		if stored.Title == title {
			tpl := stored
			tpl.Associations = m.associationsFor(id)
			return &tpl, nil
		}
	}
	return nil, pverrors.ErrNotFound
}

// associationsFor collects a template's associations sorted by
// SortOrder, resolving each definition. Callers hold the lock.
func (m *Memory) associationsFor(id uuid.UUID) []template.Association {
	var assocs []template.Association
	for _, a := range m.associations {
		if a.TemplateID != id {
			continue
		}
		if def, ok := m.definitions[a.DefinitionID]; ok {
			defCopy := def
			a.Definition = &defCopy
		} else {
			a.Definition = nil
		}
		assocs = append(assocs, a)
	}
	sort.Slice(assocs, func(i, j int) bool {
		return assocs[i].SortOrder < assocs[j].SortOrder
	})
	return assocs
}

func (m *Memory) ListTemplates(ctx context.Context, filter Filter) ([]template.Template, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []template.Template
	for _, tpl := range m.templates {
		if filter.FavoritesOnly && !tpl.Favorite {
			continue
		}
		if !hasAllTags(tpl.Tags, filter.Tags) {
			continue
		}
		result = append(result, tpl)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Title < result[j].Title
	})
	return result, nil
}

func (m *Memory) UpdateTemplate(ctx context.Context, tpl *template.Template) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.templates[tpl.ID]
	if !ok {
		return &pverrors.StoreError{Op: "updateTemplate", Err: pverrors.ErrNotFound}
	}
	tpl.CreatedAt = stored.CreatedAt
	tpl.UpdatedAt = time.Now()

	updated := *tpl
	updated.Associations = nil
	m.templates[tpl.ID] = updated
	return nil
}

func (m *Memory) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.templates[id]; !ok {
		return &pverrors.StoreError{Op: "deleteTemplate", Err: pverrors.ErrNotFound}
	}
	delete(m.templates, id)
	for aid, a := range m.associations {
		if a.TemplateID == id {
			delete(m.associations, aid)
		}
	}
	for iid, inst := range m.instances {
		if inst.TemplateID == id {
			delete(m.instances, iid)
		}
	}
	return nil
}

func (m *Memory) CreateDefinition(ctx context.Context, def *template.PlaceholderDefinition) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if def.ID == uuid.Nil {
		def.ID = uuid.New()
	}
	now := time.Now()
	def.CreatedAt = now
	def.UpdatedAt = now
	m.definitions[def.ID] = *def
	return nil
}

func (m *Memory) GlobalDefinitions(ctx context.Context) ([]template.PlaceholderDefinition, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []template.PlaceholderDefinition
	for _, def := range m.definitions {
		if def.IsGlobal {
			result = append(result, def)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})
	return result, nil
}

func (m *Memory) ListDefinitions(ctx context.Context) ([]template.PlaceholderDefinition, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]template.PlaceholderDefinition, 0, len(m.definitions))
	for _, def := range m.definitions {
		result = append(result, def)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})
	return result, nil
}

func (m *Memory) CreateAssociation(ctx context.Context, assoc *template.Association) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if assoc.ID == uuid.Nil {
		assoc.ID = uuid.New()
	}
	if _, ok := m.templates[assoc.TemplateID]; !ok {
		return &pverrors.StoreError{Op: "createAssociation", Err: pverrors.ErrNotFound}
	}
	if _, ok := m.definitions[assoc.DefinitionID]; !ok {
		return &pverrors.StoreError{Op: "createAssociation", Err: pverrors.ErrNotFound}
	}
	stored := *assoc
	stored.Definition = nil
	m.associations[assoc.ID] = stored
	return nil
}

func (m *Memory) DeleteAssociation(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.associations[id]; !ok {
		return &pverrors.StoreError{Op: "deleteAssociation", Err: pverrors.ErrNotFound}
	}
	delete(m.associations, id)
	return nil
}

func (m *Memory) RecordInstance(ctx context.Context, inst *template.GeneratedInstance) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if inst.ID == uuid.Nil {
		inst.ID = uuid.New()
	}
	inst.CreatedAt = time.Now()
	m.instances[inst.ID] = *inst
	return nil
}

func (m *Memory) ListInstances(ctx context.Context, templateID uuid.UUID) ([]template.GeneratedInstance, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []template.GeneratedInstance
	for _, inst := range m.instances {
		if inst.TemplateID == templateID {
			result = append(result, inst)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// Transaction runs fn directly. The in-memory store has no rollback;
// tests that need failure injection wrap Memory instead.
func (m *Memory) Transaction(ctx context.Context, fn func(Store) error) error {
	return fn(m)
}

func hasAllTags(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
