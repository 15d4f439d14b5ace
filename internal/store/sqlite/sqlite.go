// Package sqlite implements the store interface on an embedded SQLite
// database via gorm.
package sqlite

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	pverrors "github.com/chazuruo/promptvault/internal/errors"
	"github.com/chazuruo/promptvault/internal/store"
	"github.com/chazuruo/promptvault/internal/template"
)

// Store is the gorm-backed implementation of store.Store.
type Store struct {
	db *gorm.DB
}

// Open connects to the database at path, runs migrations, and returns
// the store. Use ":memory:" for an ephemeral database.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, &pverrors.StoreError{Op: "open", Err: err}
	}

	if err := db.AutoMigrate(
		&template.Template{},
		&template.PlaceholderDefinition{},
		&template.Association{},
		&template.GeneratedInstance{},
	); err != nil {
		return nil, &pverrors.StoreError{Op: "migrate", Err: err}
	}

	return &Store{db: db}, nil
}

// New wraps an existing gorm handle. Used by Transaction.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateTemplate(ctx context.Context, tpl *template.Template) error {
	if tpl.ID == uuid.Nil {
		tpl.ID = uuid.New()
	}
	now := time.Now()
	tpl.CreatedAt = now
	tpl.UpdatedAt = now

	if err := s.db.WithContext(ctx).Omit("Associations").Create(tpl).Error; err != nil {
		return &pverrors.StoreError{Op: "createTemplate", Err: err}
	}
	return nil
}

func (s *Store) GetTemplate(ctx context.Context, id uuid.UUID) (*template.Template, error) {
	var tpl template.Template
	err := s.db.WithContext(ctx).
		Preload("Associations", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Associations.Definition").
		First(&tpl, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pverrors.ErrNotFound
		}
		return nil, &pverrors.StoreError{Op: "getTemplate", Err: err}
	}
	return &tpl, nil
}

func (s *Store) GetTemplateByTitle(ctx context.Context, title string) (*template.Template, error) {
	var tpl template.Template
	err := s.db.WithContext(ctx).
		Preload("Associations", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Associations.Definition").
		First(&tpl, "title = ?", title).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pverrors.ErrNotFound
		}
		return nil, &pverrors.StoreError{Op: "getTemplateByTitle", Err: err}
	}
	return &tpl, nil
}

func (s *Store) ListTemplates(ctx context.Context, filter store.Filter) ([]template.Template, error) {
	q := s.db.WithContext(ctx).Order("title ASC")
	if filter.FavoritesOnly {
		q = q.Where("favorite = ?", true)
	}

	var tpls []template.Template
	if err := q.Find(&tpls).Error; err != nil {
		return nil, &pverrors.StoreError{Op: "listTemplates", Err: err}
	}

	// Tags live in a JSON column, so tag filtering happens here rather
	// than in SQL.
	if len(filter.Tags) > 0 {
		filtered := tpls[:0]
		for _, tpl := range tpls {
			if hasAllTags(tpl.Tags, filter.Tags) {
				filtered = append(filtered, tpl)
			}
		}
		tpls = filtered
	}

	return tpls, nil
}

func (s *Store) UpdateTemplate(ctx context.Context, tpl *template.Template) error {
	tpl.UpdatedAt = time.Now()
	result := s.db.WithContext(ctx).
		Model(tpl).
		Select("title", "description", "content", "tags", "favorite", "updated_at").
		Updates(tpl)
	if result.Error != nil {
		return &pverrors.StoreError{Op: "updateTemplate", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return &pverrors.StoreError{Op: "updateTemplate", Err: pverrors.ErrNotFound}
	}
	return nil
}

func (s *Store) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	return s.Transaction(ctx, func(tx store.Store) error {
		txs := tx.(*Store)
		if err := txs.db.WithContext(ctx).
			Where("template_id = ?", id).
			Delete(&template.Association{}).Error; err != nil {
			return &pverrors.StoreError{Op: "deleteTemplate", Err: err}
		}
		if err := txs.db.WithContext(ctx).
			Where("template_id = ?", id).
			Delete(&template.GeneratedInstance{}).Error; err != nil {
			return &pverrors.StoreError{Op: "deleteTemplate", Err: err}
		}
		result := txs.db.WithContext(ctx).Delete(&template.Template{}, "id = ?", id)
		if result.Error != nil {
			return &pverrors.StoreError{Op: "deleteTemplate", Err: result.Error}
		}
		if result.RowsAffected == 0 {
			return &pverrors.StoreError{Op: "deleteTemplate", Err: pverrors.ErrNotFound}
		}
		return nil
	})
}

func (s *Store) CreateDefinition(ctx context.Context, def *template.PlaceholderDefinition) error {
	if def.ID == uuid.Nil {
		def.ID = uuid.New()
	}
	now := time.Now()
	def.CreatedAt = now
	def.UpdatedAt = now

	if err := s.db.WithContext(ctx).Create(def).Error; err != nil {
		return &pverrors.StoreError{Op: "createDefinition", Err: err}
	}
	return nil
}

func (s *Store) GlobalDefinitions(ctx context.Context) ([]template.PlaceholderDefinition, error) {
	var defs []template.PlaceholderDefinition
	err := s.db.WithContext(ctx).
		Where("is_global = ?", true).
		Order("key ASC").
		Find(&defs).Error
	if err != nil {
		return nil, &pverrors.StoreError{Op: "globalDefinitions", Err: err}
	}
	return defs, nil
}

func (s *Store) ListDefinitions(ctx context.Context) ([]template.PlaceholderDefinition, error) {
	var defs []template.PlaceholderDefinition
	if err := s.db.WithContext(ctx).Order("key ASC").Find(&defs).Error; err != nil {
		return nil, &pverrors.StoreError{Op: "listDefinitions", Err: err}
	}
	return defs, nil
}

func (s *Store) CreateAssociation(ctx context.Context, assoc *template.Association) error {
	if assoc.ID == uuid.Nil {
		assoc.ID = uuid.New()
	}
	if err := s.db.WithContext(ctx).Omit("Definition").Create(assoc).Error; err != nil {
		return &pverrors.StoreError{Op: "createAssociation", Err: err}
	}
	return nil
}

func (s *Store) DeleteAssociation(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&template.Association{}, "id = ?", id)
	if result.Error != nil {
		return &pverrors.StoreError{Op: "deleteAssociation", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return &pverrors.StoreError{Op: "deleteAssociation", Err: pverrors.ErrNotFound}
	}
	return nil
}

func (s *Store) RecordInstance(ctx context.Context, inst *template.GeneratedInstance) error {
	if inst.ID == uuid.Nil {
		inst.ID = uuid.New()
	}
	inst.CreatedAt = time.Now()

	if err := s.db.WithContext(ctx).Create(inst).Error; err != nil {
		return &pverrors.StoreError{Op: "recordInstance", Err: err}
	}
	return nil
}

func (s *Store) ListInstances(ctx context.Context, templateID uuid.UUID) ([]template.GeneratedInstance, error) {
	var insts []template.GeneratedInstance
	err := s.db.WithContext(ctx).
		Where("template_id = ?", templateID).
		Order("created_at DESC").
		Find(&insts).Error
	if err != nil {
		return nil, &pverrors.StoreError{Op: "listInstances", Err: err}
	}
	return insts, nil
}

// Transaction runs fn against a store bound to a database transaction.
func (s *Store) Transaction(ctx context.Context, fn func(store.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
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
