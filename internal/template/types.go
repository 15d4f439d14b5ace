// Package template defines the domain model: templates, placeholder
// definitions, the association rows linking the two, and generated
// instances recorded after successful renders.
package template

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/chazuruo/promptvault/internal/placeholders"
)

// PlaceholderType classifies how a placeholder value is entered and validated.
type PlaceholderType string

const (
	// TypeText is free text, no structural validation.
	TypeText PlaceholderType = "text"
	// TypeNumber requires the value to parse as a decimal number.
	TypeNumber PlaceholderType = "number"
	// TypeDate is a date string; format checking is the caller's concern.
	TypeDate PlaceholderType = "date"
	// TypeSingleChoice requires the value to be one of Options.
	TypeSingleChoice PlaceholderType = "singleChoice"
	// TypeMultiChoice requires each comma-separated part to be one of Options.
	TypeMultiChoice PlaceholderType = "multiChoice"
)

// RequiresOptions reports whether the type needs a non-empty Options list.
func (t PlaceholderType) RequiresOptions() bool {
	return t == TypeSingleChoice || t == TypeMultiChoice
}

// Valid reports whether t is one of the known placeholder types.
func (t PlaceholderType) Valid() bool {
	switch t {
	case TypeText, TypeNumber, TypeDate, TypeSingleChoice, TypeMultiChoice:
		return true
	}
	return false
}

// Template is a block of text with {{key}} markers plus metadata.
// Content is the single source of truth for which keys are in use;
// Associations converge to match it via sync.
type Template struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"not null"`
	Description string
	Content     string
	Tags        []string `gorm:"serializer:json"`
	Favorite    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Associations are ordered by SortOrder. Loading them is the
	// store's job; sync and render read them as given.
	Associations []Association `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE"`
}

// PlaceholderDefinition is the reusable specification of a placeholder,
// independent of any one template. Global definitions are shared across
// templates; non-global ones belong to the template that minted them.
type PlaceholderDefinition struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Key          string    `gorm:"not null;index"`
	Label        string
	Type         PlaceholderType `gorm:"type:text"`
	Options      []string        `gorm:"serializer:json"`
	IsGlobal     bool
	DefaultValue string
	Description  string
	Tags         []string `gorm:"serializer:json"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Association links one template to one placeholder definition and
// carries the template-specific overrides: required flag, presentation
// order, and an optional default that shadows the definition's own.
type Association struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	TemplateID   uuid.UUID `gorm:"type:uuid;index;not null"`
	DefinitionID uuid.UUID `gorm:"type:uuid;index;not null"`
	IsRequired   bool
	SortOrder    int

	// TemplateDefaultValue overrides Definition.DefaultValue when non-nil.
	TemplateDefaultValue *string

	// Definition may be nil if the store failed to resolve it; callers
	// treat that as a data-integrity violation to log and skip.
	Definition *PlaceholderDefinition `gorm:"foreignKey:DefinitionID"`
}

// EffectiveDefault resolves the default value for this association:
// the template-specific override if set, else the definition's default.
// The second return is false when neither exists.
func (a *Association) EffectiveDefault() (string, bool) {
	if a.TemplateDefaultValue != nil {
		return *a.TemplateDefaultValue, true
	}
	if a.Definition != nil && a.Definition.DefaultValue != "" {
		return a.Definition.DefaultValue, true
	}
	return "", false
}

// GeneratedInstance records one successful render: the values used and
// the final text. Instances are append-only; deletion is the store's
// policy (cascade with the template).
type GeneratedInstance struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey"`
	TemplateID   uuid.UUID         `gorm:"type:uuid;index;not null"`
	Values       map[string]string `gorm:"serializer:json"`
	RenderedText string
	Notes        string
	CreatedAt    time.Time
}

// Validate checks the template's own invariants. Association
// consistency with Content is sync's job, not validation's.
func (t *Template) Validate() error {
	if t.Title == "" {
		return errors.New("template title is required")
	}
	return nil
}

// Validate checks the definition invariants: key grammar, known type,
// and options present exactly when the type needs them.
func (d *PlaceholderDefinition) Validate() error {
	if !placeholders.IsValidKey(d.Key) {
		return fmt.Errorf("invalid placeholder key %q", d.Key)
	}
	if !d.Type.Valid() {
		return fmt.Errorf("unknown placeholder type %q", d.Type)
	}
	if d.Type.RequiresOptions() && len(d.Options) == 0 {
		return fmt.Errorf("placeholder %q: type %s requires options", d.Key, d.Type)
	}
	return nil
}

// LabelForKey derives a human label from a placeholder key, used when
// sync mints a definition for a detected key. Capitalizes the key.
func LabelForKey(key string) string {
	return cases.Title(language.English, cases.NoLower).String(key)
}

// NewDefinitionForKey builds the free-text, non-global definition that
// sync creates for a detected key with no existing definition.
func NewDefinitionForKey(key string) *PlaceholderDefinition {
	return &PlaceholderDefinition{
		ID:    uuid.New(),
		Key:   key,
		Label: LabelForKey(key),
		Type:  TypeText,
	}
}
