package template

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholderType_RequiresOptions(t *testing.T) {
	assert.False(t, TypeText.RequiresOptions())
	assert.False(t, TypeNumber.RequiresOptions())
	assert.False(t, TypeDate.RequiresOptions())
	assert.True(t, TypeSingleChoice.RequiresOptions())
	assert.True(t, TypeMultiChoice.RequiresOptions())
}

func TestDefinitionValidate(t *testing.T) {
	tests := []struct {
		name    string
		def     PlaceholderDefinition
		wantErr bool
	}{
		{
			name:    "valid text definition",
			def:     PlaceholderDefinition{Key: "name", Label: "Name", Type: TypeText},
			wantErr: false,
		},
		{
			name:    "empty key",
			def:     PlaceholderDefinition{Key: "", Type: TypeText},
			wantErr: true,
		},
		{
			name:    "key with space",
			def:     PlaceholderDefinition{Key: "user name", Type: TypeText},
			wantErr: true,
		},
		{
			name:    "unknown type",
			def:     PlaceholderDefinition{Key: "name", Type: "enum"},
			wantErr: true,
		},
		{
			name:    "single choice without options",
			def:     PlaceholderDefinition{Key: "color", Type: TypeSingleChoice},
			wantErr: true,
		},
		{
			name: "single choice with options",
			def: PlaceholderDefinition{
				Key:     "color",
				Type:    TypeSingleChoice,
				Options: []string{"Red", "Green", "Blue"},
			},
			wantErr: false,
		},
		{
			name:    "multi choice without options",
			def:     PlaceholderDefinition{Key: "toppings", Type: TypeMultiChoice},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.def.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAssociationEffectiveDefault(t *testing.T) {
	def := &PlaceholderDefinition{Key: "env", DefaultValue: "staging"}

	t.Run("template override wins", func(t *testing.T) {
		override := "production"
		a := Association{Definition: def, TemplateDefaultValue: &override}
		got, ok := a.EffectiveDefault()
		require.True(t, ok)
		assert.Equal(t, "production", got)
	})

	t.Run("falls back to definition default", func(t *testing.T) {
		a := Association{Definition: def}
		got, ok := a.EffectiveDefault()
		require.True(t, ok)
		assert.Equal(t, "staging", got)
	})

	t.Run("absent when neither set", func(t *testing.T) {
		a := Association{Definition: &PlaceholderDefinition{Key: "env"}}
		_, ok := a.EffectiveDefault()
		assert.False(t, ok)
	})

	t.Run("empty override still wins", func(t *testing.T) {
		empty := ""
		a := Association{Definition: def, TemplateDefaultValue: &empty}
		got, ok := a.EffectiveDefault()
		require.True(t, ok)
		assert.Equal(t, "", got)
	})
}

func TestNewDefinitionForKey(t *testing.T) {
	def := NewDefinitionForKey("customer_name")
	require.NotNil(t, def)
	assert.NotEqual(t, uuid.Nil, def.ID)
	assert.Equal(t, "customer_name", def.Key)
	assert.Equal(t, TypeText, def.Type)
	assert.False(t, def.IsGlobal)
	assert.NotEmpty(t, def.Label)
}

func TestTemplateValidate(t *testing.T) {
	tpl := Template{Title: "Greeting", Content: "Hello {{name}}"}
	assert.NoError(t, tpl.Validate())

	tpl.Title = ""
	assert.Error(t, tpl.Validate())
}
