package export

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazuruo/promptvault/internal/template"
)

func sampleTemplate() *template.Template {
	def := &template.PlaceholderDefinition{
		ID:           uuid.New(),
		Key:          "name",
		Label:        "Name",
		Type:         template.TypeText,
		DefaultValue: "World",
	}
	choice := &template.PlaceholderDefinition{
		ID:       uuid.New(),
		Key:      "color",
		Label:    "Color",
		Type:     template.TypeSingleChoice,
		Options:  []string{"Red", "Green"},
		IsGlobal: true,
	}
	override := "Green"

	return &template.Template{
		ID:       uuid.New(),
		Title:    "Greeting",
		Content:  "Hello {{name}}, pick {{color}}",
		Tags:     []string{"demo"},
		Favorite: true,
		Associations: []template.Association{
			{ID: uuid.New(), DefinitionID: def.ID, Definition: def, IsRequired: true, SortOrder: 0},
			{ID: uuid.New(), DefinitionID: choice.ID, Definition: choice, SortOrder: 1, TemplateDefaultValue: &override},
		},
	}
}

func TestFromTemplate(t *testing.T) {
	doc := FromTemplate(sampleTemplate())

	assert.Equal(t, "Greeting", doc.Title)
	assert.True(t, doc.Favorite)
	require.Len(t, doc.Placeholders, 2)

	assert.Equal(t, "name", doc.Placeholders[0].Key)
	assert.True(t, doc.Placeholders[0].Required)
	assert.Equal(t, "World", doc.Placeholders[0].Default)

	assert.Equal(t, "color", doc.Placeholders[1].Key)
	assert.True(t, doc.Placeholders[1].Global)
	require.NotNil(t, doc.Placeholders[1].TemplateDefault)
	assert.Equal(t, "Green", *doc.Placeholders[1].TemplateDefault)
}

func TestFromTemplate_SkipsDanglingAssociations(t *testing.T) {
	tpl := sampleTemplate()
	tpl.Associations = append(tpl.Associations, template.Association{ID: uuid.New(), SortOrder: 2})

	doc := FromTemplate(tpl)
	assert.Len(t, doc.Placeholders, 2)
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	doc := &Document{
		SchemaVersion: SchemaVersion,
		Templates:     []TemplateDoc{FromTemplate(sampleTemplate())},
	}

	data, err := Marshal(doc)
	require.NoError(t, err)

	parsed, err := Unmarshal(data)
	require.NoError(t, err)
	require.Len(t, parsed.Templates, 1)

	got := parsed.Templates[0]
	assert.Equal(t, "Greeting", got.Title)
	assert.Equal(t, "Hello {{name}}, pick {{color}}", got.Content)
	require.Len(t, got.Placeholders, 2)
	assert.Equal(t, []string{"Red", "Green"}, got.Placeholders[1].Options)
}

func TestUnmarshalValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "wrong schema version",
			yaml: "schema_version: 99\ntemplates: []\n",
		},
		{
			name: "missing title",
			yaml: `
schema_version: 1
templates:
  - content: "hi"
`,
		},
		{
			name: "unknown placeholder type",
			yaml: `
schema_version: 1
templates:
  - title: T
    content: "{{x}}"
    placeholders:
      - key: x
        type: enum
`,
		},
		{
			name: "choice type without options",
			yaml: `
schema_version: 1
templates:
  - title: T
    content: "{{x}}"
    placeholders:
      - key: x
        type: singleChoice
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}
