package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pverrors "github.com/chazuruo/promptvault/internal/errors"
	"github.com/chazuruo/promptvault/internal/store"
	"github.com/chazuruo/promptvault/internal/template"
	"github.com/chazuruo/promptvault/internal/testutil"
)

func TestTemplateRoundTrip(t *testing.T) {
	st := testutil.OpenSQLite(t)
	ctx := context.Background()

	tpl := &template.Template{
		ID:      uuid.New(),
		Title:   "Greeting",
		Content: "Hello {{name}}",
		Tags:    []string{"email", "casual"},
	}
	require.NoError(t, st.CreateTemplate(ctx, tpl))

	got, err := st.GetTemplate(ctx, tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, "Greeting", got.Title)
	assert.Equal(t, []string{"email", "casual"}, got.Tags)

	byTitle, err := st.GetTemplateByTitle(ctx, "Greeting")
	require.NoError(t, err)
	assert.Equal(t, tpl.ID, byTitle.ID)

	_, err = st.GetTemplate(ctx, uuid.New())
	assert.True(t, pverrors.IsNotFound(err))
}

func TestListTemplates_Filter(t *testing.T) {
	st := testutil.OpenSQLite(t)
	ctx := context.Background()

	require.NoError(t, st.CreateTemplate(ctx, &template.Template{
		ID: uuid.New(), Title: "A", Tags: []string{"work"},
	}))
	require.NoError(t, st.CreateTemplate(ctx, &template.Template{
		ID: uuid.New(), Title: "B", Tags: []string{"work", "email"}, Favorite: true,
	}))

	all, err := st.ListTemplates(ctx, store.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	tagged, err := st.ListTemplates(ctx, store.Filter{Tags: []string{"email"}})
	require.NoError(t, err)
	require.Len(t, tagged, 1)
	assert.Equal(t, "B", tagged[0].Title)

	favs, err := st.ListTemplates(ctx, store.Filter{FavoritesOnly: true})
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, "B", favs[0].Title)
}

func TestAssociations_OrderedWithDefinitions(t *testing.T) {
	st := testutil.OpenSQLite(t)
	ctx := context.Background()

	tpl := &template.Template{ID: uuid.New(), Title: "T", Content: "{{b}} {{a}}"}
	require.NoError(t, st.CreateTemplate(ctx, tpl))

	defA := template.NewDefinitionForKey("a")
	defB := template.NewDefinitionForKey("b")
	require.NoError(t, st.CreateDefinition(ctx, defA))
	require.NoError(t, st.CreateDefinition(ctx, defB))

	// Insert out of sort order; loading must come back ordered.
	require.NoError(t, st.CreateAssociation(ctx, &template.Association{
		ID: uuid.New(), TemplateID: tpl.ID, DefinitionID: defA.ID, SortOrder: 1,
	}))
	require.NoError(t, st.CreateAssociation(ctx, &template.Association{
		ID: uuid.New(), TemplateID: tpl.ID, DefinitionID: defB.ID, SortOrder: 0,
	}))

	got, err := st.GetTemplate(ctx, tpl.ID)
	require.NoError(t, err)
	require.Len(t, got.Associations, 2)
	require.NotNil(t, got.Associations[0].Definition)
	assert.Equal(t, "b", got.Associations[0].Definition.Key)
	assert.Equal(t, "a", got.Associations[1].Definition.Key)
}

func TestDeleteTemplate_Cascades(t *testing.T) {
	st := testutil.OpenSQLite(t)
	ctx := context.Background()

	tpl := &template.Template{ID: uuid.New(), Title: "T", Content: "{{a}}"}
	require.NoError(t, st.CreateTemplate(ctx, tpl))

	def := template.NewDefinitionForKey("a")
	require.NoError(t, st.CreateDefinition(ctx, def))
	require.NoError(t, st.CreateAssociation(ctx, &template.Association{
		ID: uuid.New(), TemplateID: tpl.ID, DefinitionID: def.ID,
	}))
	require.NoError(t, st.RecordInstance(ctx, &template.GeneratedInstance{
		ID: uuid.New(), TemplateID: tpl.ID, RenderedText: "x",
	}))

	require.NoError(t, st.DeleteTemplate(ctx, tpl.ID))

	_, err := st.GetTemplate(ctx, tpl.ID)
	assert.True(t, pverrors.IsNotFound(err))

	instances, err := st.ListInstances(ctx, tpl.ID)
	require.NoError(t, err)
	assert.Empty(t, instances)

	// Definitions survive template deletion.
	defs, err := st.ListDefinitions(ctx)
	require.NoError(t, err)
	assert.Len(t, defs, 1)
}

func TestGlobalDefinitions(t *testing.T) {
	st := testutil.OpenSQLite(t)
	ctx := context.Background()

	global := template.NewDefinitionForKey("name")
	global.IsGlobal = true
	local := template.NewDefinitionForKey("age")
	require.NoError(t, st.CreateDefinition(ctx, global))
	require.NoError(t, st.CreateDefinition(ctx, local))

	globals, err := st.GlobalDefinitions(ctx)
	require.NoError(t, err)
	require.Len(t, globals, 1)
	assert.Equal(t, "name", globals[0].Key)
}

func TestListInstances_NewestFirst(t *testing.T) {
	st := testutil.OpenSQLite(t)
	ctx := context.Background()

	tpl := &template.Template{ID: uuid.New(), Title: "T"}
	require.NoError(t, st.CreateTemplate(ctx, tpl))

	first := &template.GeneratedInstance{ID: uuid.New(), TemplateID: tpl.ID, RenderedText: "first"}
	second := &template.GeneratedInstance{ID: uuid.New(), TemplateID: tpl.ID, RenderedText: "second"}
	require.NoError(t, st.RecordInstance(ctx, first))
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, st.RecordInstance(ctx, second))

	instances, err := st.ListInstances(ctx, tpl.ID)
	require.NoError(t, err)
	require.Len(t, instances, 2)
	assert.Equal(t, second.ID, instances[0].ID)
}

func TestTransaction_RollsBack(t *testing.T) {
	st := testutil.OpenSQLite(t)
	ctx := context.Background()

	err := st.Transaction(ctx, func(tx store.Store) error {
		if err := tx.CreateTemplate(ctx, &template.Template{ID: uuid.New(), Title: "T"}); err != nil {
			return err
		}
		return assert.AnError
	})
	require.Error(t, err)

	tpls, err := st.ListTemplates(ctx, store.Filter{})
	require.NoError(t, err)
	assert.Empty(t, tpls)
}
