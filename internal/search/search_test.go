package search

import (
	"testing"

	"github.com/chazuruo/promptvault/internal/template"
)

func TestTemplates(t *testing.T) {
	tpls := []template.Template{
		{Title: "Meeting notes", Tags: []string{"work"}},
		{Title: "Bug report", Description: "GitHub issue scaffold", Tags: []string{"dev"}},
		{Title: "Invoice reminder", Tags: []string{"finance"}},
	}

	t.Run("empty query returns all", func(t *testing.T) {
		if got := Templates(tpls, ""); len(got) != 3 {
			t.Errorf("got %d results, want 3", len(got))
		}
	})

	t.Run("matches title", func(t *testing.T) {
		got := Templates(tpls, "bug")
		if len(got) == 0 || got[0].Title != "Bug report" {
			t.Errorf("Templates(bug) = %v", got)
		}
	})

	t.Run("matches tags", func(t *testing.T) {
		got := Templates(tpls, "finance")
		if len(got) == 0 || got[0].Title != "Invoice reminder" {
			t.Errorf("Templates(finance) = %v", got)
		}
	})

	t.Run("no match", func(t *testing.T) {
		if got := Templates(tpls, "zzzzqqq"); len(got) != 0 {
			t.Errorf("got %d results, want 0", len(got))
		}
	})
}

func TestDefinitions(t *testing.T) {
	defs := []template.PlaceholderDefinition{
		{Key: "customer_name", Label: "Customer name"},
		{Key: "due_date", Label: "Due date"},
	}

	got := Definitions(defs, "due")
	if len(got) == 0 || got[0].Key != "due_date" {
		t.Errorf("Definitions(due) = %v", got)
	}

	if got := Definitions(defs, ""); len(got) != 2 {
		t.Errorf("empty query should return all definitions")
	}
}
