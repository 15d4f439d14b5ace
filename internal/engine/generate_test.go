package engine

import (
	"context"
	"errors"
	"testing"

	pverrors "github.com/chazuruo/promptvault/internal/errors"
	"github.com/chazuruo/promptvault/internal/store"
	"github.com/chazuruo/promptvault/internal/template"
)

func TestGenerate_RecordsInstance(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	tpl := newTemplate(t, st, "Hello {{name}}")
	if _, err := Sync(ctx, st, tpl); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	tpl = reload(t, st, tpl.ID)

	values := map[string]string{"name": "Alice"}
	inst, err := Generate(ctx, st, tpl, values, "first run")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if inst.RenderedText != "Hello Alice" {
		t.Errorf("RenderedText = %q", inst.RenderedText)
	}
	if inst.Notes != "first run" {
		t.Errorf("Notes = %q", inst.Notes)
	}

	// The instance snapshots the values; mutating the caller's map
	// afterwards must not leak in.
	values["name"] = "Bob"
	if inst.Values["name"] != "Alice" {
		t.Error("instance values should be a snapshot, not an alias")
	}

	insts, err := st.ListInstances(ctx, tpl.ID)
	if err != nil {
		t.Fatalf("ListInstances() error = %v", err)
	}
	if len(insts) != 1 {
		t.Fatalf("instances = %d, want 1", len(insts))
	}
	if insts[0].RenderedText != "Hello Alice" {
		t.Errorf("stored RenderedText = %q", insts[0].RenderedText)
	}
}

func TestGenerate_FailedRenderRecordsNothing(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	tpl := newTemplate(t, st, "Hello {{name}}")
	if _, err := Sync(ctx, st, tpl); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	tpl = reload(t, st, tpl.ID)

	_, err := Generate(ctx, st, tpl, map[string]string{}, "")
	var missing *MissingRequiredError
	if !errors.As(err, &missing) {
		t.Fatalf("Generate() error = %v, want MissingRequiredError", err)
	}

	insts, err := st.ListInstances(ctx, tpl.ID)
	if err != nil {
		t.Fatalf("ListInstances() error = %v", err)
	}
	if len(insts) != 0 {
		t.Errorf("instances = %d, want 0 after failed render", len(insts))
	}
}

// failingHistoryStore wraps a store and rejects instance writes.
type failingHistoryStore struct {
	store.Store
}

func (f *failingHistoryStore) RecordInstance(ctx context.Context, inst *template.GeneratedInstance) error {
	return &pverrors.StoreError{Op: "recordInstance", Err: errors.New("disk full")}
}

func TestGenerate_HistoryWriteFailureIsNonFatal(t *testing.T) {
	mem := store.NewMemory()
	st := &failingHistoryStore{Store: mem}
	ctx := context.Background()

	tpl := newTemplate(t, mem, "Hello {{name}}")
	if _, err := Sync(ctx, mem, tpl); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	tpl = reload(t, mem, tpl.ID)

	inst, err := Generate(ctx, st, tpl, map[string]string{"name": "Alice"}, "")
	if err != nil {
		t.Fatalf("Generate() error = %v, history failure must be non-fatal", err)
	}
	if inst.RenderedText != "Hello Alice" {
		t.Errorf("RenderedText = %q", inst.RenderedText)
	}
}
