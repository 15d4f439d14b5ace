package engine

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/chazuruo/promptvault/internal/store"
	"github.com/chazuruo/promptvault/internal/template"
)

// Generate renders the template and records the result as a
// GeneratedInstance. A failed render returns the render error. A failed
// history write is logged and swallowed: the render already succeeded
// and its result is returned to the caller regardless.
func Generate(ctx context.Context, st store.Store, tpl *template.Template, values map[string]string, notes string) (*template.GeneratedInstance, error) {
	text, err := Render(tpl, values)
	if err != nil {
		return nil, err
	}

	inst := &template.GeneratedInstance{
		ID:           uuid.New(),
		TemplateID:   tpl.ID,
		Values:       cloneValues(values),
		RenderedText: text,
		Notes:        notes,
	}

	if err := st.RecordInstance(ctx, inst); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to record generated instance for template %q: %v\n",
			tpl.Title, err)
	}

	return inst, nil
}

// cloneValues snapshots the value map; instances are immutable after
// creation and must not alias the caller's map.
func cloneValues(values map[string]string) map[string]string {
	snapshot := make(map[string]string, len(values))
	for k, v := range values {
		snapshot[k] = v
	}
	return snapshot
}
