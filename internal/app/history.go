package app

import (
	"context"

	"github.com/chazuruo/promptvault/internal/store"
	"github.com/chazuruo/promptvault/internal/template"
)

// HistoryOutput contains a template's generated instances, newest first.
type HistoryOutput struct {
	Template  *template.Template
	Instances []template.GeneratedInstance
}

// History lists the generated instances recorded for a template.
func History(ctx context.Context, st store.Store, title string) (*HistoryOutput, error) {
	tpl, err := ResolveTemplate(ctx, st, title)
	if err != nil {
		return nil, err
	}

	insts, err := st.ListInstances(ctx, tpl.ID)
	if err != nil {
		return nil, err
	}

	return &HistoryOutput{Template: tpl, Instances: insts}, nil
}
