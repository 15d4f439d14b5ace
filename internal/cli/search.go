// Package cli provides Cobra command definitions for promptvault.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chazuruo/promptvault/internal/app"
	"github.com/chazuruo/promptvault/internal/search"
	"github.com/chazuruo/promptvault/internal/store"
)

// SearchOptions contains the options for the search command.
type SearchOptions struct {
	ConfigPath  string
	Definitions bool
}

// NewSearchCommand creates the search command.
func NewSearchCommand() *cobra.Command {
	opts := &SearchOptions{}

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy-search templates",
		Long: `Search templates by title, description, or tags.

Matching is fuzzy: "wlc mail" finds "Welcome Mail". Results come back
best match first. Use --defs to search placeholder definitions instead.

Examples:
  promptvault search invoice
  promptvault search name --defs`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().BoolVar(&opts.Definitions, "defs", false, "search placeholder definitions instead of templates")

	return cmd
}

func runSearch(opts *SearchOptions, query string) error {
	ctx := context.Background()

	cfg, err := app.LoadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	st, err := app.OpenStore(cfg)
	if err != nil {
		return err
	}

	if opts.Definitions {
		defs, err := st.ListDefinitions(ctx)
		if err != nil {
			return fmt.Errorf("failed to list definitions: %w", err)
		}
		matches := search.Definitions(defs, query)
		if len(matches) == 0 {
			fmt.Println("No matches.")
			return nil
		}
		tbl := newTable(cfg.Output.Color, "KEY", "LABEL", "TYPE")
		for _, d := range matches {
			tbl.AddRow(d.Key, d.Label, string(d.Type))
		}
		tbl.Print()
		return nil
	}

	tpls, err := st.ListTemplates(ctx, store.Filter{})
	if err != nil {
		return fmt.Errorf("failed to list templates: %w", err)
	}
	matches := search.Templates(tpls, query)
	if len(matches) == 0 {
		fmt.Println("No matches.")
		return nil
	}
	tbl := newTable(cfg.Output.Color, "TITLE", "DESCRIPTION", "TAGS")
	for _, t := range matches {
		tbl.AddRow(t.Title, truncate(t.Description, 40), strings.Join(t.Tags, ","))
	}
	tbl.Print()
	return nil
}
