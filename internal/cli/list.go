// Package cli provides Cobra command definitions for promptvault.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chazuruo/promptvault/internal/app"
	"github.com/chazuruo/promptvault/internal/store"
)

// OutputFormat defines the output format for listing commands.
type OutputFormat string

const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatPlain OutputFormat = "plain"
)

// ListOptions contains the options for the list command.
type ListOptions struct {
	ConfigPath string
	Tags       []string
	Favorites  bool
	Format     string
}

// NewListCommand creates the list command for listing templates.
func NewListCommand() *cobra.Command {
	opts := &ListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List templates with optional filtering",
		Long: `List all templates with filtering options.

Templates can be filtered by:
- --tag: Filter by tag (can be specified multiple times)
- --favorites: Only show favorites
- --format: Output format (table, json, plain)

Examples:
  promptvault list                  # List all templates in table format
  promptvault list --tag email      # List templates tagged with 'email'
  promptvault list --favorites      # List only favorites
  promptvault list --format json    # List templates in JSON format`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringSliceVar(&opts.Tags, "tag", nil, "filter by tag (repeatable)")
	cmd.Flags().BoolVar(&opts.Favorites, "favorites", false, "only show favorites")
	cmd.Flags().StringVar(&opts.Format, "format", "table", "output format (table, json, plain)")

	return cmd
}

func runList(opts *ListOptions) error {
	ctx := context.Background()

	cfg, err := app.LoadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	st, err := app.OpenStore(cfg)
	if err != nil {
		return err
	}

	tpls, err := st.ListTemplates(ctx, store.Filter{
		Tags:          opts.Tags,
		FavoritesOnly: opts.Favorites,
	})
	if err != nil {
		return fmt.Errorf("failed to list templates: %w", err)
	}

	switch OutputFormat(opts.Format) {
	case FormatTable:
		if len(tpls) == 0 {
			fmt.Println("No templates found.")
			return nil
		}
		tbl := newTable(cfg.Output.Color, "TITLE", "DESCRIPTION", "TAGS", "FAV", "UPDATED")
		for _, t := range tpls {
			fav := ""
			if t.Favorite {
				fav = "*"
			}
			tbl.AddRow(
				t.Title,
				truncate(t.Description, 40),
				strings.Join(t.Tags, ","),
				fav,
				t.UpdatedAt.Format(cfg.Output.TimeFormat),
			)
		}
		tbl.Print()
	case FormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(tpls); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
	case FormatPlain:
		for _, t := range tpls {
			fmt.Println(t.Title)
		}
	default:
		return fmt.Errorf("invalid format: %s (must be table, json, or plain)", opts.Format)
	}

	return nil
}
