// Package cli provides Cobra command definitions for promptvault.
package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/chazuruo/promptvault/internal/app"
)

// HistoryOptions contains the options for the history command.
type HistoryOptions struct {
	ConfigPath string
	Limit      int
	Show       int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand() *cobra.Command {
	opts := &HistoryOptions{}

	cmd := &cobra.Command{
		Use:   "history <template>",
		Short: "Show a template's generated instances",
		Long: `List the renders recorded for a template, newest first.

Each entry shows when it was generated, the values used, and any notes.
Use --show with an entry number to print that instance's full text.

Examples:
  promptvault history "Welcome Mail"
  promptvault history "Welcome Mail" --show 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum entries to show")
	cmd.Flags().IntVar(&opts.Show, "show", 0, "print the full text of entry N (1 = newest)")

	return cmd
}

func runHistory(opts *HistoryOptions, ref string) error {
	ctx := context.Background()

	cfg, err := app.LoadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	st, err := app.OpenStore(cfg)
	if err != nil {
		return err
	}

	out, err := app.History(ctx, st, ref)
	if err != nil {
		return err
	}

	if len(out.Instances) == 0 {
		fmt.Println("No history.")
		return nil
	}

	if opts.Show > 0 {
		if opts.Show > len(out.Instances) {
			return fmt.Errorf("entry %d out of range (%d entries)", opts.Show, len(out.Instances))
		}
		fmt.Println(out.Instances[opts.Show-1].RenderedText)
		return nil
	}

	instances := out.Instances
	if opts.Limit > 0 && len(instances) > opts.Limit {
		instances = instances[:opts.Limit]
	}

	tbl := newTable(cfg.Output.Color, "#", "GENERATED", "VALUES", "NOTES")
	for i, inst := range instances {
		tbl.AddRow(
			i+1,
			inst.CreatedAt.Format(cfg.Output.TimeFormat),
			truncate(formatValues(inst.Values), 50),
			truncate(inst.Notes, 30),
		)
	}
	tbl.Print()
	return nil
}

func formatValues(values map[string]string) string {
	if len(values) == 0 {
		return ""
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	// Stable order for display.
	sort.Strings(keys)

	s := ""
	for i, k := range keys {
		if i > 0 {
			s += " "
		}
		s += k + "=" + values[k]
	}
	return s
}
