// Package cli provides Cobra command definitions for promptvault.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazuruo/promptvault/internal/app"
	"github.com/chazuruo/promptvault/internal/engine"
)

// NewTemplateOptions contains the options for the new command.
type NewTemplateOptions struct {
	ConfigPath  string
	Description string
	Tags        []string
	Favorite    bool
	Content     string
	File        string
	Edit        bool
	NoSync      bool
}

// NewNewCommand creates the new command for creating templates.
func NewNewCommand() *cobra.Command {
	opts := &NewTemplateOptions{}

	cmd := &cobra.Command{
		Use:   "new <title>",
		Short: "Create a new template",
		Long: `Create a new template and sync its placeholders.

Content can come from --content, from a file via --file, or from your
editor via --edit. Placeholder markers like {{customer_name}} in the
content become associations immediately.

Examples:
  promptvault new "Welcome Mail" --content "Hello {{name}}!"
  promptvault new "Report" --file report.txt --tag work
  promptvault new "Invoice" --edit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringVar(&opts.Description, "description", "", "template description")
	cmd.Flags().StringSliceVar(&opts.Tags, "tag", nil, "tag for the template (repeatable)")
	cmd.Flags().BoolVar(&opts.Favorite, "favorite", false, "mark the template as a favorite")
	cmd.Flags().StringVar(&opts.Content, "content", "", "template content")
	cmd.Flags().StringVar(&opts.File, "file", "", "read content from file")
	cmd.Flags().BoolVar(&opts.Edit, "edit", false, "open the editor for content")
	cmd.Flags().BoolVar(&opts.NoSync, "no-sync", false, "skip the initial placeholder sync")

	return cmd
}

func runNew(opts *NewTemplateOptions, title string) error {
	ctx := context.Background()

	cfg, err := app.LoadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	st, err := app.OpenStore(cfg)
	if err != nil {
		return err
	}

	content := opts.Content
	switch {
	case opts.File != "":
		data, err := os.ReadFile(opts.File)
		if err != nil {
			return fmt.Errorf("failed to read content file: %w", err)
		}
		content = string(data)
	case opts.Edit:
		if NoInput {
			return fmt.Errorf("--edit is not available with --no-input")
		}
		content, err = editInEditor(cfg, content)
		if err != nil {
			return err
		}
	}

	out, err := app.CreateTemplate(ctx, st, app.CreateTemplateOptions{
		Title:       title,
		Description: opts.Description,
		Content:     content,
		Tags:        opts.Tags,
		Favorite:    opts.Favorite,
		NoSync:      opts.NoSync,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created template %q (%s)\n", out.Template.Title, out.Template.ID)
	printSyncResult(out.Sync)
	return nil
}

// printSyncResult summarizes what a sync changed, if anything.
func printSyncResult(result *engine.SyncResult) {
	if result == nil || !result.Changed() {
		return
	}
	if len(result.Created) > 0 {
		fmt.Printf("Placeholders added: %d\n", len(result.Created))
		for _, key := range result.Created {
			fmt.Printf("  + %s\n", key)
		}
	}
	if len(result.Reused) > 0 {
		fmt.Printf("Global placeholders reused: %d\n", len(result.Reused))
		for _, key := range result.Reused {
			fmt.Printf("  = %s\n", key)
		}
	}
	if len(result.Removed) > 0 {
		fmt.Printf("Placeholders removed: %d\n", len(result.Removed))
		for _, key := range result.Removed {
			fmt.Printf("  - %s\n", key)
		}
	}
}
