// Package cli provides Cobra command definitions for promptvault.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chazuruo/promptvault/internal/app"
	"github.com/chazuruo/promptvault/internal/config"
)

// EditOptions contains the options for the edit command.
type EditOptions struct {
	ConfigPath string
	Content    string
	File       string
}

// NewEditCommand creates the edit command for changing template content.
func NewEditCommand() *cobra.Command {
	opts := &EditOptions{}

	cmd := &cobra.Command{
		Use:   "edit <template>",
		Short: "Edit template content and resync placeholders",
		Long: `Edit a template's content.

By default the current content opens in your editor. After saving, the
placeholder associations are resynced: new {{keys}} gain associations,
vanished keys lose theirs.

Non-interactive content can be supplied with --content or --file.

Examples:
  promptvault edit "Welcome Mail"
  promptvault edit "Welcome Mail" --file updated.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringVar(&opts.Content, "content", "", "replacement content")
	cmd.Flags().StringVar(&opts.File, "file", "", "read replacement content from file")

	return cmd
}

func runEdit(opts *EditOptions, ref string) error {
	ctx := context.Background()

	cfg, err := app.LoadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	st, err := app.OpenStore(cfg)
	if err != nil {
		return err
	}

	tpl, err := app.ResolveTemplate(ctx, st, ref)
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
	case content == "":
		if NoInput {
			return fmt.Errorf("no content supplied; use --content or --file with --no-input")
		}
		content, err = editInEditor(cfg, tpl.Content)
		if err != nil {
			return err
		}
	}

	if content == tpl.Content {
		fmt.Println("No changes.")
		return nil
	}

	out, err := app.UpdateContent(ctx, st, app.UpdateContentOptions{
		Title:   ref,
		Content: content,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Updated %q\n", out.Template.Title)
	printSyncResult(out.Sync)
	return nil
}

// editInEditor opens the content in the configured editor and returns
// the edited result.
func editInEditor(cfg *config.Config, content string) (string, error) {
	tmp, err := os.CreateTemp("", "promptvault-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	parts := strings.Fields(cfg.EditorCommand())
	args := append(parts[1:], tmp.Name())

	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor failed: %w", err)
	}

	edited, err := os.ReadFile(tmp.Name())
	if err != nil {
		return "", fmt.Errorf("failed to read edited content: %w", err)
	}
	return string(edited), nil
}
