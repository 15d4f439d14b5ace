// Package cli provides Cobra command definitions for promptvault.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chazuruo/promptvault/internal/app"
)

// PreviewOptions contains the options for the preview command.
type PreviewOptions struct {
	ConfigPath string
	Values     map[string]string
}

// NewPreviewCommand creates the preview command.
func NewPreviewCommand() *cobra.Command {
	opts := &PreviewOptions{
		Values: make(map[string]string),
	}

	cmd := &cobra.Command{
		Use:   "preview <template>",
		Short: "Preview a template with partial values",
		Long: `Print a template with the supplied values substituted.

Unlike render, preview never fails on placeholder state: required
values may be missing and type rules are not enforced. Unfilled
{{markers}} remain visible in the output. Nothing is recorded.

Examples:
  promptvault preview "Welcome Mail"
  promptvault preview "Welcome Mail" --set name=Alice`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringToStringVar(&opts.Values, "set", nil, "placeholder values (repeatable, e.g., --set key=value)")

	return cmd
}

func runPreview(opts *PreviewOptions, ref string) error {
	ctx := context.Background()

	cfg, err := app.LoadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	st, err := app.OpenStore(cfg)
	if err != nil {
		return err
	}

	text, err := app.PreviewTemplate(ctx, st, ref, opts.Values)
	if err != nil {
		return err
	}

	fmt.Println(text)
	return nil
}
