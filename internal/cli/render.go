// Package cli provides Cobra command definitions for promptvault.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chazuruo/promptvault/internal/app"
)

// RenderOptions contains the options for the render command.
type RenderOptions struct {
	ConfigPath string
	Values     map[string]string
	Notes      string
	NoRecord   bool
}

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	opts := &RenderOptions{
		Values: make(map[string]string),
	}

	cmd := &cobra.Command{
		Use:   "render <template>",
		Short: "Render a template non-interactively",
		Long: `Render a template with values supplied on the command line.

Every associated placeholder must end up with a value, from --set or
from its default. Rendering fails on the first missing required value,
on a value that violates its placeholder type, and when any {{marker}}
survives substitution.

The rendered text is recorded in the template's history unless
--no-record is given.

Examples:
  promptvault render "Welcome Mail" --set name=Alice --set plan=pro
  promptvault render "Report" --set month=June --no-record`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringToStringVar(&opts.Values, "set", nil, "placeholder values (repeatable, e.g., --set key=value)")
	cmd.Flags().StringVar(&opts.Notes, "notes", "", "notes stored with the generated instance")
	cmd.Flags().BoolVar(&opts.NoRecord, "no-record", false, "skip recording the render in history")

	return cmd
}

func runRender(opts *RenderOptions, ref string) error {
	ctx := context.Background()

	cfg, err := app.LoadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	st, err := app.OpenStore(cfg)
	if err != nil {
		return err
	}

	out, err := app.RenderTemplate(ctx, st, app.RenderOptions{
		Title:    ref,
		Values:   opts.Values,
		Notes:    opts.Notes,
		NoRecord: opts.NoRecord,
	})
	if err != nil {
		return err
	}

	fmt.Println(out.Text)
	return nil
}
