// Package cli provides Cobra command definitions for promptvault.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazuruo/promptvault/internal/app"
)

// ExportOptions contains the options for the export command.
type ExportOptions struct {
	ConfigPath string
	Output     string
}

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export [template...]",
		Short: "Export templates as a YAML document",
		Long: `Export templates, their placeholders, and their associations as a
portable YAML document. Without arguments every template is exported.

Examples:
  promptvault export > backup.yaml
  promptvault export "Welcome Mail" -o mail.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

func runExport(opts *ExportOptions, titles []string) error {
	ctx := context.Background()

	cfg, err := app.LoadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	st, err := app.OpenStore(cfg)
	if err != nil {
		return err
	}

	data, err := app.ExportTemplates(ctx, st, titles)
	if err != nil {
		return err
	}

	if opts.Output == "" {
		fmt.Print(string(data))
		return nil
	}

	if err := os.WriteFile(opts.Output, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	fmt.Printf("Exported to %s\n", opts.Output)
	return nil
}
