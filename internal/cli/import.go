// Package cli provides Cobra command definitions for promptvault.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazuruo/promptvault/internal/app"
)

// ImportOptions contains the options for the import command.
type ImportOptions struct {
	ConfigPath string
}

// NewImportCommand creates the import command.
func NewImportCommand() *cobra.Command {
	opts := &ImportOptions{}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import templates from a YAML document",
		Long: `Import templates from a document produced by export.

Global placeholders reuse an existing global definition with the same
key instead of creating a duplicate. A template whose title already
exists aborts the whole import; nothing is partially applied.

Use "-" to read from stdin.

Examples:
  promptvault import backup.yaml
  promptvault export "Welcome Mail" | promptvault import -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")

	return cmd
}

func runImport(opts *ImportOptions, path string) error {
	ctx := context.Background()

	cfg, err := app.LoadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	st, err := app.OpenStore(cfg)
	if err != nil {
		return err
	}

	var data []byte
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	} else {
		data, err = app.ReadDocumentFile(path)
		if err != nil {
			return err
		}
	}

	out, err := app.ImportTemplates(ctx, st, data)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d template(s)\n", len(out.Imported))
	for _, title := range out.Imported {
		fmt.Printf("  + %s\n", title)
	}
	if out.ReusedGlobals > 0 {
		fmt.Printf("Reused %d global definition(s)\n", out.ReusedGlobals)
	}
	return nil
}
