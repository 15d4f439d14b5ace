// Package cli provides Cobra command definitions for promptvault.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chazuruo/promptvault/internal/app"
)

// SyncOptions contains the options for the sync command.
type SyncOptions struct {
	ConfigPath string
}

// NewSyncCommand creates the sync command.
func NewSyncCommand() *cobra.Command {
	opts := &SyncOptions{}

	cmd := &cobra.Command{
		Use:   "sync <template>",
		Short: "Reconcile a template's placeholders with its content",
		Long: `Resync a template's placeholder associations against its content.

Keys present in the content but not yet associated gain an association,
bound to an existing global definition when one matches or to a fresh
template-scoped text definition otherwise. Associations whose key is no
longer in the content are removed. Running sync twice in a row reports
no changes the second time.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")

	return cmd
}

func runSync(opts *SyncOptions, ref string) error {
	ctx := context.Background()

	cfg, err := app.LoadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	st, err := app.OpenStore(cfg)
	if err != nil {
		return err
	}

	result, err := app.SyncTemplate(ctx, st, ref)
	if err != nil {
		return err
	}

	if !result.Changed() {
		fmt.Println("Already in sync.")
		return nil
	}
	printSyncResult(result)
	return nil
}
