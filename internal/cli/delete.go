// Package cli provides Cobra command definitions for promptvault.
package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/chazuruo/promptvault/internal/app"
)

// DeleteOptions contains the options for the delete command.
type DeleteOptions struct {
	ConfigPath string
	Force      bool
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand() *cobra.Command {
	opts := &DeleteOptions{}

	cmd := &cobra.Command{
		Use:   "delete <template>",
		Short: "Delete a template",
		Long: `Delete a template along with its associations and history.

Global placeholder definitions survive; template-scoped definitions
become orphans and are not cleaned up here.

Asks for confirmation unless --force or --no-input is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "skip the confirmation prompt")

	return cmd
}

func runDelete(opts *DeleteOptions, ref string) error {
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

	if !opts.Force && !NoInput {
		confirmed := false
		if err := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Delete %q and its history?", tpl.Title)).
					Value(&confirmed),
			),
		).Run(); err != nil {
			return fmt.Errorf("form error: %w", err)
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := st.DeleteTemplate(ctx, tpl.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted %q\n", tpl.Title)
	return nil
}
