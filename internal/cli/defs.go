// Package cli provides Cobra command definitions for promptvault.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chazuruo/promptvault/internal/app"
	"github.com/chazuruo/promptvault/internal/template"
)

// DefsListOptions contains the options for the defs list command.
type DefsListOptions struct {
	ConfigPath string
	GlobalOnly bool
}

// DefsAddOptions contains the options for the defs add command.
type DefsAddOptions struct {
	ConfigPath   string
	Key          string
	Type         string
	Options      []string
	DefaultValue string
	Description  string
	Tags         []string
}

// NewDefsCommand creates the defs command group for managing
// placeholder definitions.
func NewDefsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "defs",
		Short: "Manage placeholder definitions",
		Long: `Inspect and create placeholder definitions.

Global definitions are shared: any template whose content mentions a
global key picks it up on sync instead of minting its own definition.`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	cmd.AddCommand(newDefsListCommand())
	cmd.AddCommand(newDefsAddCommand())

	return cmd
}

func newDefsListCommand() *cobra.Command {
	opts := &DefsListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List placeholder definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDefsList(opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().BoolVar(&opts.GlobalOnly, "global", false, "only show global definitions")

	return cmd
}

func runDefsList(opts *DefsListOptions) error {
	ctx := context.Background()

	cfg, err := app.LoadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	st, err := app.OpenStore(cfg)
	if err != nil {
		return err
	}

	var defs []template.PlaceholderDefinition
	if opts.GlobalOnly {
		defs, err = st.GlobalDefinitions(ctx)
	} else {
		defs, err = st.ListDefinitions(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to list definitions: %w", err)
	}

	if len(defs) == 0 {
		fmt.Println("No definitions found.")
		return nil
	}

	tbl := newTable(cfg.Output.Color, "KEY", "LABEL", "TYPE", "SCOPE", "DEFAULT", "OPTIONS")
	for _, d := range defs {
		scope := "template"
		if d.IsGlobal {
			scope = "global"
		}
		tbl.AddRow(d.Key, d.Label, string(d.Type), scope, truncate(d.DefaultValue, 20), truncate(strings.Join(d.Options, ","), 30))
	}
	tbl.Print()

	return nil
}

func newDefsAddCommand() *cobra.Command {
	opts := &DefsAddOptions{}

	cmd := &cobra.Command{
		Use:   "add <label>",
		Short: "Create a global placeholder definition",
		Long: `Create a global placeholder definition.

When --key is omitted it is derived from the label: lowercased, spaces
replaced with underscores, umlauts transliterated, everything else
invalid stripped.

Examples:
  promptvault defs add "Customer Name"
  promptvault defs add "Priority" --type singleChoice --option low --option high
  promptvault defs add "Signature" --default "Best regards"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDefsAdd(opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringVar(&opts.Key, "key", "", "placeholder key (derived from label if omitted)")
	cmd.Flags().StringVar(&opts.Type, "type", "text", "placeholder type (text, number, date, singleChoice, multiChoice)")
	cmd.Flags().StringSliceVar(&opts.Options, "option", nil, "choice option (repeatable)")
	cmd.Flags().StringVar(&opts.DefaultValue, "default", "", "default value")
	cmd.Flags().StringVar(&opts.Description, "description", "", "definition description")
	cmd.Flags().StringSliceVar(&opts.Tags, "tag", nil, "tag for the definition (repeatable)")

	return cmd
}

func runDefsAdd(opts *DefsAddOptions, label string) error {
	ctx := context.Background()

	cfg, err := app.LoadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	st, err := app.OpenStore(cfg)
	if err != nil {
		return err
	}

	def, err := app.CreateDefinition(ctx, st, app.CreateDefinitionOptions{
		Key:          opts.Key,
		Label:        label,
		Type:         template.PlaceholderType(opts.Type),
		Options:      opts.Options,
		DefaultValue: opts.DefaultValue,
		Description:  opts.Description,
		Tags:         opts.Tags,
		Global:       true,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created global definition %q (key %s)\n", def.Label, def.Key)
	return nil
}
