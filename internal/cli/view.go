// Package cli provides Cobra command definitions for promptvault.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chazuruo/promptvault/internal/app"
)

// ViewOptions contains the options for the view command.
type ViewOptions struct {
	ConfigPath string
	Raw        bool
}

// NewViewCommand creates the view command.
func NewViewCommand() *cobra.Command {
	opts := &ViewOptions{}

	cmd := &cobra.Command{
		Use:   "view <template>",
		Short: "View template details",
		Long: `Display detailed information about a template.

The template reference can be a title or a UUID.

Output formats:
- Default: metadata, placeholder table, and content
- --raw: print the raw content only`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "print raw content")

	return cmd
}

func runView(opts *ViewOptions, ref string) error {
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

	if opts.Raw {
		fmt.Println(tpl.Content)
		return nil
	}

	if cfg.Output.Color {
		fmt.Println(titleStyle.Render(tpl.Title))
	} else {
		fmt.Println(tpl.Title)
	}
	if tpl.Description != "" {
		fmt.Println(tpl.Description)
	}
	if len(tpl.Tags) > 0 {
		fmt.Printf("Tags: %s\n", strings.Join(tpl.Tags, ", "))
	}
	if tpl.Favorite {
		fmt.Println("Favorite: yes")
	}
	fmt.Printf("Updated: %s\n", tpl.UpdatedAt.Format(cfg.Output.TimeFormat))

	if len(tpl.Associations) > 0 {
		fmt.Println()
		tbl := newTable(cfg.Output.Color, "KEY", "LABEL", "TYPE", "REQUIRED", "DEFAULT", "SCOPE")
		for _, a := range tpl.Associations {
			if a.Definition == nil {
				continue
			}
			required := ""
			if a.IsRequired {
				required = "yes"
			}
			def, _ := a.EffectiveDefault()
			scope := "template"
			if a.Definition.IsGlobal {
				scope = "global"
			}
			tbl.AddRow(a.Definition.Key, a.Definition.Label, string(a.Definition.Type), required, truncate(def, 20), scope)
		}
		tbl.Print()
	}

	fmt.Println()
	fmt.Println(tpl.Content)
	return nil
}
