// Package cli provides Cobra command definitions for promptvault.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/chazuruo/promptvault/internal/app"
	"github.com/chazuruo/promptvault/internal/template"
)

// FillOptions contains the options for the fill command.
type FillOptions struct {
	ConfigPath string
	Values     map[string]string
	Notes      string
	NoRecord   bool
}

// NewFillCommand creates the fill command.
func NewFillCommand() *cobra.Command {
	opts := &FillOptions{
		Values: make(map[string]string),
	}

	cmd := &cobra.Command{
		Use:   "fill <template>",
		Short: "Fill a template's placeholders interactively",
		Long: `Fill a template through an interactive form and print the result.

Each placeholder gets a form field matching its type: a text input for
text, number, and date placeholders, a select for single-choice, and a
multi-select for multi-choice. Defaults are prefilled. Values supplied
with --set skip their form field.

The rendered text is recorded in the template's history unless
--no-record is given.

Examples:
  promptvault fill "Welcome Mail"
  promptvault fill "Welcome Mail" --set name=Alice --notes "for onboarding"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFill(opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringToStringVar(&opts.Values, "set", nil, "placeholder values (repeatable, e.g., --set key=value)")
	cmd.Flags().StringVar(&opts.Notes, "notes", "", "notes stored with the generated instance")
	cmd.Flags().BoolVar(&opts.NoRecord, "no-record", false, "skip recording the render in history")

	return cmd
}

func runFill(opts *FillOptions, ref string) error {
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

	values := app.MergeDefaults(tpl, opts.Values)

	if !NoInput {
		if err := promptForValues(tpl, opts.Values, values); err != nil {
			return err
		}
	}

	out, err := app.RenderTemplate(ctx, st, app.RenderOptions{
		Title:    ref,
		Values:   values,
		Notes:    opts.Notes,
		NoRecord: opts.NoRecord,
	})
	if err != nil {
		return err
	}

	fmt.Println(out.Text)
	return nil
}

// promptForValues builds one huh form for every placeholder the user
// did not already set on the command line. Entered values land in
// values keyed by placeholder key.
func promptForValues(tpl *template.Template, supplied, values map[string]string) error {
	var fields []huh.Field

	// multiValues holds multi-select state per key until the form runs.
	multiValues := make(map[string]*[]string)
	textValues := make(map[string]*string)

	for _, a := range tpl.Associations {
		if a.Definition == nil {
			continue
		}
		def := a.Definition
		if _, ok := supplied[def.Key]; ok {
			continue
		}

		title := def.Label
		if title == "" {
			title = def.Key
		}
		if a.IsRequired {
			title += " *"
		}

		current := values[def.Key]

		switch def.Type {
		case template.TypeSingleChoice:
			v := new(string)
			*v = current
			textValues[def.Key] = v
			options := make([]huh.Option[string], 0, len(def.Options))
			for _, o := range def.Options {
				options = append(options, huh.NewOption(o, o))
			}
			fields = append(fields, huh.NewSelect[string]().
				Title(title).
				Description(def.Description).
				Options(options...).
				Value(v))
		case template.TypeMultiChoice:
			v := new([]string)
			if current != "" {
				*v = strings.Split(current, ",")
				for i := range *v {
					(*v)[i] = strings.TrimSpace((*v)[i])
				}
			}
			multiValues[def.Key] = v
			options := make([]huh.Option[string], 0, len(def.Options))
			for _, o := range def.Options {
				options = append(options, huh.NewOption(o, o))
			}
			fields = append(fields, huh.NewMultiSelect[string]().
				Title(title).
				Description(def.Description).
				Options(options...).
				Value(v))
		default:
			v := new(string)
			*v = current
			textValues[def.Key] = v
			fields = append(fields, huh.NewInput().
				Title(title).
				Description(def.Description).
				Value(v))
		}
	}

	if len(fields) == 0 {
		return nil
	}

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return fmt.Errorf("form error: %w", err)
	}

	for key, v := range textValues {
		if *v != "" {
			values[key] = *v
		} else {
			delete(values, key)
		}
	}
	for key, v := range multiValues {
		if len(*v) > 0 {
			values[key] = strings.Join(*v, ", ")
		} else {
			delete(values, key)
		}
	}

	return nil
}
