// Package cli provides Cobra command definitions for promptvault.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/chazuruo/promptvault/internal/config"
)

// InitOptions contains the options for the init command.
type InitOptions struct {
	ConfigPath string

	// Scriptable/flag options for --no-input mode
	DatabasePath string
	Editor       string
	NoColor      bool
	Force        bool
}

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	opts := &InitOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize promptvault configuration",
		Long: `Initialize the promptvault configuration file.

The init command guides you through setting up your configuration:
- Choose where the template database lives
- Pick the editor used for template content
- Toggle colored output

Use --no-input with flags for scripted setup.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringVar(&opts.DatabasePath, "db", "", "database file path")
	cmd.Flags().StringVar(&opts.Editor, "editor", "", "editor command for template content")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "overwrite an existing config file")

	return cmd
}

func runInit(opts *InitOptions) error {
	configPath := getConfigPath(opts.ConfigPath)

	if _, err := os.Stat(configPath); err == nil && !opts.Force {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", configPath)
	}

	if NoInput {
		return runInitNonInteractive(opts, configPath)
	}
	return runInitInteractive(opts, configPath)
}

// runInitInteractive runs the init wizard.
func runInitInteractive(opts *InitOptions, configPath string) error {
	cfg := config.DefaultConfig()

	dbPath := cfg.Storage.DatabasePath
	editor := cfg.Editor.Command
	color := cfg.Output.Color

	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Database path").
				Description("Where the SQLite template database is stored").
				Value(&dbPath),
			huh.NewInput().
				Title("Editor command").
				Description("Used for editing template content (empty uses $EDITOR)").
				Value(&editor),
			huh.NewConfirm().
				Title("Colored output?").
				Value(&color),
		),
	).Run(); err != nil {
		return fmt.Errorf("form error: %w", err)
	}

	cfg.Storage.DatabasePath = dbPath
	cfg.Editor.Command = editor
	cfg.Output.Color = color

	return writeInitConfig(configPath, cfg)
}

// runInitNonInteractive builds the config from flags alone.
func runInitNonInteractive(opts *InitOptions, configPath string) error {
	cfg := config.DefaultConfig()

	if opts.DatabasePath != "" {
		cfg.Storage.DatabasePath = opts.DatabasePath
	}
	if opts.Editor != "" {
		cfg.Editor.Command = opts.Editor
	}
	if opts.NoColor {
		cfg.Output.Color = false
	}

	return writeInitConfig(configPath, cfg)
}

// getConfigPath returns the config file path. Unlike
// config.DetectConfigPath it does not require the file to exist yet.
func getConfigPath(override string) string {
	if override != "" {
		return override
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "promptvault", "config.toml")
}

func writeInitConfig(configPath string, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.WriteFile(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Configuration written to %s\n", configPath)
	fmt.Printf("Database path: %s\n", cfg.Storage.DatabasePath)
	return nil
}
