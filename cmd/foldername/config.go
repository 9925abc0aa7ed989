// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strconv"

	"github.com/foldertools/foldername/internal/config"
	"github.com/foldertools/foldername/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `foldername config` command tree.
// Subcommands read the configuration loaded for this invocation.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage foldername configuration",
		Long: `Manage foldername configuration.

Configuration is stored in:
  - Linux: ~/.config/foldername/config.cue
  - macOS: ~/Library/Application Support/foldername/config.cue
  - Windows: %APPDATA%\foldername\config.cue

A config.cue in the current directory is used when none exists there.
Environment variables override file values, e.g. FOLDERNAME_OUTPUT_FORMAT=json.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.showConfig()
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.initConfig()
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.showConfigPath()
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value and save it to the config file.

Keys: output.format, ui.color_scheme, ui.verbose, log.level`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.setConfigValue(args[0], args[1])
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(app.stdout, config.GenerateCUE(app.settings.config))
			return nil
		},
	})

	return cfgCmd
}

func (a *App) showConfig() error {
	if err := a.settings.configErr; err != nil {
		a.renderIssue(a.stderr, issue.ConfigLoadFailedId)
		return err
	}
	cfg := a.settings.config

	if a.structured() {
		return writeStructured(a.stdout, a.settings.format, cfg)
	}

	key := a.styles.Cmd
	value := a.styles.Success

	fmt.Fprintln(a.stdout, a.styles.Title.Render("Current Configuration"))
	fmt.Fprintln(a.stdout)

	if a.settings.configPath != "" {
		fmt.Fprintf(a.stdout, "%s: %s\n", key.Render("Config file"), a.settings.configPath)
	} else {
		fmt.Fprintf(a.stdout, "%s: %s\n", key.Render("Config file"), a.styles.Subtitle.Render("(using defaults)"))
	}

	fmt.Fprintln(a.stdout)
	fmt.Fprintf(a.stdout, "%s:\n", key.Render("output"))
	fmt.Fprintf(a.stdout, "  format: %s\n", value.Render(cfg.Output.Format.String()))

	fmt.Fprintln(a.stdout)
	fmt.Fprintf(a.stdout, "%s:\n", key.Render("ui"))
	fmt.Fprintf(a.stdout, "  color_scheme: %s\n", value.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(a.stdout, "  verbose: %s\n", value.Render(strconv.FormatBool(cfg.UI.Verbose)))

	fmt.Fprintln(a.stdout)
	fmt.Fprintf(a.stdout, "%s:\n", key.Render("log"))
	fmt.Fprintf(a.stdout, "  level: %s\n", value.Render(cfg.Log.Level.String()))

	return nil
}

func (a *App) initConfig() error {
	cfgPath, err := config.ConfigFilePath()
	if err != nil {
		return err
	}

	created, err := config.CreateDefaultConfig()
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	if !created {
		fmt.Fprintf(a.stdout, "Configuration already exists at %s\n", cfgPath)
		return nil
	}
	fmt.Fprintf(a.stdout, "%s Created default configuration at %s\n", a.styles.Success.Render("✓"), cfgPath)
	return nil
}

func (a *App) showConfigPath() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	cfgPath, err := config.ConfigFilePath()
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(a.stdout, "Config file: %s\n", cfgPath)
	if a.settings.configPath != "" && a.settings.configPath != cfgPath {
		fmt.Fprintf(a.stdout, "Active config file: %s\n", a.settings.configPath)
	}
	return nil
}

func (a *App) setConfigValue(key, value string) error {
	target, err := a.configTarget()
	if err != nil {
		return err
	}

	// Start from the file alone so FOLDERNAME_* overrides are not persisted.
	stored, err := config.ReadFile(target)
	if err != nil {
		return err
	}
	cfg := *stored

	switch key {
	case "output.format":
		cfg.Output.Format = config.OutputFormat(value)
	case "ui.color_scheme":
		cfg.UI.ColorScheme = config.ColorScheme(value)
	case "ui.verbose":
		verbose, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for ui.verbose: %q (expected true or false)", value)
		}
		cfg.UI.Verbose = verbose
	case "log.level":
		cfg.Log.Level = config.LogLevel(value)
	default:
		return fmt.Errorf("unknown config key: %s (expected output.format, ui.color_scheme, ui.verbose or log.level)", key)
	}

	if valid, errs := cfg.IsValid(); !valid {
		return fmt.Errorf("invalid value for %s: %w", key, errs[0])
	}

	if err := config.SaveTo(target, &cfg); err != nil {
		return err
	}

	a.logger.Debug("configuration saved", "path", target, "key", key)
	fmt.Fprintf(a.stdout, "%s Set %s = %s in %s\n", a.styles.Success.Render("✓"), key, value, target)
	return nil
}

// configTarget is the file that config set writes: the --config file, then
// the file the configuration was loaded from, then the default location.
func (a *App) configTarget() (string, error) {
	if a.settings.configFlag != "" {
		return a.settings.configFlag, nil
	}
	if a.settings.configPath != "" {
		return a.settings.configPath, nil
	}
	return config.ConfigFilePath()
}
