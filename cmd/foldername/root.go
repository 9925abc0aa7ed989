// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootFlags holds the persistent flags shared by every command.
type rootFlags struct {
	verbose    bool
	configPath string
	format     string
}

// NewRootCommand builds the foldername command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "foldername",
		Short: "Validate and correct folder names",
		Long: app.styles.Title.Render("foldername") + app.styles.Subtitle.Render(" - Validate and correct folder names") + `

foldername checks whether a string can be used as a folder name on every
common operating system, and turns any string into one that can.

` + app.styles.Subtitle.Render("Examples:") + `
  foldername check "My Folder" CON       Report which names are valid
  foldername fix "report<2024>."         Print the corrected name
  foldername fix --explain CON           Show which corrections applied
  ls | foldername check --stdin          Check names read from stdin
  foldername demo                        Show the sample table
  foldername rules                       Describe the naming rules`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.configure(cmd.Context(), flags)
		},
	}

	rootCmd.SetIn(app.stdin)
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")
	pf.StringVar(&flags.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/foldername/config.cue)")
	pf.StringVar(&flags.format, "format", "", "output format: text, json, yaml or toml (default from config)")

	rootCmd.AddCommand(
		newCheckCommand(app),
		newFixCommand(app),
		newDemoCommand(app),
		newRulesCommand(app),
		newConfigCommand(app),
	)

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the command tree and runs it. This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})

	// fang.WithVersion is required because fang overrides rootCmd.Version.
	err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(app.handleError),
	)
	if err != nil {
		os.Exit(int(exitCodeOf(err)))
	}
}
