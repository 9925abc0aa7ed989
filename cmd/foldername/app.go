// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/foldertools/foldername/internal/config"
	"github.com/foldertools/foldername/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/glamour"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root for
	// the CLI layer: every Cobra command handler receives an App reference and reads
	// its effective settings and output streams from it.
	App struct {
		Config config.Provider
		stdin  io.Reader
		stdout io.Writer
		stderr io.Writer

		settings settings
		styles   styles
		logger   *slog.Logger
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	// settings are the options in effect for one invocation, after flags have
	// been merged over the loaded configuration.
	settings struct {
		config      *config.Config
		configPath  string
		configFlag  string
		configErr   error
		format      config.OutputFormat
		colorScheme config.ColorScheme
		verbose     bool
	}
)

// NewApp creates an App, filling unset dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}

	defaults := config.DefaultConfig()
	return &App{
		Config: deps.Config,
		stdin:  deps.Stdin,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
		settings: settings{
			config:      defaults,
			format:      defaults.Output.Format,
			colorScheme: defaults.UI.ColorScheme,
		},
		styles: newStyles(defaults.UI.ColorScheme),
		logger: newLogger(deps.Stderr, defaults.Log.Level.SlogLevel()),
	}
}

// configure loads configuration and merges the global flags over it. A config
// that fails to load is reported as a warning and defaults are used instead.
func (a *App) configure(ctx context.Context, flags *rootFlags) error {
	cfg := config.DefaultConfig()
	res, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: flags.configPath})
	if err != nil {
		fmt.Fprintln(a.stderr, a.styles.Warning.Render("Warning: ")+formatErrorForDisplay(err, flags.verbose))
	} else {
		cfg = res.Config
	}

	s := settings{
		config:      cfg,
		configPath:  res.Path,
		configFlag:  flags.configPath,
		configErr:   err,
		format:      cfg.Output.Format,
		colorScheme: cfg.UI.ColorScheme,
		verbose:     flags.verbose || cfg.UI.Verbose,
	}
	if flags.format != "" {
		s.format = config.OutputFormat(flags.format)
	}

	level := cfg.Log.Level.SlogLevel()
	if s.verbose {
		level = slog.LevelDebug
	}

	a.settings = s
	a.styles = newStyles(s.colorScheme)
	a.logger = newLogger(a.stderr, level)

	if valid, errs := s.format.IsValid(); !valid {
		return issue.NewErrorContext().
			WithOperation("select output format").
			WithResource(string(s.format)).
			WithSuggestion("Use one of: " + config.OutputFormatList()).
			WithIssue(issue.InvalidOutputFormatId).
			Wrap(errs[0]).
			BuildError()
	}

	a.logger.Debug("configuration loaded", "path", s.configPath, "format", s.format, "color_scheme", s.colorScheme)
	return nil
}

// structured reports whether results should be encoded rather than drawn.
func (a *App) structured() bool {
	return a.settings.format != config.OutputFormatText
}

// renderMarkdown renders md with the glamour style matching the color scheme.
func (a *App) renderMarkdown(md string) (string, error) {
	return glamour.Render(md, a.settings.colorScheme.MarkdownStyle())
}

// renderIssue writes the catalog entry for id to w. Rendering failures are logged.
func (a *App) renderIssue(w io.Writer, id issue.Id) {
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	rendered, err := entry.Render(a.settings.colorScheme.MarkdownStyle())
	if err != nil {
		a.logger.Warn("failed to render issue", "id", id, "error", err)
		fmt.Fprintln(w, entry.Markdown())
		return
	}
	fmt.Fprint(w, rendered)
}

// handleError is the fang error handler. Silent exit errors print nothing,
// actionable errors print their suggestions and, when verbose, the matching
// catalog entry.
func (a *App) handleError(w io.Writer, st fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}

	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		fmt.Fprintln(w, a.styles.Error.Render("Error: ")+ae.Format(a.settings.verbose))
		if a.settings.verbose && ae.Issue != 0 {
			a.renderIssue(w, ae.Issue)
		}
		return
	}

	fang.DefaultErrorHandler(w, st, err)
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}
