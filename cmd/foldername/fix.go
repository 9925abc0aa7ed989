// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/foldertools/foldername/pkg/foldername"

	"github.com/spf13/cobra"
)

// fixResult is the corrected form of one name. Steps is only filled with --explain.
type fixResult struct {
	Input   string            `json:"input" yaml:"input" toml:"input"`
	Output  string            `json:"output" yaml:"output" toml:"output"`
	Changed bool              `json:"changed" yaml:"changed" toml:"changed"`
	Steps   []foldername.Step `json:"steps,omitempty" yaml:"steps,omitempty" toml:"steps,omitempty"`
}

func newFixCommand(app *App) *cobra.Command {
	in := &inputFlags{}
	var explain bool

	cmd := &cobra.Command{
		Use:   "fix [names...]",
		Short: "Print the corrected form of names",
		Long: `Print a valid folder name for each input, one per line and in input order.
Names that are already valid are printed unchanged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runFix(cmd.Context(), args, in, explain)
		},
	}
	in.register(cmd)
	cmd.Flags().BoolVarP(&explain, "explain", "e", false, "show which correction steps applied")
	return cmd
}

func (a *App) runFix(ctx context.Context, args []string, in *inputFlags, explain bool) error {
	names, err := a.readNames(ctx, args, in)
	if err != nil {
		return err
	}

	results := make([]fixResult, 0, len(names))
	for _, name := range names {
		c := foldername.Explain(name)
		res := fixResult{Input: c.Input, Output: c.Output, Changed: c.Changed()}
		if explain {
			res.Steps = c.Steps
		}
		results = append(results, res)
	}

	if a.structured() {
		if err := writeStructured(a.stdout, a.settings.format, report[fixResult]{Results: results}); err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
		return nil
	}

	for _, res := range results {
		if !explain {
			fmt.Fprintln(a.stdout, res.Output)
			continue
		}
		a.printExplanation(res)
	}
	return nil
}

func (a *App) printExplanation(res fixResult) {
	fmt.Fprintf(a.stdout, "%s → %s\n", displayName(res.Input), a.styles.Cmd.Render(displayName(res.Output)))
	if len(res.Steps) == 0 {
		fmt.Fprintf(a.stdout, "  %s\n", a.styles.Subtitle.Render("already valid"))
		return
	}
	for _, step := range res.Steps {
		fmt.Fprintf(a.stdout, "  • %s: %s\n", step.Kind, step.Kind.Description())
	}
}
