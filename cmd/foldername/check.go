// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/foldertools/foldername/internal/issue"
	"github.com/foldertools/foldername/pkg/foldername"
	"github.com/foldertools/foldername/pkg/types"

	"github.com/spf13/cobra"
)

type (
	// checkResult is the outcome of validating one name.
	checkResult struct {
		Name       string      `json:"name" yaml:"name" toml:"name"`
		Valid      bool        `json:"valid" yaml:"valid" toml:"valid"`
		Violations []violation `json:"violations,omitempty" yaml:"violations,omitempty" toml:"violations,omitempty"`
	}

	// violation is one broken rule.
	violation struct {
		Rule    foldername.Rule `json:"rule" yaml:"rule" toml:"rule"`
		Message string          `json:"message" yaml:"message" toml:"message"`
	}
)

func newCheckCommand(app *App) *cobra.Command {
	in := &inputFlags{}
	cmd := &cobra.Command{
		Use:   "check [names...]",
		Short: "Report whether names are valid folder names",
		Long: `Report whether each name can be used as a folder name as-is, and which
rules it breaks.

The command exits with status 1 when any name is invalid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runCheck(cmd.Context(), args, in)
		},
	}
	in.register(cmd)
	return cmd
}

func (a *App) runCheck(ctx context.Context, args []string, in *inputFlags) error {
	names, err := a.readNames(ctx, args, in)
	if err != nil {
		return err
	}

	results := make([]checkResult, 0, len(names))
	invalid := 0
	for _, name := range names {
		results = append(results, checkName(name))
		if !results[len(results)-1].Valid {
			invalid++
		}
	}
	a.logger.Debug("names checked", "total", len(names), "invalid", invalid)

	if a.structured() {
		if err := writeStructured(a.stdout, a.settings.format, report[checkResult]{Results: results}); err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
	} else {
		a.printCheckTable(results)
		if invalid > 0 && a.settings.verbose {
			a.renderIssue(a.stderr, issue.InvalidNamesFoundId)
		}
	}

	if invalid > 0 {
		return &ExitError{Code: types.ExitInvalidNames}
	}
	return nil
}

func checkName(name string) checkResult {
	errs := foldername.Validate(name)
	res := checkResult{Name: name, Valid: len(errs) == 0}
	for _, err := range errs {
		res.Violations = append(res.Violations, violation{Rule: foldername.RuleOf(err), Message: err.Error()})
	}
	return res
}

func (a *App) printCheckTable(results []checkResult) {
	t := a.newTable("NAME", "STATUS", "PROBLEMS")
	for _, res := range results {
		status := a.styles.Success.Render("✓ valid")
		if !res.Valid {
			status = a.styles.Error.Render("✗ invalid")
		}
		problems := make([]string, 0, len(res.Violations))
		for _, v := range res.Violations {
			problems = append(problems, v.Message)
		}
		t.Row(displayName(res.Name), status, strings.Join(problems, "\n"))
	}
	fmt.Fprintln(a.stdout, t.Render())
}
