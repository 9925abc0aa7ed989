// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/foldertools/foldername/internal/issue"
	"github.com/foldertools/foldername/pkg/cueutil"
	"github.com/foldertools/foldername/pkg/foldername"

	"github.com/spf13/cobra"
)

const (
	demoTitle = "Validation and Correction Results:"

	// demoClip is how many runes of a sample the demo table shows.
	demoClip = 30
	// demoColumn is the width of the quoted-name column.
	demoColumn = 35
)

//go:embed samples_schema.cue
var samplesSchema []byte

type (
	// sampleSet is a decoded --samples file.
	sampleSet struct {
		Title   string            `json:"title"`
		Samples []foldername.Name `json:"samples"`
	}

	// demoResult is one row of the demo table.
	demoResult struct {
		Name      string `json:"name" yaml:"name" toml:"name"`
		Valid     bool   `json:"valid" yaml:"valid" toml:"valid"`
		Corrected string `json:"corrected" yaml:"corrected" toml:"corrected"`
	}
)

// defaultSamples covers every rule at least once.
func defaultSamples() sampleSet {
	return sampleSet{
		Samples: []foldername.Name{
			"valid_folder",
			"Valid Folder",
			"CON",
			"test<file",
			"",
			"   ",
			"folder.",
			"folder ",
			"normalfolder123",
			foldername.Name(strings.Repeat("a", 300)),
		},
	}
}

func newDemoCommand(app *App) *cobra.Command {
	var samplesPath string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Validate and correct a table of sample names",
		Long: `Validate and correct a table of sample names.

The built-in samples cover every rule. Use --samples to supply a CUE file:

  title: "my samples"
  samples: ["CON", "report<2024>", "notes. "]`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set := defaultSamples()
			if samplesPath != "" {
				loaded, err := loadSamples(samplesPath)
				if err != nil {
					return err
				}
				set = *loaded
			}
			return app.runDemo(set)
		},
	}
	cmd.Flags().StringVar(&samplesPath, "samples", "", "CUE file with a sample set to use instead of the built-in one")
	return cmd
}

// loadSamples reads and validates a sample set against the #Samples schema.
func loadSamples(path string) (*sampleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, samplesError(path, err)
	}

	set, err := cueutil.ParseAndDecode[sampleSet](samplesSchema, data, "#Samples", cueutil.WithFilename(path))
	if err != nil {
		return nil, samplesError(path, err)
	}
	return set, nil
}

func samplesError(path string, err error) error {
	return issue.NewErrorContext().
		WithOperation("load samples").
		WithResource(path).
		WithSuggestion("A sample file needs a non-empty 'samples' list of strings").
		WithSuggestion("Run 'foldername demo' without --samples to use the built-in set").
		WithIssue(issue.SampleFileInvalidId).
		Wrap(err).
		BuildError()
}

func (a *App) runDemo(set sampleSet) error {
	results := make([]demoResult, 0, len(set.Samples))
	for _, name := range set.Samples {
		valid, _ := name.IsValid()
		results = append(results, demoResult{
			Name:      name.String(),
			Valid:     valid,
			Corrected: name.Corrected().String(),
		})
	}

	if a.structured() {
		if err := writeStructured(a.stdout, a.settings.format, report[demoResult]{Title: set.Title, Results: results}); err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
		return nil
	}

	title := demoTitle
	if set.Title != "" {
		title = set.Title
	}
	fmt.Fprintln(a.stdout, a.styles.Title.Render(title))
	fmt.Fprintln(a.stdout, strings.Repeat("=", 50))

	for _, res := range results {
		status := a.styles.Success.Render("✓ Valid")
		if !res.Valid {
			status = a.styles.Error.Render("✗ Invalid")
		}
		fmt.Fprintf(a.stdout, "%-*s -> %s\n", demoColumn, clipSample(res.Name), status)
		if !res.Valid {
			fmt.Fprintf(a.stdout, "%*s    Corrected: '%s'\n", demoColumn, "", a.styles.Cmd.Render(res.Corrected))
		}
		fmt.Fprintln(a.stdout)
	}
	return nil
}

// clipSample quotes a sample, keeping at most demoClip runes.
func clipSample(name string) string {
	return "'" + foldername.Clip(name, demoClip) + "'"
}
