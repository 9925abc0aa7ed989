// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/foldertools/foldername/internal/issue"

	"github.com/spf13/cobra"
)

const (
	stdinResource = "<stdin>"

	// maxLineLength bounds a single input line; longer lines fail the read.
	maxLineLength = 1 << 20
)

// errNoNames is returned when a command receives no names from any source.
var errNoNames = errors.New("no names given")

// inputFlags selects where check and fix read names from, in addition to
// positional arguments.
type inputFlags struct {
	stdin bool
	file  string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.stdin, "stdin", false, "read names from standard input, one per line")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "read names from `PATH`, one per line")
	cmd.MarkFlagsMutuallyExclusive("stdin", "file")
}

// readNames collects names from args followed by stdin or the --file input.
// Lines are taken verbatim except for the line terminator, so leading and
// trailing spaces are part of the name and an empty line is an empty name.
func (a *App) readNames(ctx context.Context, args []string, in *inputFlags) ([]string, error) {
	names := append([]string(nil), args...)

	switch {
	case in.stdin:
		lines, err := readLines(ctx, a.stdin)
		if err != nil {
			return nil, inputError(stdinResource, err)
		}
		names = append(names, lines...)
	case in.file != "":
		f, err := os.Open(in.file)
		if err != nil {
			return nil, inputError(in.file, err)
		}
		defer f.Close()

		lines, err := readLines(ctx, f)
		if err != nil {
			return nil, inputError(in.file, err)
		}
		names = append(names, lines...)
	}

	if len(names) == 0 {
		return nil, issue.NewErrorContext().
			WithOperation("read names").
			WithSuggestion("Pass names as arguments").
			WithSuggestion("Use --stdin or --file to read one name per line").
			WithIssue(issue.InputReadFailedId).
			Wrap(errNoNames).
			BuildError()
	}

	a.logger.Debug("names read", "count", len(names))
	return names, nil
}

// readLines splits r into lines, stopping early when ctx is done.
func readLines(ctx context.Context, r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	var lines []string
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("read canceled: %w", err)
		}
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func inputError(resource string, err error) error {
	return issue.NewErrorContext().
		WithOperation("read names").
		WithResource(resource).
		WithSuggestion("Check that the input exists and is readable").
		WithIssue(issue.InputReadFailedId).
		Wrap(err).
		BuildError()
}
