// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/foldertools/foldername/internal/config"
)

// stubProvider returns a fixed load result.
type stubProvider struct {
	result config.LoadResult
	err    error
	opts   *config.LoadOptions
}

func (p *stubProvider) Load(_ context.Context, opts config.LoadOptions) (config.LoadResult, error) {
	if p.opts != nil {
		*p.opts = opts
	}
	return p.result, p.err
}

// plainConfig is the default config with styling disabled, so output can be
// compared as plain text.
func plainConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.UI.ColorScheme = config.ColorSchemeNone
	return cfg
}

type cliResult struct {
	stdout string
	stderr string
	err    error
}

// runCLI executes the command tree with a stub provider serving cfg.
func runCLI(t *testing.T, cfg *config.Config, stdin string, args ...string) cliResult {
	t.Helper()
	return runCLIWithProvider(t, &stubProvider{result: config.LoadResult{Config: cfg}}, stdin, args...)
}

func runCLIWithProvider(t *testing.T, provider config.Provider, stdin string, args ...string) cliResult {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := NewApp(Dependencies{
		Config: provider,
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	})
	root := NewRootCommand(app)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}
