// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/foldertools/foldername/internal/config"
	"github.com/foldertools/foldername/internal/testutil"

	"gopkg.in/yaml.v3"
)

func TestConfigShow_Text(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{result: config.LoadResult{Config: plainConfig(), Path: "/etc/foldername/config.cue"}}
	res := runCLIWithProvider(t, provider, "", "config", "show")
	if res.err != nil {
		t.Fatalf("config show returned error: %v", res.err)
	}

	for _, want := range []string{
		"Current Configuration",
		"Config file: /etc/foldername/config.cue",
		"format: text",
		"color_scheme: none",
		"verbose: false",
		"level: warn",
	} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("config show missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestConfigShow_YAML(t *testing.T) {
	t.Parallel()

	res := runCLI(t, plainConfig(), "", "config", "show", "--format", "yaml")
	if res.err != nil {
		t.Fatalf("config show returned error: %v", res.err)
	}

	var got config.Config
	if err := yaml.Unmarshal([]byte(res.stdout), &got); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, res.stdout)
	}
	if got != *plainConfig() {
		t.Errorf("decoded config = %+v, want %+v", got, *plainConfig())
	}
}

func TestConfigShow_LoadError(t *testing.T) {
	t.Parallel()

	loadErr := errors.New("broken")
	res := runCLIWithProvider(t, &stubProvider{err: loadErr}, "", "config", "show")
	if !errors.Is(res.err, loadErr) {
		t.Fatalf("expected load error, got %v", res.err)
	}
	if !strings.Contains(res.stderr, "Failed to load configuration") {
		t.Errorf("issue should be rendered on stderr:\n%s", res.stderr)
	}
}

func TestConfigDump(t *testing.T) {
	t.Parallel()

	res := runCLI(t, plainConfig(), "", "config", "dump")
	if res.err != nil {
		t.Fatalf("config dump returned error: %v", res.err)
	}
	if res.stdout != config.GenerateCUE(plainConfig()) {
		t.Errorf("dump output differs from GenerateCUE:\n%s", res.stdout)
	}
}

// The tests below write to a temporary config directory through a
// package-level override, so they do not run in parallel.

func useTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	config.SetConfigDirOverride(dir)
	t.Cleanup(config.Reset)
	return dir
}

func TestConfigInitAndPath(t *testing.T) {
	dir := useTempConfigDir(t)
	cfgPath := filepath.Join(dir, "config.cue")

	res := runCLI(t, plainConfig(), "", "config", "init")
	if res.err != nil {
		t.Fatalf("config init returned error: %v", res.err)
	}
	if !strings.Contains(res.stdout, "Created default configuration at "+cfgPath) {
		t.Errorf("unexpected init output: %q", res.stdout)
	}
	if _, err := os.Stat(cfgPath); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	res = runCLI(t, plainConfig(), "", "config", "init")
	if !strings.Contains(res.stdout, "already exists") {
		t.Errorf("second init should report the existing file, got %q", res.stdout)
	}

	res = runCLI(t, plainConfig(), "", "config", "path")
	if res.err != nil {
		t.Fatalf("config path returned error: %v", res.err)
	}
	if !strings.Contains(res.stdout, "Config file: "+cfgPath) {
		t.Errorf("unexpected path output: %q", res.stdout)
	}
}

func TestConfigSet(t *testing.T) {
	dir := useTempConfigDir(t)
	cfgPath := filepath.Join(dir, "config.cue")

	stored := config.DefaultConfig()
	stored.UI.ColorScheme = config.ColorSchemeNone
	if err := config.SaveTo(cfgPath, stored); err != nil {
		t.Fatalf("seeding config: %v", err)
	}

	res := runCLIWithProvider(t, config.NewProvider(), "", "config", "set", "output.format", "toml")
	if res.err != nil {
		t.Fatalf("config set returned error: %v", res.err)
	}

	saved, err := config.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("reading saved config: %v", err)
	}
	if saved.Output.Format != config.OutputFormatTOML {
		t.Errorf("saved format = %q, want %q", saved.Output.Format, config.OutputFormatTOML)
	}
	if saved.UI.ColorScheme != config.ColorSchemeNone {
		t.Errorf("other values should be preserved, got color scheme %q", saved.UI.ColorScheme)
	}
}

func TestConfigSet_KeepsEnvironmentOverridesOutOfFile(t *testing.T) {
	dir := useTempConfigDir(t)
	t.Cleanup(testutil.MustSetenv(t, "FOLDERNAME_LOG_LEVEL", "debug"))

	res := runCLIWithProvider(t, config.NewProvider(), "", "config", "set", "ui.verbose", "true")
	if res.err != nil {
		t.Fatalf("config set returned error: %v", res.err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.cue"))
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	content := string(data)
	if strings.Contains(content, `level: "debug"`) {
		t.Errorf("environment override was saved to the file:\n%s", content)
	}
	if !strings.Contains(content, `level: "warn"`) {
		t.Errorf("file should keep the default log level:\n%s", content)
	}
	if !strings.Contains(content, "verbose: true") {
		t.Errorf("file should contain the new value:\n%s", content)
	}
}

func TestConfigSet_WritesExplicitConfigFile(t *testing.T) {
	dir := useTempConfigDir(t)
	custom := filepath.Join(t.TempDir(), "custom.cue")
	if err := os.WriteFile(custom, []byte(`output: format: "yaml"`+"\n"), 0o644); err != nil {
		t.Fatalf("writing custom config: %v", err)
	}

	res := runCLIWithProvider(t, config.NewProvider(), "", "--config", custom, "config", "set", "log.level", "error")
	if res.err != nil {
		t.Fatalf("config set returned error: %v", res.err)
	}
	if !strings.Contains(res.stdout, custom) {
		t.Errorf("output should name the written file, got %q", res.stdout)
	}

	saved, err := config.ReadFile(custom)
	if err != nil {
		t.Fatalf("reading custom config: %v", err)
	}
	if saved.Log.Level != config.LogLevelError {
		t.Errorf("saved level = %q, want %q", saved.Log.Level, config.LogLevelError)
	}
	if saved.Output.Format != config.OutputFormatYAML {
		t.Errorf("existing value lost, format = %q", saved.Output.Format)
	}

	if _, err := os.Stat(filepath.Join(dir, "config.cue")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("default config file should not be written, stat err = %v", err)
	}
}

func TestConfigSet_Rejects(t *testing.T) {
	useTempConfigDir(t)

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "output.colour", "red"},
		{"bad format", "output.format", "xml"},
		{"bad bool", "ui.verbose", "maybe"},
		{"bad level", "log.level", "trace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, plainConfig(), "", "config", "set", tt.key, tt.value)
			if res.err == nil {
				t.Errorf("config set %s %s should fail", tt.key, tt.value)
			}
		})
	}
}
