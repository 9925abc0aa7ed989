// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/foldertools/foldername/internal/config"
	"github.com/foldertools/foldername/internal/issue"
	"github.com/foldertools/foldername/pkg/foldername"
	"github.com/foldertools/foldername/pkg/types"
)

func TestCheck_AllValid(t *testing.T) {
	t.Parallel()

	res := runCLI(t, plainConfig(), "", "check", "valid_folder", "Valid Folder")
	if res.err != nil {
		t.Fatalf("check returned error: %v", res.err)
	}
	if strings.Count(res.stdout, "✓ valid") != 2 {
		t.Errorf("expected two valid rows, got:\n%s", res.stdout)
	}
}

func TestCheck_InvalidExitsWithCodeOne(t *testing.T) {
	t.Parallel()

	res := runCLI(t, plainConfig(), "", "check", "CON", "ok")

	var exitErr *ExitError
	if !errors.As(res.err, &exitErr) {
		t.Fatalf("expected *ExitError, got %v", res.err)
	}
	if exitErr.Code != types.ExitInvalidNames {
		t.Errorf("exit code = %d, want %d", exitErr.Code, types.ExitInvalidNames)
	}
	if exitErr.Err != nil {
		t.Errorf("exit error should be silent, got %v", exitErr.Err)
	}
	for _, want := range []string{"CON", "✗ invalid", "reserved device name", "ok", "✓ valid"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("output missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestCheck_JSON(t *testing.T) {
	t.Parallel()

	res := runCLI(t, plainConfig(), "", "check", "--format", "json", "test<file.", "fine")

	var got report[checkResult]
	if err := json.Unmarshal([]byte(res.stdout), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, res.stdout)
	}
	if len(got.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(got.Results))
	}

	bad := got.Results[0]
	if bad.Valid || bad.Name != "test<file." {
		t.Errorf("unexpected first result: %+v", bad)
	}
	rules := make([]foldername.Rule, 0, len(bad.Violations))
	for _, v := range bad.Violations {
		rules = append(rules, v.Rule)
	}
	want := []foldername.Rule{foldername.RuleInvalidCharacter, foldername.RuleTrailingCharacter}
	if len(rules) != len(want) || rules[0] != want[0] || rules[1] != want[1] {
		t.Errorf("rules = %v, want %v", rules, want)
	}

	if !got.Results[1].Valid || len(got.Results[1].Violations) != 0 {
		t.Errorf("unexpected second result: %+v", got.Results[1])
	}
	if exitCodeOf(res.err) != types.ExitInvalidNames {
		t.Errorf("exit code = %d, want %d", exitCodeOf(res.err), types.ExitInvalidNames)
	}
}

func TestCheck_FormatFromConfig(t *testing.T) {
	t.Parallel()

	cfg := plainConfig()
	cfg.Output.Format = config.OutputFormatJSON

	res := runCLI(t, cfg, "", "check", "fine")
	if res.err != nil {
		t.Fatalf("check returned error: %v", res.err)
	}
	if !json.Valid([]byte(res.stdout)) {
		t.Errorf("config format not applied, got:\n%s", res.stdout)
	}
}

func TestCheck_Stdin(t *testing.T) {
	t.Parallel()

	res := runCLI(t, plainConfig(), "one\r\ntwo\n\n", "check", "--stdin", "--format", "json")

	var got report[checkResult]
	if err := json.Unmarshal([]byte(res.stdout), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, res.stdout)
	}
	names := make([]string, 0, len(got.Results))
	for _, r := range got.Results {
		names = append(names, r.Name)
	}
	if strings.Join(names, "|") != "one|two|" {
		t.Errorf("names = %q, want one, two and an empty line", names)
	}
	if got.Results[2].Valid {
		t.Error("empty line should be reported as invalid")
	}
}

func TestCheck_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "names.txt")
	if err := os.WriteFile(path, []byte("alpha\nbeta\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	res := runCLI(t, plainConfig(), "", "check", "--file", path)
	if res.err != nil {
		t.Fatalf("check returned error: %v", res.err)
	}
	if !strings.Contains(res.stdout, "alpha") || !strings.Contains(res.stdout, "beta") {
		t.Errorf("names from file missing:\n%s", res.stdout)
	}
}

func TestCheck_MissingFile(t *testing.T) {
	t.Parallel()

	res := runCLI(t, plainConfig(), "", "check", "--file", filepath.Join(t.TempDir(), "nope.txt"))

	var ae *issue.ActionableError
	if !errors.As(res.err, &ae) {
		t.Fatalf("expected *issue.ActionableError, got %v", res.err)
	}
	if ae.Issue != issue.InputReadFailedId {
		t.Errorf("Issue = %d, want %d", ae.Issue, issue.InputReadFailedId)
	}
	if !errors.Is(res.err, fs.ErrNotExist) {
		t.Errorf("error should wrap fs.ErrNotExist: %v", res.err)
	}
	if exitCodeOf(res.err) != types.ExitFailure {
		t.Errorf("exit code = %d, want %d", exitCodeOf(res.err), types.ExitFailure)
	}
}

func TestCheck_NoNames(t *testing.T) {
	t.Parallel()

	res := runCLI(t, plainConfig(), "", "check")
	if !errors.Is(res.err, errNoNames) {
		t.Fatalf("expected errNoNames, got %v", res.err)
	}
}

func TestCheck_StdinAndFileExclusive(t *testing.T) {
	t.Parallel()

	res := runCLI(t, plainConfig(), "", "check", "--stdin", "--file", "names.txt")
	if res.err == nil {
		t.Fatal("expected error when --stdin and --file are combined")
	}
}

func TestCheck_VerboseRendersIssue(t *testing.T) {
	t.Parallel()

	res := runCLI(t, plainConfig(), "", "check", "-v", "bad?")
	if exitCodeOf(res.err) != types.ExitInvalidNames {
		t.Fatalf("exit code = %d, want %d", exitCodeOf(res.err), types.ExitInvalidNames)
	}
	if !strings.Contains(res.stderr, "not valid folder names") {
		t.Errorf("verbose check should render the issue on stderr, got:\n%s", res.stderr)
	}
}
