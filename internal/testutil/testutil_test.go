// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

const testKey = "FOLDERNAME_TESTUTIL_PROBE"

func TestMustSetenv_RestoresUnset(t *testing.T) {
	if err := os.Unsetenv(testKey); err != nil {
		t.Fatal(err)
	}

	cleanup := MustSetenv(t, testKey, "x")
	if got := os.Getenv(testKey); got != "x" {
		t.Errorf("%s = %q, want %q", testKey, got, "x")
	}

	cleanup()
	if _, ok := os.LookupEnv(testKey); ok {
		t.Errorf("%s should be unset after cleanup", testKey)
	}
}

func TestMustUnsetenv_RestoresValue(t *testing.T) {
	t.Cleanup(MustSetenv(t, testKey, "before"))

	cleanup := MustUnsetenv(t, testKey)
	if _, ok := os.LookupEnv(testKey); ok {
		t.Errorf("%s should be unset", testKey)
	}

	cleanup()
	if got := os.Getenv(testKey); got != "before" {
		t.Errorf("%s = %q after cleanup, want %q", testKey, got, "before")
	}
}

func TestMustChdir(t *testing.T) {
	original, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	cleanup := MustChdir(t, dir)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if wd != dir {
		t.Errorf("working directory = %q, want %q", wd, dir)
	}

	cleanup()
	if wd, _ := os.Getwd(); wd != original {
		t.Errorf("working directory after cleanup = %q, want %q", wd, original)
	}
}
