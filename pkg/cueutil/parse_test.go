// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"
)

const testSchema = `
#Samples: {
	title?: string
	samples: [string, ...string]
}
`

type testSamples struct {
	Title   string   `json:"title"`
	Samples []string `json:"samples"`
}

func TestParseAndDecode(t *testing.T) {
	t.Parallel()

	t.Run("valid data decodes", func(t *testing.T) {
		t.Parallel()

		data := []byte(`title: "mixed", samples: ["CON", "ok"]`)
		got, err := ParseAndDecodeString[testSamples](testSchema, data, "#Samples", WithFilename("samples.cue"))
		if err != nil {
			t.Fatalf("ParseAndDecode() error = %v", err)
		}
		if got.Title != "mixed" {
			t.Errorf("Title = %q, want %q", got.Title, "mixed")
		}
		if len(got.Samples) != 2 || got.Samples[0] != "CON" {
			t.Errorf("Samples = %v", got.Samples)
		}
	})

	t.Run("type mismatch names the file", func(t *testing.T) {
		t.Parallel()

		data := []byte(`samples: [1]`)
		_, err := ParseAndDecodeString[testSamples](testSchema, data, "#Samples", WithFilename("samples.cue"))
		if err == nil {
			t.Fatal("expected error for non-string sample")
		}
		if !strings.HasPrefix(err.Error(), "samples.cue") {
			t.Errorf("error should start with filename, got: %v", err)
		}
	})

	t.Run("closed definition rejects unknown field", func(t *testing.T) {
		t.Parallel()

		data := []byte(`samples: ["a"], colour: "red"`)
		if _, err := ParseAndDecodeString[testSamples](testSchema, data, "#Samples"); err == nil {
			t.Fatal("expected error for unknown field")
		}
	})

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()

		data := []byte(`samples: [`)
		_, err := ParseAndDecodeString[testSamples](testSchema, data, "#Samples")
		if err == nil {
			t.Fatal("expected syntax error")
		}
		if !strings.Contains(err.Error(), "<input>") {
			t.Errorf("default filename should be used, got: %v", err)
		}
	})

	t.Run("size limit", func(t *testing.T) {
		t.Parallel()

		data := []byte(`samples: ["a"]`)
		_, err := ParseAndDecodeString[testSamples](testSchema, data, "#Samples", WithMaxFileSize(4))
		if err == nil || !strings.Contains(err.Error(), "exceeds maximum") {
			t.Fatalf("expected size error, got %v", err)
		}
	})

	t.Run("missing definition", func(t *testing.T) {
		t.Parallel()

		data := []byte(`samples: ["a"]`)
		_, err := ParseAndDecodeString[testSamples](testSchema, data, "#Nope")
		if err == nil || !strings.Contains(err.Error(), "#Nope") {
			t.Fatalf("expected missing definition error, got %v", err)
		}
	})

	t.Run("non-concrete value rejected by default", func(t *testing.T) {
		t.Parallel()

		data := []byte(`samples: ["a"], title: string`)
		if _, err := ParseAndDecodeString[testSamples](testSchema, data, "#Samples"); err == nil {
			t.Fatal("expected concreteness error")
		}
	})

	t.Run("optional-only schema decodes into a map without concreteness", func(t *testing.T) {
		t.Parallel()

		schema := `#Settings: { output?: { format?: "text" | "json" }, verbose?: bool }`
		data := []byte(`output: format: "json"`)
		got, err := ParseAndDecodeString[map[string]any](schema, data, "#Settings", WithConcrete(false))
		if err != nil {
			t.Fatalf("ParseAndDecode() error = %v", err)
		}
		output, ok := (*got)["output"].(map[string]any)
		if !ok || output["format"] != "json" {
			t.Errorf("decoded map = %v", *got)
		}
		if _, ok := (*got)["verbose"]; ok {
			t.Errorf("absent optional field should not be decoded, got %v", *got)
		}
	})

	t.Run("schema violations still fail without concreteness", func(t *testing.T) {
		t.Parallel()

		schema := `#Settings: { output?: { format?: "text" | "json" } }`
		data := []byte(`output: format: "xml"`)
		_, err := ParseAndDecodeString[map[string]any](schema, data, "#Settings", WithFilename("config.cue"), WithConcrete(false))
		if err == nil {
			t.Fatal("expected schema violation")
		}
		if !strings.HasPrefix(err.Error(), "config.cue") {
			t.Errorf("error should start with filename, got: %v", err)
		}
	})
}
