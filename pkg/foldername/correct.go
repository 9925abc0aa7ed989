// SPDX-License-Identifier: MPL-2.0

package foldername

import (
	"strings"
	"unicode/utf8"

	"github.com/foldertools/foldername/pkg/platform"
)

// Correction steps, in pipeline order.
const (
	StepDefaultName      StepKind = "default-name"
	StepReplaceInvalid   StepKind = "replace-invalid"
	StepTrimTrailing     StepKind = "trim-trailing"
	StepPrefixReserved   StepKind = "prefix-reserved"
	StepTruncate         StepKind = "truncate"
	StepDefaultAfterTrim StepKind = "default-after-trim"
)

type (
	// StepKind identifies one stage of the correction pipeline.
	StepKind string

	// Step records a pipeline stage that changed the name, and the value it produced.
	Step struct {
		Kind   StepKind `json:"kind" yaml:"kind" toml:"kind"`
		Output string   `json:"output" yaml:"output" toml:"output"`
	}

	// Correction is the outcome of running the correction pipeline on Input.
	// Steps lists only the stages that changed the value; it is empty when
	// Input was already valid.
	Correction struct {
		Input  string `json:"input" yaml:"input" toml:"input"`
		Output string `json:"output" yaml:"output" toml:"output"`
		Steps  []Step `json:"steps" yaml:"steps" toml:"steps"`
	}
)

// String returns the step identifier.
func (k StepKind) String() string { return string(k) }

// Description returns a short human-readable explanation of the step.
func (k StepKind) Description() string {
	switch k {
	case StepDefaultName:
		return "blank name replaced with " + DefaultName
	case StepReplaceInvalid:
		return "invalid characters replaced with " + string(Replacement)
	case StepTrimTrailing:
		return "trailing periods and spaces removed"
	case StepPrefixReserved:
		return "reserved device name prefixed with " + ReservedPrefix
	case StepTruncate:
		return "shortened and marked with " + TruncationSuffix
	case StepDefaultAfterTrim:
		return "name became blank and was replaced with " + DefaultName
	default:
		return string(k)
	}
}

// Changed reports whether correction altered the input.
func (c Correction) Changed() bool { return c.Input != c.Output }

// Correct transforms any string into a folder name. It never fails.
//
// The pipeline is: blank input becomes DefaultName; every invalid character
// is replaced with Replacement; trailing periods and spaces are removed; a
// reserved device name gets ReservedPrefix; a name longer than MaxLength runes
// is cut to 251 runes plus TruncationSuffix; a name left blank becomes
// DefaultName.
//
// Correct returns valid names unchanged.
func Correct(name string) string {
	return Explain(name).Output
}

// Explain runs the same pipeline as Correct and records each step that
// changed the value.
func Explain(name string) Correction {
	c := Correction{Input: name}

	if isBlank(name) {
		c.apply(StepDefaultName, DefaultName)
		return c
	}
	c.Output = name

	c.apply(StepReplaceInvalid, replaceInvalid(c.Output))
	c.apply(StepTrimTrailing, strings.TrimRight(c.Output, TrailingCharacters))

	if platform.IsReservedDeviceName(c.Output) {
		c.apply(StepPrefixReserved, ReservedPrefix+c.Output)
	}

	if utf8.RuneCountInString(c.Output) > MaxLength {
		c.apply(StepTruncate, Clip(c.Output, truncateLength))
	}

	if isBlank(c.Output) {
		c.apply(StepDefaultAfterTrim, DefaultName)
	}

	return c
}

// apply sets the output and records the step when it changed the value.
func (c *Correction) apply(kind StepKind, out string) {
	if out == c.Output {
		return
	}
	c.Output = out
	c.Steps = append(c.Steps, Step{Kind: kind, Output: out})
}

// replaceInvalid substitutes Replacement for every invalid rune, keeping all
// other bytes, including malformed UTF-8, untouched.
func replaceInvalid(name string) string {
	if strings.IndexFunc(name, IsInvalidRune) < 0 {
		return name
	}

	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); {
		r, size := utf8.DecodeRuneInString(name[i:])
		if IsInvalidRune(r) {
			b.WriteRune(Replacement)
		} else {
			b.WriteString(name[i : i+size])
		}
		i += size
	}
	return b.String()
}

// Clip shortens s to its first n runes followed by TruncationSuffix. Strings
// of at most n runes are returned unchanged.
func Clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return truncateRunes(s, n) + TruncationSuffix
}

// truncateRunes returns the first n runes of s.
func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
