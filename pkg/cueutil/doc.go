// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities.
//
// ParseAndDecode compiles an embedded schema, unifies a user document with
// one of its definitions, validates the result and decodes it into a Go
// value. Errors carry the CUE path of the offending field.
//
// # Usage
//
//	//go:embed samples_schema.cue
//	var schemaBytes []byte
//
//	set, err := cueutil.ParseAndDecode[SampleSet](
//	    schemaBytes,
//	    userFileBytes,
//	    "#Samples",
//	    cueutil.WithFilename("samples.cue"),
//	)
package cueutil
