// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// ParseAndDecode checks data against the definition at schemaPath in schema
// and decodes the unified value into a T.
//
// Problems in data come back through FormatError, prefixed with the name set
// by WithFilename. A schema that does not compile, or that lacks schemaPath,
// is reported as an internal error since schemas are embedded at build time.
func ParseAndDecode[T any](schema, data []byte, schemaPath string, opts ...Option) (*T, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	name := o.displayName()

	if err := CheckFileSize(data, o.maxFileSize, name); err != nil {
		return nil, err
	}

	ctx := cuecontext.New()
	def, err := lookupDefinition(ctx, schema, schemaPath)
	if err != nil {
		return nil, err
	}

	doc := ctx.CompileBytes(data, cue.Filename(name))
	if err := doc.Err(); err != nil {
		return nil, FormatError(err, name)
	}

	unified := def.Unify(doc)
	if err := unified.Validate(cue.Concrete(o.concrete)); err != nil {
		return nil, FormatError(err, name)
	}

	var out T
	if err := unified.Decode(&out); err != nil {
		return nil, FormatError(err, name)
	}
	return &out, nil
}

// ParseAndDecodeString is ParseAndDecode for schemas embedded as strings.
func ParseAndDecodeString[T any](schema string, data []byte, schemaPath string, opts ...Option) (*T, error) {
	return ParseAndDecode[T]([]byte(schema), data, schemaPath, opts...)
}

func lookupDefinition(ctx *cue.Context, schema []byte, path string) (cue.Value, error) {
	compiled := ctx.CompileBytes(schema)
	if err := compiled.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("internal error: failed to compile schema: %w", err)
	}

	def := compiled.LookupPath(cue.ParsePath(path))
	if err := def.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("internal error: schema definition %s not found: %w", path, err)
	}
	return def, nil
}
