// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue/errors"
)

// FormatError prefixes each CUE error in err with filePath and the field it
// concerns, written as a JSON path:
//
//	samples.cue: samples[2]: conflicting values "x" and int
//	config.cue: output.format: 4 errors in empty disjunction
//
// Several errors are listed one per line under a "validation failed" header.
// An error that carries no CUE errors is wrapped with filePath only.
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	list := errors.Errors(err)
	if len(list) == 0 {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	lines := make([]string, 0, len(list))
	for _, e := range list {
		lines = append(lines, describe(e))
	}

	if len(lines) == 1 {
		return fmt.Errorf("%s: %s", filePath, lines[0])
	}
	return fmt.Errorf("%s: validation failed:\n  %s", filePath, strings.Join(lines, "\n  "))
}

// describe renders one CUE error as "<path>: <message>", dropping the path
// from the message when CUE already put it there.
func describe(e errors.Error) string {
	path := formatPath(errors.Path(e))
	msg := e.Error()
	if path == "" {
		return msg
	}

	if rest, ok := strings.CutPrefix(msg, path); ok {
		msg = strings.TrimSpace(strings.TrimPrefix(rest, ":"))
	}
	return path + ": " + msg
}

// formatPath joins CUE path elements, writing numeric elements after the
// first as list indices: ["sets", "0", "names"] becomes "sets[0].names".
func formatPath(path []string) string {
	var b strings.Builder
	for i, part := range path {
		switch {
		case i > 0 && isIndex(part):
			b.WriteString("[" + part + "]")
		case i > 0:
			b.WriteString("." + part)
		default:
			b.WriteString(part)
		}
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// CheckFileSize rejects data larger than maxSize bytes.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if size := int64(len(data)); size > maxSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes", filename, size, maxSize)
	}
	return nil
}
