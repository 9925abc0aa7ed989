// SPDX-License-Identifier: MPL-2.0

package foldername

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/foldertools/foldername/pkg/platform"
)

type (
	// EmptyNameError is returned when a name is empty or whitespace-only.
	// It wraps ErrEmptyName for errors.Is() compatibility.
	EmptyNameError struct {
		Value string
	}

	// ReservedNameError is returned when a name is a reserved device name.
	// It wraps ErrReservedName for errors.Is() compatibility.
	ReservedNameError struct {
		Value string
	}

	// InvalidCharacterError is returned for each invalid character in a name.
	// Index is the zero-based rune position of Char.
	// It wraps ErrInvalidCharacter for errors.Is() compatibility.
	InvalidCharacterError struct {
		Char  rune
		Index int
	}

	// TrailingCharacterError is returned when a name ends with a period or space.
	// It wraps ErrTrailingCharacter for errors.Is() compatibility.
	TrailingCharacterError struct {
		Char rune
	}

	// NameTooLongError is returned when a name exceeds MaxLength runes.
	// It wraps ErrNameTooLong for errors.Is() compatibility.
	NameTooLongError struct {
		Length int
	}
)

// IsValid reports whether name can be used as a folder name as-is.
// It is total over all strings and allocates nothing for valid input.
func IsValid(name string) bool {
	if isBlank(name) {
		return false
	}
	if platform.IsReservedDeviceName(name) {
		return false
	}
	if strings.IndexFunc(name, IsInvalidRune) >= 0 {
		return false
	}
	if strings.HasSuffix(name, ".") || strings.HasSuffix(name, " ") {
		return false
	}
	return utf8.RuneCountInString(name) <= MaxLength
}

// Validate returns every rule name breaks, in rule order: reserved name,
// invalid characters (one error per occurrence), trailing character, length.
// A blank name reports only an *EmptyNameError. Validate returns nil exactly
// when IsValid returns true.
func Validate(name string) []error {
	if isBlank(name) {
		return []error{&EmptyNameError{Value: name}}
	}

	var errs []error
	if platform.IsReservedDeviceName(name) {
		errs = append(errs, &ReservedNameError{Value: name})
	}

	length := 0
	for _, r := range name {
		if IsInvalidRune(r) {
			errs = append(errs, &InvalidCharacterError{Char: r, Index: length})
		}
		length++
	}

	if last, _ := utf8.DecodeLastRuneInString(name); last == '.' || last == ' ' {
		errs = append(errs, &TrailingCharacterError{Char: last})
	}

	if length > MaxLength {
		errs = append(errs, &NameTooLongError{Length: length})
	}

	return errs
}

// Error implements the error interface for EmptyNameError.
func (e *EmptyNameError) Error() string {
	if e.Value == "" {
		return "folder name must not be empty"
	}
	return fmt.Sprintf("folder name must not be whitespace-only (got %q)", e.Value)
}

// Unwrap returns ErrEmptyName for errors.Is() compatibility.
func (e *EmptyNameError) Unwrap() error { return ErrEmptyName }

// Error implements the error interface for ReservedNameError.
func (e *ReservedNameError) Error() string {
	return fmt.Sprintf("%q is a reserved device name", e.Value)
}

// Unwrap returns ErrReservedName for errors.Is() compatibility.
func (e *ReservedNameError) Unwrap() error { return ErrReservedName }

// Error implements the error interface for InvalidCharacterError.
func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Index)
}

// Unwrap returns ErrInvalidCharacter for errors.Is() compatibility.
func (e *InvalidCharacterError) Unwrap() error { return ErrInvalidCharacter }

// Error implements the error interface for TrailingCharacterError.
func (e *TrailingCharacterError) Error() string {
	if e.Char == ' ' {
		return "folder name must not end with a space"
	}
	return "folder name must not end with a period"
}

// Unwrap returns ErrTrailingCharacter for errors.Is() compatibility.
func (e *TrailingCharacterError) Unwrap() error { return ErrTrailingCharacter }

// Error implements the error interface for NameTooLongError.
func (e *NameTooLongError) Error() string {
	return fmt.Sprintf("folder name is %d characters long (maximum %d)", e.Length, MaxLength)
}

// Unwrap returns ErrNameTooLong for errors.Is() compatibility.
func (e *NameTooLongError) Unwrap() error { return ErrNameTooLong }
