// SPDX-License-Identifier: MPL-2.0

// Package foldername validates and corrects single folder names against the
// union of the naming rules imposed by restrictive filesystems.
//
// A name is valid when it is not blank, is not a reserved device name
// (CON, PRN, AUX, NUL, COM1-COM9, LPT1-LPT9, compared case-insensitively),
// contains none of the characters <>:"/\|?* or the control characters
// U+0000-U+001F, does not end in a period or space, and is at most 255
// characters long. Lengths are counted in runes, not bytes.
//
// The package is pure: IsValid, Validate, Correct and Explain read only
// immutable package data and are safe for concurrent use.
//
// # Usage
//
//	if !foldername.IsValid(input) {
//	    input = foldername.Correct(input)
//	}
//
// Correct never fails. Callers that need to know why a name was rejected use
// Validate, which reports one typed error per broken rule; callers that need
// to show how a name was repaired use Explain.
package foldername
