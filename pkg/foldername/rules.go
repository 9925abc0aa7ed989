// SPDX-License-Identifier: MPL-2.0

package foldername

import (
	"errors"
	"strings"
	"unicode"
)

const (
	// MaxLength is the longest valid name, in runes.
	MaxLength = 255

	// DefaultName replaces inputs that are blank before or after correction.
	DefaultName = "new_folder"

	// ReservedPrefix is prepended to names that collide with a reserved device name.
	ReservedPrefix = "folder_"

	// Replacement is substituted one-for-one for every invalid character.
	Replacement = '_'

	// TruncationSuffix marks a name that was shortened by Correct.
	TruncationSuffix = "..."

	// truncateLength is how many runes of an over-long name Correct keeps
	// before appending TruncationSuffix. The result is 254 runes, one short
	// of MaxLength.
	truncateLength = 251

	// InvalidPunctuation lists the printable characters rejected anywhere in a name.
	InvalidPunctuation = `<>:"/\|?*`

	// TrailingCharacters lists the characters a name must not end with.
	TrailingCharacters = ". "
)

// Rule identifies one of the naming rules.
const (
	RuleEmpty             Rule = "empty"
	RuleReserved          Rule = "reserved"
	RuleInvalidCharacter  Rule = "invalid-character"
	RuleTrailingCharacter Rule = "trailing-character"
	RuleTooLong           Rule = "too-long"
)

var (
	// ErrEmptyName is the sentinel error wrapped by EmptyNameError.
	ErrEmptyName = errors.New("empty folder name")
	// ErrReservedName is the sentinel error wrapped by ReservedNameError.
	ErrReservedName = errors.New("reserved folder name")
	// ErrInvalidCharacter is the sentinel error wrapped by InvalidCharacterError.
	ErrInvalidCharacter = errors.New("invalid character in folder name")
	// ErrTrailingCharacter is the sentinel error wrapped by TrailingCharacterError.
	ErrTrailingCharacter = errors.New("invalid trailing character in folder name")
	// ErrNameTooLong is the sentinel error wrapped by NameTooLongError.
	ErrNameTooLong = errors.New("folder name too long")

	ruleSentinels = []struct {
		rule Rule
		err  error
	}{
		{RuleEmpty, ErrEmptyName},
		{RuleReserved, ErrReservedName},
		{RuleInvalidCharacter, ErrInvalidCharacter},
		{RuleTrailingCharacter, ErrTrailingCharacter},
		{RuleTooLong, ErrNameTooLong},
	}
)

// Rule is the stable identifier of a naming rule, suitable for machine-readable output.
type Rule string

// String returns the rule identifier.
func (r Rule) String() string { return string(r) }

// RuleOf returns the rule a violation error reports, or "" when err is not
// one of this package's violation errors.
func RuleOf(err error) Rule {
	for _, rs := range ruleSentinels {
		if errors.Is(err, rs.err) {
			return rs.rule
		}
	}
	return ""
}

// IsInvalidRune reports whether r belongs to the invalid-character class:
// one of <>:"/\|?* or a control character in U+0000-U+001F.
func IsInvalidRune(r rune) bool {
	if r >= 0 && r <= 0x1f {
		return true
	}
	return strings.ContainsRune(InvalidPunctuation, r)
}

// isSpace extends unicode.IsSpace with the information separators
// U+001C-U+001F, which are also treated as whitespace when deciding whether a
// name is blank.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// isBlank reports whether name is empty once surrounding whitespace is removed.
func isBlank(name string) bool {
	return strings.TrimFunc(name, isSpace) == ""
}
