// SPDX-License-Identifier: MPL-2.0

package foldername

// Name is a candidate folder name. The zero value is not a valid name.
type Name string

// String returns the string representation of the Name.
func (n Name) String() string { return string(n) }

// IsValid returns whether the Name can be used as a folder name as-is,
// along with every rule it breaks.
func (n Name) IsValid() (bool, []error) {
	errs := Validate(string(n))
	return len(errs) == 0, errs
}

// Corrected returns the Name transformed by Correct.
func (n Name) Corrected() Name { return Name(Correct(string(n))) }
