// SPDX-License-Identifier: MPL-2.0

package foldername_test

import (
	"fmt"

	"github.com/foldertools/foldername/pkg/foldername"
)

func ExampleIsValid() {
	fmt.Println(foldername.IsValid("valid_folder"))
	fmt.Println(foldername.IsValid("CON"))
	fmt.Println(foldername.IsValid("folder."))
	// Output:
	// true
	// false
	// false
}

func ExampleCorrect() {
	fmt.Println(foldername.Correct("CON"))
	fmt.Println(foldername.Correct("test<file"))
	fmt.Println(foldername.Correct("   "))
	fmt.Println(foldername.Correct("folder."))
	// Output:
	// folder_CON
	// test_file
	// new_folder
	// folder
}

func ExampleValidate() {
	for _, err := range foldername.Validate("a|b?") {
		fmt.Printf("%s: %v\n", foldername.RuleOf(err), err)
	}
	// Output:
	// invalid-character: invalid character '|' at position 1
	// invalid-character: invalid character '?' at position 3
}

func ExampleExplain() {
	c := foldername.Explain("aux. ")
	for _, step := range c.Steps {
		fmt.Printf("%s -> %q\n", step.Kind, step.Output)
	}
	// Output:
	// trim-trailing -> "aux"
	// prefix-reserved -> "folder_aux"
}
