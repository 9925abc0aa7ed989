// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/foldertools/foldername/cmd/foldername"

func main() {
	cmd.Execute()
}
