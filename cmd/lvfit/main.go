// SPDX-License-Identifier: MIT

// Command lvfit fits models to observation tables from the command line.
package main

import "github.com/katalvlaran/lvfit/internal/cli"

func main() {
	cli.Execute()
}
