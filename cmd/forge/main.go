// SPDX-License-Identifier: MPL-2.0

package main

import "cliforge/internal/cli"

func main() {
	cli.Execute()
}
