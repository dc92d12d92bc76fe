// SPDX-License-Identifier: MPL-2.0

// stylebook prints the built-in style catalog so terminal themes can
// be eyeballed quickly. The second demo target of this repo's own
// forgefile.
package main

import (
	"fmt"
	"os"

	"cliforge/internal/stylesheet"
)

func main() {
	sheet := stylesheet.Builtin()
	for _, name := range sheet.Names() {
		fmt.Fprintf(os.Stdout, "%-10s %s\n", name, sheet.Render(name, "the quick brown fox"))
	}
}
