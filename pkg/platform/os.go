// SPDX-License-Identifier: MPL-2.0

package platform

// OS name constants for runtime.GOOS comparisons.
// Centralizes the string literals to avoid scattered magic strings.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// ExeSuffix returns the executable filename suffix for the given GOOS
// ("" everywhere except Windows).
func ExeSuffix(goos string) string {
	if goos == Windows {
		return ".exe"
	}
	return ""
}
