// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
//
// This package centralizes platform-specific concerns such as GOOS
// comparisons so that the rest of the codebase avoids scattered
// magic strings.
package platform
