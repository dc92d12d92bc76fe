// SPDX-License-Identifier: MPL-2.0

// Package forgefile defines the schema and parsing for forgefile CUE manifests.
//
// A forgefile is the single project manifest declaring every binary target
// that can be built from the module. Each target maps a declared name to a
// source entry point; the name, never the file path, is how targets are
// selected for check, build, and run operations.
package forgefile
