// SPDX-License-Identifier: MPL-2.0

// Package discovery locates the project's forgefile.
//
// The manifest is per-project: discovery starts in the working directory
// and walks up toward the filesystem root, so forge can be invoked from
// any subdirectory of a project, like the go tool itself.
package discovery
