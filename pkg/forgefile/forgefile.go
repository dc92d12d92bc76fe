// SPDX-License-Identifier: MPL-2.0

package forgefile

import (
	"fmt"
	goruntime "runtime"
	"sort"
	"strings"
)

// DefaultFileName is the manifest filename looked up during discovery.
const DefaultFileName = "forgefile.cue"

// DefaultBinDir is used when the manifest does not set bin_dir.
const DefaultBinDir = "bin"

// PlatformType represents a host platform a target may be restricted to.
type PlatformType string

const (
	// PlatformLinux represents Linux.
	PlatformLinux PlatformType = "linux"
	// PlatformMac represents macOS.
	PlatformMac PlatformType = "macos"
	// PlatformWindows represents Windows.
	PlatformWindows PlatformType = "windows"
)

// CurrentPlatform maps runtime.GOOS onto a PlatformType.
// Unknown GOOS values map to the empty PlatformType, which never matches
// a platform restriction.
func CurrentPlatform() PlatformType {
	switch goruntime.GOOS {
	case "linux":
		return PlatformLinux
	case "darwin":
		return PlatformMac
	case "windows":
		return PlatformWindows
	default:
		return ""
	}
}

// Target is one named, independently compilable binary declared in the manifest.
type Target struct {
	// Name is the selection key for check/build/run. Exact match only.
	Name string `json:"name"`
	// Path is the entry point package path relative to the project root.
	Path string `json:"path"`
	// Description is shown in listings.
	Description string `json:"description,omitempty"`
	// Env holds extra environment variables for toolchain invocations.
	Env map[string]string `json:"env,omitempty"`
	// Flags are extra arguments passed verbatim to the toolchain.
	Flags []string `json:"flags,omitempty"`
	// Ldflags is passed as -ldflags when non-empty.
	Ldflags string `json:"ldflags,omitempty"`
	// Tags are build tags.
	Tags []string `json:"tags,omitempty"`
	// Prebuild is a POSIX script run by the built-in interpreter before
	// any check, build, or run of this target.
	Prebuild string `json:"prebuild,omitempty"`
	// Platforms restricts the target to the given host platforms.
	// Empty means all platforms.
	Platforms []PlatformType `json:"platforms,omitempty"`
}

// SupportsPlatform reports whether the target may be operated on for the
// given host platform.
func (t *Target) SupportsPlatform(p PlatformType) bool {
	if len(t.Platforms) == 0 {
		return true
	}
	for _, candidate := range t.Platforms {
		if candidate == p {
			return true
		}
	}
	return false
}

// Forgefile is the parsed project manifest.
type Forgefile struct {
	// Project names the workbench.
	Project string `json:"project"`
	// Description documents the project's intent.
	Description string `json:"description,omitempty"`
	// BinDir is where build artifacts land, relative to the project root.
	BinDir string `json:"bin_dir,omitempty"`
	// Targets declares the named binaries. Never empty after a successful parse.
	Targets []Target `json:"targets"`

	// FilePath records where the manifest was loaded from. Not part of the
	// CUE schema; set by Parse.
	FilePath string `json:"-"`
}

// TargetNotFoundError is returned when a name does not match any declared target.
type TargetNotFoundError struct {
	Name  string
	Known []string
}

// Error implements the error interface.
func (e *TargetNotFoundError) Error() string {
	return fmt.Sprintf("target %q is not declared in the forgefile (declared: %s)",
		e.Name, strings.Join(e.Known, ", "))
}

// Target returns the target with the exact declared name.
// Any other string yields a *TargetNotFoundError (never a fuzzy match).
func (f *Forgefile) Target(name string) (*Target, error) {
	for i := range f.Targets {
		if f.Targets[i].Name == name {
			return &f.Targets[i], nil
		}
	}
	return nil, &TargetNotFoundError{Name: name, Known: f.TargetNames()}
}

// TargetNames returns the declared target names in manifest order.
func (f *Forgefile) TargetNames() []string {
	names := make([]string, len(f.Targets))
	for i, t := range f.Targets {
		names[i] = t.Name
	}
	return names
}

// SelectTargets resolves the given names to targets, preserving argument
// order. With no names it returns all targets in manifest order.
// The first unknown name aborts resolution.
func (f *Forgefile) SelectTargets(names []string) ([]*Target, error) {
	if len(names) == 0 {
		all := make([]*Target, len(f.Targets))
		for i := range f.Targets {
			all[i] = &f.Targets[i]
		}
		return all, nil
	}

	selected := make([]*Target, 0, len(names))
	for _, name := range names {
		t, err := f.Target(name)
		if err != nil {
			return nil, err
		}
		selected = append(selected, t)
	}
	return selected, nil
}

// UnsupportedPlatformError is returned when an explicitly named target
// is restricted to platforms other than the host's.
type UnsupportedPlatformError struct {
	Name     string
	Platform PlatformType
}

// Error implements the error interface.
func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("target %q does not support platform %q", e.Name, e.Platform)
}

// SelectTargetsFor resolves names like SelectTargets and additionally
// enforces platform restrictions: naming a target that does not support
// p is an error, while selecting all (no names) silently skips
// unsupported targets.
func (f *Forgefile) SelectTargetsFor(names []string, p PlatformType) ([]*Target, error) {
	targets, err := f.SelectTargets(names)
	if err != nil {
		return nil, err
	}

	if len(names) > 0 {
		for _, t := range targets {
			if !t.SupportsPlatform(p) {
				return nil, &UnsupportedPlatformError{Name: t.Name, Platform: p}
			}
		}
		return targets, nil
	}

	supported := make([]*Target, 0, len(targets))
	for _, t := range targets {
		if t.SupportsPlatform(p) {
			supported = append(supported, t)
		}
	}
	return supported, nil
}

// ResolvedBinDir returns BinDir or the default when unset.
func (f *Forgefile) ResolvedBinDir() string {
	if f.BinDir == "" {
		return DefaultBinDir
	}
	return f.BinDir
}

// SortedTargetNames returns the declared names sorted lexically,
// for stable error messages and shell completion.
func (f *Forgefile) SortedTargetNames() []string {
	names := f.TargetNames()
	sort.Strings(names)
	return names
}
