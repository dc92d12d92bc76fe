// SPDX-License-Identifier: MPL-2.0

// Package receipt records what forge last built, so listings can show
// artifact freshness without invoking the toolchain.
package receipt

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"cliforge/internal/toolchain"
)

// FileName is the receipt file written into the bin dir.
const FileName = "forge-receipt.toml"

// Entry describes one built artifact.
type Entry struct {
	Binary    string    `toml:"binary"`
	Package   string    `toml:"package"`
	BuiltAt   time.Time `toml:"built_at"`
	GoVersion string    `toml:"go_version"`
}

// Receipt is the on-disk record, keyed by target name.
type Receipt struct {
	Project string           `toml:"project"`
	Targets map[string]Entry `toml:"targets"`
}

// Path returns the receipt location for a bin dir.
func Path(root, binDir string) string {
	return filepath.Join(root, binDir, FileName)
}

// Load reads the receipt from the bin dir. A missing or unreadable
// receipt is not an error: the targets simply count as not built.
func Load(root, binDir string) *Receipt {
	data, err := os.ReadFile(Path(root, binDir))
	if err != nil {
		return &Receipt{Targets: map[string]Entry{}}
	}

	var r Receipt
	if err := toml.Unmarshal(data, &r); err != nil {
		// A corrupt receipt is rewritten on the next build.
		return &Receipt{Targets: map[string]Entry{}}
	}
	if r.Targets == nil {
		r.Targets = map[string]Entry{}
	}
	return &r
}

// Record merges the given build results into the receipt on disk,
// preserving entries for targets not rebuilt this time.
func Record(root, binDir, project, goVersion string, results []toolchain.BuildResult) error {
	r := Load(root, binDir)
	r.Project = project

	now := time.Now().UTC()
	for _, res := range results {
		r.Targets[res.Target] = Entry{
			Binary:    res.Binary,
			Package:   res.Package,
			BuiltAt:   now,
			GoVersion: goVersion,
		}
	}

	data, err := toml.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding build receipt: %w", err)
	}
	if err := os.WriteFile(Path(root, binDir), data, 0o644); err != nil {
		return fmt.Errorf("writing build receipt: %w", err)
	}
	return nil
}

// Lookup returns the receipt entry for a target, additionally checking
// that the recorded binary still exists on disk.
func (r *Receipt) Lookup(target string) (Entry, bool) {
	e, ok := r.Targets[target]
	if !ok {
		return Entry{}, false
	}
	if _, err := os.Stat(e.Binary); errors.Is(err, os.ErrNotExist) {
		return Entry{}, false
	}
	return e, true
}
