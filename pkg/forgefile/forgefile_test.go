// SPDX-License-Identifier: MPL-2.0

package forgefile

import (
	"errors"
	"strings"
	"testing"
)

const validManifest = `
project:     "cliforge"
description: "workbench for CLI experiments"

targets: [
	{
		name:        "forge"
		path:        "./cmd/forge"
		description: "the workbench tool"
	},
	{
		name: "lrscan"
		path: "./cmd/lrscan"
		env: {CGO_ENABLED: "0"}
		tags: ["netgo"]
	},
]
`

func TestParseBytesValid(t *testing.T) {
	t.Parallel()

	ff, err := ParseBytes([]byte(validManifest), "forgefile.cue")
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	if ff.Project != "cliforge" {
		t.Errorf("Project = %q, want cliforge", ff.Project)
	}
	if ff.FilePath != "forgefile.cue" {
		t.Errorf("FilePath = %q, want forgefile.cue", ff.FilePath)
	}
	if len(ff.Targets) != 2 {
		t.Fatalf("len(Targets) = %d, want 2", len(ff.Targets))
	}
	if ff.ResolvedBinDir() != DefaultBinDir {
		t.Errorf("ResolvedBinDir() = %q, want %q", ff.ResolvedBinDir(), DefaultBinDir)
	}
	if got := ff.Targets[1].Env["CGO_ENABLED"]; got != "0" {
		t.Errorf("Targets[1].Env[CGO_ENABLED] = %q, want 0", got)
	}
}

func TestParseBytesRejectsInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantSub string
	}{
		{
			name:    "no targets",
			data:    `project: "p", targets: []`,
			wantSub: "targets",
		},
		{
			name:    "bad target name",
			data:    `project: "p", targets: [{name: "Forge!", path: "./cmd/forge"}]`,
			wantSub: "name",
		},
		{
			name:    "missing path",
			data:    `project: "p", targets: [{name: "forge"}]`,
			wantSub: "path",
		},
		{
			name:    "unknown field",
			data:    `project: "p", binary: true, targets: [{name: "forge", path: "./cmd/forge"}]`,
			wantSub: "binary",
		},
		{
			name:    "missing project",
			data:    `targets: [{name: "forge", path: "./cmd/forge"}]`,
			wantSub: "project",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseBytes([]byte(tt.data), "forgefile.cue")
			if err == nil {
				t.Fatal("ParseBytes() = nil error, want failure")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestTargetLookupIsExact(t *testing.T) {
	t.Parallel()

	ff, err := ParseBytes([]byte(validManifest), "forgefile.cue")
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	if _, err := ff.Target("lrscan"); err != nil {
		t.Errorf("Target(lrscan) error = %v, want nil", err)
	}

	// Anything other than the exact declared name must fail.
	for _, name := range []string{"LRSCAN", "lrsca", "lrscan ", "cmd/lrscan", ""} {
		_, err := ff.Target(name)
		var nf *TargetNotFoundError
		if !errors.As(err, &nf) {
			t.Errorf("Target(%q) error = %v, want *TargetNotFoundError", name, err)
			continue
		}
		if len(nf.Known) != 2 {
			t.Errorf("Target(%q) Known = %v, want both declared names", name, nf.Known)
		}
	}
}

func TestSelectTargets(t *testing.T) {
	t.Parallel()

	ff, err := ParseBytes([]byte(validManifest), "forgefile.cue")
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	all, err := ff.SelectTargets(nil)
	if err != nil {
		t.Fatalf("SelectTargets(nil) error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("SelectTargets(nil) returned %d targets, want 2", len(all))
	}

	some, err := ff.SelectTargets([]string{"lrscan"})
	if err != nil {
		t.Fatalf("SelectTargets([lrscan]) error = %v", err)
	}
	if len(some) != 1 || some[0].Name != "lrscan" {
		t.Errorf("SelectTargets([lrscan]) = %v", some)
	}

	if _, err := ff.SelectTargets([]string{"forge", "nope"}); err == nil {
		t.Error("SelectTargets with unknown name = nil error, want failure")
	}
}

func TestTargetSupportsPlatform(t *testing.T) {
	t.Parallel()

	unrestricted := &Target{Name: "a", Path: "./cmd/a"}
	if !unrestricted.SupportsPlatform(PlatformLinux) {
		t.Error("unrestricted target should support every platform")
	}

	linuxOnly := &Target{Name: "b", Path: "./cmd/b", Platforms: []PlatformType{PlatformLinux}}
	if !linuxOnly.SupportsPlatform(PlatformLinux) {
		t.Error("linux-only target should support linux")
	}
	if linuxOnly.SupportsPlatform(PlatformWindows) {
		t.Error("linux-only target should not support windows")
	}
}

func TestSelectTargetsForEnforcesPlatforms(t *testing.T) {
	t.Parallel()

	ff := &Forgefile{
		Project: "demo",
		Targets: []Target{
			{Name: "everywhere", Path: "./cmd/everywhere"},
			{Name: "winonly", Path: "./cmd/winonly", Platforms: []PlatformType{PlatformWindows}},
		},
	}

	// Selecting all skips targets the host cannot build.
	all, err := ff.SelectTargetsFor(nil, PlatformLinux)
	if err != nil {
		t.Fatalf("SelectTargetsFor(nil) error = %v", err)
	}
	if len(all) != 1 || all[0].Name != "everywhere" {
		t.Errorf("SelectTargetsFor(nil) = %v, want [everywhere]", all)
	}

	// Naming an unsupported target is an error, never a silent skip.
	_, err = ff.SelectTargetsFor([]string{"winonly"}, PlatformLinux)
	var up *UnsupportedPlatformError
	if !errors.As(err, &up) {
		t.Fatalf("SelectTargetsFor([winonly]) error = %v, want *UnsupportedPlatformError", err)
	}
	if up.Name != "winonly" || up.Platform != PlatformLinux {
		t.Errorf("unexpected error detail: %+v", up)
	}

	// Supported names and the matching platform still resolve.
	got, err := ff.SelectTargetsFor([]string{"winonly"}, PlatformWindows)
	if err != nil || len(got) != 1 {
		t.Errorf("SelectTargetsFor on the right platform = %v, %v", got, err)
	}

	// Unknown names keep the exact-lookup failure.
	if _, err := ff.SelectTargetsFor([]string{"nope"}, PlatformLinux); err == nil {
		t.Error("SelectTargetsFor with unknown name = nil error, want failure")
	}
}
