// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"strings"
	"testing"

	"cliforge/pkg/forgefile"
)

func TestGenerateForgefileParses(t *testing.T) {
	t.Parallel()

	for _, template := range []string{"default", "minimal"} {
		t.Run(template, func(t *testing.T) {
			t.Parallel()
			content, err := generateForgefile(template, "myproject")
			if err != nil {
				t.Fatalf("generateForgefile: %v", err)
			}

			ff, err := forgefile.ParseBytes([]byte(content), "forgefile.cue")
			if err != nil {
				t.Fatalf("generated forgefile does not parse: %v", err)
			}
			if _, err := ff.Target("hello"); err != nil {
				t.Errorf("generated forgefile lacks the hello target: %v", err)
			}
		})
	}
}

func TestGenerateForgefileUnknownTemplate(t *testing.T) {
	t.Parallel()

	if _, err := generateForgefile("deluxe", "myproject"); err == nil {
		t.Fatal("unknown template should fail")
	}
}

func TestProjectNameFromDir(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dir  string
		want string
	}{
		{dir: "/home/dev/myproject", want: "myproject"},
		{dir: "/home/dev/My Project!", want: "My-Project-"},
		{dir: "/home/dev/123", want: "myproject"},
		{dir: "/home/dev/.config", want: "config"},
	}
	for _, tt := range tests {
		if got := projectNameFromDir(tt.dir); got != tt.want {
			t.Errorf("projectNameFromDir(%q) = %q, want %q", tt.dir, got, tt.want)
		}
	}
}

func TestGetVersionString(t *testing.T) {
	// Mutates package globals, so no t.Parallel().
	oldVersion, oldCommit, oldDate := Version, Commit, BuildDate
	defer func() { Version, Commit, BuildDate = oldVersion, oldCommit, oldDate }()

	Version = "dev"
	if got := getVersionString(); got != "dev (built from source)" {
		t.Errorf("getVersionString() = %q", got)
	}

	Version, Commit, BuildDate = "1.2.3", "abc123", "2026-08-27"
	got := getVersionString()
	for _, part := range []string{"1.2.3", "abc123", "2026-08-27"} {
		if !strings.Contains(got, part) {
			t.Errorf("getVersionString() = %q, missing %q", got, part)
		}
	}
}
