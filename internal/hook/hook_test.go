// SPDX-License-Identifier: MPL-2.0

package hook

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cliforge/internal/issue"
	"cliforge/pkg/forgefile"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		script  string
		wantErr bool
	}{
		{name: "empty script", script: "", wantErr: false},
		{name: "simple command", script: "echo hello", wantErr: false},
		{name: "pipeline", script: "printf 'a\\nb' | sort", wantErr: false},
		{name: "unterminated quote", script: `echo "broken`, wantErr: true},
		{name: "dangling pipe", script: "echo hi |", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tgt := &forgefile.Target{Name: "demo", Path: "cmd/demo", Prebuild: tt.script}
			err := Validate(tgt)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRunWritesFileInProjectRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	tgt := &forgefile.Target{
		Name:     "demo",
		Path:     "cmd/demo",
		Prebuild: "echo generated > marker.txt",
	}

	exec := NewExecutor(root, "bin", os.Stdout, os.Stderr, nil)
	if err := exec.Run(context.Background(), tgt); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "marker.txt"))
	if err != nil {
		t.Fatalf("prebuild did not run in the project root: %v", err)
	}
	if strings.TrimSpace(string(data)) != "generated" {
		t.Errorf("marker content = %q", data)
	}
}

func TestRunExposesForgeVariables(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	tgt := &forgefile.Target{
		Name:     "demo",
		Path:     "cmd/demo",
		Env:      map[string]string{"EXTRA": "42"},
		Prebuild: `printf '%s:%s:%s' "$FORGE_TARGET" "$FORGE_BIN_DIR" "$EXTRA" > vars.txt`,
	}

	exec := NewExecutor(root, "dist", os.Stdout, os.Stderr, nil)
	if err := exec.Run(context.Background(), tgt); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "vars.txt"))
	if err != nil {
		t.Fatalf("reading vars.txt: %v", err)
	}
	if string(data) != "demo:dist:42" {
		t.Errorf("script saw %q, want demo:dist:42", data)
	}
}

func TestRunReportsScriptFailure(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	tgt := &forgefile.Target{Name: "demo", Path: "cmd/demo", Prebuild: "exit 3"}

	exec := NewExecutor(root, "bin", os.Stdout, os.Stderr, nil)
	err := exec.Run(context.Background(), tgt)
	if err == nil {
		t.Fatal("Run should fail for a script that exits non-zero")
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *issue.ActionableError, got %T", err)
	}
	if !strings.Contains(err.Error(), "status 3") {
		t.Errorf("exit status not surfaced: %v", err)
	}
}

func TestRunSkipsTargetsWithoutPrebuild(t *testing.T) {
	t.Parallel()

	exec := NewExecutor(t.TempDir(), "bin", os.Stdout, os.Stderr, nil)
	tgt := &forgefile.Target{Name: "demo", Path: "cmd/demo"}
	if err := exec.Run(context.Background(), tgt); err != nil {
		t.Errorf("Run on hookless target: %v", err)
	}
}
