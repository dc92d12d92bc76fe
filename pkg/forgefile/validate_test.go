// SPDX-License-Identifier: MPL-2.0

package forgefile

import (
	"strings"
	"testing"
)

func TestValidateDuplicateNames(t *testing.T) {
	t.Parallel()

	ff := &Forgefile{
		Project: "p",
		Targets: []Target{
			{Name: "tool", Path: "./cmd/tool"},
			{Name: "tool", Path: "./cmd/other"},
		},
	}

	errs := ff.Validate()
	if len(errs) != 1 {
		t.Fatalf("Validate() = %v, want exactly one error", errs)
	}
	if errs[0].Field != "targets[1].name" {
		t.Errorf("Field = %q, want targets[1].name", errs[0].Field)
	}
	if !strings.Contains(errs.Error(), "duplicate target name") {
		t.Errorf("Error() = %q, missing duplicate message", errs.Error())
	}
}

func TestValidatePaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ff      *Forgefile
		wantErr bool
	}{
		{
			name: "dot-slash path ok",
			ff: &Forgefile{Project: "p", Targets: []Target{
				{Name: "a", Path: "./cmd/a"},
			}},
		},
		{
			name: "bare relative path ok",
			ff: &Forgefile{Project: "p", Targets: []Target{
				{Name: "a", Path: "cmd/a"},
			}},
		},
		{
			name: "absolute path rejected",
			ff: &Forgefile{Project: "p", Targets: []Target{
				{Name: "a", Path: "/usr/bin/a"},
			}},
			wantErr: true,
		},
		{
			name: "escaping path rejected",
			ff: &Forgefile{Project: "p", Targets: []Target{
				{Name: "a", Path: "../other/cmd/a"},
			}},
			wantErr: true,
		},
		{
			name: "absolute bin_dir rejected",
			ff: &Forgefile{Project: "p", BinDir: "/tmp/bin", Targets: []Target{
				{Name: "a", Path: "./cmd/a"},
			}},
			wantErr: true,
		},
		{
			name: "relative bin_dir ok",
			ff: &Forgefile{Project: "p", BinDir: "out/bin", Targets: []Target{
				{Name: "a", Path: "./cmd/a"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			errs := tt.ff.Validate()
			if (len(errs) > 0) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", errs, tt.wantErr)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	t.Parallel()

	ff := &Forgefile{
		Project: "p",
		BinDir:  "/abs",
		Targets: []Target{
			{Name: "a", Path: "/abs/a"},
			{Name: "a", Path: "../b"},
		},
	}

	errs := ff.Validate()
	if len(errs) != 4 {
		t.Errorf("Validate() collected %d errors, want 4: %v", len(errs), errs)
	}
}
