// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableErrorError(t *testing.T) {
	t.Parallel()

	cause := errors.New("permission denied")

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "build target"},
			want: "failed to build target",
		},
		{
			name: "operation and resource",
			err:  &ActionableError{Operation: "load forgefile", Resource: "forgefile.cue"},
			want: "failed to load forgefile: forgefile.cue",
		},
		{
			name: "full context",
			err:  &ActionableError{Operation: "build target", Resource: "lrscan", Cause: cause},
			want: "failed to build target: lrscan: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorContextBuild(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	ae := NewErrorContext().
		WithOperation("run target").
		WithResource("lrscan").
		WithSuggestion("Run 'forge list' to see declared targets").
		Wrap(cause).
		Build()

	if ae == nil {
		t.Fatal("Build() = nil, want error")
	}
	if ae.Operation != "run target" || ae.Resource != "lrscan" {
		t.Errorf("Build() = %+v, missing context", ae)
	}
	if !errors.Is(ae, cause) {
		t.Error("built error does not wrap cause")
	}
	if !ae.HasSuggestions() {
		t.Error("HasSuggestions() = false, want true")
	}
}

func TestErrorContextBuildRequiresOperation(t *testing.T) {
	t.Parallel()

	if got := NewErrorContext().WithResource("x").Build(); got != nil {
		t.Errorf("Build() without operation = %v, want nil", got)
	}
	if got := NewErrorContext().BuildError(); got != nil {
		t.Errorf("BuildError() without operation = %v, want nil", got)
	}
}

func TestWrapWithOperation(t *testing.T) {
	t.Parallel()

	if got := WrapWithOperation(nil, "check target"); got != nil {
		t.Errorf("WrapWithOperation(nil) = %v, want nil", got)
	}

	cause := errors.New("boom")
	ae := WrapWithOperation(cause, "check target")
	if ae == nil || !errors.Is(ae, cause) {
		t.Fatalf("WrapWithOperation() = %v, want wrapper around cause", ae)
	}
}

func TestActionableErrorFormat(t *testing.T) {
	t.Parallel()

	inner := errors.New("exit status 2")
	mid := fmt.Errorf("go vet: %w", inner)
	ae := &ActionableError{
		Operation:   "check target",
		Resource:    "lrscan",
		Suggestions: []string{"Run 'forge check' to see all diagnostics"},
		Cause:       mid,
	}

	short := ae.Format(false)
	if !strings.Contains(short, "• Run 'forge check'") {
		t.Errorf("Format(false) = %q, missing suggestion bullet", short)
	}
	if strings.Contains(short, "Error chain") {
		t.Errorf("Format(false) = %q, should not include chain", short)
	}

	long := ae.Format(true)
	if !strings.Contains(long, "Error chain:") {
		t.Errorf("Format(true) = %q, missing chain header", long)
	}
	if !strings.Contains(long, "2. exit status 2") {
		t.Errorf("Format(true) = %q, missing unwrapped cause", long)
	}
}
