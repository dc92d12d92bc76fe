// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"testing"
)

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path []string
		want string
	}{
		{name: "empty", path: nil, want: ""},
		{name: "single element", path: []string{"targets"}, want: "targets"},
		{name: "nested fields", path: []string{"ui", "verbose"}, want: "ui.verbose"},
		{name: "array index", path: []string{"targets", "0", "name"}, want: "targets[0].name"},
		{name: "leading numeric is not an index", path: []string{"0", "name"}, want: "0.name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := formatPath(tt.path); got != tt.want {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestFormatErrorNilAndFallback(t *testing.T) {
	t.Parallel()

	if got := FormatError(nil, "f.cue"); got != nil {
		t.Errorf("FormatError(nil) = %v, want nil", got)
	}

	plain := errors.New("boom")
	got := FormatError(plain, "f.cue")
	if got == nil || !errors.Is(got, plain) {
		t.Errorf("FormatError(plain) = %v, want wrapped fallback error", got)
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := CheckFileSize(make([]byte, 10), 10, "f.cue"); err != nil {
		t.Errorf("CheckFileSize at limit = %v, want nil", err)
	}
	if err := CheckFileSize(make([]byte, 11), 10, "f.cue"); err == nil {
		t.Error("CheckFileSize over limit = nil, want error")
	}
}
