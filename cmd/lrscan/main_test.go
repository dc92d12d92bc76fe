// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"strings"
	"testing"

	"cliforge/internal/scanner"
)

func TestSweepHostileReturnsExitError(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	err := sweep(&buf, "gamma")

	var exitErr *exitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("sweep(gamma) error = %v, want *exitError", err)
	}
	if exitErr.code != hostileExitCode {
		t.Errorf("exit code = %d, want %d", exitErr.code, hostileExitCode)
	}
	if !strings.Contains(buf.String(), scanner.HostileAlert) {
		t.Errorf("report missing alert line, got:\n%s", buf.String())
	}
}

func TestSweepPeacefulQuadrant(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	if err := sweep(&buf, "beta"); err != nil {
		t.Errorf("sweep(beta) error = %v, want nil", err)
	}
}

func TestSweepUnknownQuadrant(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	err := sweep(&buf, "delta")
	if err == nil {
		t.Fatal("sweep(delta) should fail")
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		t.Error("an unknown quadrant is a usage error, not a scan result")
	}
}
