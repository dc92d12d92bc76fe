// SPDX-License-Identifier: MPL-2.0

package scanner

import (
	"strings"
	"testing"

	"cliforge/internal/stylesheet"
)

func TestSweepKnownQuadrants(t *testing.T) {
	t.Parallel()

	for _, q := range Quadrants() {
		contacts, err := Sweep(q)
		if err != nil {
			t.Errorf("Sweep(%q) returned error: %v", q, err)
		}
		if len(contacts) == 0 {
			t.Errorf("Sweep(%q) returned no contacts", q)
		}
	}
}

func TestSweepUnknownQuadrant(t *testing.T) {
	t.Parallel()

	if _, err := Sweep("delta"); err == nil {
		t.Fatal("Sweep(\"delta\") should fail")
	}
}

func TestReportHostile(t *testing.T) {
	t.Parallel()

	contacts, err := Sweep("gamma")
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}

	var buf strings.Builder
	hostile := Report(&buf, stylesheet.Builtin(), "gamma", contacts)
	if !hostile {
		t.Error("gamma quadrant should report a hostile contact")
	}
	if !strings.Contains(buf.String(), HostileAlert) {
		t.Errorf("report missing alert line, got:\n%s", buf.String())
	}
}

func TestReportPeaceful(t *testing.T) {
	t.Parallel()

	contacts, err := Sweep("beta")
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}

	var buf strings.Builder
	if Report(&buf, stylesheet.Builtin(), "beta", contacts) {
		t.Error("beta quadrant should not report hostiles")
	}
	if strings.Contains(buf.String(), HostileAlert) {
		t.Error("peaceful sweep must not print the alert line")
	}
}

func TestReportEmpty(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	if Report(&buf, stylesheet.Builtin(), "alpha", nil) {
		t.Error("empty sweep must not report hostiles")
	}
	if !strings.Contains(buf.String(), "no contacts") {
		t.Errorf("empty sweep should say so, got:\n%s", buf.String())
	}
}
