// SPDX-License-Identifier: MPL-2.0

// Package scanner implements the long-range scanner demo.
//
// It exists to exercise the multi-binary build convention and the shared
// stylesheet: a small, self-contained program with real output, flags,
// and exit codes, without inventing a production feature.
package scanner

import (
	"fmt"
	"io"
	"strings"

	"cliforge/internal/stylesheet"
)

// Disposition classifies a contact for styling and exit-code purposes.
type Disposition int

const (
	// Friendly contacts render with the "ok" style.
	Friendly Disposition = iota
	// Neutral contacts render with the "muted" style.
	Neutral
	// Hostile contacts render with the "alert" style and raise the alarm.
	Hostile
)

// String returns the display label for a disposition.
func (d Disposition) String() string {
	switch d {
	case Friendly:
		return "friendly"
	case Neutral:
		return "neutral"
	case Hostile:
		return "HOSTILE"
	default:
		return "unknown"
	}
}

// styleName maps a disposition onto a stylesheet entry.
func (d Disposition) styleName() string {
	switch d {
	case Friendly:
		return "ok"
	case Hostile:
		return "alert"
	default:
		return "muted"
	}
}

// Contact is one object on the scanner display.
type Contact struct {
	Designation string
	Bearing     int // degrees, 0-359
	Range       float64
	Disposition Disposition
}

// quadrants is the fixed contact table; the demo has no sensors.
var quadrants = map[string][]Contact{
	"alpha": {
		{Designation: "USS Botany Bay", Bearing: 14, Range: 2.3, Disposition: Neutral},
		{Designation: "freighter Kobayashi", Bearing: 102, Range: 6.8, Disposition: Friendly},
	},
	"beta": {
		{Designation: "survey probe T'Pol", Bearing: 251, Range: 0.4, Disposition: Friendly},
	},
	"gamma": {
		{Designation: "Romulan warbird", Bearing: 333, Range: 1.1, Disposition: Hostile},
		{Designation: "debris field", Bearing: 340, Range: 1.2, Disposition: Neutral},
	},
}

// Quadrants returns the valid --quadrant values, for flag validation.
func Quadrants() []string {
	return []string{"alpha", "beta", "gamma"}
}

// Sweep returns the contacts for a quadrant, or an error for an unknown one.
func Sweep(quadrant string) ([]Contact, error) {
	contacts, ok := quadrants[quadrant]
	if !ok {
		return nil, fmt.Errorf("unknown quadrant %q (expected %s)",
			quadrant, strings.Join(Quadrants(), ", "))
	}
	return contacts, nil
}

// HostileAlert is printed once when a sweep finds any hostile contact.
const HostileAlert = "ALERT: Romulan ship approaching!"

// Report writes a styled sweep report and returns whether any contact
// was hostile.
func Report(w io.Writer, sheet *stylesheet.Sheet, quadrant string, contacts []Contact) bool {
	fmt.Fprintln(w, sheet.Render("heading", fmt.Sprintf("long-range sweep: %s quadrant", quadrant)))

	if len(contacts) == 0 {
		fmt.Fprintln(w, sheet.Render("muted", "no contacts"))
		return false
	}

	hostile := false
	for _, c := range contacts {
		line := fmt.Sprintf("%-22s bearing %3d°  range %.1f ly  [%s]",
			c.Designation, c.Bearing, c.Range, c.Disposition)
		fmt.Fprintln(w, sheet.Render(c.Disposition.styleName(), line))
		if c.Disposition == Hostile {
			hostile = true
		}
	}

	if hostile {
		fmt.Fprintln(w, sheet.Render("alert", HostileAlert))
	}
	return hostile
}
