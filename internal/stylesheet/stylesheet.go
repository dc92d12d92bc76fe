// SPDX-License-Identifier: MPL-2.0

// Package stylesheet provides a named registry of terminal styles.
//
// Styles are declared as data (transformations plus foreground/background
// colors) and resolved by name at render time, so binaries can share one
// palette and individual commands can register their own entries. Unknown
// names fall back to the "default" style rather than failing.
package stylesheet

import "github.com/charmbracelet/lipgloss"

// Transformation is a text attribute applied on top of colors.
type Transformation int

const (
	// Blink makes the text blink where the terminal supports it.
	Blink Transformation = iota
	// Bold renders the text bold.
	Bold
	// Italic renders the text italic.
	Italic
	// Underline underlines the text.
	Underline
)

// Color is a named member of the portable ANSI color set.
type Color string

const (
	Black Color = "black"
	White Color = "white"
	Red   Color = "red"
	Green Color = "green"
	Blue  Color = "blue"
)

// ansi maps the named color set onto ANSI color indices, which degrade
// gracefully on terminals without truecolor support.
var ansi = map[Color]lipgloss.Color{
	Black: lipgloss.Color("0"),
	Red:   lipgloss.Color("1"),
	Green: lipgloss.Color("2"),
	Blue:  lipgloss.Color("4"),
	White: lipgloss.Color("7"),
}

// Properties declares a style as data. The zero value is a plain style.
type Properties struct {
	// Transformations are applied in order; duplicates are harmless.
	Transformations []Transformation
	// Foreground is the text color. Empty means the terminal default.
	Foreground Color
	// Background is the fill color. Empty means the terminal default.
	Background Color
}

// DefaultName is the style every failed lookup resolves to.
const DefaultName = "default"

// Sheet is a named style registry. The zero value is not usable; call New.
type Sheet struct {
	styles map[string]lipgloss.Style
}

// New creates a Sheet containing only the plain "default" style.
func New() *Sheet {
	return &Sheet{
		styles: map[string]lipgloss.Style{
			DefaultName: lipgloss.NewStyle(),
		},
	}
}

// Add registers a style under name, replacing any previous entry.
func (s *Sheet) Add(name string, props Properties) {
	style := lipgloss.NewStyle()

	for _, tr := range props.Transformations {
		switch tr {
		case Blink:
			style = style.Blink(true)
		case Bold:
			style = style.Bold(true)
		case Italic:
			style = style.Italic(true)
		case Underline:
			style = style.Underline(true)
		}
	}

	if fg, ok := ansi[props.Foreground]; ok {
		style = style.Foreground(fg)
	}
	if bg, ok := ansi[props.Background]; ok {
		style = style.Background(bg)
	}

	s.styles[name] = style
}

// Get resolves a style by name, falling back to the "default" style when
// the name is unknown.
func (s *Sheet) Get(name string) lipgloss.Style {
	if style, ok := s.styles[name]; ok {
		return style
	}
	return s.styles[DefaultName]
}

// Has reports whether name is registered (the default entry counts).
func (s *Sheet) Has(name string) bool {
	_, ok := s.styles[name]
	return ok
}

// Names returns the registered style names in unspecified order.
func (s *Sheet) Names() []string {
	names := make([]string, 0, len(s.styles))
	for name := range s.styles {
		names = append(names, name)
	}
	return names
}

// Render applies the named style to text.
func (s *Sheet) Render(name, text string) string {
	return s.Get(name).Render(text)
}

// Builtin returns the workbench sheet shared by the demo binaries:
// a plain default plus the alert/status styles the scanner uses.
func Builtin() *Sheet {
	sheet := New()
	sheet.Add("alert", Properties{
		Transformations: []Transformation{Bold},
		Foreground:      Red,
	})
	sheet.Add("caution", Properties{
		Transformations: []Transformation{Bold},
		Foreground:      White,
		Background:      Blue,
	})
	sheet.Add("ok", Properties{Foreground: Green})
	sheet.Add("muted", Properties{Foreground: White})
	sheet.Add("heading", Properties{
		Transformations: []Transformation{Bold, Underline},
	})
	return sheet
}
