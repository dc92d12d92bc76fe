// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidJobs is returned when the jobs setting is negative.
	ErrInvalidJobs = errors.New("invalid jobs value")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// UIConfig holds terminal presentation settings.
	UIConfig struct {
		// ColorScheme selects the glamour style for rendered issue cards.
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
		// Verbose enables verbose output by default.
		Verbose bool `mapstructure:"verbose"`
	}

	// Config is the forge user configuration.
	Config struct {
		// BinDir is the default artifact directory for projects whose
		// forgefile does not set bin_dir.
		BinDir string `mapstructure:"bin_dir"`
		// Jobs bounds concurrent target builds. 0 means runtime.NumCPU.
		Jobs int `mapstructure:"jobs"`
		// UI holds terminal presentation settings.
		UI UIConfig `mapstructure:"ui"`
	}
)

// Validate reports whether the color scheme is one of the known values.
func (c ColorScheme) Validate() error {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return fmt.Errorf("%w: %q (expected auto, dark, or light)", ErrInvalidColorScheme, string(c))
	}
}

// Validate checks constraints the CUE schema cannot express for values
// that arrive through viper defaults or env overrides.
func (c *Config) Validate() error {
	if err := c.UI.ColorScheme.Validate(); err != nil {
		return err
	}
	if c.Jobs < 0 {
		return fmt.Errorf("%w: %d (must be >= 0)", ErrInvalidJobs, c.Jobs)
	}
	return nil
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		BinDir: "bin",
		Jobs:   0,
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
