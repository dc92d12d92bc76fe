// SPDX-License-Identifier: MPL-2.0

// Package config loads and persists the forge user configuration.
//
// The configuration lives in a CUE file under the platform config directory
// (XDG on Linux, Application Support on macOS, %APPDATA% on Windows). Files
// are validated against an embedded #Config schema before being merged into
// viper on top of the built-in defaults.
package config
