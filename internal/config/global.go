// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"sync"
)

var (
	mu     sync.Mutex
	cached *Config

	// configDirOverride allows tests to override the config directory.
	// os.UserHomeDir() doesn't reliably respect the HOME environment
	// variable on all platforms (e.g., macOS in CI).
	configDirOverride string

	// configFileOverride forces loading from a specific file (--config flag).
	configFileOverride string
)

// SetConfigDirOverride sets a custom config directory path.
// Primarily intended for testing.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// SetConfigFilePathOverride forces loading from a specific config file.
// Set from the --config global flag before Load is first called.
func SetConfigFilePathOverride(path string) {
	configFileOverride = path
}

// Reset clears test overrides and the cached config.
// Call from test cleanup to restore defaults.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	cached = nil
	configDirOverride = ""
	configFileOverride = ""
}

// Load reads the configuration and caches the result for Get.
func Load() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	cfg, _, err := loadWithOptions(context.Background(), LoadOptions{
		ConfigFilePath: configFileOverride,
	})
	if err != nil {
		// Keep defaults available to callers even when loading fails.
		cached = DefaultConfig()
		return nil, err
	}

	cached = cfg
	return cfg, nil
}

// Get returns the cached configuration, or the defaults when Load has not
// run (or failed).
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	if cached == nil {
		cached = DefaultConfig()
	}
	return cached
}
