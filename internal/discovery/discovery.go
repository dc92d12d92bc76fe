// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"fmt"
	"os"
	"path/filepath"

	"cliforge/internal/issue"
	"cliforge/pkg/forgefile"
)

// Project is a discovered and parsed forgefile together with its root
// directory. All target paths and the bin dir resolve against Root.
type Project struct {
	// ManifestPath is the absolute path of the forgefile.
	ManifestPath string
	// Root is the directory containing the forgefile.
	Root string
	// Manifest is the parsed content.
	Manifest *forgefile.Forgefile
}

// NotFoundError is returned when no forgefile exists between the start
// directory and the filesystem root.
type NotFoundError struct {
	Start string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s found in %s or any parent directory", forgefile.DefaultFileName, e.Start)
}

// Find walks from dir up toward the filesystem root looking for a
// forgefile. It returns the manifest path without parsing it.
func Find(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve start directory: %w", err)
	}

	current := abs
	for {
		candidate := filepath.Join(current, forgefile.DefaultFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", &NotFoundError{Start: abs}
		}
		current = parent
	}
}

// Load discovers and parses the project manifest starting from dir.
// An explicit manifest path (the --forgefile flag) bypasses discovery.
func Load(dir, explicitPath string) (*Project, error) {
	manifestPath := explicitPath
	if manifestPath == "" {
		found, err := Find(dir)
		if err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("locate forgefile").
				WithResource(dir).
				WithSuggestion("Run 'forge init' to create one").
				WithSuggestion("Or run forge from inside a project that has a forgefile").
				Wrap(err).
				BuildError()
		}
		manifestPath = found
	}

	abs, err := filepath.Abs(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve forgefile path: %w", err)
	}

	manifest, err := forgefile.Parse(abs)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load forgefile").
			WithResource(abs).
			WithSuggestion("Check the CUE syntax and field names").
			WithSuggestion("Run 'forge --verbose list' for the full error chain").
			Wrap(err).
			BuildError()
	}

	return &Project{
		ManifestPath: abs,
		Root:         filepath.Dir(abs),
		Manifest:     manifest,
	}, nil
}
