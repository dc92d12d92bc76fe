// SPDX-License-Identifier: MPL-2.0

package forgefile

import (
	"fmt"
	"path/filepath"
	"strings"
)

type (
	// ValidationError describes a single manifest constraint violation
	// that the CUE schema cannot express.
	ValidationError struct {
		// Field is the manifest field in JSON-path notation (e.g. "targets[1].path").
		Field string
		// Message describes the violation.
		Message string
	}

	// ValidationErrors collects every violation found in one pass so users
	// can fix the whole manifest at once.
	ValidationErrors []ValidationError
)

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	lines := make([]string, len(e))
	for i, ve := range e {
		lines[i] = ve.Error()
	}
	return fmt.Sprintf("forgefile validation failed:\n  %s", strings.Join(lines, "\n  "))
}

// Validate checks constraints beyond the CUE schema:
// target name uniqueness, and that every path (bin_dir included) stays
// inside the project. Returns nil when the manifest is valid.
func (f *Forgefile) Validate() ValidationErrors {
	var errs ValidationErrors

	if f.BinDir != "" && !isLocalPath(f.BinDir) {
		errs = append(errs, ValidationError{
			Field:   "bin_dir",
			Message: fmt.Sprintf("%q must be a relative path inside the project", f.BinDir),
		})
	}

	seen := make(map[string]int) // name -> index of first declaration
	for i, t := range f.Targets {
		field := fmt.Sprintf("targets[%d]", i)

		if first, dup := seen[t.Name]; dup {
			errs = append(errs, ValidationError{
				Field:   field + ".name",
				Message: fmt.Sprintf("duplicate target name %q (first declared at targets[%d])", t.Name, first),
			})
		} else {
			seen[t.Name] = i
		}

		if !isLocalPath(t.Path) {
			errs = append(errs, ValidationError{
				Field:   field + ".path",
				Message: fmt.Sprintf("%q must be a relative path inside the project", t.Path),
			})
		}
	}

	return errs
}

// isLocalPath reports whether p is relative and does not escape the
// project root. Accepts the "./cmd/foo" form the toolchain expects.
func isLocalPath(p string) bool {
	if p == "" || filepath.IsAbs(p) {
		return false
	}
	trimmed := strings.TrimPrefix(p, "./")
	if trimmed == "" {
		return false
	}
	return filepath.IsLocal(filepath.FromSlash(trimmed))
}
