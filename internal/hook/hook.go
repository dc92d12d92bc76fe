// SPDX-License-Identifier: MPL-2.0

// Package hook runs prebuild scripts through an embedded POSIX shell
// interpreter, so forgefiles behave the same on every host.
package hook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"cliforge/internal/issue"
	"cliforge/pkg/forgefile"
)

// Executor runs the prebuild scripts of targets for one project.
type Executor struct {
	root   string
	binDir string
	stdout io.Writer
	stderr io.Writer
	logger *log.Logger
}

// NewExecutor returns an Executor rooted at the project directory.
// A nil logger discards debug output.
func NewExecutor(root, binDir string, stdout, stderr io.Writer, logger *log.Logger) *Executor {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Executor{
		root:   root,
		binDir: binDir,
		stdout: stdout,
		stderr: stderr,
		logger: logger,
	}
}

// Validate parses the target's prebuild script without running it.
// Targets without a prebuild script validate trivially.
func Validate(t *forgefile.Target) error {
	if t.Prebuild == "" {
		return nil
	}
	_, err := syntax.NewParser().Parse(strings.NewReader(t.Prebuild), "prebuild")
	if err != nil {
		return fmt.Errorf("prebuild script syntax error in target %q: %w", t.Name, err)
	}
	return nil
}

// Run executes the target's prebuild script. The script sees the
// parent environment plus the target's declared variables, and
// FORGE_TARGET and FORGE_BIN_DIR describing the invocation.
func (e *Executor) Run(ctx context.Context, t *forgefile.Target) error {
	if t.Prebuild == "" {
		return nil
	}

	prog, err := syntax.NewParser().Parse(strings.NewReader(t.Prebuild), "prebuild")
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("parse prebuild script").
			WithResource(t.Name).
			WithSuggestion("Check the prebuild field for shell syntax errors").
			Wrap(err).
			BuildError()
	}

	env := os.Environ()
	for k, v := range t.Env {
		env = append(env, k+"="+v)
	}
	env = append(env,
		"FORGE_TARGET="+t.Name,
		"FORGE_BIN_DIR="+e.binDir,
	)

	runner, err := interp.New(
		interp.Dir(e.root),
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(nil, e.stdout, e.stderr),
	)
	if err != nil {
		return issue.WrapWithOperation(err, "create script interpreter")
	}

	e.logger.Debug("running prebuild hook", "target", t.Name)

	if err := runner.Run(ctx, prog); err != nil {
		var exit interp.ExitStatus
		if errors.As(err, &exit) {
			err = fmt.Errorf("prebuild exited with status %d", int(exit))
		}
		return issue.NewErrorContext().
			WithOperation("run prebuild hook").
			WithResource(t.Name).
			WithSuggestion("Run the script manually from the project root to debug it").
			Wrap(err).
			BuildError()
	}
	return nil
}
