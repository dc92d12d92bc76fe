// SPDX-License-Identifier: MPL-2.0

package toolchain

import (
	"context"
	"errors"
	"io"
	"os/exec"
)

// Invocation describes one external command.
type Invocation struct {
	Name   string
	Args   []string
	Dir    string
	Env    []string // nil means inherit the parent environment
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Result carries the exit code of a finished command.
type Result struct {
	ExitCode int
}

// Runner abstracts command execution so toolchain operations can be
// tested without a Go installation on the host.
type Runner interface {
	Run(ctx context.Context, inv Invocation) (Result, error)
}

// ExecRunner executes commands on the local host.
type ExecRunner struct{}

// exitCodeMissing is reported when the command binary cannot be found,
// matching the shell convention.
const exitCodeMissing = 127

func (ExecRunner) Run(ctx context.Context, inv Invocation) (Result, error) {
	cmd := exec.CommandContext(ctx, inv.Name, inv.Args...)
	cmd.Dir = inv.Dir
	cmd.Env = inv.Env
	cmd.Stdin = inv.Stdin
	cmd.Stdout = inv.Stdout
	cmd.Stderr = inv.Stderr

	err := cmd.Run()
	if err == nil {
		return Result{ExitCode: 0}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Result{ExitCode: exitErr.ExitCode()}, err
	}

	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return Result{ExitCode: exitCodeMissing}, err
	}
	return Result{ExitCode: 1}, err
}
