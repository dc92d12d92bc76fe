// SPDX-License-Identifier: MPL-2.0

// Package toolchain drives the Go toolchain for forge operations.
//
// Every external command goes through the Runner interface so the
// check/build/run drivers can be tested against a fake.
package toolchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	goruntime "runtime"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"cliforge/internal/discovery"
	"cliforge/internal/issue"
	"cliforge/pkg/forgefile"
	"cliforge/pkg/platform"
)

// ErrToolchainMissing marks failures caused by the go binary not being
// installed or not on PATH. Callers classify it with errors.Is.
var ErrToolchainMissing = errors.New("go toolchain not found")

// Toolchain runs go vet, go build, and built binaries for a project.
type Toolchain struct {
	runner Runner
	goBin  string
	logger *log.Logger
}

// Option configures a Toolchain.
type Option func(*Toolchain)

// WithRunner replaces the command runner. Tests use this to inject a fake.
func WithRunner(r Runner) Option {
	return func(tc *Toolchain) { tc.runner = r }
}

// WithGoBinary overrides the go binary name or path.
func WithGoBinary(path string) Option {
	return func(tc *Toolchain) { tc.goBin = path }
}

// New returns a Toolchain executing against the local host.
// A nil logger discards debug output.
func New(logger *log.Logger, opts ...Option) *Toolchain {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tc := &Toolchain{
		runner: ExecRunner{},
		goBin:  "go",
		logger: logger,
	}
	for _, opt := range opts {
		opt(tc)
	}
	return tc
}

// BuildOptions control a Build or Run invocation.
type BuildOptions struct {
	// BinDir is the artifact directory relative to the project root.
	// Empty means the manifest's resolved bin dir.
	BinDir string
	// Jobs bounds build parallelism. Values below 1 mean GOMAXPROCS.
	Jobs int
	// Prebuild, when set, runs before each target is compiled.
	Prebuild func(ctx context.Context, t *forgefile.Target) error
}

// BuildResult describes one produced artifact.
type BuildResult struct {
	Target   string
	Binary   string
	Package  string
	Duration time.Duration
}

// BinaryPath returns where a target's artifact lands for the current host.
func BinaryPath(root, binDir string, t *forgefile.Target) string {
	return filepath.Join(root, binDir, t.Name+platform.ExeSuffix(goruntime.GOOS))
}

// CheckOptions control a Check invocation.
type CheckOptions struct {
	// Prebuild, when set, runs before each target is vetted. A failing
	// hook aborts the check.
	Prebuild func(ctx context.Context, t *forgefile.Target) error
}

// Check runs go vet over each target's entry point package, running
// prebuild hooks first so generated sources are vetted too.
// Targets are vetted in order so output stays deterministic.
func (tc *Toolchain) Check(ctx context.Context, project *discovery.Project, targets []*forgefile.Target, opts CheckOptions) error {
	for _, t := range targets {
		if opts.Prebuild != nil {
			if err := opts.Prebuild(ctx, t); err != nil {
				return err
			}
		}

		tc.logger.Debug("vetting target", "target", t.Name, "path", t.Path)

		args := []string{"vet"}
		if len(t.Tags) > 0 {
			args = append(args, "-tags", strings.Join(t.Tags, ","))
		}
		args = append(args, "./"+filepath.ToSlash(filepath.Clean(t.Path)))

		var out bytes.Buffer
		res, err := tc.runner.Run(ctx, Invocation{
			Name:   tc.goBin,
			Args:   args,
			Dir:    project.Root,
			Env:    targetEnv(t),
			Stdout: &out,
			Stderr: &out,
		})
		if err != nil {
			if res.ExitCode == exitCodeMissing {
				return tc.missingToolchainError("check target", t.Name, err)
			}
			return issue.NewErrorContext().
				WithOperation("check target").
				WithResource(t.Name).
				WithSuggestion("Fix the reported issues and run 'forge check' again").
				Wrap(fmt.Errorf("go vet: %w\n%s", err, strings.TrimRight(out.String(), "\n"))).
				BuildError()
		}
	}
	return nil
}

// Build compiles the given targets into the project's bin dir, in
// parallel up to opts.Jobs. The first failure cancels the remaining
// builds. Results come back in target order.
func (tc *Toolchain) Build(ctx context.Context, project *discovery.Project, targets []*forgefile.Target, opts BuildOptions) ([]BuildResult, error) {
	binDir := opts.BinDir
	if binDir == "" {
		binDir = project.Manifest.ResolvedBinDir()
	}
	if err := os.MkdirAll(filepath.Join(project.Root, binDir), 0o755); err != nil {
		return nil, issue.WrapWithOperation(err, "create bin dir")
	}

	jobs := opts.Jobs
	if jobs < 1 {
		jobs = goruntime.GOMAXPROCS(0)
	}

	results := make([]BuildResult, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, t := range targets {
		g.Go(func() error {
			if opts.Prebuild != nil {
				if err := opts.Prebuild(gctx, t); err != nil {
					return err
				}
			}
			res, err := tc.buildOne(gctx, project, binDir, t)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (tc *Toolchain) buildOne(ctx context.Context, project *discovery.Project, binDir string, t *forgefile.Target) (BuildResult, error) {
	out := BinaryPath(project.Root, binDir, t)
	pkg := "./" + filepath.ToSlash(filepath.Clean(t.Path))

	args := []string{"build", "-o", out}
	if len(t.Tags) > 0 {
		args = append(args, "-tags", strings.Join(t.Tags, ","))
	}
	if t.Ldflags != "" {
		args = append(args, "-ldflags", t.Ldflags)
	}
	args = append(args, t.Flags...)
	args = append(args, pkg)

	tc.logger.Debug("building target", "target", t.Name, "output", out)

	start := time.Now()
	var buf bytes.Buffer
	res, err := tc.runner.Run(ctx, Invocation{
		Name:   tc.goBin,
		Args:   args,
		Dir:    project.Root,
		Env:    targetEnv(t),
		Stdout: &buf,
		Stderr: &buf,
	})
	if err != nil {
		if res.ExitCode == exitCodeMissing {
			return BuildResult{}, tc.missingToolchainError("build target", t.Name, err)
		}
		return BuildResult{}, issue.NewErrorContext().
			WithOperation("build target").
			WithResource(t.Name).
			WithSuggestion("Run 'forge check' for a faster diagnosis of compile errors").
			Wrap(fmt.Errorf("go build: %w\n%s", err, strings.TrimRight(buf.String(), "\n"))).
			BuildError()
	}

	return BuildResult{
		Target:   t.Name,
		Binary:   out,
		Package:  pkg,
		Duration: time.Since(start),
	}, nil
}

// RunOptions control how a built binary is executed.
type RunOptions struct {
	BuildOptions

	Args   []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run builds a single target and then executes it, forwarding stdio.
// It returns the binary's exit code; a non-zero code is not an error
// here, the caller decides how to surface it.
func (tc *Toolchain) Run(ctx context.Context, project *discovery.Project, t *forgefile.Target, opts RunOptions) (int, error) {
	results, err := tc.Build(ctx, project, []*forgefile.Target{t}, opts.BuildOptions)
	if err != nil {
		return 1, err
	}
	bin := results[0].Binary

	tc.logger.Debug("running target", "target", t.Name, "binary", bin, "args", opts.Args)

	res, err := tc.runner.Run(ctx, Invocation{
		Name:   bin,
		Args:   opts.Args,
		Dir:    project.Root,
		Env:    targetEnv(t),
		Stdin:  opts.Stdin,
		Stdout: opts.Stdout,
		Stderr: opts.Stderr,
	})
	if err != nil && res.ExitCode == 0 {
		return 1, issue.NewErrorContext().
			WithOperation("run target").
			WithResource(t.Name).
			Wrap(err).
			BuildError()
	}
	return res.ExitCode, nil
}

// GoVersion reports the toolchain version string, e.g. "go1.25.0".
func (tc *Toolchain) GoVersion(ctx context.Context) (string, error) {
	var out bytes.Buffer
	res, err := tc.runner.Run(ctx, Invocation{
		Name:   tc.goBin,
		Args:   []string{"env", "GOVERSION"},
		Stdout: &out,
	})
	if err != nil {
		if res.ExitCode == exitCodeMissing {
			return "", tc.missingToolchainError("query toolchain version", tc.goBin, err)
		}
		return "", issue.WrapWithOperation(err, "query toolchain version")
	}
	return strings.TrimSpace(out.String()), nil
}

func (tc *Toolchain) missingToolchainError(op, resource string, cause error) error {
	return issue.NewErrorContext().
		WithOperation(op).
		WithResource(resource).
		WithSuggestion(fmt.Sprintf("Install the Go toolchain or put %q on your PATH", tc.goBin)).
		WithSuggestion("See https://go.dev/dl for installers").
		Wrap(fmt.Errorf("%w: %w", ErrToolchainMissing, cause)).
		BuildError()
}

// targetEnv merges the target's declared environment over the parent's.
func targetEnv(t *forgefile.Target) []string {
	if len(t.Env) == 0 {
		return nil
	}
	env := os.Environ()
	for k, v := range t.Env {
		env = append(env, k+"="+v)
	}
	return env
}
