package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"

	"github.com/iamchrissmith/evm-semantics/pkg/ports"
	"github.com/iamchrissmith/evm-semantics/pkg/toolchain"
)

// Runner executes external toolchain programs as blocking subprocesses.
// It implements ports.ToolRunner. Every invocation runs under the caller's
// context: signal-driven cancellation kills the subprocess and control
// unwinds through the caller's deferred cleanup.
type Runner struct {
	environ []string
	workDir string
	logger  *slog.Logger
}

// RunnerOption configures the runner.
type RunnerOption func(*Runner)

// WithEnviron sets the full environment for spawned tools. The dispatcher
// passes the assembled toolchain environment (release-dir PATH entries,
// LD_LIBRARY_PATH) here instead of mutating the process environment.
func WithEnviron(env []string) RunnerOption {
	return func(r *Runner) {
		r.environ = env
	}
}

// WithWorkDir sets the working directory for spawned tools.
func WithWorkDir(dir string) RunnerOption {
	return func(r *Runner) {
		r.workDir = dir
	}
}

// WithLogger sets the structured logger for invocation tracing.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a process runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Run invokes tool with its registered default args followed by call args,
// wired to the given streams, and blocks until it terminates.
//
// A non-zero exit from the tool is NOT an error here: it comes back as
// Result.ExitStatus so call sites can decide between status-preserving
// propagation (interpret) and best-effort continuation (klab). The error
// return means the tool never ran or was cut short by cancellation.
func (r *Runner) Run(ctx context.Context, tool toolchain.Tool, args []string, streams ports.Streams) (toolchain.Result, error) {
	argv := append(append([]string{}, tool.Args...), args...)
	cmd := exec.CommandContext(ctx, tool.Command, argv...)
	cmd.Dir = r.workDir
	cmd.Stdin = streams.Stdin
	cmd.Stdout = streams.Stdout
	cmd.Stderr = streams.Stderr

	env := r.environ
	if len(tool.Env) > 0 {
		// Copy before extending so the runner's shared environment slice
		// is never mutated by a per-tool override.
		env = append(make([]string, 0, len(r.environ)+len(tool.Env)), r.environ...)
		for k, v := range tool.Env {
			env = append(env, fmt.Sprintf("%s=%s", k, v))
		}
	}
	cmd.Env = env

	r.logger.Debug("invoking tool", "tool", tool.Name, "command", tool.Command, "args", argv)

	err := cmd.Run()
	if err == nil {
		return toolchain.Result{ExitStatus: 0}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// Cancellation also surfaces as an ExitError (killed by signal);
		// report it as an execution error so cleanup-and-exit wins over
		// status propagation.
		if ctx.Err() != nil {
			return toolchain.Result{}, fmt.Errorf("%s interrupted: %w", tool.Name, ctx.Err())
		}
		status := exitErr.ExitCode()
		r.logger.Debug("tool exited non-zero", "tool", tool.Name, "status", status)
		return toolchain.Result{ExitStatus: status}, nil
	}

	return toolchain.Result{}, fmt.Errorf("failed to run %s (%s): %w", tool.Name, tool.Command, err)
}
