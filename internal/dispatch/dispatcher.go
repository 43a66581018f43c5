// Package dispatch implements the router: backend resolution, the
// subcommand-backend compatibility matrix, and the five execution actions.
package dispatch

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/iamchrissmith/evm-semantics/internal/cli"
	"github.com/iamchrissmith/evm-semantics/internal/config"
	"github.com/iamchrissmith/evm-semantics/internal/observability"
	"github.com/iamchrissmith/evm-semantics/pkg/adapters/process"
	"github.com/iamchrissmith/evm-semantics/pkg/ports"
	"github.com/iamchrissmith/evm-semantics/pkg/toolchain"
)

// Dispatcher routes one invocation to its action. It owns no mutable state
// beyond its wiring; every call is independent and synchronous.
type Dispatcher struct {
	cfg     config.Config
	tools   *process.Registry
	exec    ports.ToolRunner
	metrics *observability.Recorder
	janitor *cli.Janitor
	logger  *slog.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Option configures the dispatcher.
type Option func(*Dispatcher)

// WithToolRunner substitutes the subprocess executor (tests use a fake).
func WithToolRunner(exec ports.ToolRunner) Option {
	return func(d *Dispatcher) {
		d.exec = exec
	}
}

// WithRegistry replaces the tool registry.
func WithRegistry(reg *process.Registry) Option {
	return func(d *Dispatcher) {
		d.tools = reg
	}
}

// WithMetrics enables dispatch-outcome metrics recording.
func WithMetrics(rec *observability.Recorder) Option {
	return func(d *Dispatcher) {
		d.metrics = rec
	}
}

// WithJanitor registers temp resources with a process-level janitor so
// signal exit paths still sweep them.
func WithJanitor(j *cli.Janitor) Option {
	return func(d *Dispatcher) {
		d.janitor = j
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// WithStreams redirects the dispatcher's terminal streams (tests capture
// them; the CLI leaves the defaults).
func WithStreams(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(d *Dispatcher) {
		d.stdin = stdin
		d.stdout = stdout
		d.stderr = stderr
	}
}

// New builds a dispatcher for the given startup configuration.
func New(cfg config.Config, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		cfg:    cfg,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if d.tools == nil {
		d.tools = process.DefaultRegistry()
	}
	if d.exec == nil {
		d.exec = process.NewRunner(
			process.WithEnviron(cfg.Environ(os.Environ())),
			process.WithWorkDir(cfg.WorkDir),
			process.WithLogger(d.logger),
		)
	}
	return d
}

// Dispatch resolves the backend, applies the compatibility matrix, checks
// the target, and executes the selected action. The error is one of the
// routing taxonomy values in pkg/toolchain; exit-code mapping belongs to
// the caller.
func (d *Dispatcher) Dispatch(ctx context.Context, sub toolchain.Subcommand, argv []string) error {
	backend, rest, explicit := toolchain.ResolveBackend(sub, argv)

	action, ok := actionFor(sub, backend)
	if !ok {
		d.logger.Debug("no route", "subcommand", sub, "backend", backend)
		return toolchain.ErrRouting
	}
	// A missing target token is a help request, not a file error.
	if len(rest) == 0 {
		return toolchain.ErrRouting
	}

	target := rest[0]
	if info, err := os.Stat(target); err != nil || info.IsDir() {
		return &toolchain.FileNotFoundError{Path: target}
	}

	inv := toolchain.Invocation{
		Subcommand:      sub,
		Backend:         backend,
		BackendExplicit: explicit,
		Target:          target,
		Args:            rest[1:],
		Mode:            d.cfg.ModeConstant(),
		Schedule:        d.cfg.ScheduleConstant(),
	}

	d.metrics.Dispatch(sub.String(), backend.String())
	defer d.metrics.Flush()

	d.logger.Debug("dispatching",
		"subcommand", sub, "backend", backend, "target", target, "explicit", explicit)

	switch action {
	case ActionRun:
		return d.runKRun(ctx, inv)
	case ActionKast:
		return d.runKast(ctx, inv)
	case ActionInterpret:
		return d.runInterpret(ctx, inv)
	case ActionProve:
		return d.runProve(ctx, inv)
	case ActionKLab:
		return d.runKLab(ctx, inv)
	}
	return toolchain.ErrRouting
}
