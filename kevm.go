package kevm

import (
	"context"
	"io"
	"log/slog"

	"github.com/iamchrissmith/evm-semantics/internal/config"
	"github.com/iamchrissmith/evm-semantics/internal/dispatch"
	"github.com/iamchrissmith/evm-semantics/pkg/adapters/process"
	"github.com/iamchrissmith/evm-semantics/pkg/ports"
	"github.com/iamchrissmith/evm-semantics/pkg/toolchain"
)

// Version of the dispatcher.
const Version = "1.0.1"

// Dispatcher is the high-level facade over the router. It wraps the
// internal dispatch machinery behind a small embeddable API.
type Dispatcher struct {
	inner *dispatch.Dispatcher
	cfg   config.Config
}

// Option configures the Dispatcher.
type Option func(*settings)

type settings struct {
	logger   *slog.Logger
	exec     ports.ToolRunner
	registry *process.Registry
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
}

// WithLogger sets a structured logger (default: silent).
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithToolRunner substitutes the subprocess executor.
func WithToolRunner(exec ports.ToolRunner) Option {
	return func(s *settings) {
		s.exec = exec
	}
}

// WithRegistry replaces the external tool registry.
func WithRegistry(reg *process.Registry) Option {
	return func(s *settings) {
		s.registry = reg
	}
}

// WithStreams redirects the dispatcher's terminal streams.
func WithStreams(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(s *settings) {
		s.stdin = stdin
		s.stdout = stdout
		s.stderr = stderr
	}
}

// New builds a Dispatcher from the process environment (MODE, SCHEDULE,
// KEVM_BUILD_DIR, K_RELEASE and friends), read once; nothing downstream
// touches the environment afterwards.
func New(opts ...Option) (*Dispatcher, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	var dopts []dispatch.Option
	if s.logger != nil {
		dopts = append(dopts, dispatch.WithLogger(s.logger))
	}
	if s.exec != nil {
		dopts = append(dopts, dispatch.WithToolRunner(s.exec))
	}
	if s.registry != nil {
		dopts = append(dopts, dispatch.WithRegistry(s.registry))
	}
	if s.stdout != nil || s.stderr != nil || s.stdin != nil {
		dopts = append(dopts, dispatch.WithStreams(s.stdin, s.stdout, s.stderr))
	}

	return &Dispatcher{inner: dispatch.New(cfg, dopts...), cfg: cfg}, nil
}

// Dispatch routes one invocation. The subcommand is the raw token; an
// unknown one is a routing error (toolchain.ErrRouting), answered by
// callers with usage, not a crash.
func (d *Dispatcher) Dispatch(ctx context.Context, subcommand string, argv []string) error {
	sub, ok := toolchain.ParseSubcommand(subcommand)
	if !ok {
		return toolchain.ErrRouting
	}
	return d.inner.Dispatch(ctx, sub, argv)
}
