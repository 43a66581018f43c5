// Package interp implements the direct-interpretation path: serialize the
// target into a temp file, invoke the backend interpreter binary, and
// propagate its exit status while guaranteeing temp-file release on every
// exit path.
package interp

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/iamchrissmith/evm-semantics/internal/cli"
	"github.com/iamchrissmith/evm-semantics/internal/config"
	"github.com/iamchrissmith/evm-semantics/pkg/ports"
	"github.com/iamchrissmith/evm-semantics/pkg/toolchain"
)

// Translator serializes the invocation target into the given format
// ("kast" or "kore"), writing the result to sink. Supplied by the router
// so both paths share one conversion implementation.
type Translator func(ctx context.Context, format string, sink io.Writer) error

// The ocaml interpreter's entry point and compiled-definition artifact.
const (
	initializer = "initKevmCell"
	realdefName = "realdef.cma"
)

// stepsToCompletion is the llvm interpreter's "no step bound" sentinel.
const stepsToCompletion = "-1"

// Runner executes one interpret invocation. Fields are wired by the
// router; zero-value optional fields (Janitor, Observe) are safe.
type Runner struct {
	Cfg       config.Config
	Exec      ports.ToolRunner
	Translate Translator
	Janitor   *cli.Janitor
	Stderr    io.Writer
	Logger    *slog.Logger

	// Observe records a tool exit for metrics; may be nil.
	Observe func(tool string, status int)
}

// Run interprets the target on the ocaml or llvm backend.
//
// The returned error is *UnsupportedBackendError for java/haskell (fatal,
// exit 1), *ToolFailure when the interpreter (or the translation step)
// exited non-zero — carrying the interpreter's exact status, with the
// captured output already surfaced on Stderr — or nil on success, where no
// output is printed at all (callers wanting output use run instead).
func (r *Runner) Run(ctx context.Context, inv toolchain.Invocation) error {
	var format string
	switch inv.Backend {
	case toolchain.BackendOCaml:
		format = "kast"
	case toolchain.BackendLLVM:
		format = "kore"
	default:
		return &toolchain.UnsupportedBackendError{Subcommand: inv.Subcommand, Backend: inv.Backend}
	}

	// The release guard is established before the first potentially
	// failing step: deferred removal covers return and error paths, the
	// janitor covers signal-driven exits.
	pair, err := newTempPair(r.Janitor)
	if err != nil {
		return err
	}
	defer pair.release()

	if err := r.prepare(ctx, format, pair.input); err != nil {
		return err
	}

	kompiled := filepath.Join(r.Cfg.BackendDir(inv.Backend), "driver-kompiled")
	interpreter := toolchain.Tool{
		Name:        "interpreter",
		Command:     filepath.Join(kompiled, "interpreter"),
		Description: "backend interpreter binary",
	}

	var args []string
	switch inv.Backend {
	case toolchain.BackendOCaml:
		args = []string{
			filepath.Join(kompiled, realdefName),
			"-c", "PGM", pair.input, "textfile",
			"-c", "SCHEDULE", inv.Schedule.Token(), "text",
			"-c", "MODE", inv.Mode.Token(), "text",
			"--initializer", initializer,
			"--output-file", pair.output,
		}
	case toolchain.BackendLLVM:
		args = []string{pair.input, stepsToCompletion, pair.output}
	}

	res, err := r.Exec.Run(ctx, interpreter, args, ports.Streams{Stderr: r.Stderr})
	if err != nil {
		return err
	}
	if r.Observe != nil {
		r.Observe(interpreter.Name, res.ExitStatus)
	}

	if res.ExitStatus != 0 {
		// The interpreter reported a semantic failure: surface its output
		// once on the diagnostic stream, then propagate the exact status.
		output, readErr := os.ReadFile(pair.output)
		if readErr != nil {
			r.Logger.Debug("could not read interpreter output", "err", readErr)
		} else if len(output) > 0 {
			r.Stderr.Write(output)
		}
		return &toolchain.ToolFailure{Tool: interpreter.Name, Status: res.ExitStatus, Output: output}
	}
	return nil
}

// prepare fills the input temp file with the serialized target. A failing
// translation follows the same status-preserving policy as the interpreter
// itself (the Translator returns *ToolFailure).
func (r *Runner) prepare(ctx context.Context, format, path string) error {
	sink, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer sink.Close()
	return r.Translate(ctx, format, sink)
}
