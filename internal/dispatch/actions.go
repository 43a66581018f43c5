package dispatch

import (
	"context"
	"io"
	"path/filepath"

	"github.com/iamchrissmith/evm-semantics/internal/interp"
	"github.com/iamchrissmith/evm-semantics/internal/klab"
	"github.com/iamchrissmith/evm-semantics/pkg/adapters/process"
	"github.com/iamchrissmith/evm-semantics/pkg/ports"
	"github.com/iamchrissmith/evm-semantics/pkg/toolchain"
)

// VerificationModule is the fixed definition module kprove checks
// specifications against.
const VerificationModule = "VERIFICATION"

func (d *Dispatcher) terminal() ports.Streams {
	return ports.Streams{Stdin: d.stdin, Stdout: d.stdout, Stderr: d.stderr}
}

// invoke looks a tool up, runs it, records its exit, and converts a
// non-zero status into a status-preserving ToolFailure.
func (d *Dispatcher) invoke(ctx context.Context, name string, args []string, streams ports.Streams) error {
	tool, err := d.tools.Lookup(name)
	if err != nil {
		return err
	}
	res, err := d.exec.Run(ctx, tool, args, streams)
	if err != nil {
		return err
	}
	d.metrics.ToolExit(name, res.ExitStatus)
	if res.ExitStatus != 0 {
		return &toolchain.ToolFailure{Tool: name, Status: res.ExitStatus}
	}
	return nil
}

// runKRun executes the target directly via krun, with MODE and SCHEDULE
// bound as configuration-variable constructor applications.
func (d *Dispatcher) runKRun(ctx context.Context, inv toolchain.Invocation) error {
	args := []string{
		"--directory", d.cfg.BackendDir(inv.Backend),
		"-cSCHEDULE=" + inv.Schedule.Apply(), "-pSCHEDULE=printf %s",
		"-cMODE=" + inv.Mode.Apply(), "-pMODE=printf %s",
		inv.Target,
	}
	args = append(args, inv.Args...)
	return d.invoke(ctx, process.ToolKRun, args, d.terminal())
}

// runKast converts the target to a serialized form. JSON targets go through
// the local translation scripts; anything else goes to the kast binary.
// The optional first extra argument selects the output mode (default kast).
func (d *Dispatcher) runKast(ctx context.Context, inv toolchain.Invocation) error {
	format := "kast"
	rest := inv.Args
	if len(rest) > 0 {
		format = rest[0]
		rest = rest[1:]
	}

	if filepath.Ext(inv.Target) == ".json" && (format == "kast" || format == "kore") {
		name := process.ToolKastJSON
		if format == "kore" {
			name = process.ToolKoreJSON
		}
		return d.invoke(ctx, name, []string{inv.Target, inv.Schedule.Token(), inv.Mode.Token()}, d.terminal())
	}

	args := []string{"--directory", d.cfg.BackendDir(inv.Backend), inv.Target, "--output", format}
	args = append(args, rest...)
	return d.invoke(ctx, process.ToolKast, args, d.terminal())
}

// runProve checks the target as a specification against the fixed
// verification module.
func (d *Dispatcher) runProve(ctx context.Context, inv toolchain.Invocation) error {
	args := []string{
		"--directory", d.cfg.BackendDir(inv.Backend),
		inv.Target,
		"--def-module", VerificationModule,
	}
	args = append(args, inv.Args...)
	return d.invoke(ctx, process.ToolKProve, args, d.terminal())
}

// runInterpret hands off to the interpret runner, supplying the kast
// translation as a closure so the runner can fill its input temp file with
// the same conversion logic runKast uses.
func (d *Dispatcher) runInterpret(ctx context.Context, inv toolchain.Invocation) error {
	runner := &interp.Runner{
		Cfg:       d.cfg,
		Exec:      d.exec,
		Translate: d.translator(inv),
		Janitor:   d.janitor,
		Stderr:    d.stderr,
		Logger:    d.logger,
		Observe:   d.metrics.ToolExit,
	}
	return runner.Run(ctx, inv)
}

// translator builds the serialization step for the interpret runner: the
// target converted to the requested format, written to the sink.
func (d *Dispatcher) translator(inv toolchain.Invocation) interp.Translator {
	return func(ctx context.Context, format string, sink io.Writer) error {
		streams := ports.Streams{Stdout: sink, Stderr: d.stderr}
		if filepath.Ext(inv.Target) == ".json" {
			name := process.ToolKastJSON
			if format == "kore" {
				name = process.ToolKoreJSON
			}
			return d.invoke(ctx, name, []string{inv.Target, inv.Schedule.Token(), inv.Mode.Token()}, streams)
		}
		args := []string{"--directory", d.cfg.BackendDir(inv.Backend), inv.Target, "--output", format}
		return d.invoke(ctx, process.ToolKast, args, streams)
	}
}

// runKLab records a state log via a recursive dispatch, then launches the
// external debugger over it.
func (d *Dispatcher) runKLab(ctx context.Context, inv toolchain.Invocation) error {
	deps := klab.Deps{
		Cfg:     d.cfg,
		Inner:   d,
		Exec:    d.exec,
		Tools:   d.tools,
		Streams: d.terminal(),
		Logger:  d.logger,
		Observe: d.metrics.ToolExit,
	}
	return klab.Run(ctx, deps, inv)
}
