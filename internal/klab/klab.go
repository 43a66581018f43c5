// Package klab implements the klab-run/klab-prove path: a recursive
// dispatch that records a state log on the java backend, followed by the
// external klab debugger over that log.
package klab

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/iamchrissmith/evm-semantics/internal/config"
	"github.com/iamchrissmith/evm-semantics/pkg/adapters/process"
	"github.com/iamchrissmith/evm-semantics/pkg/ports"
	"github.com/iamchrissmith/evm-semantics/pkg/toolchain"
)

// StateLogEvents is the fixed whitelist of event kinds the java backend
// records for the debugger.
const StateLogEvents = "OPEN,REACHINIT,REACHTARGET,REACHPROVED,NODE,RULE,SRULE,RULEATTEMPT,IMPLICATION,Z3QUERY,Z3RESULT,CLOSE"

// Inner is the dispatcher re-entered for the recording pass. Satisfied by
// the router itself (self-recursion).
type Inner interface {
	Dispatch(ctx context.Context, sub toolchain.Subcommand, argv []string) error
}

// Deps is the wiring the klab path needs from the router.
type Deps struct {
	Cfg     config.Config
	Inner   Inner
	Exec    ports.ToolRunner
	Tools   *process.Registry
	Streams ports.Streams
	Logger  *slog.Logger

	// Observe records a tool exit for metrics; may be nil.
	Observe func(tool string, status int)
}

// Run records a state log by re-dispatching as run/prove with backend
// pinned to java, then launches the debugger. The recording pass is
// best-effort: its failure never prevents the debugger from inspecting
// whatever partial log was produced. The debugger's own exit follows
// normal status-preserving propagation.
func Run(ctx context.Context, deps Deps, inv toolchain.Invocation) error {
	innerSub := toolchain.SubRun
	if inv.Subcommand == toolchain.SubKLabProve {
		innerSub = toolchain.SubProve
	}

	id := StateLogID(inv.Target)
	argv := []string{
		"--backend", toolchain.BackendJava.String(),
		inv.Target,
		"--state-log",
		"--state-log-path", filepath.Join(deps.Cfg.KLabDir, "data"),
		"--state-log-id", id,
		"--state-log-events", StateLogEvents,
		"--output-flatten", "_Map_ #And",
		"--output-tokenize", "#And",
		"--output-omit", "<programBytes> <program> <code>",
		"--output", "json",
	}
	argv = append(argv, inv.Args...)

	bestEffort(deps.Logger, deps.Inner.Dispatch(ctx, innerSub, argv))

	tool, err := deps.Tools.Lookup(process.ToolKLab)
	if err != nil {
		return err
	}
	// The debugger gets its output directory and stack tuning through the
	// environment; copy the entry so the registry value stays untouched.
	env := map[string]string{
		"KLAB_OUT":             deps.Cfg.KLabDir,
		"KLAB_NODE_STACK_SIZE": deps.Cfg.KLabNodeStackSize,
	}
	for k, v := range tool.Env {
		env[k] = v
	}
	tool.Env = env

	res, err := deps.Exec.Run(ctx, tool, []string{"run", "--state-log-id", id}, deps.Streams)
	if err != nil {
		return err
	}
	if deps.Observe != nil {
		deps.Observe(tool.Name, res.ExitStatus)
	}
	if res.ExitStatus != 0 {
		return &toolchain.ToolFailure{Tool: tool.Name, Status: res.ExitStatus}
	}
	return nil
}

// StateLogID derives the log identifier from the specification file name.
func StateLogID(target string) string {
	return strings.TrimSuffix(filepath.Base(target), "-spec.k")
}

// bestEffort deliberately discards the recording pass's outcome. This is
// the one place in the dispatcher where a failure is swallowed: a failed
// proof still leaves a partial state log worth debugging. Kept pending
// product-owner confirmation that masking genuine recording failures here
// is acceptable.
func bestEffort(logger *slog.Logger, err error) {
	if err != nil {
		logger.Warn("state-log recording failed, launching debugger anyway", "err", err)
	}
}
