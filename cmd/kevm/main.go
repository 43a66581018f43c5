package main

import (
	"errors"
	"os"

	"github.com/iamchrissmith/evm-semantics/internal/cli"
	"github.com/iamchrissmith/evm-semantics/internal/presentation/usage"
	"github.com/iamchrissmith/evm-semantics/pkg/toolchain"
)

func main() {
	os.Exit(run())
}

// run executes the CLI and returns the process exit status. Returning
// (instead of exiting in place) lets the deferred cleanup fire on every
// path, including signal-driven cancellation.
func run() int {
	sw := cli.NewSignalWatcher()
	defer sw.Stop()
	defer janitor.Sweep()

	err := rootCmd.ExecuteContext(sw.Context())

	if sig, ok := sw.Fired(); ok {
		janitor.Sweep()
		return cli.ExitStatus(sig)
	}
	return exitCode(err)
}

// exitCode maps the dispatch error taxonomy to the process exit status.
// This is the only place that mapping happens.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	// Routing failures are help requests: usage on stdout, success status.
	if errors.Is(err, toolchain.ErrRouting) {
		usage.Print(os.Stdout)
		return 0
	}
	// Tool failures propagate the tool's own status so callers can script
	// on it. Any captured output was already surfaced by the runner.
	var failure *toolchain.ToolFailure
	if errors.As(err, &failure) {
		return failure.Status
	}
	// Everything else is fatal: short diagnostic, status 1.
	usage.Fatal(os.Stderr, err.Error())
	return 1
}
