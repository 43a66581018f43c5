/*
Package kevm is the library entry point for the EVM semantics dispatcher.

It routes invocations (run, kast, interpret, prove, klab-run, klab-prove)
to one of the interchangeable execution backends of the K semantics
toolchain (ocaml, java, llvm, haskell): it assembles the toolchain
environment, applies the subcommand-backend compatibility matrix, invokes
the matching external tool, and forwards its exit status faithfully.

# Concept

The dispatcher never reimplements the toolchain. Every backend tool is an
opaque external process drawn from an allow-listed registry; the
dispatcher's own value is in the routing rules, the MODE/SCHEDULE constant
wrapping, and the interpret path's scoped temporary-file lifetime with
status-preserving failure propagation.

# Usage

	package main

	import (
		"context"
		"log"

		kevm "github.com/iamchrissmith/evm-semantics"
	)

	func main() {
		d, err := kevm.New()
		if err != nil {
			log.Fatal(err)
		}
		if err := d.Dispatch(context.Background(), "run", []string{"--backend", "llvm", "tests/add.json"}); err != nil {
			log.Fatal(err)
		}
	}

Exit-status semantics live in the returned error: toolchain.ToolFailure
carries the wrapped tool's own status, toolchain.ErrRouting means "show
usage", and the fatal error types map to exit code 1. The kevm binary in
cmd/kevm performs that mapping; embedders can script their own.
*/
package kevm
