package ports

import (
	"context"
	"io"

	"github.com/iamchrissmith/evm-semantics/pkg/toolchain"
)

// Streams selects where a tool invocation's standard streams go.
// Run/kast/prove inherit the dispatcher's terminal; interpret redirects
// stdout into a temporary file.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// ToolRunner executes one external tool and blocks until it terminates.
//
// The contract separates two failure kinds: a non-zero tool exit is data
// (Result.ExitStatus) with a nil error, while the error return is reserved
// for "the tool could not run" (missing binary, context canceled).
type ToolRunner interface {
	Run(ctx context.Context, tool toolchain.Tool, args []string, streams Streams) (toolchain.Result, error)
}
