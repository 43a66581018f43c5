package interp

import (
	"fmt"
	"os"

	"github.com/iamchrissmith/evm-semantics/internal/cli"
)

// tempPair is the scoped (input, output) temporary file pair of one
// interpreter invocation. Ownership is exclusive; release is unconditional
// via defer, with the janitor as the signal-path backstop.
type tempPair struct {
	input   string
	output  string
	janitor *cli.Janitor
}

func newTempPair(janitor *cli.Janitor) (*tempPair, error) {
	in, err := os.CreateTemp("", "kevm-interpret-in-*")
	if err != nil {
		return nil, fmt.Errorf("cannot create input temp file: %w", err)
	}
	in.Close()

	out, err := os.CreateTemp("", "kevm-interpret-out-*")
	if err != nil {
		os.Remove(in.Name())
		return nil, fmt.Errorf("cannot create output temp file: %w", err)
	}
	out.Close()

	janitor.Track(in.Name(), out.Name())
	return &tempPair{input: in.Name(), output: out.Name(), janitor: janitor}, nil
}

func (p *tempPair) release() {
	os.Remove(p.input)
	os.Remove(p.output)
	p.janitor.Untrack(p.input, p.output)
}
