package toolchain

import "strings"

// Subcommand is one of the dispatcher's top-level operations.
type Subcommand string

const (
	SubRun       Subcommand = "run"
	SubKast      Subcommand = "kast"
	SubInterpret Subcommand = "interpret"
	SubProve     Subcommand = "prove"
	SubKLabRun   Subcommand = "klab-run"
	SubKLabProve Subcommand = "klab-prove"
)

// ParseSubcommand maps a raw argument to a Subcommand.
func ParseSubcommand(s string) (Subcommand, bool) {
	switch sub := Subcommand(s); sub {
	case SubRun, SubKast, SubInterpret, SubProve, SubKLabRun, SubKLabProve:
		return sub, true
	}
	return "", false
}

// IsKLab reports whether the subcommand belongs to the klab family
// (state-log recording followed by the external debugger).
func (s Subcommand) IsKLab() bool {
	return strings.HasPrefix(string(s), "klab-")
}

func (s Subcommand) String() string {
	return string(s)
}

// ResolveBackend applies the backend resolution precedence to the arguments
// following the subcommand and returns the chosen backend, the remaining
// arguments, and whether the backend was requested explicitly.
//
// Precedence (highest wins, applied last):
//  1. default ocaml;
//  2. prove implies java;
//  3. klab-* implies java;
//  4. a literal "--backend <name>" as the first tokens after the subcommand
//     overrides everything. The name is kept verbatim even when unknown so
//     the compatibility matrix can reject the pair as a routing failure
//     rather than a parse error.
func ResolveBackend(sub Subcommand, argv []string) (Backend, []string, bool) {
	backend := BackendOCaml
	if sub == SubProve {
		backend = BackendJava
	}
	if sub.IsKLab() {
		backend = BackendJava
	}
	if len(argv) >= 2 && argv[0] == "--backend" {
		return Backend(argv[1]), argv[2:], true
	}
	return backend, argv, false
}
