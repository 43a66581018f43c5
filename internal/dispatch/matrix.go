package dispatch

import "github.com/iamchrissmith/evm-semantics/pkg/toolchain"

// Action names one of the dispatcher's execution paths.
type Action int

const (
	ActionRun Action = iota
	ActionKast
	ActionInterpret
	ActionProve
	ActionKLab
)

type routeKey struct {
	sub     toolchain.Subcommand
	backend toolchain.Backend
}

// matrix is the single place deciding which (subcommand, backend) pairs
// exist and where they go. Interpret routes for every known backend so the
// runner itself can reject java/haskell as a fatal unsupported-backend
// error (exit 1) rather than a help request; pairs absent here are help
// requests (usage on stdout, exit 0).
var matrix = map[routeKey]Action{
	{toolchain.SubRun, toolchain.BackendOCaml}:   ActionRun,
	{toolchain.SubRun, toolchain.BackendJava}:    ActionRun,
	{toolchain.SubRun, toolchain.BackendLLVM}:    ActionRun,
	{toolchain.SubRun, toolchain.BackendHaskell}: ActionRun,

	{toolchain.SubKast, toolchain.BackendOCaml}:   ActionKast,
	{toolchain.SubKast, toolchain.BackendJava}:    ActionKast,
	{toolchain.SubKast, toolchain.BackendLLVM}:    ActionKast,
	{toolchain.SubKast, toolchain.BackendHaskell}: ActionKast,

	{toolchain.SubInterpret, toolchain.BackendOCaml}:   ActionInterpret,
	{toolchain.SubInterpret, toolchain.BackendJava}:    ActionInterpret,
	{toolchain.SubInterpret, toolchain.BackendLLVM}:    ActionInterpret,
	{toolchain.SubInterpret, toolchain.BackendHaskell}: ActionInterpret,

	{toolchain.SubProve, toolchain.BackendJava}:    ActionProve,
	{toolchain.SubProve, toolchain.BackendHaskell}: ActionProve,

	{toolchain.SubKLabRun, toolchain.BackendJava}:   ActionKLab,
	{toolchain.SubKLabProve, toolchain.BackendJava}: ActionKLab,
}

// actionFor resolves the compatibility matrix.
func actionFor(sub toolchain.Subcommand, backend toolchain.Backend) (Action, bool) {
	action, ok := matrix[routeKey{sub, backend}]
	return action, ok
}
