package interp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamchrissmith/evm-semantics/internal/cli"
	"github.com/iamchrissmith/evm-semantics/internal/config"
	"github.com/iamchrissmith/evm-semantics/pkg/ports"
	"github.com/iamchrissmith/evm-semantics/pkg/toolchain"
)

// fakeExec stands in for the process runner. It can write scripted content
// into the interpreter's output file (the last argument for both backends)
// before reporting the scripted exit status.
type fakeExec struct {
	calls      [][]string
	tools      []toolchain.Tool
	status     int
	err        error
	outputFile string // content written to the output temp file
}

func (f *fakeExec) Run(ctx context.Context, tool toolchain.Tool, args []string, streams ports.Streams) (toolchain.Result, error) {
	f.calls = append(f.calls, args)
	f.tools = append(f.tools, tool)
	if f.err != nil {
		return toolchain.Result{}, f.err
	}
	if f.outputFile != "" {
		os.WriteFile(args[len(args)-1], []byte(f.outputFile), 0o600)
	}
	return toolchain.Result{ExitStatus: f.status}, nil
}

func okTranslator(content string) Translator {
	return func(ctx context.Context, format string, sink io.Writer) error {
		fmt.Fprint(sink, content)
		return nil
	}
}

func newTestRunner(t *testing.T, exec *fakeExec, translate Translator, stderr io.Writer) *Runner {
	t.Helper()
	// Isolate temp-file assertions from anything else using the real
	// temp dir.
	t.Setenv("TMPDIR", t.TempDir())
	if stderr == nil {
		stderr = io.Discard
	}
	return &Runner{
		Cfg:       config.Config{BuildDir: filepath.Join(t.TempDir(), ".build")},
		Exec:      exec,
		Translate: translate,
		Janitor:   cli.NewJanitor(),
		Stderr:    stderr,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func invocation(backend toolchain.Backend) toolchain.Invocation {
	return toolchain.Invocation{
		Subcommand: toolchain.SubInterpret,
		Backend:    backend,
		Target:     "pgm.json",
		Mode:       toolchain.NewMode("NORMAL"),
		Schedule:   toolchain.NewSchedule("BYZANTIUM"),
	}
}

// leftoverTemps lists interpret temp files still present on disk.
func leftoverTemps(t *testing.T) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(os.TempDir(), "kevm-interpret-*"))
	require.NoError(t, err)
	return matches
}

func TestRun_UnsupportedBackend(t *testing.T) {
	for _, backend := range []toolchain.Backend{toolchain.BackendJava, toolchain.BackendHaskell} {
		t.Run(backend.String(), func(t *testing.T) {
			exec := &fakeExec{}
			r := newTestRunner(t, exec, okTranslator("PGM"), nil)
			before := leftoverTemps(t)

			err := r.Run(context.Background(), invocation(backend))

			var unsupported *toolchain.UnsupportedBackendError
			require.ErrorAs(t, err, &unsupported)
			assert.Equal(t, backend, unsupported.Backend)
			assert.Empty(t, exec.calls, "no interpreter may launch")
			assert.Equal(t, before, leftoverTemps(t), "no temp files may appear")
		})
	}
}

func TestRun_OCamlArguments(t *testing.T) {
	exec := &fakeExec{}
	r := newTestRunner(t, exec, okTranslator("serialized"), nil)

	err := r.Run(context.Background(), invocation(toolchain.BackendOCaml))
	require.NoError(t, err)

	require.Len(t, exec.calls, 1)
	kompiled := filepath.Join(r.Cfg.BackendDir(toolchain.BackendOCaml), "driver-kompiled")
	assert.Equal(t, filepath.Join(kompiled, "interpreter"), exec.tools[0].Command)

	args := exec.calls[0]
	assert.Equal(t, filepath.Join(kompiled, "realdef.cma"), args[0])
	assert.Contains(t, args, "PGM")
	assert.Contains(t, args, "`BYZANTIUM_EVM`")
	assert.Contains(t, args, "`NORMAL`")
	assert.Contains(t, args, "--initializer")
	assert.Contains(t, args, "initKevmCell")
	assert.Contains(t, args, "--output-file")
}

func TestRun_LLVMArguments(t *testing.T) {
	exec := &fakeExec{}
	r := newTestRunner(t, exec, okTranslator("kore"), nil)

	err := r.Run(context.Background(), invocation(toolchain.BackendLLVM))
	require.NoError(t, err)

	require.Len(t, exec.calls, 1)
	args := exec.calls[0]
	require.Len(t, args, 3, "llvm interpreter takes input, step bound, output")
	assert.Equal(t, "-1", args[1], "run to completion")

	// The translation landed in the input file handed to the interpreter.
	// The file itself is gone by now (released), so only the name pattern
	// can be checked.
	assert.Contains(t, filepath.Base(args[0]), "kevm-interpret-in-")
	assert.Contains(t, filepath.Base(args[2]), "kevm-interpret-out-")
}

func TestRun_SuccessIsSilentAndClean(t *testing.T) {
	var stderr bytes.Buffer
	exec := &fakeExec{outputFile: "final state"}
	r := newTestRunner(t, exec, okTranslator("PGM"), &stderr)
	before := leftoverTemps(t)

	err := r.Run(context.Background(), invocation(toolchain.BackendLLVM))
	require.NoError(t, err)

	assert.Empty(t, stderr.String(), "success surfaces no output")
	assert.Equal(t, before, leftoverTemps(t), "temp files released")
}

func TestRun_FailurePropagatesStatusAndSurfacesOutput(t *testing.T) {
	var stderr bytes.Buffer
	exec := &fakeExec{status: 2, outputFile: "<k> #exception </k>"}
	r := newTestRunner(t, exec, okTranslator("PGM"), &stderr)
	before := leftoverTemps(t)

	err := r.Run(context.Background(), invocation(toolchain.BackendLLVM))

	var failure *toolchain.ToolFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, 2, failure.Status, "the interpreter's exact status")
	assert.Equal(t, []byte("<k> #exception </k>"), failure.Output)
	assert.Equal(t, "<k> #exception </k>", stderr.String(), "output surfaced exactly once")
	assert.Equal(t, before, leftoverTemps(t), "temp files released on failure too")
}

func TestRun_TranslationFailureIsStatusPreserving(t *testing.T) {
	exec := &fakeExec{}
	translate := func(ctx context.Context, format string, sink io.Writer) error {
		return &toolchain.ToolFailure{Tool: "kast", Status: 113}
	}
	r := newTestRunner(t, exec, translate, nil)
	before := leftoverTemps(t)

	err := r.Run(context.Background(), invocation(toolchain.BackendOCaml))

	var failure *toolchain.ToolFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, 113, failure.Status)
	assert.Empty(t, exec.calls, "interpreter must not run after a failed translation")
	assert.Equal(t, before, leftoverTemps(t))
}

func TestRun_ExecutionErrorStillReleasesTemps(t *testing.T) {
	exec := &fakeExec{err: errors.New("interpreter binary missing")}
	r := newTestRunner(t, exec, okTranslator("PGM"), nil)
	before := leftoverTemps(t)

	err := r.Run(context.Background(), invocation(toolchain.BackendLLVM))
	require.Error(t, err)

	var failure *toolchain.ToolFailure
	assert.False(t, errors.As(err, &failure), "could-not-run is not a tool failure")
	assert.Equal(t, before, leftoverTemps(t))
}

func TestRun_JanitorCoversSignalPath(t *testing.T) {
	// Simulate the signal path: the runner is cut off mid-invocation
	// (context canceled kills the subprocess, the error unwinds), and the
	// janitor must know about the pair while it exists.
	janitor := cli.NewJanitor()
	tracked := make(chan string, 1)
	exec := &fakeExec{err: context.Canceled}
	r := newTestRunner(t, exec, func(ctx context.Context, format string, sink io.Writer) error {
		return nil
	}, nil)
	r.Janitor = janitor
	r.Translate = func(ctx context.Context, format string, sink io.Writer) error {
		// At this point the pair exists and is registered.
		matches, _ := filepath.Glob(filepath.Join(os.TempDir(), "kevm-interpret-in-*"))
		require.NotEmpty(t, matches)
		tracked <- matches[0]
		return nil
	}

	err := r.Run(context.Background(), invocation(toolchain.BackendLLVM))
	require.Error(t, err)

	path := <-tracked
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "pair removed after unwind")

	// Sweep after release is a no-op, not a double-remove error.
	janitor.Sweep()
}
