// Package config builds the dispatcher's startup configuration from the
// environment, once, into an explicit value. Nothing downstream reads the
// environment or mutates it; the assembled toolchain environment is handed
// to subprocesses per invocation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iamchrissmith/evm-semantics/pkg/toolchain"
)

// Defaults applied when the corresponding variable is unset.
const (
	DefaultMode          = "NORMAL"
	DefaultSchedule      = "BYZANTIUM"
	DefaultNodeStackSize = "300000"
)

// Config holds everything the dispatcher derives from the environment.
// It is built once in main and passed by value.
type Config struct {
	// BuildDir is the build-output directory root (KEVM_BUILD_DIR,
	// default <cwd>/.build). Per-backend artifacts live under it.
	BuildDir string

	// ReleaseDir is the toolchain release directory (K_RELEASE override,
	// default <BuildDir>/k/k-distribution/target/release/k).
	ReleaseDir string

	// LibDir is appended to LD_LIBRARY_PATH for native helper libraries.
	LibDir string

	// WorkDir is the directory the dispatcher was started from.
	WorkDir string

	// Mode and Schedule are the raw MODE/SCHEDULE values; use the
	// Mode()/Schedule() constants when talking to tools.
	Mode     string
	Schedule string

	// KLabDir is where the java backend writes state logs and the klab
	// debugger reads them from.
	KLabDir string

	// KLabNodeStackSize tunes the downstream debugger's interpreter stack
	// (KLAB_NODE_STACK_SIZE).
	KLabNodeStackSize string

	// MetricsDir enables dispatch metrics when non-empty
	// (KEVM_METRICS_DIR, textfile-collector convention).
	MetricsDir string

	// ToolsFile is the tool registry override file (KEVM_TOOLS,
	// default tools.yaml in the working directory).
	ToolsFile string

	// Debug enables diagnostic logging (KEVM_DEBUG non-empty).
	// Subcommand arguments pass through to the tools verbatim, so debug
	// selection lives in the environment, not a flag.
	Debug bool
}

// FromEnv reads the environment and returns a fully defaulted Config.
func FromEnv() (Config, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return Config{}, fmt.Errorf("cannot determine working directory: %w", err)
	}

	buildDir := envOr("KEVM_BUILD_DIR", filepath.Join(workDir, ".build"))
	releaseDir := envOr("K_RELEASE", filepath.Join(buildDir, "k", "k-distribution", "target", "release", "k"))

	return Config{
		BuildDir:          buildDir,
		ReleaseDir:        releaseDir,
		LibDir:            filepath.Join(buildDir, "local", "lib"),
		WorkDir:           workDir,
		Mode:              envOr("MODE", DefaultMode),
		Schedule:          envOr("SCHEDULE", DefaultSchedule),
		KLabDir:           filepath.Join(buildDir, "klab"),
		KLabNodeStackSize: envOr("KLAB_NODE_STACK_SIZE", DefaultNodeStackSize),
		MetricsDir:        os.Getenv("KEVM_METRICS_DIR"),
		ToolsFile:         envOr("KEVM_TOOLS", "tools.yaml"),
		Debug:             os.Getenv("KEVM_DEBUG") != "",
	}, nil
}

// BackendDir locates the compiled definition directory for a backend.
func (c Config) BackendDir(b toolchain.Backend) string {
	return filepath.Join(c.BuildDir, b.String())
}

// ModeConstant returns MODE wrapped for tool consumption.
func (c Config) ModeConstant() toolchain.Constant {
	return toolchain.NewMode(c.Mode)
}

// ScheduleConstant returns SCHEDULE wrapped with the schedule tag.
func (c Config) ScheduleConstant() toolchain.Constant {
	return toolchain.NewSchedule(c.Schedule)
}

// Environ returns base extended with the toolchain search paths: the
// release bin and native-library directories are prepended to PATH and
// LibDir is appended to LD_LIBRARY_PATH. The input and the process
// environment are never mutated.
func (c Config) Environ(base []string) []string {
	prefix := strings.Join([]string{
		filepath.Join(c.ReleaseDir, "bin"),
		filepath.Join(c.ReleaseDir, "lib", "native", "linux"),
		filepath.Join(c.ReleaseDir, "lib", "native", "linux64"),
	}, string(os.PathListSeparator))

	env := make([]string, 0, len(base)+2)
	var sawPath, sawLib bool
	for _, kv := range base {
		switch {
		case strings.HasPrefix(kv, "PATH="):
			sawPath = true
			kv = "PATH=" + prefix + string(os.PathListSeparator) + strings.TrimPrefix(kv, "PATH=")
		case strings.HasPrefix(kv, "LD_LIBRARY_PATH="):
			sawLib = true
			kv = kv + string(os.PathListSeparator) + c.LibDir
		}
		env = append(env, kv)
	}
	if !sawPath {
		env = append(env, "PATH="+prefix)
	}
	if !sawLib {
		env = append(env, "LD_LIBRARY_PATH="+c.LibDir)
	}
	return env
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
