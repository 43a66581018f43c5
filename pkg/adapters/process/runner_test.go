package process

import (
	"bytes"
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamchrissmith/evm-semantics/pkg/ports"
	"github.com/iamchrissmith/evm-semantics/pkg/toolchain"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("tests drive sh")
	}
}

func TestRunner_Run(t *testing.T) {
	skipOnWindows(t)
	r := NewRunner()

	t.Run("Captures Stdout", func(t *testing.T) {
		var stdout bytes.Buffer
		tool := toolchain.Tool{Name: "echo", Command: "sh", Args: []string{"-c", "echo hello"}}

		res, err := r.Run(context.Background(), tool, nil, ports.Streams{Stdout: &stdout})
		require.NoError(t, err)
		assert.Equal(t, 0, res.ExitStatus)
		assert.Equal(t, "hello\n", stdout.String())
	})

	t.Run("Nonzero Exit Is Data Not Error", func(t *testing.T) {
		tool := toolchain.Tool{Name: "fail", Command: "sh", Args: []string{"-c", "exit 3"}}

		res, err := r.Run(context.Background(), tool, nil, ports.Streams{})
		require.NoError(t, err)
		assert.Equal(t, 3, res.ExitStatus)
	})

	t.Run("Missing Binary Is An Error", func(t *testing.T) {
		tool := toolchain.Tool{Name: "ghost", Command: "definitely-not-a-real-binary-kevm"}

		_, err := r.Run(context.Background(), tool, nil, ports.Streams{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ghost")
	})

	t.Run("Call Args Follow Registered Args", func(t *testing.T) {
		var stdout bytes.Buffer
		tool := toolchain.Tool{Name: "printf", Command: "printf", Args: []string{"%s-%s"}}

		res, err := r.Run(context.Background(), tool, []string{"a", "b"}, ports.Streams{Stdout: &stdout})
		require.NoError(t, err)
		assert.Equal(t, 0, res.ExitStatus)
		assert.Equal(t, "a-b", stdout.String())
	})

	t.Run("Tool Env Reaches The Process", func(t *testing.T) {
		var stdout bytes.Buffer
		tool := toolchain.Tool{
			Name:    "env-echo",
			Command: "sh",
			Args:    []string{"-c", "echo $KLAB_OUT"},
			Env:     map[string]string{"KLAB_OUT": "/tmp/klab"},
		}

		res, err := r.Run(context.Background(), tool, nil, ports.Streams{Stdout: &stdout})
		require.NoError(t, err)
		assert.Equal(t, 0, res.ExitStatus)
		assert.Equal(t, "/tmp/klab\n", stdout.String())
	})

	t.Run("Cancellation Is An Error Not A Status", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		tool := toolchain.Tool{Name: "sleep", Command: "sleep", Args: []string{"10"}}

		_, err := r.Run(ctx, tool, nil, ports.Streams{})
		assert.Error(t, err)
	})
}

func TestRunner_EnvironNotMutatedByToolEnv(t *testing.T) {
	skipOnWindows(t)
	base := []string{"PATH=/usr/bin:/bin", "HOME=/root"}
	shared := make([]string, len(base))
	copy(shared, base)

	r := NewRunner(WithEnviron(shared))
	tool := toolchain.Tool{
		Name:    "true",
		Command: "true",
		Env:     map[string]string{"EXTRA": "1"},
	}

	_, err := r.Run(context.Background(), tool, nil, ports.Streams{})
	require.NoError(t, err)
	assert.Equal(t, base, shared)
}
