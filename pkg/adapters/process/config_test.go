package process

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamchrissmith/evm-semantics/pkg/toolchain"
)

func TestLoadTools(t *testing.T) {
	t.Run("Missing File Means No Overrides", func(t *testing.T) {
		tools, err := LoadTools(filepath.Join(t.TempDir(), "tools.yaml"))
		require.NoError(t, err)
		assert.Empty(t, tools)
	})

	t.Run("YAML Overrides Parse", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tools.yaml")
		content := `tools:
  - name: krun
    command: /opt/k/bin/krun
    description: pinned release
  - name: ""
    command: ignored-without-a-name
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		tools, err := LoadTools(path)
		require.NoError(t, err)
		require.Len(t, tools, 1)
		assert.Equal(t, "/opt/k/bin/krun", tools["krun"].Command)
	})

	t.Run("JSON Overrides Parse", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tools.json")
		content := `{"tools": [{"name": "klab", "command": "npx", "args": ["klab"]}]}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		tools, err := LoadTools(path)
		require.NoError(t, err)
		assert.Equal(t, "npx", tools["klab"].Command)
		assert.Equal(t, []string{"klab"}, tools["klab"].Args)
	})

	t.Run("Malformed File Is An Error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tools.yaml")
		require.NoError(t, os.WriteFile(path, []byte("tools: {not: [a, list"), 0o644))

		_, err := LoadTools(path)
		assert.Error(t, err)
	})
}

func TestRegistry(t *testing.T) {
	reg := DefaultRegistry()

	t.Run("Ships Toolchain Defaults", func(t *testing.T) {
		for _, name := range []string{ToolKRun, ToolKast, ToolKProve, ToolKLab, ToolKastJSON, ToolKoreJSON} {
			tool, err := reg.Lookup(name)
			require.NoError(t, err, name)
			assert.NotEmpty(t, tool.Command)
		}
	})

	t.Run("Override Replaces Entries", func(t *testing.T) {
		reg.Override(map[string]toolchain.Tool{
			ToolKRun: {Name: ToolKRun, Command: "/custom/krun"},
		})
		tool, err := reg.Lookup(ToolKRun)
		require.NoError(t, err)
		assert.Equal(t, "/custom/krun", tool.Command)
	})

	t.Run("Unknown Tool Is An Error", func(t *testing.T) {
		_, err := reg.Lookup("kompile")
		assert.ErrorContains(t, err, "not registered")
	})
}
