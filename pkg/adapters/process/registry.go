package process

import (
	"fmt"

	"github.com/iamchrissmith/evm-semantics/pkg/toolchain"
)

// Registry is the allow-list of external tools the dispatcher may invoke.
// It is seeded with the toolchain defaults and optionally overridden from a
// tools.yaml file; nothing outside the registry is ever executed by name.
type Registry struct {
	tools map[string]toolchain.Tool
}

// Well-known registry entries. The backend interpreter binaries are not
// listed here: their location depends on the build directory, so the
// interpret runner constructs those Tool values from the configuration.
const (
	ToolKRun     = "krun"
	ToolKast     = "kast"
	ToolKProve   = "kprove"
	ToolKLab     = "klab"
	ToolKastJSON = "kast-json"
	ToolKoreJSON = "kore-json"
)

// DefaultRegistry returns the built-in tool set. Commands are bare names
// resolved against the assembled toolchain PATH, except the two local
// translation scripts which live in the working directory.
func DefaultRegistry() *Registry {
	reg := &Registry{tools: make(map[string]toolchain.Tool)}
	for _, tool := range []toolchain.Tool{
		{Name: ToolKRun, Command: "krun", Description: "direct execution via the K runner"},
		{Name: ToolKast, Command: "kast", Description: "format conversion to kast/kore"},
		{Name: ToolKProve, Command: "kprove", Description: "reachability proving"},
		{Name: ToolKLab, Command: "klab", Description: "state-log debugger"},
		{Name: ToolKastJSON, Command: "./kast-json.py", Description: "local JSON-to-kast translation"},
		{Name: ToolKoreJSON, Command: "./kore-json.py", Description: "local JSON-to-kore translation"},
	} {
		reg.tools[tool.Name] = tool
	}
	return reg
}

// Override replaces or adds registry entries, typically from LoadTools.
func (r *Registry) Override(tools map[string]toolchain.Tool) {
	for name, tool := range tools {
		r.tools[name] = tool
	}
}

// Lookup resolves a registry entry by name.
func (r *Registry) Lookup(name string) (toolchain.Tool, error) {
	tool, ok := r.tools[name]
	if !ok {
		return toolchain.Tool{}, fmt.Errorf("tool not registered: %s", name)
	}
	return tool, nil
}
