package process

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iamchrissmith/evm-semantics/pkg/toolchain"
)

// ConfigFile is the on-disk shape of a tools.yaml override file.
type ConfigFile struct {
	Tools []toolchain.Tool `yaml:"tools" json:"tools"`
}

// LoadTools reads a tool override file (YAML or JSON) and returns a map of
// tool names to definitions. A missing file is not an error: it means "no
// overrides", and the built-in registry defaults stand.
func LoadTools(path string) (map[string]toolchain.Tool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]toolchain.Tool{}, nil
		}
		return nil, fmt.Errorf("failed to read tools config: %w", err)
	}

	var cfg ConfigFile
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	tools := make(map[string]toolchain.Tool)
	for _, tool := range cfg.Tools {
		if tool.Name == "" {
			continue
		}
		tools[tool.Name] = tool
	}
	return tools, nil
}
