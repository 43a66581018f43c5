package toolchain

// Tool describes one external program the dispatcher is allowed to invoke.
// Entries come from the built-in registry or a tools.yaml override.
type Tool struct {
	Name        string            `yaml:"name" json:"name"`
	Command     string            `yaml:"command" json:"command"`
	Args        []string          `yaml:"args" json:"args"`
	Env         map[string]string `yaml:"env" json:"env"`
	Description string            `yaml:"description" json:"description"`
}

// Result is the outcome of a tool invocation that actually ran.
// A non-zero ExitStatus is data, not an execution error: the dispatcher
// decides per call site whether to propagate, surface output, or ignore it.
type Result struct {
	ExitStatus int
}

// Invocation is the fully resolved form of one dispatcher call: the routing
// inputs plus the constants every backend tool receives.
type Invocation struct {
	Subcommand      Subcommand
	Backend         Backend
	BackendExplicit bool
	Target          string
	Args            []string
	Mode            Constant
	Schedule        Constant
}
