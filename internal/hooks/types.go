package hooks

// Config is the top-level configuration for hooks loaded from .stepwise.hooks.yml.
type Config struct {
	Version int         `yaml:"version"`
	Hooks   HooksConfig `yaml:"hooks"`
}

// HooksConfig contains all hook configurations.
type HooksConfig struct {
	OnLoad   *HookConfig `yaml:"on_load"`
	OnCommit *HookConfig `yaml:"on_commit"` // non-zero exit vetoes the commit
	OnCancel *HookConfig `yaml:"on_cancel"`
	OnFinish *HookConfig `yaml:"on_finish"`
}

// HookConfig defines a single hook's configuration.
type HookConfig struct {
	Command string `yaml:"command"`
	Timeout int    `yaml:"timeout"` // seconds, default 30
}

// Result is the outcome of a hook run.
type Result struct {
	Output   string
	ExitCode int
	TimedOut bool
}

// OK reports whether the hook ran to completion with a zero exit status.
func (r Result) OK() bool {
	return r.ExitCode == 0 && !r.TimedOut
}

// DefaultTimeout is the default timeout for hook execution in seconds.
const DefaultTimeout = 30
